package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetExams(ctx context.Context) ([]models.Exam, error) {
	var exams []models.Exam
	if err := c.get(ctx, "/api/exams", nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (c *Client) GetExam(ctx context.Context, id int64) (*models.Exam, error) {
	var exam models.Exam
	if err := c.get(ctx, fmt.Sprintf("/api/exams/%d", id), nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (c *Client) CreateExam(ctx context.Context, req models.CreateExamRequest) (*models.Exam, error) {
	var exam models.Exam
	if err := c.post(ctx, "/api/exams", req, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// SubmitExam posts the answers snapshot for one attempt.
func (c *Client) SubmitExam(ctx context.Context, id int64, answers map[string]string) error {
	return c.post(ctx, fmt.Sprintf("/api/exams/%d/submit", id), models.SubmitExamRequest{Answers: answers}, nil)
}

func (c *Client) GetExamResults(ctx context.Context, id int64) ([]models.ExamResult, error) {
	var results []models.ExamResult
	if err := c.get(ctx, fmt.Sprintf("/api/exams/%d/results", id), nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
