package api

import (
	"context"
	"net/url"

	"eduhub-client/internal/models"
)

type UserAnalytics struct {
	ExamsTaken    int     `json:"exams_taken"`
	AverageScore  float64 `json:"average_score"`
	ContentViewed int     `json:"content_viewed"`
	StudyHours    float64 `json:"study_hours"`
}

type ContentAnalytics struct {
	TotalViews int              `json:"total_views"`
	TopContent []models.Content `json:"top_content"`
	ByCategory map[string]int   `json:"by_category"`
}

func (c *Client) GetUserAnalytics(ctx context.Context) (*UserAnalytics, error) {
	var analytics UserAnalytics
	if err := c.get(ctx, "/api/analytics/user", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *Client) GetContentAnalytics(ctx context.Context) (*ContentAnalytics, error) {
	var analytics ContentAnalytics
	if err := c.get(ctx, "/api/analytics/content", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *Client) GetProgressReport(ctx context.Context, period string) (map[string]interface{}, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var report map[string]interface{}
	if err := c.get(ctx, "/api/analytics/progress", q, &report); err != nil {
		return nil, err
	}
	return report, nil
}
