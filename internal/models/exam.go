package models

import "time"

// Question types supported by the exam builder.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionShortAnswer    = "short_answer"
	QuestionEssay          = "essay"
)

type Exam struct {
	ExamID       int64      `json:"exam_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	Duration     int        `json:"duration"` // minutes
	TotalMarks   int        `json:"total_marks"`
	PassingMarks int        `json:"passing_marks"`
	IsActive     bool       `json:"is_active"`
	CreatedBy    int64      `json:"created_by"`
	Questions    []Question `json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Question struct {
	QuestionID   int64    `json:"question_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options,omitempty"`
	Marks        int      `json:"marks"`
}

type CreateExamRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Duration     int              `json:"duration"`
	TotalMarks   int              `json:"total_marks"`
	PassingMarks int              `json:"passing_marks"`
	IsActive     bool             `json:"is_active"`
	Questions    []CreateQuestion `json:"questions"`
}

type CreateQuestion struct {
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Marks         int      `json:"marks"`
}

// SubmitExamRequest carries the answers snapshot keyed by question ID.
type SubmitExamRequest struct {
	Answers map[string]string `json:"answers"`
}

type ExamResult struct {
	ResultID    int64      `json:"result_id"`
	ExamID      int64      `json:"exam_id"`
	StudentID   int64      `json:"student_id"`
	Score       int        `json:"score"`
	TotalMarks  int        `json:"total_marks"`
	Passed      bool       `json:"passed"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}
