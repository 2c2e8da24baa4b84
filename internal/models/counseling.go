package models

import "time"

type CounselingSession struct {
	SessionID   int64     `json:"session_id"`
	StudentID   int64     `json:"student_id"`
	ExpertID    int64     `json:"expert_id"`
	ExpertName  string    `json:"expert_name,omitempty"`
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"` // requested, scheduled, completed, cancelled
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type CounselingRequest struct {
	ExpertID    int64     `json:"expert_id"`
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
}
