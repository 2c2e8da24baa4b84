package models

import "time"

type Meeting struct {
	MeetingID   int64     `json:"meeting_id"`
	Title       string    `json:"title"`
	MeetingURL  string    `json:"meeting_url"`
	HostID      int64     `json:"host_id"`
	ClassroomID int64     `json:"classroom_id,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_minutes"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMeetingRequest struct {
	Title       string    `json:"title"`
	ClassroomID int64     `json:"classroom_id,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_minutes"`
}
