package models

import "time"

type Classroom struct {
	ClassroomID  int64     `json:"classroom_id"`
	Name         string    `json:"name"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	TeacherID    int64     `json:"teacher_id"`
	TeacherName  string    `json:"teacher_name,omitempty"`
	StudentCount int       `json:"student_count"`
	JoinCode     string    `json:"join_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateClassroomRequest struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}
