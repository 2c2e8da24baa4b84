package models

type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	TotalStudents   int `json:"total_students"`
	TotalTeachers   int `json:"total_teachers"`
	TotalClassrooms int `json:"total_classrooms"`
	TotalExams      int `json:"total_exams"`
	TotalContent    int `json:"total_content"`
}

type SystemSettings struct {
	MaintenanceMode     bool   `json:"maintenance_mode"`
	RegistrationEnabled bool   `json:"registration_enabled"`
	MaxUploadSizeMB     int    `json:"max_upload_size_mb"`
	SupportEmail        string `json:"support_email"`
	AnnouncementMessage string `json:"announcement_message,omitempty"`
}

type AnalyticsOverview struct {
	Period           string  `json:"period"`
	ActiveUsers      int     `json:"active_users"`
	NewRegistrations int     `json:"new_registrations"`
	ExamsTaken       int     `json:"exams_taken"`
	ContentViews     int     `json:"content_views"`
	AverageScore     float64 `json:"average_score"`
}

type ChildProgress struct {
	ChildID        int64   `json:"child_id"`
	ChildName      string  `json:"child_name"`
	ExamsTaken     int     `json:"exams_taken"`
	AverageScore   float64 `json:"average_score"`
	AttendanceRate float64 `json:"attendance_rate"`
}
