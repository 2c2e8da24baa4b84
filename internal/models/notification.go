package models

import "time"

type Notification struct {
	NotificationID int64     `json:"notification_id"`
	UserID         int64     `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationEvent is the envelope pushed over the socket channel.
type NotificationEvent struct {
	Event        string        `json:"event"`
	Notification *Notification `json:"notification"`
}
