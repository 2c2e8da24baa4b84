package models

import "time"

type Advertisement struct {
	AdID           int64     `json:"ad_id"`
	Title          string    `json:"title"`
	ImageURL       string    `json:"image_url"`
	TargetURL      string    `json:"target_url"`
	Position       string    `json:"position"` // content_top, sidebar_left, sidebar_right
	TargetAudience string    `json:"target_audience,omitempty"`
	IsActive       bool      `json:"is_active"`
	Clicks         int       `json:"clicks"`
	Impressions    int       `json:"impressions"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdAnalytics struct {
	AdID        int64   `json:"ad_id"`
	Period      string  `json:"period"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
}

// AdUpload describes a multipart advertisement submission for the admin
// console.
type AdUpload struct {
	Title          string
	TargetURL      string
	Position       string
	TargetAudience string
	Filename       string
	Image          []byte
}
