package models

import "time"

type Content struct {
	ContentID   int64     `json:"content_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FileURL     string    `json:"file_url,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	UploadedBy  int64     `json:"uploaded_by"`
	ViewCount   int       `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContentCategory struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ContentUpload describes a multipart content submission. File is the raw
// payload; Filename is sent as the form file name.
type ContentUpload struct {
	Title       string
	Description string
	Category    string
	Filename    string
	File        []byte
}

type ContentListParams struct {
	Category string
	Search   string
	Page     int
	Limit    int
}
