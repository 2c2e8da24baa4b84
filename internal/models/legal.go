package models

import "time"

type LegalDocument struct {
	DocumentID int64     `json:"document_id"`
	Type       string    `json:"type"` // privacy_policy, terms_of_service
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserAgreement struct {
	AgreementID int64     `json:"agreement_id"`
	DocumentID  int64     `json:"document_id"`
	UserID      int64     `json:"user_id"`
	AcceptedAt  time.Time `json:"accepted_at"`
}
