package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetPrivacyPolicy(ctx context.Context) (*models.LegalDocument, error) {
	var doc models.LegalDocument
	if err := c.get(ctx, "/api/legal/privacy-policy", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) GetTermsOfService(ctx context.Context) (*models.LegalDocument, error) {
	var doc models.LegalDocument
	if err := c.get(ctx, "/api/legal/terms-of-service", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) GetLegalDocuments(ctx context.Context) ([]models.LegalDocument, error) {
	var docs []models.LegalDocument
	if err := c.get(ctx, "/api/legal/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) AcceptLegalDocument(ctx context.Context, documentID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/legal/accept/%d", documentID), nil, nil)
}

func (c *Client) GetUserAgreements(ctx context.Context) ([]models.UserAgreement, error) {
	var agreements []models.UserAgreement
	if err := c.get(ctx, "/api/legal/user-agreements", nil, &agreements); err != nil {
		return nil, err
	}
	return agreements, nil
}
