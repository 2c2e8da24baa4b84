package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetCounselingSessions(ctx context.Context) ([]models.CounselingSession, error) {
	var sessions []models.CounselingSession
	if err := c.get(ctx, "/api/counseling", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) GetCounselingSession(ctx context.Context, id int64) (*models.CounselingSession, error) {
	var session models.CounselingSession
	if err := c.get(ctx, fmt.Sprintf("/api/counseling/%d", id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) RequestCounseling(ctx context.Context, req models.CounselingRequest) (*models.CounselingSession, error) {
	var session models.CounselingSession
	if err := c.post(ctx, "/api/counseling", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) UpdateCounselingSession(ctx context.Context, id int64, updates map[string]interface{}) (*models.CounselingSession, error) {
	var session models.CounselingSession
	if err := c.put(ctx, fmt.Sprintf("/api/counseling/%d", id), updates, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
