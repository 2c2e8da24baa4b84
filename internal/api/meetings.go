package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetMeetings(ctx context.Context) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := c.get(ctx, "/api/meetings", nil, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (c *Client) CreateMeeting(ctx context.Context, req models.CreateMeetingRequest) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := c.post(ctx, "/api/meetings", req, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (c *Client) UpdateMeeting(ctx context.Context, id int64, updates map[string]interface{}) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := c.put(ctx, fmt.Sprintf("/api/meetings/%d", id), updates, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (c *Client) DeleteMeeting(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/meetings/%d", id))
}
