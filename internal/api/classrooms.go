package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetClassrooms(ctx context.Context) ([]models.Classroom, error) {
	var resp struct {
		Data []models.Classroom `json:"data"`
	}
	if err := c.get(ctx, "/api/classrooms", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetClassroom(ctx context.Context, id int64) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := c.get(ctx, fmt.Sprintf("/api/classrooms/%d", id), nil, &classroom); err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (c *Client) CreateClassroom(ctx context.Context, req models.CreateClassroomRequest) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := c.post(ctx, "/api/classrooms", req, &classroom); err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (c *Client) UpdateClassroom(ctx context.Context, id int64, req models.CreateClassroomRequest) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := c.put(ctx, fmt.Sprintf("/api/classrooms/%d", id), req, &classroom); err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (c *Client) DeleteClassroom(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/classrooms/%d", id))
}

func (c *Client) JoinClassroom(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/classrooms/%d/join", id), nil, nil)
}

func (c *Client) LeaveClassroom(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/classrooms/%d/leave", id), nil, nil)
}
