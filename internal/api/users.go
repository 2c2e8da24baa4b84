package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), updates, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

// Parent portal

func (c *Client) GetParentChildren(ctx context.Context) ([]models.User, error) {
	var children []models.User
	if err := c.get(ctx, "/api/parent/children", nil, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (c *Client) AddChild(ctx context.Context, child map[string]interface{}) (*models.User, error) {
	var added models.User
	if err := c.post(ctx, "/api/parent/children", child, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

func (c *Client) GetChildProgress(ctx context.Context, childID int64) (*models.ChildProgress, error) {
	var progress models.ChildProgress
	if err := c.get(ctx, fmt.Sprintf("/api/parent/children/%d/progress", childID), nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}
