package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"eduhub-client/internal/models"
)

func (c *Client) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.get(ctx, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetAllUsers(ctx context.Context, page, limit int) ([]models.User, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var users []models.User
	if err := c.get(ctx, "/api/admin/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetAdminContent(ctx context.Context, params models.ContentListParams) ([]models.Content, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	var content []models.Content
	if err := c.get(ctx, "/api/admin/content", q, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *Client) DeleteAdminContent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/content/%d", id))
}

func (c *Client) GetAdminCategories(ctx context.Context) ([]models.ContentCategory, error) {
	var categories []models.ContentCategory
	if err := c.get(ctx, "/api/admin/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, category models.ContentCategory) (*models.ContentCategory, error) {
	var created models.ContentCategory
	if err := c.post(ctx, "/api/admin/categories", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, category models.ContentCategory) (*models.ContentCategory, error) {
	var updated models.ContentCategory
	if err := c.put(ctx, fmt.Sprintf("/api/admin/categories/%d", id), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/categories/%d", id))
}

func (c *Client) GetSystemSettings(ctx context.Context) (*models.SystemSettings, error) {
	var settings models.SystemSettings
	if err := c.get(ctx, "/api/admin/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateSystemSettings(ctx context.Context, settings models.SystemSettings) error {
	return c.put(ctx, "/api/admin/settings", settings, nil)
}

func (c *Client) GetAnalyticsOverview(ctx context.Context, period string) (*models.AnalyticsOverview, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var overview models.AnalyticsOverview
	if err := c.get(ctx, "/api/admin/analytics/overview", q, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
