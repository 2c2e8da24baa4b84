package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"eduhub-client/internal/models"
)

func (c *Client) GetContent(ctx context.Context, params models.ContentListParams) ([]models.Content, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var content []models.Content
	if err := c.get(ctx, "/api/content", q, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *Client) GetContentByID(ctx context.Context, id int64) (*models.Content, error) {
	var content models.Content
	if err := c.get(ctx, fmt.Sprintf("/api/content/%d", id), nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) CreateContent(ctx context.Context, upload models.ContentUpload) (*models.Content, error) {
	var content models.Content
	err := c.doMultipart(ctx, http.MethodPost, "/api/content", map[string]string{
		"title":       upload.Title,
		"description": upload.Description,
		"category":    upload.Category,
	}, "file", upload.Filename, upload.File, &content)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) UpdateContent(ctx context.Context, id int64, upload models.ContentUpload) (*models.Content, error) {
	var content models.Content
	err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/api/content/%d", id), map[string]string{
		"title":       upload.Title,
		"description": upload.Description,
		"category":    upload.Category,
	}, "file", upload.Filename, upload.File, &content)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *Client) DeleteContent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/content/%d", id))
}

func (c *Client) GetContentCategories(ctx context.Context) ([]models.ContentCategory, error) {
	var categories []models.ContentCategory
	if err := c.get(ctx, "/api/content/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetRecommendedContent(ctx context.Context) ([]models.Content, error) {
	var resp struct {
		Data []models.Content `json:"data"`
	}
	if err := c.get(ctx, "/api/content/recommended", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
