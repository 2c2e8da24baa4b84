package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eduhub-client/internal/models"
)

func (c *Client) GetActiveAds(ctx context.Context, position, targetAudience string) ([]models.Advertisement, error) {
	q := url.Values{}
	if position != "" {
		q.Set("position", position)
	}
	if targetAudience != "" {
		q.Set("target_audience", targetAudience)
	}

	var ads []models.Advertisement
	if err := c.get(ctx, "/api/advertisements/active", q, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (c *Client) TrackAdClick(ctx context.Context, adID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/advertisements/click/%d", adID), nil, nil)
}

func (c *Client) GetAdminAds(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := c.get(ctx, "/api/advertisements/admin", nil, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (c *Client) CreateAd(ctx context.Context, upload models.AdUpload) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := c.doMultipart(ctx, http.MethodPost, "/api/advertisements/admin", map[string]string{
		"title":           upload.Title,
		"target_url":      upload.TargetURL,
		"position":        upload.Position,
		"target_audience": upload.TargetAudience,
	}, "image", upload.Filename, upload.Image, &ad)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) UpdateAd(ctx context.Context, id int64, upload models.AdUpload) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/api/advertisements/admin/%d", id), map[string]string{
		"title":           upload.Title,
		"target_url":      upload.TargetURL,
		"position":        upload.Position,
		"target_audience": upload.TargetAudience,
	}, "image", upload.Filename, upload.Image, &ad)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) DeleteAd(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/advertisements/admin/%d", id))
}

func (c *Client) GetAdAnalytics(ctx context.Context, id int64, period string) (*models.AdAnalytics, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var analytics models.AdAnalytics
	if err := c.get(ctx, fmt.Sprintf("/api/advertisements/analytics/%d", id), q, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
