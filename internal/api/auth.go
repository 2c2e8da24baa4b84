package api

import (
	"context"

	"eduhub-client/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleAuth exchanges the provider-issued credential for a platform
// session. The credential is forwarded opaque.
func (c *Client) GoogleAuth(ctx context.Context, cred models.GoogleCredential) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/api/auth/google", cred, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.put(ctx, "/api/auth/change-password", req, nil)
}
