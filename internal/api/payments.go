package api

import (
	"context"
	"fmt"

	"eduhub-client/internal/models"
)

func (c *Client) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.get(ctx, "/api/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if err := c.post(ctx, "/api/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) ProcessPayment(ctx context.Context, id int64, method string) (*models.Payment, error) {
	var payment models.Payment
	body := map[string]string{"paymentMethod": method}
	if err := c.post(ctx, fmt.Sprintf("/api/payments/%d/process", id), body, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
