// Package httpmail delivers tracking notifications through an HTTP e-mail
// gateway that renders the "order-shipped" template.
package httpmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/ports"

	"go.uber.org/zap"
)

const (
	TemplateOrderShipped = "order-shipped"
	DefaultTimeout       = 5 * time.Second

	// responses longer than this are cut from error messages
	maxErrorBody = 512
)

var _ ports.TrackingNotifier = (*Client)(nil)

type message struct {
	To       string                            `json:"to"`
	Subject  string                            `json:"subject"`
	Template string                            `json:"template"`
	Data     notification.TrackingNotification `json:"data"`
}

type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// NewClient posts to endpoint. A non-positive timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("mail gateway endpoint is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger.With(zap.String("component", "httpmail")),
	}, nil
}

// SendTrackingNotification returns an error for transport failures and any
// non-2xx gateway response.
func (c *Client) SendTrackingNotification(ctx context.Context, payload notification.TrackingNotification) error {
	body, err := json.Marshal(message{
		To:       payload.CustomerEmail,
		Subject:  payload.Subject(),
		Template: TemplateOrderShipped,
		Data:     payload,
	})
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", payload.OrderID+":"+payload.TrackingNumber)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("mail gateway responded %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	c.logger.Debug("tracking e-mail accepted",
		zap.String("orderId", payload.OrderID),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
