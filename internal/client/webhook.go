package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WebhookDelivery posts messages to an external gateway endpoint, retrying
// transient failures with exponential backoff.
type WebhookDelivery struct {
	url     string
	retries int
	client  *http.Client
}

func NewWebhookDelivery(url string, retries int, timeout time.Duration) *WebhookDelivery {
	return &WebhookDelivery{
		url:     url,
		retries: retries,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type deliveryRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

func (d *WebhookDelivery) Send(ctx context.Context, phone, content string) error {
	operation := func() error {
		return d.post(ctx, phone, content)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = time.Duration(d.retries) * time.Second

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}

func (d *WebhookDelivery) post(ctx context.Context, phone, content string) error {
	reqBody, err := json.Marshal(deliveryRequest{
		PhoneNumber: phone,
		Message:     content,
	})
	if err != nil {
		return backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(reqBody))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(body))
	}
	return nil
}
