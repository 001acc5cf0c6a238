// Package resend implements the DeliveryGateway port against a Resend-style
// transactional email HTTP API (POST /emails, GET /emails/{id}).
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
	"github.com/loopwell/mailcheck-api/internal/ports"
)

const defaultBaseURL = "https://api.resend.com"

// Config captures the subset of provider behaviour we need.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the hosted API; override for tests
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the delivery provider. Calls are not retried: per the
// send-then-persist contract a failed call must surface immediately, and a
// blind retry of Send could deliver the same message twice.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ ports.DeliveryGateway = (*Client)(nil)

// NewClient builds a delivery provider client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("resend: api key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  hc,
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID        string `json:"id"`
	LastEvent string `json:"last_event"`
}

type apiError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send hands a message to the provider and returns its opaque delivery id.
// A 4xx response means the provider rejected the message (bad recipient,
// policy); it maps to a validation error so the caller can distinguish
// rejection from provider outage.
func (c *Client) Send(ctx context.Context, in ports.SendInput) (string, error) {
	body, err := json.Marshal(sendRequest{
		From:    in.From,
		To:      []string{in.To},
		Subject: in.Subject,
		Text:    in.Body,
	})
	if err != nil {
		return "", fmt.Errorf("encode send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build send request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "delivery provider unreachable")
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", c.errorFromResponse(resp, "send rejected by delivery provider")
	}

	var out sendResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return "", fmt.Errorf("decode send response: %w", decodeErr)
	}
	if out.ID == "" {
		return "", errors.New("delivery provider returned empty id")
	}
	return out.ID, nil
}

// Status fetches the current lifecycle state for a delivery id.
func (c *Client) Status(ctx context.Context, deliveryID string) (model.DeliveryStatus, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return model.DeliveryStatus{}, errors.New("delivery id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/emails/"+deliveryID, nil)
	if err != nil {
		return model.DeliveryStatus{}, fmt.Errorf("build status request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return model.DeliveryStatus{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "delivery provider unreachable")
	}
	defer closeBody(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return model.DeliveryStatus{}, apperrors.NotFoundf("delivery %s unknown to provider", deliveryID)
	}
	if resp.StatusCode != http.StatusOK {
		return model.DeliveryStatus{}, c.errorFromResponse(resp, "status lookup failed")
	}

	var out statusResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return model.DeliveryStatus{}, fmt.Errorf("decode status response: %w", decodeErr)
	}

	state, ok := model.ParseDeliveryState(out.LastEvent)
	if !ok {
		// Unknown provider states degrade to queued rather than failing the
		// listing; the raw value is preserved in the error path only.
		state = model.DeliveryStateQueued
	}
	return model.DeliveryStatus{
		State:      state,
		Complained: state == model.DeliveryStateComplained,
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// errorFromResponse maps non-200 provider responses onto the app error taxonomy.
func (c *Client) errorFromResponse(resp *http.Response, msg string) error {
	var detail apiError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(raw, &detail) == nil && detail.Message != "" {
		msg = msg + ": " + detail.Message
	}

	cause := fmt.Errorf("provider returned %d", resp.StatusCode)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return apperrors.Wrap(cause, apperrors.ErrCodeValidation, msg)
	}
	return apperrors.Wrap(cause, apperrors.ErrCodeUnavailable, msg)
}

func closeBody(rc io.ReadCloser) {
	if err := rc.Close(); err != nil {
		// Nothing actionable if the body fails to close.
		_ = err
	}
}
