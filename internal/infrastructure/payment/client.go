// Package payment talks to the external payment provider's REST API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledgercloud/ledgercloud/internal/shared/config"
	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

const (
	defaultRequestTimeout = 10 * time.Second
	// Maximum response body size for provider API responses (64KB)
	maxResponseSize = 64 << 10
)

// Client is a thin wrapper over the payment provider's HTTP API. All calls
// carry the configured API key as a bearer token and are bounded by the
// client timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Interface
}

// NewClient builds a provider client from configuration.
func NewClient(cfg *config.PaymentConfig, logger logger.Interface) *Client {
	timeout := defaultRequestTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type createCustomerRequest struct {
	Email string `json:"email"`
}

type createCustomerResponse struct {
	ID string `json:"id"`
}

type paymentMethodStatusResponse struct {
	CustomerID string `json:"customer_id"`
	Active     bool   `json:"active"`
}

type providerError struct {
	Message string `json:"message"`
}

// CreateCustomer registers a customer with the provider and returns the
// provider-assigned customer ID.
func (c *Client) CreateCustomer(ctx context.Context, email string) (string, error) {
	body, err := json.Marshal(createCustomerRequest{Email: email})
	if err != nil {
		return "", fmt.Errorf("failed to encode customer request: %w", err)
	}

	var resp createCustomerResponse
	if err := c.do(ctx, http.MethodPost, "/customers", bytes.NewReader(body), &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("provider returned empty customer ID")
	}

	c.logger.Infow("payment customer created", "customer_id", resp.ID)
	return resp.ID, nil
}

// PaymentMethodStatus asks the provider whether the customer currently has
// an active payment method attached.
func (c *Client) PaymentMethodStatus(ctx context.Context, customerID string) (bool, error) {
	if customerID == "" {
		return false, fmt.Errorf("customer ID is required")
	}

	var resp paymentMethodStatusResponse
	path := fmt.Sprintf("/customers/%s/payment_method", customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}

	return resp.Active, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var perr providerError
		if json.Unmarshal(payload, &perr) == nil && perr.Message != "" {
			return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, perr.Message)
		}
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}
