// Package client is a typed HTTP client for the Taste Heaven API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"taste-heaven/internal/model"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is where a local API server listens.
const DefaultBaseURL = "http://localhost:5000/api"

// MsgServerError is shown when the server gave no message or could not be reached.
const MsgServerError = "Server error"

// ErrUnavailable wraps transport failures: refused connections, timeouts,
// bodies that are not JSON.
var ErrUnavailable = errors.New("api unavailable")

// APIError is a non-2xx response carrying the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// UserMessage returns the text to show for err: the server's message when
// there is one, otherwise MsgServerError.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgServerError
}

// Client calls the API. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sends key in X-API-Key on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient replaces the traced default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client for baseURL, e.g. "http://localhost:5000/api".
// Requests are traced with otelhttp. There is no client-side timeout; callers
// bound requests with their context.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Signup creates an account and returns the server's confirmation.
func (c *Client) Signup(ctx context.Context, req model.SignupRequest) (string, error) {
	var resp model.APIResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login checks credentials and returns the profile to keep as the session.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.UserProfile, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: login response without user", ErrUnavailable)
	}
	return resp.User, nil
}

// Products lists the menu.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// CreateOrder submits an order and returns the server's confirmation.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (string, error) {
	var resp model.APIResponse
	if err := c.do(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Orders returns the order history for email, newest first.
func (c *Client) Orders(ctx context.Context, email string) ([]model.Order, error) {
	var resp model.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Orders == nil {
		resp.Orders = []model.Order{}
	}
	return resp.Orders, nil
}

// Contact submits an inquiry and returns the acknowledgement.
func (c *Client) Contact(ctx context.Context, req model.InquiryRequest) (string, error) {
	var resp model.APIResponse
	if err := c.do(ctx, http.MethodPost, "/contact", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// do sends body as JSON and decodes a 2xx response into out. Error responses
// become *APIError; anything else wraps ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope model.APIResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrUnavailable, method, path, err)
	}
	return nil
}
