package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"shopping-helper-admin/models"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the shopping helper REST backend. Every call is a single
// request; nothing is cached or retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New returns a Client for baseURL. A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// BaseURL returns the backend address this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches a full collection, e.g. GET /stores, and decodes it into out.
func (c *Client) List(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Create issues POST path with payload as JSON body.
func (c *Client) Create(ctx context.Context, path string, payload any) error {
	return c.do(ctx, http.MethodPost, path, payload, nil)
}

// Update issues PUT path/{id} with payload as JSON body.
func (c *Client) Update(ctx context.Context, path string, id uint, payload any) error {
	return c.do(ctx, http.MethodPut, itemPath(path, id), payload, nil)
}

// Delete issues DELETE path/{id}.
func (c *Client) Delete(ctx context.Context, path string, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath(path, id), nil, nil)
}

// Health queries the backend GET /health endpoint.
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func itemPath(path string, id uint) string {
	return fmt.Sprintf("%s/%d", path, id)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s body", method, path)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		c.log.Errorw("Backend error",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
			"requestId", reqID,
			"body", string(data),
		)
		return &StatusError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}
