// Package categoryapi is the REST consumer for the remote category service.
package categoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/category"
	"github.com/kailas-cloud/backoffice/internal/metrics"
)

const (
	resourcePath = "/categoria_produtos"
	backendName  = "http"
	maxErrorBody = 4 << 10
)

// Config holds the remote service settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client issues category CRUD calls against {BaseURL}/categoria_produtos.
// Nothing is retried: a failed call is reported once and left to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a category REST client.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		logger:  logger,
	}
}

// wireCategory is the remote representation: {"id": 1, "descricao": "Fitness"}.
type wireCategory struct {
	ID        wireID `json:"id,omitempty"`
	Descricao string `json:"descricao"`
}

// wireID accepts both numeric and string identifiers.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*w = wireID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	*w = wireID(s)
	return nil
}

func (w wireCategory) toDomain() category.Category {
	return category.Reconstruct(string(w.ID), w.Descricao)
}

// List fetches every category.
func (c *Client) List(ctx context.Context) ([]category.Category, error) {
	var out []wireCategory
	if err := c.do(ctx, "list", http.MethodGet, resourcePath, nil, &out); err != nil {
		return nil, err
	}
	cats := make([]category.Category, len(out))
	for i, w := range out {
		cats[i] = w.toDomain()
	}
	return cats, nil
}

// Create posts a new category and returns the server's representation.
func (c *Client) Create(ctx context.Context, d category.Draft) (category.Category, error) {
	var out wireCategory
	body := wireCategory{Descricao: d.Description}
	if err := c.do(ctx, "create", http.MethodPost, resourcePath, body, &out); err != nil {
		return category.Category{}, err
	}
	return out.toDomain(), nil
}

// Update replaces a category and returns the server's representation.
func (c *Client) Update(ctx context.Context, id string, d category.Draft) (category.Category, error) {
	var out wireCategory
	body := wireCategory{Descricao: d.Description}
	if err := c.do(ctx, "update", http.MethodPut, itemPath(id), body, &out); err != nil {
		return category.Category{}, err
	}
	if out.ID == "" {
		out.ID = wireID(id)
	}
	return out.toDomain(), nil
}

// Delete removes a category.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, itemPath(id), nil, nil)
}

// HealthCheck verifies the service answers the list endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.List(ctx)
	return err
}

func itemPath(id string) string {
	return resourcePath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, in, out)

	metrics.RemoteRequestsTotal.WithLabelValues(backendName, op, metrics.Result(err)).Inc()
	metrics.RemoteRequestDuration.WithLabelValues(backendName, op).Observe(time.Since(start).Seconds())

	if IsStatus(err, http.StatusNotFound) {
		c.logger.Debug("category not found remotely", zap.String("op", op), zap.String("path", path))
		return fmt.Errorf("category api %s: %w: %w", op, domain.ErrNotFound, err)
	}
	if err != nil {
		c.logger.Error("category api call failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("category api %s: %w: %w", op, domain.ErrRemoteUnavailable, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// StatusError is a non-2xx response from the remote service.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return "status " + strconv.Itoa(e.StatusCode)
	}
	return "status " + strconv.Itoa(e.StatusCode) + ": " + e.Detail
}

// parseAPIError extracts a readable message from an error response body.
func parseAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{StatusCode: resp.StatusCode, Detail: extractDetail(raw)}
}

// extractDetail prefers a JSON "message" or "error" field over the raw body.
func extractDetail(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(body))
}

// IsStatus reports whether err carries the given remote status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
