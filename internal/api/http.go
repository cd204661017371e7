package api

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ticketdesk/internal/domain"
)

// DefaultUserAgent identifies the client to the backend.
const DefaultUserAgent = "ticketdesk"

// RequestIDHeader carries a per-request UUID so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 4 << 20

// HTTPClient implements Client against the REST backend.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
	newID      func() string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger routes request logging to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewHTTPClient creates a client for the backend rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		userAgent:  DefaultUserAgent,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized backend address.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// ListTickets fetches GET /api/tickets/ with the filter as query parameters.
func (c *HTTPClient) ListTickets(ctx context.Context, filter domain.Filter) ([]domain.Ticket, error) {
	path := ticketsPath
	if q := filter.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, &RejectedError{StatusCode: status, Body: body}
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(body, &tickets); err != nil {
		return nil, decodeError("list", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// CreateTicket posts a new ticket. Non-2xx responses are returned in the
// result with OK=false; only transport and decode failures are errors.
func (c *HTTPClient) CreateTicket(ctx context.Context, ticket domain.NewTicket) (CreateResult, error) {
	status, body, err := c.do(ctx, http.MethodPost, ticketsPath, ticket)
	if err != nil {
		return CreateResult{}, err
	}
	if !isSuccess(status) {
		return CreateResult{OK: false, StatusCode: status, Errors: json.RawMessage(body)}, nil
	}
	var created domain.Ticket
	if err := json.Unmarshal(body, &created); err != nil {
		return CreateResult{}, decodeError("create", err)
	}
	return CreateResult{OK: true, StatusCode: status, Ticket: created}, nil
}

// UpdateTicket sends PATCH /api/tickets/{id}/ with only the set fields.
func (c *HTTPClient) UpdateTicket(ctx context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.Ticket, error) {
	path := fmt.Sprintf("%s%s/", ticketsPath, id)
	status, body, err := c.do(ctx, http.MethodPatch, path, patch)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !isSuccess(status) {
		return domain.Ticket{}, &RejectedError{StatusCode: status, Body: body}
	}
	var updated domain.Ticket
	if err := json.Unmarshal(body, &updated); err != nil {
		return domain.Ticket{}, decodeError("update", err)
	}
	return updated, nil
}

// GetStats fetches GET /api/tickets/stats/. An empty or null body is a
// decode failure.
func (c *HTTPClient) GetStats(ctx context.Context) (domain.Stats, error) {
	status, body, err := c.do(ctx, http.MethodGet, statsPath, nil)
	if err != nil {
		return domain.Stats{}, err
	}
	if !isSuccess(status) {
		return domain.Stats{}, &RejectedError{StatusCode: status, Body: body}
	}
	var stats *domain.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return domain.Stats{}, decodeError("stats", err)
	}
	if stats == nil {
		return domain.Stats{}, decodeError("stats", errors.New("empty body"))
	}
	return *stats, nil
}

// Classify posts the description to /api/tickets/classify/.
func (c *HTTPClient) Classify(ctx context.Context, description string) (domain.Suggestion, error) {
	payload := struct {
		Description string `json:"description"`
	}{Description: description}
	status, body, err := c.do(ctx, http.MethodPost, classifyPath, payload)
	if err != nil {
		return domain.Suggestion{}, err
	}
	if !isSuccess(status) {
		return domain.Suggestion{}, &RejectedError{StatusCode: status, Body: body}
	}
	var suggestion domain.Suggestion
	if err := json.Unmarshal(body, &suggestion); err != nil {
		return domain.Suggestion{}, decodeError("classify", err)
	}
	return suggestion, nil
}

// do performs one request and returns the status and raw body.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	op := method + " " + path

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return 0, nil, networkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, networkError(op, err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

var _ Client = (*HTTPClient)(nil)
