// Package mentorsapi is the client the terminal renderer uses to read mentors
// from the API and report contact engagement events back to it.
package mentorsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/circuitbreaker"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/httpclient"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/retry"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// Config holds the API location and credentials
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	SessionToken string // Sent as a Bearer token so panels are personalised
}

// Client talks to the mentors API over HTTP with retries behind a circuit breaker
type Client struct {
	baseURL string
	token   string
	http    httpclient.Client
	breaker *gobreaker.CircuitBreaker
	retry   retry.Config

	mu      sync.Mutex
	pending []models.EngagementEvent
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c httpclient.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithRetry replaces the retry policy
func WithRetry(cfg retry.Config) Option {
	return func(cl *Client) { cl.retry = cfg }
}

// New creates a Client. BaseURL is required.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, apperrors.InvalidInputError("baseURL", "is required")
	}

	breakerCfg := circuitbreaker.DefaultConfig("mentors-api")
	breakerCfg.IsSuccessful = func(err error) bool {
		return err == nil || apperrors.Is(err, apperrors.ErrNotFound) || apperrors.Is(err, apperrors.ErrInvalidInput)
	}

	c := &Client{
		baseURL: base,
		token:   cfg.SessionToken,
		http:    httpclient.New(cfg.Timeout),
		breaker: circuitbreaker.New(breakerCfg),
		retry:   retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetMentor fetches one mentor record. A missing mentor yields an ErrNotFound error.
func (c *Client) GetMentor(ctx context.Context, id int) (*models.MentorRecord, error) {
	var mentor models.MentorRecord
	path := "/api/v1/mentors/" + strconv.Itoa(id)
	if err := c.call(ctx, "get_mentor", http.MethodGet, path, nil, &mentor); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundError("mentor", id)
		}
		return nil, err
	}
	return &mentor, nil
}

// PostEvents reports a batch of engagement events
func (c *Client) PostEvents(ctx context.Context, events []models.EngagementEvent) error {
	if len(events) == 0 {
		return nil
	}
	body := models.EngagementEventBatch{Events: events}
	return c.call(ctx, "post_events", http.MethodPost, "/api/v1/engagement/events", body, nil)
}

// Record queues an event for the next Flush. It never blocks on the network.
func (c *Client) Record(mentorID int, eventType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, models.EngagementEvent{
		Type:      eventType,
		MentorID:  mentorID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Flush sends every queued event. Events are dropped after a failed send.
func (c *Client) Flush(ctx context.Context) error {
	c.mu.Lock()
	events := c.pending
	c.pending = nil
	c.mu.Unlock()

	if err := c.PostEvents(ctx, events); err != nil {
		logger.Warn("Dropped engagement events", zap.Int("count", len(events)), zap.Error(err))
		return err
	}
	return nil
}

func (c *Client) call(ctx context.Context, operation, method, path string, in, out any) error {
	start := time.Now()
	_, err := circuitbreaker.Execute(c.breaker, func() (struct{}, error) {
		return retry.Do(ctx, c.retry, operation, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, c.do(ctx, method, path, in, out)
		})
	})

	status := "success"
	switch {
	case err == nil:
	case apperrors.Is(err, apperrors.ErrNotFound):
		status = "not_found"
	case circuitbreaker.IsOpen(err):
		status = "rejected"
		err = apperrors.UnavailableError("mentors-api", err)
	default:
		status = "error"
	}

	duration := metrics.MeasureDuration(start)
	metrics.UpstreamRequestDuration.WithLabelValues(operation, status).Observe(duration)
	logger.LogAPICall("mentors-api", operation, status, duration, zap.String("path", path))
	return err
}

// do performs one attempt. Client errors are permanent, server and network errors are retried.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.UnavailableError("mentors-api", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return retry.Permanent(apperrors.NotFoundError("resource", path))
	case resp.StatusCode >= 500:
		return apperrors.UnavailableError("mentors-api", fmt.Errorf("status %d: %s", resp.StatusCode, readError(resp.Body)))
	case resp.StatusCode >= 400:
		return retry.Permanent(apperrors.InvalidInputError(path, fmt.Sprintf("status %d: %s", resp.StatusCode, readError(resp.Body))))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// readError extracts the "error" field of a JSON error body, or the raw text
func readError(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
