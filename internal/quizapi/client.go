package quizapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
)

// Client fetches questions from a quizapi.io compatible endpoint.
type Client struct {
	baseURL string // e.g. "https://quizapi.io/api/v1/questions"
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// Compile-time check: *Client satisfies the Fetcher interface.
var _ Fetcher = (*Client)(nil)

// FetchError is the only error a fetch returns. Transport errors, non-2xx
// statuses and undecodable payloads all end up here.
type FetchError struct {
	Op      string // "questions" or "random questions"
	Reason  string
	Wrapped error
}

func (e *FetchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("failed to fetch %s: %s: %v", e.Op, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.Op, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Wrapped
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRateLimit paces outgoing requests. A nil limiter disables pacing.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient creates a client for the given endpoint and credential.
// No client timeout is set: requests end when their context does.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchQuestions requests a batch filtered by category and difficulty.
func (c *Client) FetchQuestions(ctx context.Context, f Filter) ([]questionbank.Question, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("category", f.Category)
	q.Set("difficulty", f.Difficulty)
	q.Set("tags", "")

	return c.fetch(ctx, "questions", q)
}

// FetchRandomQuestions requests an unfiltered batch. category and
// difficulty are left out of the query entirely.
func (c *Client) FetchRandomQuestions(ctx context.Context, limit int) ([]questionbank.Question, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("limit", strconv.Itoa(limit))

	return c.fetch(ctx, "random questions", q)
}

func (c *Client) fetch(ctx context.Context, op string, query url.Values) ([]questionbank.Question, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{Op: op, Reason: "rate limiter", Wrapped: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Op: op, Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: op, Reason: "network response was not ok: " + resp.Status}
	}

	var payload []wireQuestion
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Op: op, Reason: "invalid response body", Wrapped: err}
	}

	questions := make([]questionbank.Question, len(payload))
	for i, wq := range payload {
		questions[i] = wq.toQuestion()
	}
	return questions, nil
}
