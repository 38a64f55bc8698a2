// Package remote implements ports.Classifier by delegating to an HTTP service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/go-playground/validator/v10"
)

// DefaultTimeout bounds a classification call when the caller's context has
// no deadline.
const DefaultTimeout = 30 * time.Second

// ClassifyRequest is the body POSTed to the service.
type ClassifyRequest struct {
	Answers map[string]any `json:"answers"`
}

// ClassifyResponse is the body expected back.
type ClassifyResponse struct {
	Profile *domain.UserProfile `json:"profile" validate:"required"`
}

// Classifier posts the answers as JSON and decodes the returned profile.
type Classifier struct {
	url        string
	httpClient *http.Client
	headers    http.Header
	validate   *validator.Validate
}

// Option configures the Classifier.
type Option func(*Classifier)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Classifier) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Classifier) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a header to every request, e.g. an API key.
func WithHeader(key, value string) Option {
	return func(c *Classifier) {
		c.headers.Add(key, value)
	}
}

// New creates a Classifier for the service at url.
func New(url string, opts ...Option) *Classifier {
	c := &Classifier{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		headers:    make(http.Header),
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify implements ports.Classifier.
func (c *Classifier) Classify(ctx context.Context, answers domain.Answers) (*domain.UserProfile, error) {
	body, err := json.Marshal(ClassifyRequest{Answers: answers.Map()})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = c.headers.Clone()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("classifier service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := c.check(&out); err != nil {
		return nil, fmt.Errorf("classifier service returned an invalid profile: %w", err)
	}
	return out.Profile, nil
}

func (c *Classifier) check(out *ClassifyResponse) error {
	if err := c.validate.Struct(out); err != nil {
		return err
	}
	p := out.Profile
	checks := []struct {
		field any
		tag   string
	}{
		{p.PersonalityType, "required"},
		{p.FinancialProfile, "required"},
		{p.EntrepreneurType, "required"},
		{p.RecommendedFocus, "max=4"},
		{p.Weaknesses, "min=1"},
	}
	for _, chk := range checks {
		if err := c.validate.Var(chk.field, chk.tag); err != nil {
			return err
		}
	}
	return nil
}
