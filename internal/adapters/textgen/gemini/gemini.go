// Package gemini generates text through the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	// Name identifies this backend in logs and metrics.
	Name = "gemini"

	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 60 * time.Second
)

// ErrMissingAPIKey is returned by New when no API key is given.
var ErrMissingAPIKey = errors.New("gemini: missing api key")

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client completes prompts with a Gemini model.
type Client struct {
	models  generator
	model   string
	timeout time.Duration
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithModel selects the model, e.g. "gemini-2.0-flash".
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout bounds each completion.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a client authenticated with apiKey.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newWithGenerator(gc.Models, opts...), nil
}

func newWithGenerator(g generator, opts ...Option) *Client {
	c := &Client{models: g, model: defaultModel, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements narration.Completer.
func (c *Client) Name() string { return Name }

// Complete sends prompt as a single user turn and returns the response text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini: empty response")
	}
	return resp.Text(), nil
}
