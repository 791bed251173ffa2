// Package textgen selects the text-generation backend used for narrations.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/futebol/internal/adapters/textgen/gemini"
	"github.com/okian/futebol/internal/adapters/textgen/ollama"
	"github.com/okian/futebol/internal/config"
	"github.com/okian/futebol/internal/domain/narration"
	"github.com/okian/futebol/pkg/logger"
)

// ErrUnknownBackend is returned for an unsupported narration_backend value.
var ErrUnknownBackend = errors.New("textgen: unknown backend")

// newGeminiClient builds the Gemini completer; tests swap it out.
var newGeminiClient = func(ctx context.Context, apiKey string, opts ...gemini.Option) (narration.Completer, error) {
	return gemini.New(ctx, apiKey, opts...)
}

// New returns the completer configured by cfg, or nil when narration is
// disabled or auto finds no usable backend.
func New(ctx context.Context, cfg *config.Config) (narration.Completer, error) {
	log := logger.Get().Named("textgen")
	timeout := time.Duration(cfg.TextGenTimeoutMS) * time.Millisecond

	switch config.NormalizeBackend(cfg.NarrationBackend) {
	case config.BackendNone:
		log.Info(ctx, "narration disabled")
		return nil, nil
	case config.BackendGemini:
		return newGemini(ctx, cfg, timeout)
	case config.BackendOllama:
		return newOllama(cfg, timeout)
	case config.BackendAuto, "":
		if cfg.GeminiAPIKey != "" {
			c, err := newGemini(ctx, cfg, timeout)
			if err == nil || cfg.OllamaURL == "" {
				return c, err
			}
			log.Warn(ctx, "gemini unavailable; falling back to ollama", logger.Error(err))
		}
		if cfg.OllamaURL != "" {
			return newOllama(cfg, timeout)
		}
		log.Warn(ctx, "no narration backend configured; summaries will carry a fixed message")
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.NarrationBackend)
	}
}

func newGemini(ctx context.Context, cfg *config.Config, timeout time.Duration) (narration.Completer, error) {
	c, err := newGeminiClient(ctx, cfg.GeminiAPIKey, gemini.WithModel(cfg.GeminiModel), gemini.WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	logger.Get().Named("textgen").Info(ctx, "narration backend ready",
		logger.String("backend", gemini.Name), logger.String("model", cfg.GeminiModel))
	return c, nil
}

func newOllama(cfg *config.Config, timeout time.Duration) (narration.Completer, error) {
	c, err := ollama.New(cfg.OllamaURL, ollama.WithModel(cfg.OllamaModel), ollama.WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	logger.Get().Named("textgen").Info(context.Background(), "narration backend ready",
		logger.String("backend", ollama.Name), logger.String("model", cfg.OllamaModel))
	return c, nil
}
