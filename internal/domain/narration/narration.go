// Package narration turns a match's important events into a short
// natural-language narration through a pluggable text-generation backend.
package narration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/summary"
	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
	"github.com/okian/futebol/pkg/metrics"
)

// Fixed texts returned instead of a narration.
const (
	UnconfiguredMessage = "Não foi possível gerar a narração. Configure um token válido."
	FailureMessage      = "Não foi possível gerar a narração no momento."
)

const maxParagraphs = 3

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Name identifies the backend in logs and metrics.
	Name() string
}

var fragments = map[types.Style]string{
	types.StyleFormal:      "de forma técnica e objetiva, como um comentarista profissional",
	types.StyleHumoristico: "de forma bem-humorada e descontraída, com analogias engraçadas",
	types.StyleTecnico:     "com foco em análise tática e técnica, detalhando as jogadas",
}

// Fragment returns the prompt instruction for style. Unknown styles fall
// back to the Formal instruction.
func Fragment(style types.Style) string {
	if f, ok := fragments[style]; ok {
		return f
	}
	return fragments[types.StyleFormal]
}

// BuildPrompt assembles the prompt sent to the backend.
func BuildPrompt(digest string, style types.Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gere uma narração %s para esta partida de futebol:\n\n", Fragment(style))
	digest = strings.TrimRight(digest, "\n")
	if digest != summary.NoEventsMessage {
		b.WriteString("Eventos importantes da partida:\n")
	}
	b.WriteString(digest)
	fmt.Fprintf(&b, "\n\nLimite a narração a %d parágrafos.", maxParagraphs)
	return b.String()
}

// Generator produces narrations. A nil completer means no backend is
// configured.
type Generator struct {
	completer Completer
	logger    logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator backed by c, which may be nil.
func New(c Completer, opts ...Option) *Generator {
	g := &Generator{completer: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logger.Get().Named("narration")
	}
	return g
}

// Backend returns the name of the configured backend, or "none".
func (g *Generator) Backend() string {
	if g == nil || g.completer == nil {
		return "none"
	}
	return g.completer.Name()
}

// Generate narrates log in style. It never fails: backend problems yield
// one of the fixed messages.
func (g *Generator) Generate(ctx context.Context, log model.EventLog, style types.Style) string {
	backend := g.Backend()
	if g == nil || g.completer == nil {
		metrics.RecordNarration(backend, "unconfigured", 0)
		return UnconfiguredMessage
	}

	prompt := BuildPrompt(summary.RenderText(log), style)
	start := time.Now()
	text, err := g.completer.Complete(ctx, prompt)
	elapsed := time.Since(start)
	ms := float64(elapsed.Milliseconds())

	if err != nil {
		metrics.RecordNarration(backend, "error", ms)
		g.logger.Warn(ctx, "narration backend failed",
			logger.String("backend", backend), logger.Duration("elapsed", elapsed), logger.Error(err))
		return FailureMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.RecordNarration(backend, "empty", ms)
		g.logger.Warn(ctx, "narration backend returned no text", logger.String("backend", backend))
		return FailureMessage
	}

	metrics.RecordNarration(backend, "ok", ms)
	return text
}
