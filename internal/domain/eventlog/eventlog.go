// Package eventlog fetches a match's raw events from the data provider and
// normalizes them into a model.EventLog.
package eventlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
	"github.com/okian/futebol/pkg/metrics"
)

// Record is an event as delivered by the provider. Player is nil when the
// provider has no player for the event (e.g. half start).
type Record struct {
	Index       int
	Period      int
	Minute      int
	Second      int
	Type        string
	Player      *string
	Team        string
	PassOutcome *string
	ShotOutcome *string
	CardType    *string
}

// Provider returns the raw events of a match. Implementations report an
// unknown match with an error matching types.ErrNotFound.
type Provider interface {
	Events(ctx context.Context, matchID int) ([]Record, error)
}

// Accessor is the single entry point for obtaining normalized event logs.
type Accessor struct {
	provider Provider
	logger   logger.Logger
}

// Option applies a configuration option to the Accessor.
type Option func(*Accessor)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Accessor over p.
func New(p Provider, opts ...Option) *Accessor {
	a := &Accessor{provider: p}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.Get().Named("eventlog")
	}
	return a
}

// Fetch returns the normalized event log of matchID. It fails with
// types.ErrNotFound when the provider does not know the match or returns no
// rows, and with types.ErrUnavailable on any other provider failure.
func (a *Accessor) Fetch(ctx context.Context, matchID int) (model.EventLog, error) {
	const op = "eventlog.fetch"

	records, err := a.provider.Events(ctx, matchID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.WrapKind(op, types.ErrNotFound, fmt.Errorf("partida %d não encontrada: %w", matchID, err))
		}
		a.logger.Warn(ctx, "provider failed", logger.Int("matchID", matchID), logger.Error(err))
		return nil, types.WrapKind(op, types.ErrUnavailable, err)
	}
	if len(records) == 0 {
		return nil, types.WrapKind(op, types.ErrNotFound, fmt.Errorf("partida %d sem eventos disponíveis", matchID))
	}

	metrics.RecordEventsFetched(len(records))
	a.logger.Debug(ctx, "fetched event log", logger.Int("matchID", matchID), logger.Int("events", len(records)))
	return Normalize(records), nil
}

// Normalize converts provider records to events, substituting
// model.UnknownPlayer for missing or empty player names.
func Normalize(records []Record) model.EventLog {
	log := make(model.EventLog, len(records))
	for i, r := range records {
		player := model.UnknownPlayer
		if r.Player != nil && *r.Player != "" {
			player = *r.Player
		}
		log[i] = model.Event{
			Index:       r.Index,
			Period:      r.Period,
			Minute:      r.Minute,
			Second:      r.Second,
			Type:        r.Type,
			Player:      player,
			Team:        r.Team,
			PassOutcome: r.PassOutcome,
			ShotOutcome: r.ShotOutcome,
			CardType:    r.CardType,
		}
	}
	return log
}
