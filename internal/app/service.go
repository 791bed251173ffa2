// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the MCP tools.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/stats"
	"github.com/okian/futebol/internal/domain/summary"
	"github.com/okian/futebol/internal/domain/timeline"
	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
)

// Catalog lists competitions and matches.
type Catalog interface {
	Competitions(ctx context.Context) ([]model.Competition, error)
	Matches(ctx context.Context, competitionID, seasonID int) ([]model.Match, error)
}

// EventSource returns the normalized event log of a match.
type EventSource interface {
	Fetch(ctx context.Context, matchID int) (model.EventLog, error)
}

// Narrator produces a narration for an event log. It never fails.
type Narrator interface {
	Generate(ctx context.Context, log model.EventLog, style types.Style) string
}

// ErrNotConfigured is returned when a required collaborator is missing.
var ErrNotConfigured = errors.New("service: collaborator not configured")

// Service implements the match analysis operations.
type Service struct {
	catalog      Catalog
	events       EventSource
	narrator     Narrator
	defaultStyle types.Style
	logger       logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the competition and match catalog.
func WithCatalog(c Catalog) Option {
	return func(s *Service) {
		s.catalog = c
	}
}

// WithEventSource sets the event log accessor.
func WithEventSource(e EventSource) Option {
	return func(s *Service) {
		s.events = e
	}
}

// WithNarrator sets the narration generator.
func WithNarrator(n Narrator) Option {
	return func(s *Service) {
		s.narrator = n
	}
}

// WithDefaultStyle sets the style used when a summary request names none.
func WithDefaultStyle(style types.Style) Option {
	return func(s *Service) {
		if style != "" {
			s.defaultStyle = style
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service.
func New(opts ...Option) *Service {
	s := &Service{defaultStyle: types.StyleFormal}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// DefaultStyle returns the narration style used when none is requested.
func (s *Service) DefaultStyle() types.Style { return s.defaultStyle }

// Competitions returns every competition season published by the provider.
func (s *Service) Competitions(ctx context.Context) ([]model.Competition, error) {
	const op = "service.competitions"
	if s.catalog == nil {
		return nil, types.WrapKind(op, types.ErrInternal, ErrNotConfigured)
	}
	comps, err := s.catalog.Competitions(ctx)
	if err != nil {
		return nil, types.Wrap(op, err)
	}
	return comps, nil
}

// Seasons returns the sorted, unique season ids of a competition.
func (s *Service) Seasons(ctx context.Context, competitionID int) ([]int, error) {
	const op = "service.seasons"
	comps, err := s.Competitions(ctx)
	if err != nil {
		return nil, types.Wrap(op, err)
	}
	seen := make(map[int]struct{})
	seasons := make([]int, 0)
	for _, c := range comps {
		if c.CompetitionID != competitionID {
			continue
		}
		if _, ok := seen[c.SeasonID]; ok {
			continue
		}
		seen[c.SeasonID] = struct{}{}
		seasons = append(seasons, c.SeasonID)
	}
	if len(seasons) == 0 {
		return nil, types.WrapKind(op, types.ErrNotFound, fmt.Errorf("competição %d não encontrada", competitionID))
	}
	sort.Ints(seasons)
	return seasons, nil
}

func (s *Service) matches(ctx context.Context, op string, competitionID, seasonID int) ([]model.Match, error) {
	if s.catalog == nil {
		return nil, types.WrapKind(op, types.ErrInternal, ErrNotConfigured)
	}
	matches, err := s.catalog.Matches(ctx, competitionID, seasonID)
	if err != nil {
		return nil, types.Wrap(op, err)
	}
	return matches, nil
}

// Teams returns the sorted union of home and away team names of a season.
func (s *Service) Teams(ctx context.Context, competitionID, seasonID int) ([]string, error) {
	matches, err := s.matches(ctx, "service.teams", competitionID, seasonID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	teams := make([]string, 0)
	for _, m := range matches {
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			teams = append(teams, name)
		}
	}
	sort.Strings(teams)
	return teams, nil
}

// Matches returns the season's matches played by home against away, in
// that order.
func (s *Service) Matches(ctx context.Context, competitionID, seasonID int, home, away string) ([]model.Match, error) {
	matches, err := s.matches(ctx, "service.matches", competitionID, seasonID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Match, 0)
	for _, m := range matches {
		if m.HomeTeam == home && m.AwayTeam == away {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Service) fetch(ctx context.Context, op string, matchID int) (model.EventLog, error) {
	if s.events == nil {
		return nil, types.WrapKind(op, types.ErrInternal, ErrNotConfigured)
	}
	log, err := s.events.Fetch(ctx, matchID)
	if err != nil {
		return nil, types.Wrap(op, err)
	}
	return log, nil
}

// PlayerProfile returns the statistics of player in a match. A player with
// no events gets all-zero statistics.
func (s *Service) PlayerProfile(ctx context.Context, matchID int, player string) (model.PlayerStatistics, error) {
	log, err := s.fetch(ctx, "service.player_profile", matchID)
	if err != nil {
		return model.PlayerStatistics{}, err
	}
	return stats.Compute(log, player), nil
}

// ComparePlayers returns the statistics of two players side by side from a
// single read of the event log.
func (s *Service) ComparePlayers(ctx context.Context, matchID int, player1, player2 string) (model.PlayerComparison, error) {
	log, err := s.fetch(ctx, "service.compare_players", matchID)
	if err != nil {
		return model.PlayerComparison{}, err
	}
	return model.PlayerComparison{
		Jogador1: stats.Compute(log, player1),
		Jogador2: stats.Compute(log, player2),
	}, nil
}

// MatchSummary builds the summary of a match and attaches a narration in
// style, or in the default style when style is empty.
func (s *Service) MatchSummary(ctx context.Context, matchID int, style types.Style) (model.MatchSummary, error) {
	const op = "service.match_summary"
	if style == "" {
		style = s.defaultStyle
	}
	log, err := s.fetch(ctx, op, matchID)
	if err != nil {
		return model.MatchSummary{}, err
	}
	sum, err := summary.Build(log)
	if err != nil {
		return model.MatchSummary{}, types.Wrap(op, err)
	}
	if s.narrator != nil {
		text := s.narrator.Generate(ctx, log, style)
		sum.Narracao = &text
	}
	s.logger.Debug(ctx, "match summary built",
		logger.Int("matchID", matchID),
		logger.String("style", string(style)),
		logger.Int("importantEvents", len(sum.EventosImportantes)))
	return sum, nil
}

// Timeline returns the match events of the given types whose minute lies in
// [from, to]. An empty types list keeps every type.
func (s *Service) Timeline(ctx context.Context, matchID int, eventTypes []string, from, to int) ([]model.TimelineEntry, error) {
	const op = "service.timeline"
	w, err := timeline.NewWindow(from, to)
	if err != nil {
		return nil, types.Wrap(op, err)
	}
	log, err := s.fetch(ctx, op, matchID)
	if err != nil {
		return nil, err
	}
	return timeline.Filter(log, eventTypes, w), nil
}
