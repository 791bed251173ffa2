// Package timeline filters an event log into simplified, chronological
// timeline entries.
package timeline

import (
	"fmt"
	"sort"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/types"
)

// Window bounds.
const (
	MinMinute = 0
	MaxMinute = 90
)

// Window is an inclusive minute range.
type Window struct {
	From int
	To   int
}

// FullMatch covers regulation time.
var FullMatch = Window{From: MinMinute, To: MaxMinute}

// NewWindow validates 0 <= from <= to <= 90.
func NewWindow(from, to int) (Window, error) {
	const op = "timeline.window"
	switch {
	case from < MinMinute || from > MaxMinute:
		return Window{}, types.WrapKind(op, types.ErrValidation, fmt.Errorf("minuto_inicial %d fora de [%d,%d]", from, MinMinute, MaxMinute))
	case to < MinMinute || to > MaxMinute:
		return Window{}, types.WrapKind(op, types.ErrValidation, fmt.Errorf("minuto_final %d fora de [%d,%d]", to, MinMinute, MaxMinute))
	case from > to:
		return Window{}, types.WrapKind(op, types.ErrValidation, fmt.Errorf("minuto_inicial %d maior que minuto_final %d", from, to))
	}
	return Window{From: from, To: to}, nil
}

// Contains reports whether minute lies within w, both ends inclusive.
func (w Window) Contains(minute int) bool {
	return minute >= w.From && minute <= w.To
}

// Filter keeps events inside w and, when eventTypes is non-empty, whose
// type is one of eventTypes. The result is stably sorted by minute and is
// never nil.
func Filter(log model.EventLog, eventTypes []string, w Window) []model.TimelineEntry {
	var allowed map[string]struct{}
	if len(eventTypes) > 0 {
		allowed = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			allowed[t] = struct{}{}
		}
	}

	out := make([]model.TimelineEntry, 0)
	for _, e := range log {
		if !w.Contains(e.Minute) {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[e.Type]; !ok {
				continue
			}
		}
		out = append(out, model.TimelineEntry{
			Minuto:   e.Minute,
			Tipo:     e.Type,
			Jogador:  e.Player,
			Time:     e.Team,
			Detalhes: details(e),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minuto < out[j].Minuto })
	return out
}

// details always carries the three optional keys; absent values stay nil.
func details(e model.Event) map[string]*string {
	return map[string]*string{
		model.DetailShotOutcome: clone(e.ShotOutcome),
		model.DetailCardType:    clone(e.CardType),
		model.DetailPassOutcome: clone(e.PassOutcome),
	}
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
