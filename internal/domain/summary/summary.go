// Package summary extracts goals and cards from an event log and renders
// them as a chronological digest.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/types"
)

// Labels used in important-event records and the rendered digest.
const (
	GoalLabel       = "Gol"
	CardLabelPrefix = "Cartão "
	NoEventsMessage = "Nenhum evento importante registrado na partida"
)

// ImportantEvents returns the goals followed by the cards of log, then
// stably sorted by minute so ties keep that relative order.
func ImportantEvents(log model.EventLog) []model.ImportantEvent {
	out := make([]model.ImportantEvent, 0)
	for _, e := range log {
		if e.IsGoal() {
			out = append(out, model.ImportantEvent{Minuto: e.Minute, Tipo: GoalLabel, Jogador: e.Player, Time: e.Team})
		}
	}
	for _, e := range log {
		if e.Type != model.TypeCard {
			continue
		}
		card := ""
		if e.CardType != nil {
			card = *e.CardType
		}
		out = append(out, model.ImportantEvent{Minuto: e.Minute, Tipo: CardLabelPrefix + card, Jogador: e.Player, Time: e.Team})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minuto < out[j].Minuto })
	return out
}

// Render formats events one per line, or NoEventsMessage when empty.
func Render(events []model.ImportantEvent) string {
	if len(events) == 0 {
		return NoEventsMessage
	}
	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "%d' - %s: %s (%s)\n", ev.Minuto, ev.Tipo, ev.Jogador, ev.Time)
	}
	return b.String()
}

// RenderText is Render(ImportantEvents(log)).
func RenderText(log model.EventLog) string {
	return Render(ImportantEvents(log))
}

// Build derives the scoreline and important events of a match.
//
// Home and away are the first two distinct team names in log order. The
// provider carries no side indicator in the event stream, so a change in
// its row order swaps the sides.
func Build(log model.EventLog) (model.MatchSummary, error) {
	const op = "summary.build"
	teams := log.Teams()
	if len(teams) < 2 {
		return model.MatchSummary{}, types.WrapKind(op, types.ErrValidation,
			fmt.Errorf("dados de partida incompletos: %d time(s) identificado(s)", len(teams)))
	}
	s := model.MatchSummary{
		TimeCasa:           teams[0],
		TimeFora:           teams[1],
		EventosImportantes: ImportantEvents(log),
	}
	for _, e := range log {
		if !e.IsGoal() {
			continue
		}
		switch e.Team {
		case s.TimeCasa:
			s.GolsCasa++
		case s.TimeFora:
			s.GolsFora++
		}
	}
	return s, nil
}
