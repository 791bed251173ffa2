// Package stats derives per-player counting statistics from an event log.
package stats

import (
	"strconv"

	"github.com/okian/futebol/internal/domain/model"
)

// Compute aggregates the statistics of playerName over log.
// Matching is exact and case-sensitive. A player with no rows yields
// all-zero statistics, which is indistinguishable from an unknown player.
func Compute(log model.EventLog, playerName string) model.PlayerStatistics {
	st := model.PlayerStatistics{Nome: playerName}
	for _, e := range log {
		if e.Player != playerName {
			continue
		}
		switch e.Type {
		case model.TypePass:
			st.Passes++
			if e.IsCompletedPass() {
				st.PassesCompletos++
			}
		case model.TypeShot:
			st.Finalizacoes++
			if e.IsGoal() {
				st.Gols++
			}
		case model.TypeTackle:
			st.Desarmes++
		case model.TypeInterception:
			st.Interceptacoes++
		case model.TypeDribble:
			st.Dribles++
		case model.TypeAerial:
			st.DuelosAereos++
		case model.TypeFoulCommitted:
			st.FaltasCometidas++
		case model.TypeFoulWon:
			st.FaltasSofridas++
		}
	}
	st.PrecisaoPasses = PassAccuracy(st.PassesCompletos, st.Passes)
	return st
}

// PassAccuracy returns completed/total as a percentage rounded to one
// decimal place. It is 0 when total is 0.
//
// Rounding goes through the shortest decimal rendering of the float, so a
// percentage stored just below a half (91.25 is 91.2499...) rounds down and
// exact halves round to even.
func PassAccuracy(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(completed) / float64(total) * 100
	v, err := strconv.ParseFloat(strconv.FormatFloat(p, 'f', 1, 64), 64)
	if err != nil {
		return 0
	}
	return v
}
