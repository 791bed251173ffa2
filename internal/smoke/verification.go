package smoke

import (
	"fmt"

	"github.com/okian/futebol/internal/domain/model"
)

// verifySummary checks that important events are in chronological order
// and that the narration is present.
func verifySummary(s model.MatchSummary) error {
	if s.TimeCasa == "" || s.TimeFora == "" {
		return fmt.Errorf("summary without teams")
	}
	for i := 1; i < len(s.EventosImportantes); i++ {
		if s.EventosImportantes[i].Minuto < s.EventosImportantes[i-1].Minuto {
			return fmt.Errorf("important events out of order at %d: %d after %d",
				i, s.EventosImportantes[i].Minuto, s.EventosImportantes[i-1].Minuto)
		}
	}
	if s.Narracao == nil || *s.Narracao == "" {
		return fmt.Errorf("summary without narration")
	}
	return nil
}

// verifyTimeline checks window bounds, ordering and the detail keys.
func verifyTimeline(entries []model.TimelineEntry, from, to int) error {
	for i, e := range entries {
		if e.Minuto < from || e.Minuto > to {
			return fmt.Errorf("entry %d minute %d outside [%d, %d]", i, e.Minuto, from, to)
		}
		if i > 0 && e.Minuto < entries[i-1].Minuto {
			return fmt.Errorf("timeline out of order at %d", i)
		}
		for _, key := range []string{model.DetailShotOutcome, model.DetailCardType, model.DetailPassOutcome} {
			if _, ok := e.Detalhes[key]; !ok {
				return fmt.Errorf("entry %d missing detail %q", i, key)
			}
		}
	}
	return nil
}

// verifyProfile checks counter consistency and the accuracy range.
func verifyProfile(p model.PlayerStatistics) error {
	if p.PrecisaoPasses < MinAccuracy || p.PrecisaoPasses > MaxAccuracy {
		return fmt.Errorf("pass accuracy %.1f outside [%.0f, %.0f]", p.PrecisaoPasses, MinAccuracy, MaxAccuracy)
	}
	if p.PassesCompletos > p.Passes {
		return fmt.Errorf("completed passes %d exceed passes %d", p.PassesCompletos, p.Passes)
	}
	if p.Gols > p.Finalizacoes {
		return fmt.Errorf("goals %d exceed shots %d", p.Gols, p.Finalizacoes)
	}
	if p.Passes == 0 && p.PrecisaoPasses != 0 {
		return fmt.Errorf("non-zero accuracy without passes")
	}
	return nil
}
