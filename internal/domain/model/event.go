// Package model contains domain models passed between layers.
package model

// UnknownPlayer replaces a missing player name once the event log is fetched.
const UnknownPlayer = "Desconhecido"

// Event types referenced by the aggregators.
const (
	TypePass          = "Pass"
	TypeShot          = "Shot"
	TypeTackle        = "Tackle"
	TypeInterception  = "Interception"
	TypeDribble       = "Dribble"
	TypeAerial        = "Aerial"
	TypeFoulCommitted = "Foul Committed"
	TypeFoulWon       = "Foul Won"
	TypeCard          = "Card"
	ShotOutcomeGoal   = "Goal"
	DetailShotOutcome = "shot_outcome"
	DetailCardType    = "card_type"
	DetailPassOutcome = "pass_outcome"
)

// Event is one recorded occurrence during a match.
// Optional attributes are nil when the provider omits them.
type Event struct {
	Index  int    // provider emission index
	Period int    // match period, 1-based
	Minute int    // match clock minute
	Second int    // match clock second
	Type   string // e.g. "Pass", "Shot", "Card"
	Player string // player name, UnknownPlayer when missing upstream
	Team   string // team name

	PassOutcome *string // nil or empty means the pass was completed
	ShotOutcome *string // "Goal" for scored shots
	CardType    *string // e.g. "Yellow Card"
}

// EventLog is the full set of events for one match in provider order.
// It is not guaranteed to be chronological.
type EventLog []Event

// Teams returns distinct team names in order of first appearance.
func (l EventLog) Teams() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range l {
		if _, ok := seen[e.Team]; ok {
			continue
		}
		seen[e.Team] = struct{}{}
		out = append(out, e.Team)
	}
	return out
}

// IsGoal reports whether e is a scored shot.
func (e Event) IsGoal() bool {
	return e.Type == TypeShot && e.ShotOutcome != nil && *e.ShotOutcome == ShotOutcomeGoal
}

// IsCompletedPass reports whether e is a pass with no failure outcome.
func (e Event) IsCompletedPass() bool {
	return e.Type == TypePass && (e.PassOutcome == nil || *e.PassOutcome == "")
}
