package statsbomb

import (
	"context"
	"fmt"

	"github.com/okian/futebol/internal/domain/eventlog"
	"github.com/okian/futebol/internal/domain/model"
)

// StatsBomb event types that can carry a card.
const (
	typeBadBehaviour  = "Bad Behaviour"
	typeFoulCommitted = "Foul Committed"
)

type named struct {
	Name string `json:"name"`
}

type outcome struct {
	Outcome *named `json:"outcome"`
}

type card struct {
	Card *named `json:"card"`
}

// event mirrors the subset of a StatsBomb event document this service reads.
type event struct {
	Index         int      `json:"index"`
	Period        int      `json:"period"`
	Minute        int      `json:"minute"`
	Second        int      `json:"second"`
	Type          named    `json:"type"`
	Team          named    `json:"team"`
	Player        *named   `json:"player"`
	Pass          *outcome `json:"pass"`
	Shot          *outcome `json:"shot"`
	BadBehaviour  *card    `json:"bad_behaviour"`
	FoulCommitted *card    `json:"foul_committed"`
}

type match struct {
	MatchID     int    `json:"match_id"`
	MatchDate   string `json:"match_date"`
	KickOff     string `json:"kick_off"`
	Competition struct {
		CompetitionName string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		SeasonName string `json:"season_name"`
	} `json:"season"`
	HomeTeam struct {
		HomeTeamName string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		AwayTeamName string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore        int    `json:"home_score"`
	AwayScore        int    `json:"away_score"`
	MatchStatus      string `json:"match_status"`
	MatchWeek        int    `json:"match_week"`
	CompetitionStage *named `json:"competition_stage"`
	Stadium          *named `json:"stadium"`
	Referee          *named `json:"referee"`
}

// Competitions returns every competition season in the open-data set.
func (c *Client) Competitions(ctx context.Context) ([]model.Competition, error) {
	var out []model.Competition
	if err := c.getJSON(ctx, "competitions", "/competitions.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matches returns the fixtures of one competition season.
func (c *Client) Matches(ctx context.Context, competitionID, seasonID int) ([]model.Match, error) {
	var raw []match
	path := fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID)
	if err := c.getJSON(ctx, "matches", path, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Match, len(raw))
	for i, m := range raw {
		out[i] = model.Match{
			MatchID:          m.MatchID,
			MatchDate:        m.MatchDate,
			KickOff:          m.KickOff,
			Competition:      m.Competition.CompetitionName,
			Season:           m.Season.SeasonName,
			HomeTeam:         m.HomeTeam.HomeTeamName,
			AwayTeam:         m.AwayTeam.AwayTeamName,
			HomeScore:        m.HomeScore,
			AwayScore:        m.AwayScore,
			MatchStatus:      m.MatchStatus,
			MatchWeek:        m.MatchWeek,
			CompetitionStage: nameOf(m.CompetitionStage),
			Stadium:          nameOf(m.Stadium),
			Referee:          nameOf(m.Referee),
		}
	}
	return out, nil
}

// Events returns the raw events of a match in document order.
//
// StatsBomb has no standalone card event: a card hangs off a "Foul
// Committed" or "Bad Behaviour" event. A "Bad Behaviour" event with a card
// is reported as a model.TypeCard record; a carded foul is kept and
// followed by a model.TypeCard record for the same player and minute.
func (c *Client) Events(ctx context.Context, matchID int) ([]eventlog.Record, error) {
	var raw []event
	if err := c.getJSON(ctx, "events", fmt.Sprintf("/events/%d.json", matchID), &raw); err != nil {
		return nil, err
	}
	out := make([]eventlog.Record, 0, len(raw))
	for _, e := range raw {
		rec := eventlog.Record{
			Index:  e.Index,
			Period: e.Period,
			Minute: e.Minute,
			Second: e.Second,
			Type:   e.Type.Name,
			Team:   e.Team.Name,
		}
		if e.Player != nil {
			rec.Player = &e.Player.Name
		}
		if e.Pass != nil {
			rec.PassOutcome = outcomeOf(e.Pass)
		}
		if e.Shot != nil {
			rec.ShotOutcome = outcomeOf(e.Shot)
		}

		cardName := cardOf(e)
		switch {
		case cardName == nil:
			out = append(out, rec)
		case e.Type.Name == typeBadBehaviour:
			rec.Type = model.TypeCard
			rec.CardType = cardName
			out = append(out, rec)
		default:
			rec.CardType = cardName
			cardRec := rec
			cardRec.Type = model.TypeCard
			out = append(out, rec, cardRec)
		}
	}
	return out, nil
}

func cardOf(e event) *string {
	switch {
	case e.Type.Name == typeBadBehaviour && e.BadBehaviour != nil && e.BadBehaviour.Card != nil:
		return &e.BadBehaviour.Card.Name
	case e.Type.Name == typeFoulCommitted && e.FoulCommitted != nil && e.FoulCommitted.Card != nil:
		return &e.FoulCommitted.Card.Name
	}
	return nil
}

func outcomeOf(o *outcome) *string {
	if o.Outcome == nil {
		return nil
	}
	return &o.Outcome.Name
}

func nameOf(n *named) string {
	if n == nil {
		return ""
	}
	return n.Name
}
