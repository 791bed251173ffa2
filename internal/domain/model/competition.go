package model

// Competition is one competition season offered by the data provider.
type Competition struct {
	CompetitionID            int    `json:"competition_id"`
	SeasonID                 int    `json:"season_id"`
	CountryName              string `json:"country_name"`
	CompetitionName          string `json:"competition_name"`
	CompetitionGender        string `json:"competition_gender"`
	CompetitionYouth         bool   `json:"competition_youth"`
	CompetitionInternational bool   `json:"competition_international"`
	SeasonName               string `json:"season_name"`
	MatchUpdated             string `json:"match_updated,omitempty"`
	MatchAvailable           string `json:"match_available,omitempty"`
}

// Match is a flattened fixture record.
type Match struct {
	MatchID          int    `json:"match_id"`
	MatchDate        string `json:"match_date"`
	KickOff          string `json:"kick_off"`
	Competition      string `json:"competition"`
	Season           string `json:"season"`
	HomeTeam         string `json:"home_team"`
	AwayTeam         string `json:"away_team"`
	HomeScore        int    `json:"home_score"`
	AwayScore        int    `json:"away_score"`
	MatchStatus      string `json:"match_status"`
	MatchWeek        int    `json:"match_week"`
	CompetitionStage string `json:"competition_stage"`
	Stadium          string `json:"stadium"`
	Referee          string `json:"referee"`
}
