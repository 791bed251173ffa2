package model

// PlayerStatistics aggregates one player's counting stats for a match.
type PlayerStatistics struct {
	Nome            string  `json:"nome"`
	Passes          int     `json:"passes"`
	PassesCompletos int     `json:"passes_completos"`
	PrecisaoPasses  float64 `json:"precisao_passes"`
	Finalizacoes    int     `json:"finalizacoes"`
	Gols            int     `json:"gols"`
	Desarmes        int     `json:"desarmes"`
	Interceptacoes  int     `json:"interceptacoes"`
	Dribles         int     `json:"dribles"`
	DuelosAereos    int     `json:"duelos_aereos"`
	FaltasCometidas int     `json:"faltas_cometidas"`
	FaltasSofridas  int     `json:"faltas_sofridas"`
}

// PlayerComparison pairs two players' statistics from the same match.
type PlayerComparison struct {
	Jogador1 PlayerStatistics `json:"jogador1"`
	Jogador2 PlayerStatistics `json:"jogador2"`
}

// ImportantEvent is a goal or a card surfaced in match summaries.
type ImportantEvent struct {
	Minuto  int    `json:"minuto"`
	Tipo    string `json:"tipo"`
	Jogador string `json:"jogador"`
	Time    string `json:"time"`
}

// MatchSummary is the scoreline and key moments of a match.
type MatchSummary struct {
	GolsCasa           int              `json:"gols_casa"`
	GolsFora           int              `json:"gols_fora"`
	TimeCasa           string           `json:"time_casa"`
	TimeFora           string           `json:"time_fora"`
	EventosImportantes []ImportantEvent `json:"eventos_importantes"`
	Narracao           *string          `json:"narracao"`
}

// TimelineEntry is a simplified event record for timeline views.
type TimelineEntry struct {
	Minuto   int                `json:"minuto"`
	Tipo     string             `json:"tipo"`
	Jogador  string             `json:"jogador"`
	Time     string             `json:"time"`
	Detalhes map[string]*string `json:"detalhes"`
}
