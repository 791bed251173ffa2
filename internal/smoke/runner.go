package smoke

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/pkg/logger"
)

// Run executes every smoke check in order and stops at the first failure.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get().Named("smoke")

	log.Info(ctx, "starting futebol smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("match", config.MatchID),
		logger.String("player", config.Player),
		logger.String("style", config.Style),
		logger.Duration("timeout", config.Timeout))

	client := newHTTPClient(config.BaseURL, config.Timeout, config.Verbose)
	match := strconv.Itoa(config.MatchID)

	checks := []struct {
		name string
		run  func(context.Context) error
	}{
		{"health", func(ctx context.Context) error {
			return client.getJSON(ctx, "/healthz", nil, nil)
		}},
		{"competitions", func(ctx context.Context) error {
			var comps []model.Competition
			if err := client.getJSON(ctx, "/competicoes", nil, &comps); err != nil {
				return err
			}
			if len(comps) == 0 {
				return fmt.Errorf("no competitions returned")
			}
			stats.Competitions = len(comps)
			return nil
		}},
		{"summary", func(ctx context.Context) error {
			q := url.Values{}
			if config.Style != "" {
				q.Set("estilo", config.Style)
			}
			var s model.MatchSummary
			if err := client.getJSON(ctx, pathEscape("resumo_partida", match), q, &s); err != nil {
				return err
			}
			stats.ImportantEvents = len(s.EventosImportantes)
			log.Info(ctx, "score",
				logger.String("home", s.TimeCasa), logger.Int("homeGoals", s.GolsCasa),
				logger.String("away", s.TimeFora), logger.Int("awayGoals", s.GolsFora))
			return verifySummary(s)
		}},
		{"timeline", func(ctx context.Context) error {
			q := url.Values{}
			q.Set("minuto_inicial", strconv.Itoa(config.From))
			q.Set("minuto_final", strconv.Itoa(config.To))
			var entries []model.TimelineEntry
			if err := client.getJSON(ctx, pathEscape("linha_tempo", match), q, &entries); err != nil {
				return err
			}
			stats.TimelineEntries = len(entries)
			return verifyTimeline(entries, config.From, config.To)
		}},
		{"profile", func(ctx context.Context) error {
			var p model.PlayerStatistics
			if err := client.getJSON(ctx, pathEscape("perfil_jogador", match, config.Player), nil, &p); err != nil {
				return err
			}
			log.Info(ctx, "player",
				logger.String("name", p.Nome), logger.Int("passes", p.Passes),
				logger.Float64("accuracy", p.PrecisaoPasses), logger.Int("goals", p.Gols))
			return verifyProfile(p)
		}},
	}

	for _, c := range checks {
		stats.ChecksRun++
		if err := c.run(ctx); err != nil {
			return fmt.Errorf("%s check failed: %w", c.name, err)
		}
		stats.ChecksPassed++
		log.Info(ctx, "check passed", logger.String("check", c.name))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	log.Info(ctx, "smoke run completed successfully")
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Named("smoke").Info(ctx, "final statistics",
		logger.Int("checksRun", stats.ChecksRun),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("competitions", stats.Competitions),
		logger.Int("importantEvents", stats.ImportantEvents),
		logger.Int("timelineEntries", stats.TimelineEntries),
		logger.String("duration", stats.Duration.String()))
}
