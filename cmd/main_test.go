package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/okian/futebol/internal/config"
	"github.com/okian/futebol/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const eventsJSON = `[
  {"index": 1, "period": 1, "minute": 0, "second": 0, "type": {"name": "Starting XI"}, "team": {"name": "Argentina"}},
  {"index": 2, "period": 1, "minute": 0, "second": 0, "type": {"name": "Starting XI"}, "team": {"name": "France"}},
  {"index": 3, "period": 1, "minute": 23, "second": 8, "type": {"name": "Shot"}, "team": {"name": "Argentina"},
   "player": {"name": "Lionel Andrés Messi Cuccittini"}, "shot": {"outcome": {"name": "Goal"}}},
  {"index": 4, "period": 2, "minute": 80, "second": 1, "type": {"name": "Shot"}, "team": {"name": "France"},
   "player": {"name": "Kylian Mbappé Lottin"}, "shot": {"outcome": {"name": "Goal"}}}
]`

func providerServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/competitions.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"competition_id": 43, "season_id": 106, "competition_name": "FIFA World Cup"}]`))
	})
	mux.HandleFunc("/events/3869685.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(eventsJSON))
	})
	return httptest.NewServer(mux)
}

func TestConfigLoading(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		_ = os.Setenv("FUTEBOL_ADDR", ":9090")
		_ = os.Setenv("FUTEBOL_DEFAULT_STYLE", "Técnico")
		defer func() {
			_ = os.Unsetenv("FUTEBOL_ADDR")
			_ = os.Unsetenv("FUTEBOL_DEFAULT_STYLE")
		}()

		convey.Convey("Then configuration should be loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.DefaultStyle, convey.ShouldEqual, "Técnico")
		})
	})
}

func TestBuildMux(t *testing.T) {
	convey.Convey("Given a fake data provider", t, func() {
		provider := providerServer()
		defer provider.Close()

		cfg := config.New()
		cfg.ProviderBaseURL = provider.URL
		cfg.NarrationBackend = config.BackendNone
		ctx := context.Background()

		convey.Convey("When building the mux", func() {
			mux, err := buildMux(ctx, cfg)
			convey.So(err, convey.ShouldBeNil)

			get := func(target string) *httptest.ResponseRecorder {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
				return w
			}

			convey.Convey("Then health, docs and root respond", func() {
				convey.So(get("/healthz").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(get("/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(get("/api-docs").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(get("/").Code, convey.ShouldEqual, http.StatusTemporaryRedirect)
			})

			convey.Convey("Then business routes reach the provider", func() {
				w := get("/competicoes")
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "FIFA World Cup")

				w = get("/temporadas/43")
				convey.So(w.Body.String(), convey.ShouldEqual, "[106]\n")
			})

			convey.Convey("Then a summary carries the unconfigured narration", func() {
				w := get("/resumo_partida/3869685")
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"gols_casa":1`)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"gols_fora":1`)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Configure um token válido")
			})

			convey.Convey("Then an unknown match is not found", func() {
				convey.So(get("/perfil_jogador/1/X").Code, convey.ShouldEqual, http.StatusNotFound)
			})
		})

		convey.Convey("When the default style is invalid", func() {
			cfg.DefaultStyle = "Poético"
			_, err := buildMux(ctx, cfg)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When MCP is disabled", func() {
			cfg.MCPEnabled = false
			mux, err := buildMux(ctx, cfg)
			convey.So(err, convey.ShouldBeNil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mcp", http.NoBody))
			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestConfigureMetrics(t *testing.T) {
	convey.Convey("Given a metrics namespace from configuration", t, func() {
		provider := providerServer()
		defer provider.Close()

		cfg := config.New()
		cfg.ProviderBaseURL = provider.URL
		cfg.NarrationBackend = config.BackendNone
		cfg.MetricsNamespace = "jogo"
		defer configureMetrics(config.New())

		convey.Convey("When metrics are configured before building the mux", func() {
			configureMetrics(cfg)
			mux, err := buildMux(context.Background(), cfg)
			convey.So(err, convey.ShouldBeNil)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/competicoes", http.NoBody))
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			convey.Convey("Then /metrics exports series under that namespace", func() {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "jogo_api_http_requests_total")
			})
		})
	})
}
