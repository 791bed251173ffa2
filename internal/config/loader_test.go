package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/futebol/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		// Point at a missing .env so a developer's file never leaks in.
		_ = os.Setenv("FUTEBOL_DOTENV", "/non/existent/.env")
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
				convey.So(cfg.ProviderTimeoutMS, convey.ShouldEqual, 20_000)
				convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-2.0-flash")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FUTEBOL_ADDR", ":8080")
			_ = os.Setenv("FUTEBOL_NARRATION_BACKEND", "ollama")
			_ = os.Setenv("FUTEBOL_OLLAMA_URL", "http://127.0.0.1:11434")
			_ = os.Setenv("FUTEBOL_PROVIDER_TIMEOUT_MS", "5000")
			_ = os.Setenv("FUTEBOL_MCP_ENABLED", "false")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.NarrationBackend, convey.ShouldEqual, "ollama")
				convey.So(cfg.OllamaURL, convey.ShouldEqual, "http://127.0.0.1:11434")
				convey.So(cfg.ProviderTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.MCPEnabled, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_format: json
default_style: Técnico
gemini_model: gemini-1.5-pro
`
			tmpFile := createTempFile("futebol-config-*.yaml", yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FUTEBOL_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.DefaultStyle, convey.ShouldEqual, "Técnico")
				convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-1.5-pro")
				convey.So(cfg.OllamaModel, convey.ShouldEqual, "llama3.2") // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempFile("futebol-config-*.yaml", "addr: \":9090\"\nollama_model: mistral\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FUTEBOL_CONFIG", tmpFile)
			_ = os.Setenv("FUTEBOL_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")          // Overridden by env
				convey.So(cfg.OllamaModel, convey.ShouldEqual, "mistral") // From file
			})
		})

		convey.Convey("When a .env file provides the Gemini key", func() {
			dotenv := createTempFile("futebol-*.env", "FUTEBOL_GEMINI_API_KEY=secret-from-dotenv\n")
			defer func() { _ = os.Remove(dotenv) }()
			_ = os.Setenv("FUTEBOL_DOTENV", dotenv)

			cfg, err := config.Load(ctx)

			convey.Convey("Then the key is picked up from the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GeminiAPIKey, convey.ShouldEqual, "secret-from-dotenv")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempFile("futebol-config-*.yaml", `invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FUTEBOL_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("FUTEBOL_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FUTEBOL_ADDR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the narration backend is unknown", func() {
			_ = os.Setenv("FUTEBOL_NARRATION_BACKEND", "gpt2")

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the narration backend is given in mixed case", func() {
			_ = os.Setenv("FUTEBOL_NARRATION_BACKEND", " None ")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it is stored in canonical form", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.NarrationBackend, convey.ShouldEqual, config.BackendNone)
			})
		})

		convey.Convey("When metrics settings come from the environment", func() {
			_ = os.Setenv("FUTEBOL_METRICS_ENABLED", "false")
			_ = os.Setenv("FUTEBOL_METRICS_NAMESPACE", "jogo")

			cfg, err := config.Load(ctx)

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "jogo")
			})
		})

		convey.Convey("When the metrics namespace is not a valid metric name", func() {
			_ = os.Setenv("FUTEBOL_METRICS_NAMESPACE", "futebol-api")

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the default style is unknown", func() {
			_ = os.Setenv("FUTEBOL_DEFAULT_STYLE", "Poético")

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("FUTEBOL_PROVIDER_TIMEOUT_MS", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"FUTEBOL_CONFIG",
		"FUTEBOL_DOTENV",
		"FUTEBOL_ADDR",
		"FUTEBOL_NARRATION_BACKEND",
		"FUTEBOL_OLLAMA_URL",
		"FUTEBOL_PROVIDER_TIMEOUT_MS",
		"FUTEBOL_MCP_ENABLED",
		"FUTEBOL_GEMINI_API_KEY",
		"FUTEBOL_DEFAULT_STYLE",
		"FUTEBOL_METRICS_ENABLED",
		"FUTEBOL_METRICS_NAMESPACE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempFile(pattern, content string) string {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
