// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() builds a Config with defaults; Load layers file and env on top.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import "strings"

// Narration backends accepted by NarrationBackend.
const (
	BackendAuto   = "auto"
	BackendGemini = "gemini"
	BackendOllama = "ollama"
	BackendNone   = "none"
)

// NormalizeBackend folds a narration_backend value to the lowercase form
// used by the Backend constants.
func NormalizeBackend(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ProviderBaseURL is the root of the StatsBomb open-data tree.
	ProviderBaseURL string `koanf:"provider_base_url"`

	// ProviderTimeoutMS bounds each provider HTTP request.
	ProviderTimeoutMS int `koanf:"provider_timeout_ms"`

	// NarrationBackend picks the text generator: auto, gemini, ollama or none.
	// auto prefers Gemini when an API key is set and falls back to Ollama
	// when a URL is set.
	NarrationBackend string `koanf:"narration_backend"`

	// GeminiAPIKey and GeminiModel configure the Gemini backend.
	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`

	// OllamaURL and OllamaModel configure the local Ollama backend.
	OllamaURL   string `koanf:"ollama_url"`
	OllamaModel string `koanf:"ollama_model"`

	// TextGenTimeoutMS bounds each text generation request.
	TextGenTimeoutMS int `koanf:"textgen_timeout_ms"`

	// DefaultStyle is used when a summary request has no estilo.
	DefaultStyle string `koanf:"default_style"`

	// MCPEnabled mounts the MCP tool endpoint at MCPPath.
	MCPEnabled bool   `koanf:"mcp_enabled"`
	MCPPath    string `koanf:"mcp_path"`

	// MetricsEnabled toggles Prometheus collection; /metrics stays mounted.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":8000",
		ProviderBaseURL:   "https://raw.githubusercontent.com/statsbomb/open-data/master/data",
		ProviderTimeoutMS: 20_000,
		NarrationBackend:  BackendAuto,
		GeminiModel:       "gemini-2.0-flash",
		OllamaModel:       "llama3.2",
		TextGenTimeoutMS:  60_000,
		DefaultStyle:      "Formal",
		MCPEnabled:        true,
		MCPPath:           "/mcp",
		MetricsEnabled:    true,
		MetricsNamespace:  "futebol",
	}
}
