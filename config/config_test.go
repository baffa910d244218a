package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/careermentor/logging"
	openaimodel "github.com/hupe1980/careermentor/model/openai"
)

var envKeys = []string{
	"GEMINI_API_KEY", "ANTHROPIC_API_KEY", "CAREER_PROVIDER", "CAREER_BASE_URL",
	"CAREER_MODEL", "CAREER_ADDR", "PORT", "CAREER_LOG_LEVEL", "CAREER_LOG_FORMAT",
	"CAREER_MAX_TURNS", "CAREER_STICKY_HANDOFF", "CAREER_TRACING", "CAREER_ALLOWED_ORIGINS",
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
	assert.Equal(t, "test-key", cfg.Model.APIKey)
	assert.Equal(t, openaimodel.DefaultBaseURL, cfg.Model.BaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Model)
	assert.Equal(t, logging.LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Zero(t, cfg.Session.MaxTurns)
	assert.False(t, cfg.Session.StickyHandoff)
	assert.False(t, cfg.Session.Tracing)
}

func TestLoad_MissingCredential(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("CAREER_PROVIDER", "anthropic")
	t.Setenv("GEMINI_API_KEY", "unused")

	_, err = Load()
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAREER_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("CAREER_MODEL", "claude-3-5-haiku-latest")
	t.Setenv("CAREER_ADDR", "127.0.0.1:9000")
	t.Setenv("CAREER_LOG_LEVEL", "debug")
	t.Setenv("CAREER_LOG_FORMAT", "console")
	t.Setenv("CAREER_MAX_TURNS", "4")
	t.Setenv("CAREER_STICKY_HANDOFF", "true")
	t.Setenv("CAREER_TRACING", "1")
	t.Setenv("CAREER_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderAnthropic, cfg.Model.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model.Model)
	assert.Empty(t, cfg.Model.BaseURL)
	assert.Equal(t, logging.LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Session.MaxTurns)
	assert.True(t, cfg.Session.StickyHandoff)
	assert.True(t, cfg.Session.Tracing)

	assert.Equal(t, "anthropic", cfg.Model.NewModel().Info().Provider)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"provider", "CAREER_PROVIDER", "bedrock"},
		{"port", "PORT", "80 80"},
		{"log level", "CAREER_LOG_LEVEL", "verbose"},
		{"log format", "CAREER_LOG_FORMAT", "xml"},
		{"max turns", "CAREER_MAX_TURNS", "many"},
		{"max turns non-positive", "CAREER_MAX_TURNS", "0"},
		{"sticky", "CAREER_STICKY_HANDOFF", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEMINI_API_KEY", "k")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=from-dotenv\nPORT=7070\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() {
		_ = os.Unsetenv("GEMINI_API_KEY")
		_ = os.Unsetenv("PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Model.APIKey)
	assert.Equal(t, ":7070", cfg.Server.Addr)

	assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestModelConfig_NewModel_OpenAI(t *testing.T) {
	m := ModelConfig{Provider: ProviderOpenAI, APIKey: "k", BaseURL: openaimodel.DefaultBaseURL, Model: "gemini-2.0-flash"}.NewModel()

	info := m.Info()
	assert.Equal(t, "openai", info.Provider)
	assert.Equal(t, "gemini-2.0-flash", info.Name)
}
