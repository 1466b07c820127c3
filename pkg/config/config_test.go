package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("SEARCH_MAX_SYMPTOMS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Search.MaxSymptoms)
	assert.Equal(t, 8, cfg.Search.BrowseLimit)
	assert.Equal(t, 3, cfg.Comparison.MaxAttempts)
	assert.Equal(t, 400*time.Millisecond, cfg.Comparison.BackoffStep)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 60*time.Second, cfg.Comparison.Deadline)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SEARCH_MAX_SYMPTOMS", "4")
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("COMPARISON_BACKOFF_STEP", "1s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Search.MaxSymptoms)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, time.Second, cfg.Comparison.BackoffStep)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "claude")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "meds", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=meds sslmode=disable", db.DatabaseDSN())
}

func TestWriteTimeout_CoversComparisonDeadline(t *testing.T) {
	cfg := &Config{
		AI:         AIConfig{Timeout: 45 * time.Second},
		Comparison: ComparisonConfig{MaxAttempts: 3, BackoffStep: 400 * time.Millisecond, Deadline: 60 * time.Second},
	}
	assert.Equal(t, 60*time.Second, cfg.ModelWaitBudget())
	assert.Equal(t, 90*time.Second, cfg.WriteTimeout())
	assert.Greater(t, cfg.WriteTimeout(), cfg.Comparison.Deadline)

	cfg.AI.Timeout = 2 * time.Minute
	assert.Equal(t, 2*time.Minute+30*time.Second, cfg.WriteTimeout())
}

func TestLoad_RejectsNonPositiveComparisonDeadline(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("COMPARISON_DEADLINE", "0s")

	_, err := Load()
	assert.Error(t, err)
}
