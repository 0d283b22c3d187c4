package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, 10, cfg.Feed.PageSize)
	assert.Equal(t, "", cfg.Matching.TaxonomyPath)
	assert.Equal(t, 10.0, cfg.Matching.KeywordWeight)
	assert.Equal(t, 72*time.Hour, cfg.Matching.RecencyScale)
}

func TestLoad_FeedAndMatchingOverrides(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "25")
	t.Setenv("TAXONOMY_PATH", "/etc/vybin/taxonomy.yaml")
	t.Setenv("MATCH_KEYWORD_WEIGHT", "2.5")
	t.Setenv("MATCH_RECENCY_SCALE", "24h")
	t.Setenv("ALLOWED_ORIGINS", "https://vybin.app, https://admin.vybin.app ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Feed.PageSize)
	assert.Equal(t, "/etc/vybin/taxonomy.yaml", cfg.Matching.TaxonomyPath)
	assert.Equal(t, 2.5, cfg.Matching.KeywordWeight)
	assert.Equal(t, 24*time.Hour, cfg.Matching.RecencyScale)
	assert.Equal(t, []string{"https://vybin.app", "https://admin.vybin.app"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("MATCH_RECENCY_SCALE", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 72*time.Hour, cfg.Matching.RecencyScale)
}

func TestLoad_RejectsBadPageSize(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "0")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_RejectsNegativeWeights(t *testing.T) {
	t.Setenv("MATCH_RECENCY_WEIGHT", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "vybin", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=vybin sslmode=disable", cfg.DatabaseDSN())
}

func TestValidate_RejectsNonFiniteWeights(t *testing.T) {
	for _, value := range []string{"NaN", "+Inf", "-Inf"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("MATCH_KEYWORD_WEIGHT", value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "MATCH_KEYWORD_WEIGHT")
			assert.Nil(t, cfg)
		})
	}
}
