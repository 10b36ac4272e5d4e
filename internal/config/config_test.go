package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbodj/frigo/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "frigo", cfg.MongoDB.DBName)
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.Lookup.BaseURL)
	assert.Equal(t, 10, cfg.Lookup.TimeoutSeconds)
	assert.Equal(t, "0 8 * * *", cfg.Reporting.CronSchedule)
	assert.False(t, cfg.Sheets.Enabled())
	assert.Empty(t, cfg.Notify.WebhookURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DB_NAME", "frigo_test")
	t.Setenv("LOOKUP_TIMEOUT_SECONDS", "3")
	t.Setenv("DIGEST_WEBHOOK_URL", "https://ntfy.example/frigo")

	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "frigo_test", cfg.MongoDB.DBName)
	assert.Equal(t, 3, cfg.Lookup.TimeoutSeconds)
	assert.Equal(t, "https://ntfy.example/frigo", cfg.Notify.WebhookURL)
}

func TestLoadRejectsPartialSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "sheet-id-only")

	_, err := config.Load("testdata/nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEETS_CREDENTIALS_PATH")
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("LOOKUP_TIMEOUT_SECONDS", "soon")

	_, err := config.Load("testdata/nonexistent.env")
	require.Error(t, err)
}

func TestSheetsEnabled(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "spreadsheet-id")

	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)
	assert.True(t, cfg.Sheets.Enabled())
	assert.Equal(t, "Frigo!A:F", cfg.Sheets.ExportRange)
}
