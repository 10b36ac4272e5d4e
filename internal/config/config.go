package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Lookup    LookupConfig
	Reporting ReportingConfig
	Sheets    SheetsConfig
	Notify    NotifyConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// LookupConfig contains options for the Open Food Facts product lookup.
type LookupConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// ReportingConfig holds expiry-digest scheduler settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// SheetsConfig contains configuration for the optional inventory snapshot
// export to Google Sheets. The export is enabled only when both a credentials
// file and a spreadsheet are configured.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ExportRange     string
}

// NotifyConfig holds the optional webhook the expiry digest is posted to.
type NotifyConfig struct {
	WebhookURL string
}

// Enabled reports whether the snapshot export should be wired.
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsPath != "" && s.SpreadsheetID != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	lookupTimeout, err := strconv.Atoi(getenvWithDefault("LOOKUP_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("LOOKUP_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "frigo"),
		},
		Lookup: LookupConfig{
			BaseURL:        getenvWithDefault("LOOKUP_BASE_URL", "https://world.openfoodfacts.org"),
			TimeoutSeconds: lookupTimeout,
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 8 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Paris"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			ExportRange:     getenvWithDefault("SHEET_EXPORT_RANGE", "Frigo!A:F"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("DIGEST_WEBHOOK_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Lookup.BaseURL == "" {
		return errors.New("LOOKUP_BASE_URL must not be empty")
	}

	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("LOOKUP_TIMEOUT_SECONDS must be positive")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	// The sheets export is optional but must be configured entirely or not at all.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be provided together")
	}

	if c.Sheets.Enabled() && c.Sheets.ExportRange == "" {
		return errors.New("SHEET_EXPORT_RANGE must not be empty when the sheets export is enabled")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
