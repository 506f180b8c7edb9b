package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process level configuration loaded from .env, environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	SettingsFile     string
	SheetsAPIURL     string
	AuthURL          string
	TokenURL         string
	UserInfoURL      string
	OAuthRedirectURL string
	SessionSecret    string
	AMQPURL          string
	AMQPExchange     string
	LogLevel         string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration

	// Seed values for settings that were never saved.
	SpreadsheetID      string
	GoogleClientID     string
	GoogleClientSecret string
}

const (
	defaultRunAddress      = ":8080"
	defaultSettingsFile    = "orderdesk-settings.json"
	defaultSheetsAPIURL    = "https://sheets.googleapis.com"
	defaultAuthURL         = "https://accounts.google.com/o/oauth2/auth"
	defaultTokenURL        = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL     = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultRedirectURL     = "http://localhost:8080/api/auth/callback"
	defaultSessionSecret   = "change-me-in-production"
	defaultAMQPExchange    = "orderdesk.notifications"
	defaultLogLevel        = "info"
	defaultRequestTimeout  = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env files, environment variables and flags.
func Load() (*Config, error) {
	// Missing .env is fine; real environment always wins over it.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		SettingsFile:       getString(lookup, "SETTINGS_FILE", defaultSettingsFile),
		SheetsAPIURL:       getString(lookup, "SHEETS_API_URL", defaultSheetsAPIURL),
		AuthURL:            getString(lookup, "GOOGLE_AUTH_URL", defaultAuthURL),
		TokenURL:           getString(lookup, "GOOGLE_TOKEN_URL", defaultTokenURL),
		UserInfoURL:        getString(lookup, "USERINFO_URL", defaultUserInfoURL),
		OAuthRedirectURL:   getString(lookup, "OAUTH_REDIRECT_URL", defaultRedirectURL),
		SessionSecret:      getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		AMQPURL:            getString(lookup, "AMQP_URL", ""),
		AMQPExchange:       getString(lookup, "AMQP_EXCHANGE", defaultAMQPExchange),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		RequestTimeout:     getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SpreadsheetID:      getString(lookup, "SPREADSHEET_ID", ""),
		GoogleClientID:     getString(lookup, "GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getString(lookup, "GOOGLE_CLIENT_SECRET", ""),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the settings store")
	fs.StringVar(&cfg.SettingsFile, "settings-file", cfg.SettingsFile, "Settings file used when no database is configured")
	fs.StringVar(&cfg.SheetsAPIURL, "sheets-url", cfg.SheetsAPIURL, "Spreadsheet values API base URL")
	fs.StringVar(&cfg.OAuthRedirectURL, "redirect-url", cfg.OAuthRedirectURL, "OAuth redirect URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing dashboard cookies")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "AMQP broker URL for order notifications")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.SpreadsheetID, "spreadsheet", cfg.SpreadsheetID, "Default spreadsheet ID")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Timeout for outbound API calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	if cfg.DatabaseURI == "" && cfg.SettingsFile == "" {
		return nil, fmt.Errorf("either database URI or settings file must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
