// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"perawise/internal/logger"
)

// Config holds application configuration. It is built once at process start
// and passed explicitly to everything that needs it; nothing reads the
// environment after Load returns.
type Config struct {
	// Server
	Port string
	Env  string

	// Operating mode (MOCK, DEV, or LIVE)
	Mode Mode

	// Supabase project for the resolved mode (empty in MOCK mode)
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string

	// Postgres connection URL for the resolved mode (empty in MOCK mode)
	DatabaseURL string
}

// Load reads configuration from the environment. The operating mode is
// resolved first; mode-specific values (Supabase project, database URL) are
// then read from _DEV or _LIVE suffixed variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	rawMode := os.Getenv("TEST_MODE")
	mode := ResolveMode(rawMode)
	if rawMode != "" && mode == ModeMock && !strings.EqualFold(strings.TrimSpace(rawMode), string(ModeMock)) {
		logger.Get().Warnf("Invalid TEST_MODE %q, defaulting to MOCK", rawMode)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
		Mode: mode,
	}

	if mode.IsRemote() {
		cfg.SupabaseURL = getEnvForMode("SUPABASE_URL", mode)
		cfg.SupabaseAnonKey = getEnvForMode("SUPABASE_ANON_KEY", mode)
		cfg.SupabaseJWTSecret = getEnvForMode("SUPABASE_JWT_SECRET", mode)
		cfg.DatabaseURL = getEnvForMode("DATABASE_URL", mode)
	}

	logResolvedMode(cfg)
	return cfg, nil
}

func logResolvedMode(cfg *Config) {
	log := logger.Get()
	log.Infof("Running in %s mode", cfg.Mode)
	switch cfg.Mode {
	case ModeDev:
		log.Infof("Connected to development Supabase: %s", cfg.SupabaseURL)
	case ModeLive:
		log.Infof("Connected to production Supabase: %s", cfg.SupabaseURL)
	default:
		log.Info("Using mock data (no database connection)")
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvForMode retrieves a mode-suffixed environment variable,
// e.g. SUPABASE_URL_DEV or SUPABASE_URL_LIVE.
func getEnvForMode(key string, mode Mode) string {
	return os.Getenv(key + "_" + string(mode))
}
