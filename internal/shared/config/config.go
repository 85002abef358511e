package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"coach-backend/internal/shared/telemetry"
)

// DefaultRoleID is the pre-seeded role assigned to every synced user.
const DefaultRoleID = "00000000-0000-0000-0000-000000000001"

// Store backends for the users table.
const (
	StorePostgres = "postgres"
	StoreREST     = "rest"
	StoreMemory   = "memory"
)

// Conflict policies for repeated deliveries of the same identity.
const (
	OnConflictError  = "error"
	OnConflictIgnore = "ignore"
)

var validate = validator.New()

// ErrMemoryStoreOutsideDev rejects the in-memory store where synced users must persist.
var ErrMemoryStoreOutsideDev = errors.New("memory user store is only allowed in dev and local")

// Config holds application configuration.
type Config struct {
	Port             string `validate:"required"`
	Env              string `validate:"oneof=dev local staging production"`
	UserStore        string `validate:"oneof=postgres rest memory"`
	DatabaseURL      string `validate:"required_if=UserStore postgres"`
	SupabaseURL      string `validate:"required_if=UserStore rest,omitempty,url"`
	ServiceRoleKey   string `validate:"required_if=UserStore rest"`
	DefaultRoleID    string `validate:"required"`
	OnConflict       string `validate:"oneof=error ignore"`
	WebhookJWTSecret string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	supabaseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/")

	if !IsDevLike(env) && dbURL == "" && supabaseURL == "" {
		telemetry.Error("config.store_missing", map[string]any{
			"env":   env,
			"error": "DATABASE_URL or SUPABASE_URL is required outside dev",
		})
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		UserStore:        normalizeStore(getEnv("USER_STORE", ""), dbURL, supabaseURL),
		DatabaseURL:      dbURL,
		SupabaseURL:      supabaseURL,
		ServiceRoleKey:   strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_ROLE_KEY")),
		DefaultRoleID:    getEnv("DEFAULT_ROLE_ID", DefaultRoleID),
		OnConflict:       normalizeOnConflict(getEnv("USER_SYNC_ON_CONFLICT", OnConflictError)),
		WebhookJWTSecret: strings.TrimSpace(os.Getenv("WEBHOOK_JWT_SECRET")),
	}
}

// Validate checks that the store selected by the configuration has what it needs.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.UserStore == StoreMemory && !IsDevLike(c.Env) {
		return fmt.Errorf("invalid config: env %s: %w", c.Env, ErrMemoryStoreOutsideDev)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStore(raw, dbURL, supabaseURL string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return StorePostgres
	case "rest", "supabase":
		return StoreREST
	case "memory":
		return StoreMemory
	}
	switch {
	case dbURL != "":
		return StorePostgres
	case supabaseURL != "":
		return StoreREST
	default:
		return StoreMemory
	}
}

func normalizeOnConflict(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ignore", "skip", "do-nothing":
		return OnConflictIgnore
	default:
		return OnConflictError
	}
}

// IsDevLike reports whether env allows in-memory fallbacks.
func IsDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
