package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev_secret_change_me"

// CatalogSource selects where products and messages are stored.
type CatalogSource string

const (
	SourceMemory   CatalogSource = "memory"
	SourcePostgres CatalogSource = "postgres"
)

// Config is the whole application configuration.
type Config struct {
	Port     string // listen port (8080)
	GoEnv    string // dev/prod
	LogLevel string // zap level name

	JWTSecret      string
	AccessTokenTTL time.Duration
	AuthMockDelay  time.Duration // artificial login latency

	CatalogSource CatalogSource

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
	ChatPerMin  int // chat requests per minute per client

	FEURL string // CORS origin
}

// IsProd reports whether GO_ENV is prod.
func (c Config) IsProd() bool { return c.GoEnv == "prod" }

// Addr is Port in listen form (":8080").
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// LoadDotEnv reads .env files if they exist. A missing file is fine.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// Load reads the environment.
func Load() (Config, error) {
	ttl, err := durationOr("ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return Config{}, err
	}
	delay, err := durationOr("AUTH_MOCK_DELAY", 0)
	if err != nil {
		return Config{}, err
	}
	perMin, err := atoiOr("CHAT_RATE_PER_MIN", 20)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:     getenv("PORT", "8080"),
		GoEnv:    getenv("GO_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: ttl,
		AuthMockDelay:  delay,

		CatalogSource: CatalogSource(getenv("CATALOG_SOURCE", string(SourceMemory))),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqBaseURL: getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:   getenv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		ChatPerMin:  perMin,

		FEURL: getenv("FE_URL", "http://localhost:3000"),
	}

	// required checks
	if cfg.JWTSecret == "" {
		if cfg.IsProd() {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}
	switch cfg.CatalogSource {
	case SourceMemory, SourcePostgres:
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be memory or postgres: %q", cfg.CatalogSource)
	}
	if cfg.AccessTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	if cfg.ChatPerMin <= 0 {
		return Config{}, fmt.Errorf("CHAT_RATE_PER_MIN must be positive")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
