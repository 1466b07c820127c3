package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Typesense   TypesenseConfig
	AI          AIConfig
	Search      SearchConfig
	Comparison  ComparisonConfig
	Auth        AuthConfig
	OTEL        OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	URL    string
	APIKey string
}

// AIConfig selects and configures the generative model used for ranking and
// comparisons.
type AIConfig struct {
	Provider     string // openai | gemini
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

// SearchConfig holds symptom search tunables
type SearchConfig struct {
	MaxSymptoms    int
	SuggestLimit   int
	BrowseLimit    int
	ScoreThreshold float64
	SynonymsPath   string
}

// ComparisonConfig holds the retry policy for medication comparisons.
// Deadline bounds every model attempt of one comparison together.
type ComparisonConfig struct {
	MaxAttempts int
	BackoffStep time.Duration
	Deadline    time.Duration
}

// AuthConfig holds bearer token verification settings
type AuthConfig struct {
	JWTSecret      string
	AllowDevHeader bool
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "medfinder"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			URL:    getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey: getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			Timeout:      getEnvAsDuration("AI_TIMEOUT", 45*time.Second),
		},
		Search: SearchConfig{
			MaxSymptoms:    getEnvAsInt("SEARCH_MAX_SYMPTOMS", 10),
			SuggestLimit:   getEnvAsInt("SEARCH_SUGGEST_LIMIT", 10),
			BrowseLimit:    getEnvAsInt("SEARCH_BROWSE_LIMIT", 8),
			ScoreThreshold: getEnvAsFloat("SEARCH_SCORE_THRESHOLD", 50),
			SynonymsPath:   getEnv("SEARCH_SYNONYMS_PATH", ""),
		},
		Comparison: ComparisonConfig{
			MaxAttempts: getEnvAsInt("COMPARISON_MAX_ATTEMPTS", 3),
			BackoffStep: getEnvAsDuration("COMPARISON_BACKOFF_STEP", 400*time.Millisecond),
			Deadline:    getEnvAsDuration("COMPARISON_DEADLINE", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("AUTH_JWT_SECRET", ""),
			AllowDevHeader: getEnvAsBool("AUTH_ALLOW_DEV_HEADER", false),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "medfinder"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with
func (c *Config) Validate() error {
	if c.Search.MaxSymptoms <= 0 {
		return fmt.Errorf("SEARCH_MAX_SYMPTOMS must be positive, got %d", c.Search.MaxSymptoms)
	}
	if c.Comparison.MaxAttempts <= 0 {
		return fmt.Errorf("COMPARISON_MAX_ATTEMPTS must be positive, got %d", c.Comparison.MaxAttempts)
	}
	if c.Comparison.Deadline <= 0 {
		return fmt.Errorf("COMPARISON_DEADLINE must be positive, got %s", c.Comparison.Deadline)
	}
	switch c.AI.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}
	return nil
}

// ModelWaitBudget is the longest a request may wait on the generative model:
// one ranking call or the comparison deadline, whichever is longer.
func (c *Config) ModelWaitBudget() time.Duration {
	return max(c.AI.Timeout, c.Comparison.Deadline)
}

// WriteTimeout returns the HTTP write deadline. It leaves slack past the model
// budget so a fallback answer can still be written.
func (c *Config) WriteTimeout() time.Duration {
	return c.ModelWaitBudget() + 30*time.Second
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
