package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Providers   ProvidersConfig
	Groq        GroqConfig
	HuggingFace HuggingFaceConfig
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	Anthropic   AnthropicConfig
	Admin       AdminConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"5000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration. URL wins over the individual parts.
type DatabaseConfig struct {
	URL            string        `envconfig:"DATABASE_URL"`
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" default:"postgres"`
	Password       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name           string        `envconfig:"DB_NAME" default:"review_analyzer"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns       int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns       int           `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate    bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// RedisConfig holds Redis configuration. Redis is optional.
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

// CacheConfig controls the analysis result cache.
type CacheConfig struct {
	Enabled bool          `envconfig:"CACHE_ENABLED" default:"true"`
	TTL     time.Duration `envconfig:"CACHE_TTL" default:"24h"`
}

// ProvidersConfig holds settings shared by every remote model provider.
type ProvidersConfig struct {
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"30s"`
}

// GroqConfig holds Groq chat completion settings
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	Enabled bool   `envconfig:"USE_GROQ_KEY_POINTS" default:"true"`
}

// HuggingFaceConfig holds Hugging Face Inference API settings for both
// summarization and sentiment classification.
type HuggingFaceConfig struct {
	APIKey           string `envconfig:"HUGGINGFACE_API_KEY"`
	BaseURL          string `envconfig:"HUGGINGFACE_API_URL" default:"https://api-inference.huggingface.co"`
	SummaryModel     string `envconfig:"HUGGINGFACE_SUMMARY_MODEL" default:"facebook/bart-large-cnn"`
	SentimentModel   string `envconfig:"HUGGINGFACE_SENTIMENT_MODEL" default:"cardiffnlp/twitter-roberta-base-sentiment-latest"`
	KeyPointsEnabled bool   `envconfig:"USE_HUGGINGFACE_KEY_POINTS" default:"true"`
	SentimentEnabled bool   `envconfig:"USE_HUGGINGFACE_SENTIMENT" default:"true"`
}

// GeminiConfig holds Gemini generateContent settings
type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
	Enabled bool   `envconfig:"USE_GEMINI" default:"true"`
}

// OpenAIConfig holds OpenAI chat completion settings
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Enabled bool   `envconfig:"USE_OPENAI_KEY_POINTS" default:"true"`
}

// AnthropicConfig holds Anthropic messages settings
type AnthropicConfig struct {
	APIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	BaseURL string `envconfig:"ANTHROPIC_BASE_URL"`
	Model   string `envconfig:"ANTHROPIC_MODEL" default:"claude-haiku-4-5"`
	Enabled bool   `envconfig:"USE_ANTHROPIC_KEY_POINTS" default:"true"`
}

// AdminConfig guards destructive routes. An empty secret leaves them open.
type AdminConfig struct {
	JWTSecret   string        `envconfig:"ADMIN_JWT_SECRET"`
	TokenExpiry time.Duration `envconfig:"ADMIN_TOKEN_EXPIRY" default:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv fills a Config from the process environment without touching .env files.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Each section is processed on its own so the env names stay flat
	// (PORT rather than SERVER_PORT).
	sections := map[string]interface{}{
		"server":      &cfg.Server,
		"database":    &cfg.Database,
		"redis":       &cfg.Redis,
		"cache":       &cfg.Cache,
		"providers":   &cfg.Providers,
		"groq":        &cfg.Groq,
		"huggingface": &cfg.HuggingFace,
		"gemini":      &cfg.Gemini,
		"openai":      &cfg.OpenAI,
		"anthropic":   &cfg.Anthropic,
		"admin":       &cfg.Admin,
	}
	for name, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", name, err)
		}
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.IsProduction() && c.Database.AutoMigrate {
		return fmt.Errorf("DB_AUTO_MIGRATE must be disabled in production; run `reviewctl migrate up` instead")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	if c.Providers.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// CORSOrigins returns the allowed browser origins. Production without an
// explicit list allows any origin; development always allows the local
// front-end dev servers.
func (c *Config) CORSOrigins() []string {
	if c.IsProduction() {
		if len(c.Server.AllowedOrigins) == 0 {
			return []string{"*"}
		}
		return c.Server.AllowedOrigins
	}
	return []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:5174",
	}
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Active reports whether the Groq provider has a key and is switched on.
func (g GroqConfig) Active() bool { return g.APIKey != "" && g.Enabled }

// KeyPointsActive reports whether HF summarization should be tried.
func (h HuggingFaceConfig) KeyPointsActive() bool { return h.APIKey != "" && h.KeyPointsEnabled }

// SentimentActive reports whether the hosted sentiment classifier should be used.
func (h HuggingFaceConfig) SentimentActive() bool { return h.APIKey != "" && h.SentimentEnabled }

func (g GeminiConfig) Active() bool    { return g.APIKey != "" && g.Enabled }
func (o OpenAIConfig) Active() bool    { return o.APIKey != "" && o.Enabled }
func (a AnthropicConfig) Active() bool { return a.APIKey != "" && a.Enabled }

// MaskSecret hides all but the last four characters of a key.
func MaskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}
