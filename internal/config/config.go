package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
	ProviderOpenAI    = "openai"

	StoreMemory    = "memory"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"

	AuthNone     = "none"
	AuthJWT      = "jwt"
	AuthFirebase = "firebase"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Itinerary generation.
	GenerationProvider string `mapstructure:"GENERATION_PROVIDER"`
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL      string `mapstructure:"GEMINI_BASE_URL"`
	OpenAIAPIKey       string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel        string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL      string `mapstructure:"OPENAI_BASE_URL"`

	// Trip store.
	StoreDriver             string `mapstructure:"STORE_DRIVER"`
	PostgresURL             string `mapstructure:"POSTGRES_URL"`
	MongoURL                string `mapstructure:"MONGO_URL"`
	MongoDatabase           string `mapstructure:"MONGO_DATABASE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Auth and HTTP.
	AuthMode              string   `mapstructure:"AUTH_MODE"`
	JWTSecret             string   `mapstructure:"JWT_SECRET"`
	AllowUnscopedTripList bool     `mapstructure:"TRIPS_ALLOW_UNSCOPED_LIST"`
	CORSAllowedOrigins    []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Load reads .env, an optional config.yaml from "." or "./config", and the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return LoadFrom(viper.New(), ".", "./config")
}

// LoadFrom resolves configuration with the given viper instance and search paths.
func LoadFrom(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GENERATION_PROVIDER", ProviderGemini)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_BASE_URL", "")

	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "tripwise")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

	v.SetDefault("AUTH_MODE", AuthNone)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TRIPS_ALLOW_UNSCOPED_LIST", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
}

func (c *Config) normalize() {
	c.GenerationProvider = strings.ToLower(strings.TrimSpace(c.GenerationProvider))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.AuthMode = strings.ToLower(strings.TrimSpace(c.AuthMode))

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

// Validate checks enumerations and the connection settings each choice needs.
// Missing AI credentials are not an error here; generation reports them per call.
func (c *Config) Validate() error {
	switch c.GenerationProvider {
	case ProviderGemini, ProviderGeminiSDK, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported generation provider %q (use gemini, gemini-sdk or openai)", c.GenerationProvider)
	}

	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when STORE_DRIVER=postgres")
		}
	case StoreMongo:
		if c.MongoURL == "" {
			return errors.New("MONGO_URL is required when STORE_DRIVER=mongo")
		}
	case StoreFirestore:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required when STORE_DRIVER=firestore")
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}

	switch c.AuthMode {
	case AuthNone:
	case AuthJWT:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required when AUTH_MODE=jwt")
		}
	case AuthFirebase:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required when AUTH_MODE=firebase")
		}
	default:
		return fmt.Errorf("unsupported auth mode %q", c.AuthMode)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
