package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
	Engagement    EngagementConfig
	Client        ClientConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// AuthConfig configures how the requester identity is read from session tokens.
// An empty JWTSecret means every visitor is treated as anonymous.
type AuthConfig struct {
	JWTSecret        string
	JWTIssuer        string
	CookieName       string
	InternalAPIToken string // Guards /api/internal routes, empty disables them
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	TraceSampleRatio  float64
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	MentorTTLSeconds    int  // Mentor cache TTL in seconds
	DisableMentorsCache bool // Read from DB on every request
}

// EngagementConfig drives phone normalization, link targets and message personalization
type EngagementConfig struct {
	PhoneRegion        string // ISO 3166-1 alpha-2, selects the numbering plan
	MailComposeBaseURL string
	WhatsAppWebBaseURL string
	WhatsAppAppBaseURL string
	AppOpenTimeout     time.Duration
	MenteePlaceholder  string
}

// ClientConfig is used by the terminal renderer to reach the API
type ClientConfig struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionToken   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("JWT_ISSUER", "mentorhub")
	v.SetDefault("SESSION_COOKIE_NAME", "session")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "") // OTLP over HTTP, empty disables tracing
	v.SetDefault("O11Y_TRACE_SAMPLE_RATIO", 1.0)
	v.SetDefault("O11Y_BE_SERVICE_NAME", "mentorhub-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "mentorhub")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "mentorhub-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("MENTOR_CACHE_TTL", 300) // 5 minutes in seconds
	v.SetDefault("DISABLE_MENTORS_CACHE", false)
	v.SetDefault("PHONE_DEFAULT_REGION", "IL")
	v.SetDefault("MAIL_COMPOSE_BASE_URL", "https://mail.google.com/mail/")
	v.SetDefault("WHATSAPP_WEB_BASE_URL", "https://wa.me/")
	v.SetDefault("WHATSAPP_APP_BASE_URL", "whatsapp://send")
	v.SetDefault("WHATSAPP_APP_TIMEOUT_MS", 2000)
	v.SetDefault("MENTEE_PLACEHOLDER", "Mentee")
	v.SetDefault("MENTORS_API_BASE_URL", "http://localhost:8081")
	v.SetDefault("MENTORS_API_TIMEOUT_SECONDS", 10)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		Auth: AuthConfig{
			JWTSecret:        v.GetString("JWT_SECRET"),
			JWTIssuer:        v.GetString("JWT_ISSUER"),
			CookieName:       v.GetString("SESSION_COOKIE_NAME"),
			InternalAPIToken: v.GetString("INTERNAL_API_TOKEN"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			TraceSampleRatio:  v.GetFloat64("O11Y_TRACE_SAMPLE_RATIO"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			MentorTTLSeconds:    v.GetInt("MENTOR_CACHE_TTL"),
			DisableMentorsCache: v.GetBool("DISABLE_MENTORS_CACHE"),
		},
		Engagement: EngagementConfig{
			PhoneRegion:        strings.ToUpper(strings.TrimSpace(v.GetString("PHONE_DEFAULT_REGION"))),
			MailComposeBaseURL: v.GetString("MAIL_COMPOSE_BASE_URL"),
			WhatsAppWebBaseURL: v.GetString("WHATSAPP_WEB_BASE_URL"),
			WhatsAppAppBaseURL: v.GetString("WHATSAPP_APP_BASE_URL"),
			AppOpenTimeout:     time.Duration(v.GetInt("WHATSAPP_APP_TIMEOUT_MS")) * time.Millisecond,
			MenteePlaceholder:  v.GetString("MENTEE_PLACEHOLDER"),
		},
		Client: ClientConfig{
			APIBaseURL:     strings.TrimRight(v.GetString("MENTORS_API_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("MENTORS_API_TIMEOUT_SECONDS")) * time.Second,
			SessionToken:   v.GetString("MENTORS_API_SESSION_TOKEN"),
		},
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks the settings needed to serve the API
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if err := c.Engagement.Validate(); err != nil {
		return err
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// Validate checks the settings the engagement core depends on.
// The terminal renderer needs these without any database settings.
func (e *EngagementConfig) Validate() error {
	if len(e.PhoneRegion) != 2 {
		return fmt.Errorf("PHONE_DEFAULT_REGION must be a two-letter region code, got %q", e.PhoneRegion)
	}
	if e.MailComposeBaseURL == "" {
		return fmt.Errorf("MAIL_COMPOSE_BASE_URL is required")
	}
	if e.WhatsAppWebBaseURL == "" || e.WhatsAppAppBaseURL == "" {
		return fmt.Errorf("WHATSAPP_WEB_BASE_URL and WHATSAPP_APP_BASE_URL are required")
	}
	if e.AppOpenTimeout <= 0 {
		return fmt.Errorf("WHATSAPP_APP_TIMEOUT_MS must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

// RequesterAuthEnabled reports whether session tokens are verified
func (c *Config) RequesterAuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}
