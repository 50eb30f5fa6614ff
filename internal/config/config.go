package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName     string
	AppEnv      string
	AppPort     string
	StaticDir   string
	DatabaseURL string
	AutoMigrate bool
	RedisURL    string
	NATSURL     string
	NATSSubject string

	LeadWriteTimeout time.Duration

	Email EmailConfig
	AI    AIConfig
}

// EmailConfig groups mail relay settings.
type EmailConfig struct {
	Enabled        bool
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	SMTPSSL        bool
	From           string
	ContactTo      string
	ReadingSubject string
}

// AIConfig groups settings of the delegated text-generation endpoint.
type AIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Delegated reports whether an external text-generation endpoint is configured.
func (c AIConfig) Delegated() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("AURORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Mestra Aurora API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3001")
	v.SetDefault("app.static_dir", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("nats.subject", "aurora.leads.created")
	v.SetDefault("lead.write_timeout", "5s")
	v.SetDefault("email.enabled", false)
	v.SetDefault("smtp.host", "smtp.mailersend.net")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.ssl", false)
	v.SetDefault("email.from", "Mestra Aurora <noreply@mestraaurora.xyz>")
	v.SetDefault("email.contact_to", "contact@mestraaurora.xyz")
	v.SetDefault("email.reading_subject", "Sua leitura da Mestra Aurora")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.max_tokens", 2048)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.cache_ttl", "24h")
}

func fromViper(v *viper.Viper) (Config, error) {
	leadTimeout, err := parseDuration(v, "lead.write_timeout", 5*time.Second)
	if err != nil {
		return Config{}, err
	}

	aiTimeout, err := parseDuration(v, "ai.timeout", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	cacheTTL, err := parseDuration(v, "ai.cache_ttl", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		StaticDir:        v.GetString("app.static_dir"),
		DatabaseURL:      v.GetString("database.url"),
		AutoMigrate:      v.GetBool("database.auto_migrate"),
		RedisURL:         v.GetString("redis.url"),
		NATSURL:          v.GetString("nats.url"),
		NATSSubject:      v.GetString("nats.subject"),
		LeadWriteTimeout: leadTimeout,
		Email: EmailConfig{
			Enabled:        v.GetBool("email.enabled"),
			SMTPHost:       strings.TrimSpace(v.GetString("smtp.host")),
			SMTPPort:       v.GetInt("smtp.port"),
			SMTPUser:       v.GetString("smtp.user"),
			SMTPPassword:   v.GetString("smtp.pass"),
			SMTPSSL:        v.GetBool("smtp.ssl"),
			From:           v.GetString("email.from"),
			ContactTo:      v.GetString("email.contact_to"),
			ReadingSubject: v.GetString("email.reading_subject"),
		},
		AI: AIConfig{
			APIKey:    v.GetString("ai.api_key"),
			BaseURL:   v.GetString("ai.base_url"),
			Model:     v.GetString("ai.model"),
			MaxTokens: v.GetInt("ai.max_tokens"),
			Timeout:   aiTimeout,
			CacheTTL:  cacheTTL,
		},
	}

	if cfg.Email.Enabled && cfg.Email.SMTPHost == "" {
		return Config{}, fmt.Errorf("smtp host must be provided when email delivery is enabled")
	}

	if cfg.Email.SMTPPort <= 0 {
		cfg.Email.SMTPPort = 587
	}

	if cfg.AI.MaxTokens <= 0 {
		cfg.AI.MaxTokens = 2048
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}
