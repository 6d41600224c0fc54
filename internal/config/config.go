package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/recruitedge/outreach/internal/infra/integration/anthropic"
	"github.com/recruitedge/outreach/internal/infra/mail"
	"github.com/recruitedge/outreach/internal/usecase"
)

type Config struct {
	Port string

	LeadsFile   string
	DatabaseURL string

	AnthropicAPIKey    string
	AnthropicModel     string
	AnthropicMaxTokens int
	ParseStrategy      usecase.ParseStrategy

	MailProvider string
	ResendAPIKey string
	MailFrom     string
	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string

	RabbitMQURL string

	CORSOrigins        []string
	RateLimitPerMinute int
	TrustProxy         bool

	StaleAfter         time.Duration
	StaleCheckInterval time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Could not read .env: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LeadsFile:       getEnv("LEADS_FILE", "leads.json"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", anthropic.DefaultModel),
		MailProvider:    strings.ToLower(getEnv("MAIL_PROVIDER", mail.ProviderResend)),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		MailFrom:        getEnv("MAIL_FROM", "RecruitEdge <onboarding@resend.dev>"),
		MailHost:        os.Getenv("MAIL_HOST"),
		MailUser:        os.Getenv("MAIL_USER"),
		MailPass:        os.Getenv("MAIL_PASS"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.AnthropicMaxTokens, err = getInt("ANTHROPIC_MAX_TOKENS", anthropic.DefaultMaxTokens); err != nil {
		return nil, err
	}
	if cfg.MailPort, err = getInt("MAIL_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.TrustProxy, err = getBool("TRUST_PROXY", false); err != nil {
		return nil, err
	}
	if cfg.StaleAfter, err = getDuration("STALE_AFTER", 0); err != nil {
		return nil, err
	}
	if cfg.StaleCheckInterval, err = getDuration("STALE_CHECK_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.StaleAfter < 0 {
		return nil, fmt.Errorf("STALE_AFTER must not be negative, got %s", cfg.StaleAfter)
	}
	if cfg.StaleAfter > 0 && cfg.StaleCheckInterval <= 0 {
		return nil, fmt.Errorf("STALE_CHECK_INTERVAL must be positive when STALE_AFTER is set, got %s", cfg.StaleCheckInterval)
	}
	if cfg.ParseStrategy, err = usecase.ParseStrategyFromString(os.Getenv("PARSE_STRATEGY")); err != nil {
		return nil, err
	}

	switch cfg.MailProvider {
	case mail.ProviderResend, mail.ProviderSMTP:
	default:
		return nil, fmt.Errorf("MAIL_PROVIDER must be %q or %q, got %q", mail.ProviderResend, mail.ProviderSMTP, cfg.MailProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 72h: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
