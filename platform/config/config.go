// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// NotificationConfig provides settings for the notification module.
type NotificationConfig interface {
	GetStudioName() string
	GetOwnerEmail() string
}

// WhatsAppConfig provides settings for the WhatsApp hand-off.
type WhatsAppConfig interface {
	GetWhatsAppNumber() string
	GetWhatsAppGatewayURL() string
	GetWhatsAppGatewayKey() string
}

// PricingConfig selects between the two pricing policies of the quote builder.
type PricingConfig interface {
	// IsFixedPricing reports whether services carry base prices and the
	// tiered discount applies. When false every service is quoted as custom.
	IsFixedPricing() bool
}

// =============================================================================
// Config
// =============================================================================

const (
	// PricingModeFixed enables per-service base prices and the tiered discount.
	PricingModeFixed = "fixed"
	// PricingModeCustom quotes every selection as "custom", with no totals.
	PricingModeCustom = "custom"
)

type Config struct {
	Env              string
	HTTPAddr         string
	DatabaseURL      string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	StudioName       string
	OwnerEmail       string
	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	WhatsAppNumber   string
	WhatsAppGWURL    string
	WhatsAppGWKey    string
	PricingMode      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")
	smtpHost := getEnv("SMTP_HOST", "")

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		StudioName:       getEnv("STUDIO_NAME", "PXPLabs"),
		OwnerEmail:       getEnv("OWNER_EMAIL", ""),
		EmailEnabled:     emailEnabled && smtpHost != "",
		SMTPHost:         smtpHost,
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "PXPLabs"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", ""),
		WhatsAppNumber:   getEnv("WHATSAPP_NUMBER", "919381904726"),
		WhatsAppGWURL:    getEnv("WHATSAPP_GATEWAY_URL", ""),
		WhatsAppGWKey:    getEnv("WHATSAPP_GATEWAY_KEY", ""),
		PricingMode:      strings.ToLower(getEnv("PRICING_MODE", PricingModeCustom)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.PricingMode != PricingModeFixed && cfg.PricingMode != PricingModeCustom {
		return nil, fmt.Errorf("PRICING_MODE must be %q or %q", PricingModeFixed, PricingModeCustom)
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.EmailEnabled && cfg.OwnerEmail == "" {
		return nil, fmt.Errorf("OWNER_EMAIL is required when email is enabled")
	}
	if cfg.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string        { return c.DatabaseURL }
func (c *Config) GetHTTPAddr() string           { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool         { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string      { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool       { return c.CORSAllowCreds }
func (c *Config) GetEmailEnabled() bool         { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string           { return c.SMTPHost }
func (c *Config) GetSMTPPort() int              { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string       { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string       { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string      { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string   { return c.EmailFromAddress }
func (c *Config) GetStudioName() string         { return c.StudioName }
func (c *Config) GetOwnerEmail() string         { return c.OwnerEmail }
func (c *Config) GetWhatsAppNumber() string     { return c.WhatsAppNumber }
func (c *Config) GetWhatsAppGatewayURL() string { return c.WhatsAppGWURL }
func (c *Config) GetWhatsAppGatewayKey() string { return c.WhatsAppGWKey }
func (c *Config) IsFixedPricing() bool          { return c.PricingMode == PricingModeFixed }

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
