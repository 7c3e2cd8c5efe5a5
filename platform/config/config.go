// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"contact_phone_backend/platform/phone"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PhoneConfig provides settings for the phone formatting module.
type PhoneConfig interface {
	GetPhoneRules() phone.Rules
	GetPhoneRulesSource() string
	GetBatchLimit() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
	RateLimitRPS   float64
	RateLimitBurst int

	PhoneRules       phone.Rules
	PhoneRulesSource string
	BatchLimit       int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// PhoneConfig
func (c *Config) GetPhoneRules() phone.Rules  { return c.PhoneRules }
func (c *Config) GetPhoneRulesSource() string { return c.PhoneRulesSource }
func (c *Config) GetBatchLimit() int          { return c.BatchLimit }

// Load reads configuration from the environment, after merging a .env file
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := containsWildcard(corsOrigins)
	if len(corsOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ORIGINS must list at least one origin or *")
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a positive number")
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer")
	}
	batchLimit, err := strconv.Atoi(getEnv("PHONE_BATCH_LIMIT", "500"))
	if err != nil || batchLimit < 1 {
		return nil, fmt.Errorf("PHONE_BATCH_LIMIT must be a positive integer")
	}

	rules, source, err := LoadPhoneRules(getEnv("PHONE_RULES_FILE", ""), getEnv("PHONE_DEFAULT_REGION", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:     rps,
		RateLimitBurst:   burst,
		PhoneRules:       rules,
		PhoneRulesSource: source,
		BatchLimit:       batchLimit,
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ORIGINS is *")
	}

	return cfg, nil
}

// LoadPhoneRules returns the rules in path, or the defaults when path is empty,
// with region overriding the default region when set. The second return value
// names where the rules came from.
func LoadPhoneRules(path, region string) (phone.Rules, string, error) {
	rules := phone.DefaultRules()
	source := "defaults"
	if path != "" {
		loaded, err := phone.LoadRules(path)
		if err != nil {
			return phone.Rules{}, "", fmt.Errorf("load phone rules from %s: %w", path, err)
		}
		rules = loaded
		source = path
	}
	if region != "" {
		rules.DefaultRegion = strings.ToUpper(strings.TrimSpace(region))
		if err := rules.Validate(); err != nil {
			return phone.Rules{}, "", fmt.Errorf("PHONE_DEFAULT_REGION: %w", err)
		}
	}
	return rules, source, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
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
