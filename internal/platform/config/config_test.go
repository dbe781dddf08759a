package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		Environment:        "development",
		SeedAdminEmail:     "admin@example.com",
		SeedAdminPassword:  "changeme",
		SeedSampleData:     true,
		PayslipDir:         "storage/payslips",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 120,
	}
}

func TestValidateAcceptsDevelopmentDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	cfg.SeedAdminPassword = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateProductionRequirements(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"sample seed enabled", func(c *Config) { c.SeedSampleData = true }},
		{"missing admin password", func(c *Config) { c.SeedAdminPassword = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Environment = "production"
			cfg.SeedSampleData = false
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := validConfig()
	cfg.MaxBodyBytes = 512
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected body size error")
	}

	cfg = validConfig()
	cfg.RateLimitPerMinute = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected rate limit error")
	}

	cfg = validConfig()
	cfg.TokenTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected token ttl error")
	}
}
