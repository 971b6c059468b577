package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Pricing.ResaleDiscount != 0.85 {
		t.Errorf("resale discount = %v, want 0.85", cfg.Pricing.ResaleDiscount)
	}
	if cfg.Pricing.DefaultMargin != 35 {
		t.Errorf("default margin = %v, want 35", cfg.Pricing.DefaultMargin)
	}
	if cfg.Schedule.ReminderCron == "" {
		t.Error("reminder cron is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("RESALE_DISCOUNT_FACTOR", "0.80")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Pricing.ResaleDiscount != 0.80 {
		t.Errorf("resale discount = %v, want 0.80", cfg.Pricing.ResaleDiscount)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"zero discount", func(c *Config) { c.Pricing.ResaleDiscount = 0 }},
		{"discount above one", func(c *Config) { c.Pricing.ResaleDiscount = 1.2 }},
		{"negative margin", func(c *Config) { c.Pricing.DefaultMargin = -1 }},
		{"empty cron", func(c *Config) { c.Schedule.ReminderCron = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
