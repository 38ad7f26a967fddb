package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.DBName = "healthhub"
	cfg.Authorization.CasbinModelPath = "casbin_model.conf"
	cfg.Authentication.Paseto.Mode = "local"
	cfg.Authentication.Paseto.LocalKeyHex = strings.Repeat("a", 64)
	cfg.Authentication.EncryptionKey = strings.Repeat("b", 64)
	return cfg
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"missing database host", func(c *Config) { c.Database.Host = "" }},
		{"missing database name", func(c *Config) { c.Database.DBName = "" }},
		{"missing casbin model path", func(c *Config) { c.Authorization.CasbinModelPath = "" }},
		{"local mode without key", func(c *Config) { c.Authentication.Paseto.LocalKeyHex = "" }},
		{"unknown paseto mode", func(c *Config) { c.Authentication.Paseto.Mode = "v2" }},
		{"public mode without keys", func(c *Config) {
			c.Authentication.Paseto.Mode = "public"
			c.Authentication.Paseto.SecretKeyHex = ""
			c.Authentication.Paseto.PublicKeyHex = ""
		}},
		{"short encryption key", func(c *Config) { c.Authentication.EncryptionKey = "deadbeef" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
