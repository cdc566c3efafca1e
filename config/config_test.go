package config

import (
	"os"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BIND_ADDRESS", "STORE_DRIVER", "SQLITE_PATH", "DATABASE_URL", "GEMINI_API_KEY", "API_KEY", "ADVICE_MODEL", "ADVICE_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.ListenAddr() != "127.0.0.1:3000" {
		t.Fatalf("listen addr = %q", cfg.ListenAddr())
	}
	if cfg.StoreDriver != DriverSQLite || cfg.SQLitePath != "prospera.db" {
		t.Fatalf("unexpected store config: %+v", cfg)
	}
	if cfg.AdviceTimeout != 10*time.Second {
		t.Fatalf("advice timeout = %v", cfg.AdviceTimeout)
	}
	if cfg.AdviceKey() != "" {
		t.Fatalf("expected empty advice key")
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/prospera")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "fallback-key")
	t.Setenv("ADVICE_TIMEOUT", "3s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != DriverPostgres {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AdviceKey() != "fallback-key" {
		t.Fatalf("advice key = %q", cfg.AdviceKey())
	}
	if cfg.AdviceTimeout != 3*time.Second {
		t.Fatalf("advice timeout = %v", cfg.AdviceTimeout)
	}
}

func TestValidate(t *testing.T) {
	base := Config{StoreDriver: DriverMemory, AdviceTimeout: time.Second}
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"memory ok", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.StoreDriver = "redis" }, true},
		{"postgres without url", func(c *Config) { c.StoreDriver = DriverPostgres }, true},
		{"sqlite without path", func(c *Config) { c.StoreDriver = DriverSQLite }, true},
		{"zero timeout", func(c *Config) { c.AdviceTimeout = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
