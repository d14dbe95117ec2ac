package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSONConfigSuccess(t *testing.T) {
	path := writeTempConfig(t, `{"pw-min":2,"pw-max":10,"elem-cnt-min":1,"elem-cnt-max":4,"skip":"100","limit":"50"}`)

	cfg := Default()
	if err := ParseJSONFile(&cfg, path); err != nil {
		t.Fatalf("ParseJSONFile: %v", err)
	}

	if cfg.PwMin != 2 || cfg.PwMax != 10 || cfg.ElemCntMax != 4 {
		t.Fatalf("unexpected config after parse: %+v", cfg)
	}
	if cfg.Skip != "100" || cfg.Limit != "50" {
		t.Fatalf("unexpected skip/limit: %+v", cfg)
	}
}

func TestParseJSONConfigMissingFile(t *testing.T) {
	cfg := Default()
	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := ParseJSONFile(&cfg, missing); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateDefaultsPass(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"pw-min > pw-max", func(c *Config) { c.PwMin = 5; c.PwMax = 3 }},
		{"elem-cnt-min > elem-cnt-max", func(c *Config) { c.ElemCntMin = 5; c.ElemCntMax = 3 }},
		{"elem-cnt-max > pw-max", func(c *Config) { c.PwMax = 4; c.ElemCntMax = 8 }},
		{"elem-cnt-max > KMax", func(c *Config) { c.PwMax = 16; c.ElemCntMax = 9 }},
		{"pw-min <= 0", func(c *Config) { c.PwMin = 0 }},
		{"pw-max > LenMax", func(c *Config) { c.PwMax = 17 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
