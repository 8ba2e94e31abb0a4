package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=cm dbname=cm")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTP.Port != 7080 {
		t.Errorf("HTTP.Port = %d, want 7080", cfg.HTTP.Port)
	}
	if cfg.Storage.Dir != "./uploads" {
		t.Errorf("Storage.Dir = %q, want ./uploads", cfg.Storage.Dir)
	}
	if cfg.Storage.BaseURL != "/files" {
		t.Errorf("Storage.BaseURL = %q, want /files", cfg.Storage.BaseURL)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DB_DSN is missing")
	}

	t.Setenv("DB_DSN", "host=localhost")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_ACCESS_SECRET is missing")
	}
}

func TestParseList(t *testing.T) {
	got := parseList(" a, b ,, c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("parseList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
