package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "default_namespace: shop\ninternal_api_addr: :7000\nmax_peers: 5\ncors_allowed_origins: [\"http://a\"]\n")
	cfg := Default()
	if err := LoadFile(p, cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultNamespace != "shop" || cfg.InternalAPIAddr != ":7000" || cfg.MaxPeers != 5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"http://a"}) {
		t.Errorf("cors = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.OutboxSize != 64 || cfg.HealthAddr != ":9092" {
		t.Errorf("fields absent from the file must keep defaults: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"default_namespace":"j","outbox_size":8,"development":true}`)
	cfg := Default()
	if err := LoadFile(p, cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultNamespace != "j" || cfg.OutboxSize != 8 || !cfg.Development {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "default_namespace=\"t\"\nhealth_addr=\":1\"\nlog_level=\"debug\"\n")
	cfg := Default()
	if err := LoadFile(p, cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultNamespace != "t" || cfg.HealthAddr != ":1" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := Default()
	if err := LoadFile("", cfg); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	if err := LoadFile(writeTempFile(t, d, "cfg.txt", "x"), cfg); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if err := LoadFile(writeTempFile(t, d, "bad.json", "{"), cfg); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := LoadFile(filepath.Join(d, "missing.yaml"), cfg); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "default_namespace: file\nmax_peers: 5\n")
	t.Setenv("DIALOG_DEFAULT_NAMESPACE", "env")
	t.Setenv("OUTBOX_SIZE", "16")
	t.Setenv("MAX_PEERS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a, http://b,")
	t.Setenv("DEVELOPMENT", "true")
	t.Setenv("INTERNAL_API_TOKEN", "tok")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultNamespace != "env" {
		t.Errorf("env should win over file, got %q", cfg.DefaultNamespace)
	}
	if cfg.OutboxSize != 16 {
		t.Errorf("outbox = %d", cfg.OutboxSize)
	}
	if cfg.MaxPeers != 5 {
		t.Errorf("invalid env ints fall back to the file value, got %d", cfg.MaxPeers)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"http://a", "http://b"}) {
		t.Errorf("cors = %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.Development {
		t.Error("development should be true")
	}
	if cfg.APIToken != "tok" {
		t.Errorf("token = %q", cfg.APIToken)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "default_namespace=\"fromenv\"\n")
	t.Setenv("DIALOGGATE_CONFIG", p)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultNamespace != "fromenv" {
		t.Errorf("namespace = %q", cfg.DefaultNamespace)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}
