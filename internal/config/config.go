package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds runtime parameters for dialoggate. Precedence, lowest first:
// defaults, config file, environment, command line flags.
type Config struct {
	DefaultNamespace   string   `json:"default_namespace" yaml:"default_namespace" toml:"default_namespace"`
	InternalAPIAddr    string   `json:"internal_api_addr" yaml:"internal_api_addr" toml:"internal_api_addr"`
	HealthAddr         string   `json:"health_addr" yaml:"health_addr" toml:"health_addr"`
	APIToken           string   `json:"api_token" yaml:"api_token" toml:"api_token"`
	OutboxSize         int      `json:"outbox_size" yaml:"outbox_size" toml:"outbox_size"`
	MaxPeers           int      `json:"max_peers" yaml:"max_peers" toml:"max_peers"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	Development        bool     `json:"development" yaml:"development" toml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultNamespace: "unidialog",
		InternalAPIAddr:  ":9091",
		HealthAddr:       ":9092",
		OutboxSize:       64,
		MaxPeers:         1000,
		LogLevel:         "info",
	}
}

// Load builds the configuration. path names a config file; when empty,
// DIALOGGATE_CONFIG is consulted and then the XDG config directory. A .env
// file in the working directory is loaded into the environment if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("DIALOGGATE_CONFIG")
	}
	if path == "" {
		path = xdgConfigFile()
	}
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func xdgConfigFile() string {
	p := filepath.Join(xdg.ConfigHome, "unidialog", "dialoggate.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func applyEnv(cfg *Config) {
	cfg.DefaultNamespace = getEnv("DIALOG_DEFAULT_NAMESPACE", cfg.DefaultNamespace)
	cfg.InternalAPIAddr = getEnv("INTERNAL_API_ADDR", cfg.InternalAPIAddr)
	cfg.HealthAddr = getEnv("HEALTH_ADDR", cfg.HealthAddr)
	cfg.APIToken = getEnv("INTERNAL_API_TOKEN", cfg.APIToken)
	cfg.OutboxSize = getEnvInt("OUTBOX_SIZE", cfg.OutboxSize)
	cfg.MaxPeers = getEnvInt("MAX_PEERS", cfg.MaxPeers)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Development = getEnvBool("DEVELOPMENT", cfg.Development)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
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
