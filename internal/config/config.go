package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Sheets    SheetsConfig    `toml:"sheets"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // seconds
	WriteTimeout    int    `toml:"write_timeout"`    // seconds
	IdleTimeout     int    `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int    `toml:"shutdown_timeout"` // seconds
	StaticDir       string `toml:"static_dir"`
}

// SheetsConfig Google Sheets ledger settings
type SheetsConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	CredentialsFile string `toml:"credentials_file"`
	SlotSheet       string `toml:"slot_sheet"`
	SlotRange       string `toml:"slot_range"`
	NamesRange      string `toml:"names_range"`
	BookingsRange   string `toml:"bookings_range"`
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig per-IP API rate limiting settings
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// CORSConfig cross-origin settings for the frontend
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load reads and validates the TOML configuration file
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// PORT env wins over the file so hosting platforms can inject it
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Server.HTTPPort = p
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			StaticDir:       "public",
		},
		Sheets: SheetsConfig{
			CredentialsFile: "credentials.json",
			SlotSheet:       "Slots",
			SlotRange:       "Slots!A1:F20",
			NamesRange:      "Nomi!A2:A",
			BookingsRange:   "Prenotazioni!A1:C1",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "prenota",
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("config: sheets.spreadsheet_id is required")
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		return fmt.Errorf("config: ratelimit.rps must be positive")
	}
	return nil
}
