package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	Profile      string `env:"PROFILE"`      // имя локального профиля (каталог с данными)
	ClientStore  string `env:"CLIENT_STORE"` // "fs" | "sqlite"
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	ScanDelayMS  int    `env:"SCAN_DELAY_MS"` // имитация задержки сканирования
	Remote       bool   `env:"REMOTE"`        // слать scan/query на сервер вместо локальной заглушки
	Version      bool   `env:"-"`             // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the DarkScope server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.Profile, "profile", cfg.Profile, "local profile name")
	flag.StringVar(&cfg.ClientStore, "store", cfg.ClientStore, "client storage backend: fs | sqlite")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "base path for the client sqlite storage")
	flag.BoolVar(&cfg.Remote, "remote", cfg.Remote, "use the remote scan/query endpoints")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.Profile == "" {
		cfg.Profile = "default"
	}
	if cfg.ClientStore != "sqlite" {
		cfg.ClientStore = "fs"
	}
	if cfg.ScanDelayMS <= 0 {
		cfg.ScanDelayMS = 1500
	}

	// Fill client defaults if empty
	if cfg.ClientDBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.ClientDBPath = filepath.Join(home, ".darkscope")
	}

	return cfg
}
