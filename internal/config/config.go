package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod production"`

	// APIKey guards the /api routes; empty leaves them open
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,ip"`

	SaveBackend  string `env:"SAVE_BACKEND" envDefault:"file" validate:"oneof=memory file gdata sqlite"`
	SaveDir      string `env:"SAVE_DIR" envDefault:"saves" validate:"required_if=SaveBackend file"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"saves/garden.db" validate:"required_if=SaveBackend sqlite"`
	GdataAppName string `env:"GDATA_APP_NAME" envDefault:"garden_idle" validate:"required_if=SaveBackend gdata"`
	CatalogPath  string `env:"CATALOG_PATH"`

	TickInterval     time.Duration `env:"TICK_INTERVAL" envDefault:"1s" validate:"min=10ms"`
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"30s" validate:"min=1s"`
	SaveWorkers      int           `env:"SAVE_WORKERS" envDefault:"1" validate:"min=1,max=8"`

	// AutoConfirmOffline credits offline rewards on load instead of waiting
	// for the player to confirm them.
	AutoConfirmOffline bool `env:"AUTO_CONFIRM_OFFLINE" envDefault:"false"`
}

// Load reads an optional .env file, then parses and validates the environment
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env files without overriding variables already set.
// A missing file is not an error; real env vars may be all there is.
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf(ErrMsgEnvFileLoad, f, err)
		}
	}
	return nil
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// Addr is the listen address for the host HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
