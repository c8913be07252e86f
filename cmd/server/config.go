package main

import (
	"time"

	"github.com/dmitrymomot/mailtheme/pkg/config"
	"github.com/dmitrymomot/mailtheme/pkg/email"
	"github.com/dmitrymomot/mailtheme/pkg/httpserver"
	"github.com/dmitrymomot/mailtheme/pkg/ratelimiter"
)

type appConfig struct {
	AppEnv           string        `env:"APP_ENV" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"mailtheme"`
	ThemeCatalogFile string        `env:"THEME_CATALOG_FILE"`
	PreviewCacheSize int           `env:"PREVIEW_CACHE_SIZE" envDefault:"256"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	TestEmailLimit ratelimiter.Config `envPrefix:"TEST_EMAIL_RATE_"`
}

type configs struct {
	app   appConfig
	http  httpserver.Config
	email email.Config
}

func loadConfigs() (configs, error) {
	var c configs
	if err := config.Load(&c.app); err != nil {
		return c, err
	}
	if err := config.Load(&c.http); err != nil {
		return c, err
	}
	if err := config.Load(&c.email); err != nil {
		return c, err
	}
	return c, nil
}
