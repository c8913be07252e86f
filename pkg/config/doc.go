// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs via `env` and `envDefault` tags. Each struct type
// is parsed once and cached.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Parsing failures wrap ErrParsingConfig; unreadable .env files passed to
// LoadEnv wrap ErrLoadingEnvFile.
package config
