// Command server serves the email editor's colour-token and theme API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/mailtheme/pkg/api"
	"github.com/dmitrymomot/mailtheme/pkg/email"
	"github.com/dmitrymomot/mailtheme/pkg/httpserver"
	"github.com/dmitrymomot/mailtheme/pkg/logger"
	"github.com/dmitrymomot/mailtheme/pkg/preview"
	"github.com/dmitrymomot/mailtheme/pkg/ratelimiter"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfigs()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.app.AppEnv, cfg.app.ServiceName),
		logger.WithLevelName(cfg.app.LogLevel),
		logger.WithContextExtractors(api.RequestIDExtractor),
	)
	logger.SetAsDefault(log)

	catalog, err := theme.LoadCatalogFile(theme.Builtin(), cfg.app.ThemeCatalogFile)
	if err != nil {
		return fmt.Errorf("load theme catalog: %w", err)
	}
	log.InfoContext(ctx, "theme catalog loaded",
		slog.Int("themes", catalog.Len()),
		slog.String("overlay", cfg.app.ThemeCatalogFile),
	)

	sender, err := email.NewSender(cfg.email)
	if err != nil {
		return fmt.Errorf("init email sender: %w", err)
	}
	if !cfg.email.UsePostmark() {
		log.InfoContext(ctx, "test emails are written to disk", slog.String("dir", cfg.email.DevDir))
	}

	limiter, err := ratelimiter.New(cfg.app.TestEmailLimit)
	if err != nil {
		return fmt.Errorf("init test email limiter: %w", err)
	}
	defer limiter.Close()

	handler := api.New(catalog,
		api.WithLogger(log),
		api.WithSender(sender),
		api.WithTestEmailLimiter(limiter),
		api.WithTimeout(cfg.app.RequestTimeout),
		api.WithPreviews(preview.NewRenderer(catalog, preview.WithCacheSize(cfg.app.PreviewCacheSize))),
	)

	srv := httpserver.NewFromConfig(cfg.http, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.Routes())
}
