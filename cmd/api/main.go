package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"errorviews/config"
	_ "errorviews/docs" // Swagger docs
	"errorviews/internal/httpserver"
	"errorviews/internal/model"
	"errorviews/pkg/log"
)

// @title       Error Views API
// @description Exception-to-view resolution demo: status declarations, exception handlers and a switchable mapping table.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, opts rootOptions) error {
	// 1. Configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.strategy != "" {
		cfg.Profile.Strategy = model.Strategy(strings.ToLower(opts.strategy))
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --strategy: %w", err)
		}
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile := cfg.ActiveProfile()
	logger.Info(ctx, "Starting Error Views...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Active profile: %s (%s)", profile.ID(), profile)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Profile:     profile,
		Resolver: httpserver.ResolverConfig{
			Enabled:            cfg.Resolver.Enabled,
			MappingsFile:       cfg.Resolver.MappingsFile,
			DatabaseView:       cfg.Resolver.DatabaseView,
			ExceptionAttribute: cfg.Resolver.ExceptionAttribute,
			DefaultErrorView:   cfg.Resolver.DefaultErrorView,
			StatusCodes:        cfg.Resolver.StatusCodes,
		},
		RateLimitPerMin: cfg.Admin.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
