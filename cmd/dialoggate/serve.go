package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/config"
	"github.com/projectunified/unidialog-go/internal/dialog"
	"github.com/projectunified/unidialog-go/internal/gateway"
)

// loadConfig resolves the configuration and applies command line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.namespace != "" {
		cfg.DefaultNamespace = flags.namespace
	}
	if flags.apiAddr != "" {
		cfg.InternalAPIAddr = flags.apiAddr
	}
	if flags.healthAddr != "" {
		cfg.HealthAddr = flags.healthAddr
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

// registerBuiltins installs the actions every gateway ships with.
func registerBuiltins(mgr *dialog.Manager, logger *zap.Logger) {
	mgr.RegisterAction("log", func(player uuid.UUID, payload map[string]string) {
		logger.Info("dialog action",
			zap.Stringer("player", player),
			zap.Any("payload", payload),
		)
	})
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("dialoggate starting",
		zap.String("version", version),
		zap.String("namespace", cfg.DefaultNamespace),
		zap.String("internalAPI", cfg.InternalAPIAddr),
		zap.String("health", cfg.HealthAddr),
	)

	gw := gateway.New(cfg, logger)
	health := gateway.NewHealth(logger)

	mgr, err := dialog.New(dialog.Options{
		DefaultNamespace: cfg.DefaultNamespace,
		Events:           gw.Bus(),
		Players:          gw,
		Resolver:         gw,
		Logger:           logger,
		OnListening:      health.SetListening,
	})
	if err != nil {
		return fmt.Errorf("create dialog manager: %w", err)
	}
	mgr.Register()
	registerBuiltins(mgr, logger)

	lis, err := net.Listen("tcp", cfg.HealthAddr)
	if err != nil {
		return fmt.Errorf("health listen: %w", err)
	}
	go func() {
		if err := health.Serve(lis); err != nil {
			logger.Error("health server failed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:         cfg.InternalAPIAddr,
		Handler:      gw.InternalHandler(mgr),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("internal API listening", zap.String("addr", cfg.InternalAPIAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		logger.Error("internal API failed", zap.Error(runErr))
	}

	shutdown(logger, mgr, gw, srv, health)
	return runErr
}

// shutdown stops listening for clicks, drops every peer and then stops the
// servers. Failures are logged; shutdown always runs every step.
func shutdown(logger *zap.Logger, mgr *dialog.Manager, gw *gateway.Gateway, srv httpShutdowner, health stopper) {
	logger.Info("shutting down")
	mgr.Unregister()
	gw.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("internal API shutdown failed", zap.Error(err))
	}
	health.Stop()
}

type httpShutdowner interface {
	Shutdown(ctx context.Context) error
}

type stopper interface {
	Stop()
}
