package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/go-relief/auth"
	"github.com/diewo77/go-relief/internal/config"
	"github.com/diewo77/go-relief/internal/db"
	"github.com/diewo77/go-relief/internal/logger"
	"github.com/diewo77/go-relief/internal/server"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/diewo77/go-relief/view"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// app holds what every subcommand needs: configuration, logger and an open database.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	db  *gorm.DB
}

func bootstrap(envFile string) (*app, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.Setup(cfg.Log)
	log.Info(cfg.String())

	conn, err := db.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, db: conn}, nil
}

func (a *app) close() {
	if err := db.Close(a.db); err != nil {
		a.log.WithError(err).Warn("close database")
	}
}

func runMigrate(envFile string) error {
	a, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	defer a.close()
	if err := db.Migrate(a.db, a.cfg, a.log); err != nil {
		return err
	}
	a.log.Info("migrations completed")
	return nil
}

func runSeed(envFile string) error {
	a, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	defer a.close()
	if err := db.Migrate(a.db, a.cfg, a.log); err != nil {
		return err
	}
	n, err := db.Seed(a.db)
	if err != nil {
		return err
	}
	a.log.WithField("created", n).Info("seed completed")
	return nil
}

func runServe(ctx context.Context, envFile string) error {
	a, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	defer a.close()

	if err := db.Migrate(a.db, a.cfg, a.log); err != nil {
		return err
	}
	if a.cfg.App.Seed {
		if _, err := db.Seed(a.db); err != nil {
			return err
		}
	}
	view.SetDevMode(a.cfg.App.Dev)

	sessions := auth.NewSessions(a.cfg.Session.Secret, a.cfg.Session.TTL)
	provider := store.NewProvider(a.db, a.log, a.cfg.Database.QueryTimeout)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      server.New(provider, sessions, a.log),
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, a.log)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, log *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}
