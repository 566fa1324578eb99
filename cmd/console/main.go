// Command console serves the admin console's local session API.
//
//	@title			Admin Console Session API
//	@version		1.0
//	@description	Local session, capability and navigation API of the admin console.
//	@host			localhost:8080
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/consoleiam/admin-console/internal/api"
	"github.com/consoleiam/admin-console/internal/api/metrics"
	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/session"
	"github.com/consoleiam/admin-console/internal/infrastructure/config"
	"github.com/consoleiam/admin-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("console stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; fall back to a plain one.
		logger.Init(logger.Options{Service: "admin-console"})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "admin-console",
	})
	log.Info().
		Str("env", cfg.Env).
		Str("credential_store", cfg.Credential.Store).
		Str("login_mode", cfg.Login.Mode).
		Msg("configuration loaded")

	var closers []func(context.Context)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i](closeCtx)
		}
	}()

	c := codec.New(codec.WithCacheSize(cfg.Session.DecodeCacheSize))

	slot, closeSlot, err := newCredentialStore(ctx, cfg, c)
	if err != nil {
		return err
	}
	if closeSlot != nil {
		closers = append(closers, closeSlot)
	}

	store := session.NewStore(c, slot,
		session.WithLogger(logger.Component("session")),
		session.WithDegradedClaims(cfg.Session.AllowDegradedClaims),
		session.WithTransitionHook(metrics.ObserveTransition),
	)
	if err := store.Init(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore persisted credential")
	}

	auth, err := newAuthStack(ctx, cfg)
	if err != nil {
		return err
	}
	if auth.close != nil {
		closers = append(closers, auth.close)
	}

	e := api.NewRouter(api.Deps{
		Store:     store,
		Codec:     c,
		Auth:      auth.auth,
		Registrar: auth.registrar,
		Health:    healthChecks(slot, auth.directory),
		Log:       logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
