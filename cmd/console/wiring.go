package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/consoleiam/admin-console/internal/api/handler"
	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
	"github.com/consoleiam/admin-console/internal/core/service"
	"github.com/consoleiam/admin-console/internal/infrastructure/config"
	mongodb "github.com/consoleiam/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/consoleiam/admin-console/internal/infrastructure/db/redis"
	"github.com/consoleiam/admin-console/internal/infrastructure/storage"
	"github.com/consoleiam/admin-console/internal/infrastructure/upstream"
	"github.com/consoleiam/admin-console/pkg/logger"
)

// newCredentialStore builds the slot selected by CREDENTIAL_STORE. The close
// func is nil when the slot holds no connection.
func newCredentialStore(ctx context.Context, cfg *config.Config, c *codec.Codec) (ports.CredentialStore, func(context.Context), error) {
	switch cfg.Credential.Store {
	case config.StoreMemory:
		return storage.NewMemorySlot(), nil, nil
	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		slot := redisdb.NewCredentialSlot(client,
			redisdb.WithKey(cfg.Credential.Key),
			redisdb.WithExpiry(c.ExpiresAt),
		)
		closeFn := func(context.Context) {
			if err := client.Close(); err != nil {
				log := logger.Get()
				log.Error().Err(err).Msg("close redis client")
			}
		}
		return slot, closeFn, nil
	default:
		return storage.NewFileSlot(cfg.Credential.Path), nil, nil
	}
}

// authStack bundles what the selected LOGIN_MODE provides.
type authStack struct {
	auth      ports.Authenticator
	registrar handler.Registrar
	directory ports.Pinger
	close     func(context.Context)
}

func newAuthStack(ctx context.Context, cfg *config.Config) (*authStack, error) {
	if cfg.Login.Mode == config.LoginRemote {
		return &authStack{auth: upstream.NewLoginClient(cfg.Login.URL, cfg.Login.Timeout)}, nil
	}

	l := &authStack{}
	var repo ports.UserRepository
	switch cfg.Login.Directory {
	case config.DirectoryMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		repo = users
		l.directory = users
		l.close = func(ctx context.Context) {
			if err := client.Disconnect(ctx); err != nil {
				log := logger.Get()
				log.Error().Err(err).Msg("disconnect mongo")
			}
		}
	default:
		repo = storage.NewMemoryUsers()
	}

	svc := service.NewAuthService(repo, cfg.Login.JWTSecret, cfg.Login.TokenTTL)
	l.auth = svc
	l.registrar = svc

	if cfg.Login.SeedUsername != "" {
		if err := seed(ctx, svc, cfg.Login.SeedUsername, cfg.Login.SeedPassword); err != nil {
			if l.close != nil {
				l.close(ctx)
			}
			return nil, err
		}
	}
	return l, nil
}

// seed registers a super administrator holding the whole catalogue. An
// existing account is left as it is.
func seed(ctx context.Context, svc *service.AuthService, username, password string) error {
	catalogue := domain.Catalogue()
	permissions := make([]string, len(catalogue))
	for i, p := range catalogue {
		permissions[i] = string(p)
	}

	_, err := svc.Register(ctx, service.RegisterInput{
		Username:    username,
		Password:    password,
		FirstName:   strings.ToUpper(username[:1]) + username[1:],
		Roles:       []string{string(domain.RoleSuperAdmin)},
		Permissions: permissions,
	})
	switch {
	case err == nil:
		log := logger.Get()
		log.Info().Str("username", username).Msg("seeded development super admin")
		return nil
	case errors.Is(err, domain.ErrUserExists):
		return nil
	default:
		return fmt.Errorf("seed user %q: %w", username, err)
	}
}

// healthChecks collects the backends that can be pinged.
func healthChecks(slot ports.CredentialStore, directory ports.Pinger) map[string]ports.Pinger {
	checks := make(map[string]ports.Pinger, 2)
	if p, ok := slot.(ports.Pinger); ok {
		checks["credential_store"] = p
	}
	if directory != nil {
		checks["user_directory"] = directory
	}
	return checks
}
