package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/toolrent/admin-gateway/config"
	"github.com/toolrent/admin-gateway/internal/adapters/devauth"
	"github.com/toolrent/admin-gateway/internal/adapters/keycloak"
	"github.com/toolrent/admin-gateway/internal/adapters/toolrent"
	"github.com/toolrent/admin-gateway/internal/adapters/vault"
	"github.com/toolrent/admin-gateway/internal/ports"
	"github.com/toolrent/admin-gateway/internal/service"
)

const redisPingTimeout = 5 * time.Second

// ServiceContainer holds the gateway's wired services.
type ServiceContainer struct {
	Store   *service.SessionStore
	Catalog *service.CatalogService
	Reports *service.ReportService

	redisClient redis.UniversalClient
}

// ServiceDeps contains dependencies for building services.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices wires adapters and services from configuration. The
// returned container owns the Redis connection (if any); callers must
// Close it on shutdown.
func NewServices(ctx context.Context, deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service dependencies are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	container := &ServiceContainer{}

	// The backend client reads the bearer token lazily so it can be
	// constructed before the session store that supplies it.
	backend, err := toolrent.New(toolrent.Options{
		BaseURL: cfg.Backend.BaseURL,
		Token: func() string {
			if container.Store == nil {
				return ""
			}
			sess, ok := container.Store.Current()
			if !ok {
				return ""
			}
			return sess.Token
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}

	stateVault, redisClient, err := buildVault(ctx, cfg.Vault, logger)
	if err != nil {
		return nil, err
	}
	container.redisClient = redisClient

	gateway, err := buildAuthGateway(ctx, cfg, backend)
	if err != nil {
		if cerr := container.Close(); cerr != nil {
			logger.Warn("close services after gateway failure", "error", cerr)
		}
		return nil, err
	}
	logger.Info("auth gateway ready", "mode", cfg.Auth.Mode)

	container.Store = service.NewSessionStore(service.SessionStoreOptions{
		Gateway:     gateway,
		Vault:       stateVault,
		RedirectURI: cfg.Auth.RedirectURI,
		Logger:      logger,
	})
	container.Catalog = service.NewCatalogService(service.CatalogServiceOptions{
		Tools:   toolrent.NewToolClient(backend),
		Clients: toolrent.NewClientRegistry(backend),
		Rates:   toolrent.NewRateClient(backend),
	})
	container.Reports = service.NewReportService(service.ReportServiceOptions{
		Source: toolrent.NewReportClient(backend),
	})

	return container, nil
}

// Close releases connections held by the container.
func (c *ServiceContainer) Close() error {
	if c == nil || c.redisClient == nil {
		return nil
	}
	if err := c.redisClient.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}

// buildVault selects the persistent state vault. The Redis client is
// returned alongside so the caller can close it on shutdown.
//
//nolint:ireturn // ports.StateVault keeps the file/redis choice behind config.
func buildVault(
	ctx context.Context,
	cfg config.VaultConfig,
	logger *slog.Logger,
) (ports.StateVault, redis.UniversalClient, error) {
	switch cfg.Backend {
	case config.VaultBackendRedis:
		client, err := connectRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("state vault ready", "backend", "redis", "addr", cfg.RedisAddr)
		return vault.NewRedisVaultWithPrefix(client, cfg.RedisPrefix), client, nil

	case config.VaultBackendFile:
		fv, err := vault.NewFileVault(cfg.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open state vault: %w", err)
		}
		logger.Info("state vault ready", "backend", "file", "path", cfg.FilePath)
		return fv, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown vault backend %q", cfg.Backend)
	}
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func connectRedis(ctx context.Context, cfg config.VaultConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// buildAuthGateway selects the AuthGateway implementation for the
// configured auth mode.
//
//nolint:ireturn // ports.AuthGateway keeps the mode choice behind config.
func buildAuthGateway(
	ctx context.Context,
	cfg *config.AppConfig,
	backend *toolrent.Client,
) (ports.AuthGateway, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeBackend:
		return toolrent.NewAuthClient(backend), nil

	case config.AuthModeKeycloak:
		kc := cfg.Auth.Keycloak
		prov, err := keycloak.NewProvider(ctx, keycloak.Config{
			ClientID:     kc.ClientID,
			ClientSecret: kc.ClientSecret,
			IssuerURL:    kc.IssuerURL,
			Scope:        kc.Scope,
			LogoutURL:    kc.LogoutURL,
		})
		if err != nil {
			return nil, fmt.Errorf("build keycloak provider: %w", err)
		}
		return prov, nil

	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			Username: cfg.Auth.DevAuth.Username,
			Role:     cfg.Auth.DevAuth.Role,
			Email:    cfg.Auth.DevAuth.Email,
			Password: cfg.Auth.DevAuth.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("build dev auth provider: %w", err)
		}
		return prov, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
