package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mrraghuvarun/talent/config"
	"github.com/mrraghuvarun/talent/internal/adapters/filesession"
	redisadapter "github.com/mrraghuvarun/talent/internal/adapters/redis"
	"github.com/mrraghuvarun/talent/internal/adapters/restapi"
	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/observability/metrics"
	"github.com/mrraghuvarun/talent/internal/ports"
	"github.com/mrraghuvarun/talent/internal/service"
)

// Runtime holds process-wide dependencies: config, logger, metrics, the
// session store and the login service. Per-session services come from
// Services once a viewer is logged in.
type Runtime struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Metrics  *metrics.Registry
	Sessions ports.SessionStore
	Auth     *service.AuthService

	redis redis.UniversalClient
}

// RuntimeDeps groups dependencies for NewRuntime.
type RuntimeDeps struct {
	Config config.AppConfig
	Logger *slog.Logger
	// Sessions overrides the configured session backend (tests).
	Sessions ports.SessionStore
}

// NewRuntime wires the session backend and the unauthenticated API client
// used for login.
func NewRuntime(ctx context.Context, deps RuntimeDeps) (*Runtime, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rt := &Runtime{
		Config:   deps.Config,
		Logger:   logger,
		Metrics:  metrics.New(),
		Sessions: deps.Sessions,
	}

	if rt.Sessions == nil {
		if err := rt.openSessions(ctx); err != nil {
			return nil, err
		}
	}

	loginClient, err := rt.NewAPIClient("")
	if err != nil {
		return nil, errors.Join(err, rt.closeRedis())
	}
	rt.Auth = service.NewAuthService(service.AuthServiceOptions{
		Authenticator: loginClient,
		Sessions:      rt.Sessions,
		Policy:        service.SessionPolicy{TTL: deps.Config.Session.TTL},
	})
	return rt, nil
}

func (rt *Runtime) openSessions(ctx context.Context) error {
	switch rt.Config.Session.Backend {
	case config.SessionBackendRedis:
		client, err := ConnectRedis(ctx, rt.Config.Redis, rt.Logger)
		if err != nil {
			return fmt.Errorf("connect session redis: %w", err)
		}
		rt.redis = client
		rt.Sessions = redisadapter.NewSessionStoreWithPrefix(client, rt.Config.Redis.KeyPrefix)
	default:
		path := rt.Config.Session.File
		if path == "" {
			var err error
			if path, err = filesession.DefaultPath(); err != nil {
				return err
			}
		}
		store, err := filesession.New(path)
		if err != nil {
			return fmt.Errorf("open session file: %w", err)
		}
		rt.Sessions = store
	}
	return nil
}

// NewAPIClient builds an instrumented REST client carrying token.
func (rt *Runtime) NewAPIClient(token string) (*restapi.Client, error) {
	client, err := restapi.NewClient(restapi.Config{
		BaseURL:    rt.Config.API.BaseURL,
		Timeout:    rt.Config.API.Timeout,
		UserAgent:  rt.Config.API.UserAgent,
		Token:      token,
		Instrument: rt.Metrics.InstrumentRoundTripper,
		Logger:     rt.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return client, nil
}

// ServiceContainer holds the services available to a logged-in viewer.
type ServiceContainer struct {
	Session    domainauth.Session
	Viewer     domainauth.ViewerContext
	Candidates *service.CandidateStore
	Details    *service.DetailsService
	MagicLinks *service.MagicLinkService
	// FileURL turns an API-relative upload path into a download link.
	FileURL func(path string) string
}

// Services loads the session stored under profile and wires the services
// that act on its behalf.
func (rt *Runtime) Services(ctx context.Context, profile string) (*ServiceContainer, error) {
	sess, err := rt.Auth.Current(ctx, profile)
	if err != nil {
		return nil, err
	}
	client, err := rt.NewAPIClient(sess.Token)
	if err != nil {
		return nil, err
	}
	logger := rt.Logger.With("viewer", sess.Viewer.UserID, "role", sess.Viewer.Role)
	return &ServiceContainer{
		Session: *sess,
		Viewer:  sess.Viewer,
		Candidates: service.NewCandidateStore(service.CandidateStoreOptions{
			API:     client,
			Logger:  logger,
			Metrics: rt.Metrics,
		}),
		Details: service.NewDetailsService(service.DetailsServiceOptions{
			API:    client,
			Logger: logger,
		}),
		MagicLinks: service.NewMagicLinkService(client),
		FileURL:    client.FileURL,
	}, nil
}

// Close flushes metrics and releases the Redis connection, if any.
func (rt *Runtime) Close() error {
	var errs []error
	if err := rt.Metrics.WriteTextfile(rt.Config.Metrics.Textfile); err != nil {
		errs = append(errs, err)
	}
	if err := rt.closeRedis(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (rt *Runtime) closeRedis() error {
	if rt.redis == nil {
		return nil
	}
	err := rt.redis.Close()
	rt.redis = nil
	if err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}
