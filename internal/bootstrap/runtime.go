// Package bootstrap wires the configured store, the repositories, and
// the seed data into a ready-to-use runtime.
package bootstrap

import (
	"context"
	"fmt"

	"lanagram/internal/config"
	"lanagram/internal/observability"
	"lanagram/internal/repository"
	"lanagram/internal/seed"
	"lanagram/internal/store"
)

// Runtime holds everything the app needs after startup.
type Runtime struct {
	Config *config.Config
	Store  store.Store
	Users  repository.UserRepository
	Posts  repository.PostRepository

	shutdownTracing func(context.Context) error
}

// Open builds a Runtime from configuration: tracing, the configured
// store backend, repositories, and the fixture account. Demo data is
// seeded only when asked and only into an empty store.
func Open(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "lanagram",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	var st store.Store
	switch cfg.StoreDriver {
	case "sqlite":
		st, err = store.OpenSQLite(cfg.StorePath)
	case "redis":
		var backend *store.RedisBackend
		backend, err = store.NewRedisBackend(cfg.RedisURL)
		if err == nil {
			st = store.NewDocumentStore(backend)
		}
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("open store: %w", err)
	}

	rt := &Runtime{
		Config:          cfg,
		Store:           st,
		Users:           repository.NewUserRepository(st),
		Posts:           repository.NewPostRepository(st),
		shutdownTracing: shutdownTracing,
	}

	if _, err := seed.EnsureFixture(ctx, rt.Users); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("ensure fixture account: %w", err)
	}

	if cfg.SeedPreset != "" {
		preset, err := seed.LoadPreset(cfg.SeedPreset)
		if err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}
		if err := preset.Apply(ctx, rt.Users, rt.Posts); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("apply seed preset: %w", err)
		}
	}

	if cfg.SeedDemo {
		empty, err := storeIsEmpty(ctx, rt)
		if err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}
		if empty {
			factory := seed.NewFactory(rt.Users, rt.Posts, seed.Options{NumUsers: 8, NumPosts: 24})
			if err := factory.Mesh(ctx); err != nil {
				_ = rt.Close(ctx)
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
		}
	}

	return rt, nil
}

// Close releases the store and flushes tracing.
func (r *Runtime) Close(ctx context.Context) error {
	var first error
	if err := r.Store.Close(); err != nil {
		first = err
	}
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// storeIsEmpty reports whether only the fixture account exists and
// there are no posts yet.
func storeIsEmpty(ctx context.Context, rt *Runtime) (bool, error) {
	users, err := rt.Users.List(ctx)
	if err != nil {
		return false, err
	}
	posts, err := rt.Posts.List(ctx)
	if err != nil {
		return false, err
	}
	return len(users) <= 1 && len(posts) == 0, nil
}
