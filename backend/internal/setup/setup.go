package setup

import (
	"context"
	"time"

	"github.com/cosmiccommons/c3site/backend/internal/handler"
	"github.com/cosmiccommons/c3site/backend/internal/markdown"
	"github.com/cosmiccommons/c3site/backend/internal/service"
	"github.com/cosmiccommons/c3site/backend/internal/storage/pg"
	"github.com/cosmiccommons/c3site/shared/config"
	"github.com/cosmiccommons/c3site/shared/jwt"
	"github.com/cosmiccommons/c3site/shared/middleware/ratelimiter"
)

const (
	writeBurst  = 3
	limiterIdle = time.Hour
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	ContactLimiter *ratelimiter.Limiter
	PostLimiter    *ratelimiter.Limiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	user := service.NewUser(storage)
	contact := service.NewContact(storage)
	team := service.NewTeam(storage)
	blog := service.NewBlog(storage, markdown.New())
	forum := service.NewForum(storage)

	h := handler.New(user, contact, team, blog, forum, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwt,
		ContactLimiter: ratelimiter.New(cfg.Public.ContactPerMinute, writeBurst, limiterIdle),
		PostLimiter:    ratelimiter.New(cfg.Public.PostPerMinute, writeBurst, limiterIdle),
	}, nil
}

// Close stops background limiter sweeps and closes the pool.
func (d *Dependencies) Close() error {
	d.ContactLimiter.Stop()
	d.PostLimiter.Stop()
	return d.Storage.Cleanup()
}
