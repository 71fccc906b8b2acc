package handler

import (
	"context"

	"github.com/cosmiccommons/c3site/backend/internal/service"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user    service.UserService
	contact service.ContactService
	team    service.TeamService
	blog    service.BlogService
	forum   service.ForumService
	health  HealthChecker
}

func New(
	user service.UserService,
	contact service.ContactService,
	team service.TeamService,
	blog service.BlogService,
	forum service.ForumService,
	health HealthChecker,
) *Handler {
	return &Handler{
		user:    user,
		contact: contact,
		team:    team,
		blog:    blog,
		forum:   forum,
		health:  health,
	}
}
