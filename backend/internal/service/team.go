package service

import (
	"context"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
)

type TeamService interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Get(ctx context.Context, id domain.MemberId) (domain.TeamMember, error)
	Create(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error)
	Update(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, error)
	Delete(ctx context.Context, id domain.MemberId) error
}

type TeamStorage interface {
	GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id domain.MemberId) (domain.TeamMember, bool, error)
	CreateTeamMember(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, bool, error)
	DeleteTeamMember(ctx context.Context, id domain.MemberId) (bool, error)
}

type Team struct {
	storage TeamStorage
}

func NewTeam(storage TeamStorage) *Team {
	return &Team{storage: storage}
}

func (t *Team) List(ctx context.Context) ([]domain.TeamMember, error) {
	return t.storage.GetTeamMembers(ctx)
}

func (t *Team) Get(ctx context.Context, id domain.MemberId) (domain.TeamMember, error) {
	member, found, err := t.storage.GetTeamMember(ctx, id)
	if err != nil {
		return domain.TeamMember{}, err
	}
	if !found {
		return domain.TeamMember{}, internal_errors.NotFound("Team member not found")
	}
	return member, nil
}

func (t *Team) Create(ctx context.Context, data domain.TeamMemberCreationData) (domain.TeamMember, error) {
	return t.storage.CreateTeamMember(ctx, data)
}

func (t *Team) Update(ctx context.Context, id domain.MemberId, patch domain.TeamMemberUpdate) (domain.TeamMember, error) {
	member, found, err := t.storage.UpdateTeamMember(ctx, id, patch)
	if err != nil {
		return domain.TeamMember{}, err
	}
	if !found {
		return domain.TeamMember{}, internal_errors.NotFound("Team member not found")
	}
	return member, nil
}

// Delete deactivates the member. Deleting an unknown or already inactive
// member is 404.
func (t *Team) Delete(ctx context.Context, id domain.MemberId) error {
	deleted, err := t.storage.DeleteTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return internal_errors.NotFound("Team member not found")
	}
	return nil
}
