package api

import "github.com/cosmiccommons/c3site/shared/domain"

// Request DTOs

type CreateTeamMemberRequest struct {
	Name         string  `json:"name" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Bio          string  `json:"bio" validate:"required"`
	ImageUrl     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkedinUrl  *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	TwitterUrl   *string `json:"twitter_url,omitempty" validate:"omitempty,url"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
}

type UpdateTeamMemberRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,min=1"`
	ImageUrl     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkedinUrl  *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	TwitterUrl   *string `json:"twitter_url,omitempty" validate:"omitempty,url"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

// Response DTOs

type TeamListResponse struct {
	Members []domain.TeamMember `json:"members"`
}
