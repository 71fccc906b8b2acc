package api

import "github.com/cosmiccommons/c3site/shared/domain"

// Request DTOs

type CreateContactRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	CommunityType string `json:"community_type" validate:"required,min=1"`
	Message       string `json:"message" validate:"required,min=10"`
}

// Response DTOs

type ContactListResponse struct {
	Contacts []domain.Contact `json:"contacts"`
}
