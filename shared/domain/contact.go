package domain

import "time"

type ContactCreationData struct {
	Name          string
	Email         string
	CommunityType string
	Message       string
}

type Contact struct {
	Id            ContactId `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CommunityType string    `json:"community_type"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}
