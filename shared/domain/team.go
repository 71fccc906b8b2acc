package domain

import "time"

type TeamMemberCreationData struct {
	Name         string
	Title        string
	Bio          string
	ImageUrl     *string
	LinkedinUrl  *string
	TwitterUrl   *string
	DisplayOrder int
}

// TeamMemberUpdate is a partial update; nil fields are left untouched.
type TeamMemberUpdate struct {
	Name         *string
	Title        *string
	Bio          *string
	ImageUrl     *string
	LinkedinUrl  *string
	TwitterUrl   *string
	DisplayOrder *int
}

type TeamMember struct {
	Id           MemberId  `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	ImageUrl     *string   `json:"image_url,omitempty"`
	LinkedinUrl  *string   `json:"linkedin_url,omitempty"`
	TwitterUrl   *string   `json:"twitter_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
