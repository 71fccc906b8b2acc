package pg

import (
	"context"

	"github.com/cosmiccommons/c3site/shared/domain"
	sharedpg "github.com/cosmiccommons/c3site/shared/storage/pg"
)

func (s *Storage) CreateContact(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error) {
	c := domain.Contact{
		Name:          data.Name,
		Email:         data.Email,
		CommunityType: data.CommunityType,
		Message:       data.Message,
		CreatedAt:     s.timestamp(),
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO contacts(name, email, community_type, message, created_at)
		 VALUES($1, $2, $3, $4, $5) RETURNING id`,
		c.Name, c.Email, c.CommunityType, c.Message, c.CreatedAt).Scan(&c.Id)
	if err != nil {
		return domain.Contact{}, sharedpg.TranslateError("failed to insert contact", err)
	}
	return c, nil
}

// GetContacts returns every submission, newest first.
func (s *Storage) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, community_type, message, created_at FROM contacts ORDER BY created_at DESC, id")
	if err != nil {
		return nil, sharedpg.TranslateError("failed to query contacts", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.Id, &c.Name, &c.Email, &c.CommunityType, &c.Message, &c.CreatedAt); err != nil {
			return nil, sharedpg.TranslateError("failed to scan contact", err)
		}
		utc(&c.CreatedAt)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, sharedpg.TranslateError("failed to iterate contacts", err)
	}
	return contacts, nil
}
