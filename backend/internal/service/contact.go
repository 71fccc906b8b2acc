package service

import (
	"context"

	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/logger"
)

type ContactService interface {
	Create(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
}

type ContactStorage interface {
	CreateContact(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error)
	GetContacts(ctx context.Context) ([]domain.Contact, error)
}

type Contact struct {
	storage ContactStorage
}

func NewContact(storage ContactStorage) *Contact {
	return &Contact{storage: storage}
}

func (c *Contact) Create(ctx context.Context, data domain.ContactCreationData) (domain.Contact, error) {
	contact, err := c.storage.CreateContact(ctx, data)
	if err != nil {
		return domain.Contact{}, err
	}
	logger.Log.Info("contact received", "contact_id", contact.Id, "community_type", contact.CommunityType)
	return contact, nil
}

func (c *Contact) List(ctx context.Context) ([]domain.Contact, error) {
	return c.storage.GetContacts(ctx)
}
