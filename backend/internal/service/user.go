package service

import (
	"context"
	"fmt"

	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/cosmiccommons/c3site/shared/logger"
	"github.com/cosmiccommons/c3site/shared/validation"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored credentials.
const passwordHashCost = 10

type UserService interface {
	CreateUserWithPassword(ctx context.Context, reg domain.Registration) (domain.User, error)
	CreateUser(ctx context.Context, cred domain.StoredCredential) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserId) (domain.User, error)
	GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, cred domain.StoredCredential) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserId) (domain.User, bool, error)
	GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, bool, error)
}

type User struct {
	storage UserStorage
}

func NewUser(storage UserStorage) *User {
	return &User{storage: storage}
}

// CreateUserWithPassword hashes the plaintext and stores only the hash.
// Uniqueness is left to the store, a duplicate username comes back as 409.
func (u *User) CreateUserWithPassword(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if err := validation.Struct(reg); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), passwordHashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.CreateUser(ctx, domain.StoredCredential{Username: reg.Username, PasswordHash: string(hash)})
	if err != nil {
		return domain.User{}, err
	}
	logger.Log.Info("user registered", "user_id", user.Id, "registration", reg)
	return user, nil
}

func (u *User) CreateUser(ctx context.Context, cred domain.StoredCredential) (domain.User, error) {
	if err := validation.Struct(cred); err != nil {
		return domain.User{}, err
	}
	return u.storage.CreateUser(ctx, cred)
}

func (u *User) GetUser(ctx context.Context, id domain.UserId) (domain.User, error) {
	user, found, err := u.storage.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, internal_errors.NotFound("User not found")
	}
	return user, nil
}

func (u *User) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	user, found, err := u.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, internal_errors.NotFound("User not found")
	}
	return user, nil
}
