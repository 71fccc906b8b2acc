package domain

import (
	"fmt"
	"log/slog"
	"time"
)

type User struct {
	Id           UserId       `json:"id"`
	Username     Username     `json:"username"`
	PasswordHash PasswordHash `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Registration carries a plaintext password and is consumed only by the
// hashing layer. It never reaches storage.
type Registration struct {
	Username Username `validate:"required,min=3"`
	Password string   `validate:"required,min=8"`
}

func (r Registration) String() string {
	return fmt.Sprintf("[username:%s, password:***]", r.Username)
}

func (r Registration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", r.Username),
		slog.String("password", "***"),
	)
}

// StoredCredential is the only user shape storage accepts.
type StoredCredential struct {
	Username     Username     `validate:"required,min=3"`
	PasswordHash PasswordHash `validate:"required"`
}
