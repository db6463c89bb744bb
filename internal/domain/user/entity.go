package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity only. Everything a user may do to a resource is
// computed per call by the access resolver, never stored here.
type User struct {
	id           uuid.UUID
	email        Email
	name         Name
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name Name, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name Name,
	passwordHash string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() Name           { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
