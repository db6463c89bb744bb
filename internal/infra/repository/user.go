package repository

import (
	"context"

	"wishkeeper/internal/domain/user"
	"wishkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.Name().Value(), u.PasswordHash(), u.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	return nil
}
