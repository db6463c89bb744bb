package readstore

import (
	"context"

	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

// FindByEmail returns the view together with the stored password hash; the
// hash never leaves the auth command that compares it.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, is_active, password_hash FROM users WHERE email = $1`, email,
	).Scan(&v.ID, &v.Email, &v.Name, &v.IsActive, &hash)
	if err != nil {
		return nil, "", wrapReadErr("failed to load user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, is_active FROM users WHERE id = $1`, id,
	).Scan(&v.ID, &v.Email, &v.Name, &v.IsActive)
	if err != nil {
		return nil, wrapReadErr("failed to load user by id", err)
	}
	return &v, nil
}
