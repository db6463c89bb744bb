package readstore

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"
	"wishkeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ShareReadStore struct {
	db db.DBTX
}

func NewShareReadStore(dbtx db.DBTX) *ShareReadStore {
	return &ShareReadStore{db: dbtx}
}

var _ queries.ShareReadStore = (*ShareReadStore)(nil)

const sharesByResourceSQL = `
SELECT s.id, s.resource_type, s.resource_id, s.shared_with, u.name, s.role, s.expires_at, s.created_at
FROM shares s
JOIN users u ON u.id = s.shared_with
WHERE s.resource_type = $1 AND s.resource_id = $2
ORDER BY s.created_at`

func (r *ShareReadStore) FindByResource(ctx context.Context, resource access.ResourceRef) ([]*queries.ShareView, error) {
	rows, err := r.db.Query(ctx, sharesByResourceSQL, string(resource.Type), resource.ID)
	if err != nil {
		return nil, wrapReadErr("failed to load shares", err)
	}
	defer rows.Close()

	views := make([]*queries.ShareView, 0)
	for rows.Next() {
		var v queries.ShareView
		var expiresAt, createdAt pgtype.Timestamptz
		err := rows.Scan(&v.ID, &v.ResourceType, &v.ResourceID, &v.SharedWith, &v.SharedWithName, &v.Role, &expiresAt, &createdAt)
		if err != nil {
			return nil, wrapReadErr("failed to scan share row", err)
		}
		v.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate share rows", err)
	}
	return views, nil
}
