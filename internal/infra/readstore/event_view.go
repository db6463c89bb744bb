package readstore

import (
	"context"

	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"
	"wishkeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

var _ queries.EventReadStore = (*EventReadStore)(nil)

const eventsAfterSQL = `
SELECT id, name, resource_id, payload, created_at
FROM change_events
WHERE id > $1
ORDER BY id
LIMIT $2`

func (r *EventReadStore) After(ctx context.Context, afterID int64, limit int32) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, eventsAfterSQL, afterID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to load change events", err)
	}
	defer rows.Close()

	views := make([]*queries.EventView, 0)
	for rows.Next() {
		var v queries.EventView
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&v.ID, &v.Name, &v.ResourceID, &v.Payload, &createdAt); err != nil {
			return nil, wrapReadErr("failed to scan change event", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate change events", err)
	}
	return views, nil
}
