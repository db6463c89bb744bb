package repository

import (
	"context"

	"wishkeeper/internal/infra/db"

	"github.com/google/uuid"
)

// EventRepository writes change events into the same transaction as the
// mutation they describe, so a committed mutation and its event are
// inseparable. Delivery is a separate process reading change_events.
type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Append(ctx context.Context, tx db.DBTX, name string, resourceID uuid.UUID, payload []byte) error {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO change_events (name, resource_id, payload) VALUES ($1, $2, $3)`,
		name, resourceID, payload,
	)
	if err != nil {
		return wrapWriteErr("failed to append change event", err)
	}
	return nil
}
