package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventView struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	ResourceID uuid.UUID       `json:"resource_id"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

type EventReadStore interface {
	After(ctx context.Context, afterID int64, limit int32) ([]*EventView, error)
}

// EventQueries feeds an out-of-process dispatcher draining the outbox in id
// order. Not exposed over HTTP: event rows reveal purchase activity and would
// undo the owner-facing redaction.
type EventQueries interface {
	ListAfter(ctx context.Context, afterID int64, limit int32) ([]*EventView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) ListAfter(ctx context.Context, afterID int64, limit int32) ([]*EventView, error) {
	return q.store.After(ctx, afterID, limit)
}
