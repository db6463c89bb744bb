package repository

import (
	"context"

	"wishkeeper/internal/domain/purchase"
	"wishkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// One statement, one arbiter: the unique index on item_id serializes
// concurrent reservers, and the conflict guard only lets the current holder
// refresh or anyone take over an expired row. Zero rows affected means a
// live reservation belongs to someone else.
const acquireReservationSQL = `
INSERT INTO purchase_reservations (id, item_id, user_id, reserved_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (item_id) DO UPDATE
SET user_id = EXCLUDED.user_id,
    reserved_at = EXCLUDED.reserved_at,
    expires_at = EXCLUDED.expires_at
WHERE purchase_reservations.user_id = EXCLUDED.user_id
   OR purchase_reservations.expires_at <= EXCLUDED.reserved_at`

func (r *ReservationRepository) Acquire(ctx context.Context, tx db.DBTX, res *purchase.Reservation) (int64, error) {
	tag, err := tx.Exec(ctx, acquireReservationSQL,
		res.ID(), res.ItemID(), res.UserID(), res.ReservedAt(), res.ExpiresAt(),
	)
	if err != nil {
		return 0, wrapWriteErr("failed to acquire reservation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) DeleteByHolder(ctx context.Context, tx db.DBTX, itemID, userID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM purchase_reservations WHERE item_id = $1 AND user_id = $2`,
		itemID, userID,
	)
	if err != nil {
		return wrapWriteErr("failed to release reservation", err)
	}
	return nil
}

func (r *ReservationRepository) DeleteByItem(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM purchase_reservations WHERE item_id = $1`, itemID); err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	return nil
}
