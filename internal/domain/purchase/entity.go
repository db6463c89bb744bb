package purchase

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a short-lived advisory lock on an item. It is destroyed on
// purchase commit, explicit release, or TTL expiry; expiry is lazy, so every
// read path must treat a past-TTL reservation as absent.
type Reservation struct {
	id         uuid.UUID
	itemID     uuid.UUID
	userID     uuid.UUID
	reservedAt time.Time
	expiresAt  time.Time
}

func NewReservation(now time.Time, ttl time.Duration, itemID, userID uuid.UUID) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		itemID:     itemID,
		userID:     userID,
		reservedAt: now,
		expiresAt:  now.Add(ttl),
	}
}

func ReconstructReservation(id, itemID, userID uuid.UUID, reservedAt, expiresAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		itemID:     itemID,
		userID:     userID,
		reservedAt: reservedAt,
		expiresAt:  expiresAt,
	}
}

func (r *Reservation) IsLiveAt(now time.Time) bool {
	return r.expiresAt.After(now)
}

func (r *Reservation) HeldBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ItemID() uuid.UUID     { return r.itemID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time  { return r.expiresAt }
