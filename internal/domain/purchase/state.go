package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReserved  = errors.New("item is reserved by another shopper")
	ErrAlreadyPurchased = errors.New("item is already purchased")
	ErrNoReservation    = errors.New("no live reservation held by principal")
	ErrNotPurchased     = errors.New("item is not purchased")
	ErrUnmarkForbidden  = errors.New("only the purchaser or a list editor may unmark")
)

// ItemState is the purchase-relevant slice of an item row. The three fields
// move together: is_purchased = false ⇔ purchased_by = nil ⇔ purchased_at =
// nil, enforced by the store's check constraint and by these transitions
// being the only writers.
type ItemState struct {
	ItemID      uuid.UUID
	IsPurchased bool
	PurchasedBy *uuid.UUID
	PurchasedAt *time.Time
}

// Per-item state machine: Available → Reserved(by, expiresAt) →
// Purchased(by, at), with Reserved → Available on expiry or release and
// Purchased → Available via unmark.

// DecideReserve validates the Available/Reserved → Reserved transition.
// Re-reserving by the holder is idempotent: the caller refreshes the TTL
// instead of erroring. The returned holder accompanies ErrAlreadyReserved so
// callers can name the current shopper where secrecy allows.
func DecideReserve(now time.Time, item ItemState, existing *Reservation, userID uuid.UUID) (holder uuid.UUID, err error) {
	if item.IsPurchased {
		return uuid.Nil, ErrAlreadyPurchased
	}
	if existing != nil && existing.IsLiveAt(now) && !existing.HeldBy(userID) {
		return existing.UserID(), ErrAlreadyReserved
	}
	return uuid.Nil, nil
}

// DecideConfirm validates Reserved → Purchased. The reservation step is
// mandatory: confirming without a live reservation held by userID fails,
// which is what prevents double-buys under concurrent load. The atomic
// conditional write at commit remains the final arbiter.
func DecideConfirm(now time.Time, item ItemState, existing *Reservation, userID uuid.UUID) error {
	if item.IsPurchased {
		return ErrAlreadyPurchased
	}
	if existing == nil || !existing.IsLiveAt(now) || !existing.HeldBy(userID) {
		return ErrNoReservation
	}
	return nil
}

// DecideUnmark validates Purchased → Available. Permitted to the original
// purchaser, or to a principal holding editor or better on the list (the
// caller resolves that and passes hasEditorRole).
func DecideUnmark(item ItemState, userID uuid.UUID, hasEditorRole bool) error {
	if !item.IsPurchased || item.PurchasedBy == nil {
		return ErrNotPurchased
	}
	if *item.PurchasedBy == userID || hasEditorRole {
		return nil
	}
	return ErrUnmarkForbidden
}
