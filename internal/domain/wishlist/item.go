package wishlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidPriority = errors.New("priority out of range")
)

const (
	MinPriority = 1
	MaxPriority = 5
)

// Item is a single wish on a list. Purchase state lives on the row but is
// only ever written by the purchase engine's transitions, and is projected
// away from the list owner on every read.
type Item struct {
	id          uuid.UUID
	listID      uuid.UUID
	name        Name
	url         *string
	priceCents  int64
	priority    int
	isPurchased bool
	purchasedBy *uuid.UUID
	purchasedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(listID uuid.UUID, name Name, url *string, priceCents int64, priority int) (*Item, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if priority < MinPriority || priority > MaxPriority {
		return nil, ErrInvalidPriority
	}
	return &Item{
		id:         uuid.New(),
		listID:     listID,
		name:       name,
		url:        url,
		priceCents: priceCents,
		priority:   priority,
	}, nil
}

func ReconstructItem(
	id, listID uuid.UUID,
	name Name,
	url *string,
	priceCents int64,
	priority int,
	isPurchased bool,
	purchasedBy *uuid.UUID,
	purchasedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		listID:      listID,
		name:        name,
		url:         url,
		priceCents:  priceCents,
		priority:    priority,
		isPurchased: isPurchased,
		purchasedBy: purchasedBy,
		purchasedAt: purchasedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) ListID() uuid.UUID       { return i.listID }
func (i *Item) Name() Name              { return i.name }
func (i *Item) URL() *string            { return i.url }
func (i *Item) PriceCents() int64       { return i.priceCents }
func (i *Item) Priority() int           { return i.priority }
func (i *Item) IsPurchased() bool       { return i.isPurchased }
func (i *Item) PurchasedBy() *uuid.UUID { return i.purchasedBy }
func (i *Item) PurchasedAt() *time.Time { return i.purchasedAt }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }
