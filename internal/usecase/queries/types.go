package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type LocationView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ListView struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemView is the shopper-facing projection. For the list owner the three
// purchase fields are always nil/false-omitted: the owner must not learn
// purchase state of their own items.
type ItemView struct {
	ID              uuid.UUID  `json:"id"`
	ListID          uuid.UUID  `json:"list_id"`
	Name            string     `json:"name"`
	URL             *string    `json:"url,omitempty"`
	PriceCents      int64      `json:"price_cents"`
	Priority        int        `json:"priority"`
	IsPurchased     *bool      `json:"is_purchased,omitempty"`
	PurchasedBy     *uuid.UUID `json:"purchased_by,omitempty"`
	PurchasedByName *string    `json:"purchased_by_name,omitempty"`
	PurchasedAt     *time.Time `json:"purchased_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// RedactForOwner strips every trace of purchase state from the projection.
func (v *ItemView) RedactForOwner() {
	v.IsPurchased = nil
	v.PurchasedBy = nil
	v.PurchasedByName = nil
	v.PurchasedAt = nil
}

type ListItemsView struct {
	List  *ListView   `json:"list"`
	Items []*ItemView `json:"items"`
}

type ShareView struct {
	ID             uuid.UUID  `json:"id"`
	ResourceType   string     `json:"resource_type"`
	ResourceID     uuid.UUID  `json:"resource_id"`
	SharedWith     uuid.UUID  `json:"shared_with"`
	SharedWithName string     `json:"shared_with_name"`
	Role           string     `json:"role"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ReservationView struct {
	ItemID     uuid.UUID `json:"item_id"`
	ItemName   string    `json:"item_name"`
	ListID     uuid.UUID `json:"list_id"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
