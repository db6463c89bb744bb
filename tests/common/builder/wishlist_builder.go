//go:build unit || e2e

package builder

import (
	"time"

	"wishkeeper/internal/usecase/queries"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// ItemSnapshotBuilder assembles the command-side item snapshot used by the
// purchase engine.
type ItemSnapshotBuilder struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	ListOwnerID uuid.UUID
	Name        string
	IsPurchased bool
	PurchasedBy *uuid.UUID
	PurchasedAt *time.Time
}

func NewItemSnapshotBuilder() *ItemSnapshotBuilder {
	return &ItemSnapshotBuilder{
		ID:          uuid.New(),
		ListID:      uuid.New(),
		ListOwnerID: uuid.New(),
		Name:        "Wool socks",
	}
}

func (b *ItemSnapshotBuilder) With(mutate func(*ItemSnapshotBuilder)) *ItemSnapshotBuilder {
	mutate(b)
	return b
}

func (b *ItemSnapshotBuilder) Build() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          b.ID,
		ListID:      b.ListID,
		ListOwnerID: b.ListOwnerID,
		Name:        b.Name,
		IsPurchased: b.IsPurchased,
		PurchasedBy: b.PurchasedBy,
		PurchasedAt: b.PurchasedAt,
	}
}

func (b *ItemSnapshotBuilder) WithID(id uuid.UUID) *ItemSnapshotBuilder {
	b.ID = id
	return b
}

func (b *ItemSnapshotBuilder) WithListOwner(ownerID uuid.UUID) *ItemSnapshotBuilder {
	b.ListOwnerID = ownerID
	return b
}

func (b *ItemSnapshotBuilder) PurchasedByUser(userID uuid.UUID, at time.Time) *ItemSnapshotBuilder {
	b.IsPurchased = true
	b.PurchasedBy = &userID
	b.PurchasedAt = &at
	return b
}

// ListItemsViewBuilder assembles the read-side projection with purchase state
// populated, so redaction tests can assert what gets stripped.
type ListItemsViewBuilder struct {
	ListID    uuid.UUID
	OwnerID   uuid.UUID
	OwnerName string
	ListName  string
	Items     []*queries.ItemView
}

func NewListItemsViewBuilder() *ListItemsViewBuilder {
	return &ListItemsViewBuilder{
		ListID:    uuid.New(),
		OwnerID:   uuid.New(),
		OwnerName: "Alice",
		ListName:  "Christmas 2026",
	}
}

func (b *ListItemsViewBuilder) With(mutate func(*ListItemsViewBuilder)) *ListItemsViewBuilder {
	mutate(b)
	return b
}

func (b *ListItemsViewBuilder) WithOwner(ownerID uuid.UUID) *ListItemsViewBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ListItemsViewBuilder) AddItem(name string, purchasedBy *uuid.UUID) *ListItemsViewBuilder {
	view := &queries.ItemView{
		ID:         uuid.New(),
		ListID:     b.ListID,
		Name:       name,
		PriceCents: 1000,
		Priority:   3,
		CreatedAt:  time.Now(),
	}
	if purchasedBy != nil {
		yes := true
		now := time.Now()
		buyerName := "Bob"
		view.IsPurchased = &yes
		view.PurchasedBy = purchasedBy
		view.PurchasedByName = &buyerName
		view.PurchasedAt = &now
	}
	b.Items = append(b.Items, view)
	return b
}

func (b *ListItemsViewBuilder) Build() *queries.ListItemsView {
	return &queries.ListItemsView{
		List: &queries.ListView{
			ID:        b.ListID,
			OwnerID:   b.OwnerID,
			OwnerName: b.OwnerName,
			Name:      b.ListName,
			Year:      2026,
			CreatedAt: time.Now(),
		},
		Items: b.Items,
	}
}
