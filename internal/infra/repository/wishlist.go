package repository

import (
	"context"
	"time"

	"wishkeeper/internal/domain/wishlist"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LocationRepository struct{}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{}
}

func (r *LocationRepository) Create(ctx context.Context, tx db.DBTX, l *wishlist.Location) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO locations (id, owner_id, name) VALUES ($1, $2, $3)`,
		l.ID(), l.OwnerID(), l.Name().String(),
	)
	if err != nil {
		return wrapWriteErr("failed to create location", err)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	// Lists and items cascade at the schema level.
	if _, err := tx.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id); err != nil {
		return wrapWriteErr("failed to delete location", err)
	}
	return nil
}

type ListRepository struct{}

func NewListRepository() *ListRepository {
	return &ListRepository{}
}

func (r *ListRepository) Create(ctx context.Context, tx db.DBTX, l *wishlist.List) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO lists (id, location_id, owner_id, name, year, is_public, guest_access_token)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID(), l.LocationID(), l.OwnerID(), l.Name().String(), l.Year(), l.IsPublic(), l.GuestAccessToken(),
	)
	if err != nil {
		return wrapWriteErr("failed to create list", err)
	}
	return nil
}

func (r *ListRepository) SetPublic(ctx context.Context, tx db.DBTX, listID uuid.UUID, isPublic bool) error {
	_, err := tx.Exec(ctx,
		`UPDATE lists SET is_public = $2, updated_at = now() WHERE id = $1`,
		listID, isPublic,
	)
	if err != nil {
		return wrapWriteErr("failed to update list visibility", err)
	}
	return nil
}

func (r *ListRepository) RotateGuestToken(ctx context.Context, tx db.DBTX, listID uuid.UUID, token string, expiresAt *time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE lists
		 SET guest_access_token = $2, guest_token_expires_at = $3, updated_at = now()
		 WHERE id = $1`,
		listID, token, pgconv.TimePtrToPgtype(expiresAt),
	)
	if err != nil {
		return wrapWriteErr("failed to rotate guest token", err)
	}
	return nil
}

func (r *ListRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id); err != nil {
		return wrapWriteErr("failed to delete list", err)
	}
	return nil
}

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, tx db.DBTX, i *wishlist.Item) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO items (id, list_id, name, url, price_cents, priority)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		i.ID(), i.ListID(), i.Name().String(), pgconv.StringPtrToPgtype(i.URL()), i.PriceCents(), i.Priority(),
	)
	if err != nil {
		return wrapWriteErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, i *wishlist.Item) error {
	_, err := tx.Exec(ctx,
		`UPDATE items
		 SET name = $2, url = $3, price_cents = $4, priority = $5, updated_at = now()
		 WHERE id = $1`,
		id, i.Name().String(), pgconv.StringPtrToPgtype(i.URL()), i.PriceCents(), i.Priority(),
	)
	if err != nil {
		return wrapWriteErr("failed to update item", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return wrapWriteErr("failed to delete item", err)
	}
	return nil
}

// The WHERE guard makes this the compare-and-swap of the purchase protocol:
// the write only lands while is_purchased is still false.
const markPurchasedSQL = `
UPDATE items
SET is_purchased = true, purchased_by = $2, purchased_at = $3, updated_at = now()
WHERE id = $1 AND is_purchased = false`

func (r *ItemRepository) MarkPurchased(ctx context.Context, tx db.DBTX, itemID, purchasedBy uuid.UUID, at time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, markPurchasedSQL, itemID, purchasedBy, at)
	if err != nil {
		return 0, wrapWriteErr("failed to mark item purchased", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) UnmarkPurchased(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE items
		 SET is_purchased = false, purchased_by = NULL, purchased_at = NULL, updated_at = now()
		 WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return wrapWriteErr("failed to unmark item purchase", err)
	}
	return nil
}
