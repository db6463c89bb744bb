package readstore

import (
	"context"

	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"
	"wishkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

var _ queries.ItemReadStore = (*ItemReadStore)(nil)

const listHeaderSQL = `
SELECT l.id, l.location_id, l.owner_id, u.name, l.name, l.year, l.is_public, l.created_at
FROM lists l
JOIN users u ON u.id = l.owner_id
WHERE l.id = $1`

const listItemsSQL = `
SELECT i.id, i.list_id, i.name, i.url, i.price_cents, i.priority,
       i.is_purchased, i.purchased_by, pu.name, i.purchased_at, i.created_at
FROM items i
LEFT JOIN users pu ON pu.id = i.purchased_by
WHERE i.list_id = $1
ORDER BY i.priority DESC, i.created_at`

func (r *ItemReadStore) ListWithItems(ctx context.Context, listID uuid.UUID) (*queries.ListItemsView, error) {
	var list queries.ListView
	var createdAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, listHeaderSQL, listID).Scan(
		&list.ID, &list.LocationID, &list.OwnerID, &list.OwnerName,
		&list.Name, &list.Year, &list.IsPublic, &createdAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to load list header", err)
	}
	list.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	rows, err := r.db.Query(ctx, listItemsSQL, listID)
	if err != nil {
		return nil, wrapReadErr("failed to load list items", err)
	}
	defer rows.Close()

	items := make([]*queries.ItemView, 0)
	for rows.Next() {
		var item queries.ItemView
		var (
			url             pgtype.Text
			isPurchased     bool
			purchasedBy     pgtype.UUID
			purchasedByName pgtype.Text
			purchasedAt     pgtype.Timestamptz
			itemCreatedAt   pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.ListID, &item.Name, &url, &item.PriceCents, &item.Priority,
			&isPurchased, &purchasedBy, &purchasedByName, &purchasedAt, &itemCreatedAt,
		)
		if err != nil {
			return nil, wrapReadErr("failed to scan item row", err)
		}
		item.URL = pgconv.StringPtrFromPgtype(url)
		item.IsPurchased = &isPurchased
		item.PurchasedBy = pgconv.UUIDPtrFromPgtype(purchasedBy)
		item.PurchasedByName = pgconv.StringPtrFromPgtype(purchasedByName)
		item.PurchasedAt = pgconv.TimePtrFromPgtype(purchasedAt)
		item.CreatedAt = pgconv.TimeFromPgtype(itemCreatedAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate item rows", err)
	}

	return &queries.ListItemsView{List: &list, Items: items}, nil
}

// Expiry is lazy: rows past their TTL stay in the table until overwritten,
// so the view must filter them out itself.
const reservationsByUserSQL = `
SELECT r.item_id, i.name, i.list_id, r.reserved_at, r.expires_at
FROM purchase_reservations r
JOIN items i ON i.id = r.item_id
WHERE r.user_id = $1 AND r.expires_at > now()
ORDER BY r.reserved_at`

func (r *ItemReadStore) ReservationsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationsByUserSQL, userID)
	if err != nil {
		return nil, wrapReadErr("failed to load reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var v queries.ReservationView
		var reservedAt, expiresAt pgtype.Timestamptz
		if err := rows.Scan(&v.ItemID, &v.ItemName, &v.ListID, &reservedAt, &expiresAt); err != nil {
			return nil, wrapReadErr("failed to scan reservation row", err)
		}
		v.ReservedAt = pgconv.TimeFromPgtype(reservedAt)
		v.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate reservation rows", err)
	}
	return views, nil
}
