package readstore

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/purchase"
	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReadStore serves the point reads commands revalidate inside their
// transactions. It binds to whatever DBTX it is given, so the same code runs
// against the pool and against an open transaction.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

func (r *CommandReadStore) LocationByID(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	var snap shared.LocationSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, name FROM locations WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.OwnerID, &snap.Name)
	if err != nil {
		return nil, wrapReadErr("failed to load location", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) ListByID(ctx context.Context, id uuid.UUID) (*shared.ListSnapshot, error) {
	var snap shared.ListSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, location_id, owner_id, name, year, is_public, guest_access_token
		 FROM lists WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.LocationID, &snap.OwnerID, &snap.Name, &snap.Year, &snap.IsPublic, &snap.GuestAccessToken)
	if err != nil {
		return nil, wrapReadErr("failed to load list", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	var snap shared.ItemSnapshot
	var purchasedBy pgtype.UUID
	var purchasedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx,
		`SELECT i.id, i.list_id, l.owner_id, i.name, i.is_purchased, i.purchased_by, i.purchased_at
		 FROM items i
		 JOIN lists l ON l.id = i.list_id
		 WHERE i.id = $1`, id,
	).Scan(&snap.ID, &snap.ListID, &snap.ListOwnerID, &snap.Name, &snap.IsPurchased, &purchasedBy, &purchasedAt)
	if err != nil {
		return nil, wrapReadErr("failed to load item", err)
	}
	snap.PurchasedBy = pgconv.UUIDPtrFromPgtype(purchasedBy)
	snap.PurchasedAt = pgconv.TimePtrFromPgtype(purchasedAt)
	return &snap, nil
}

func (r *CommandReadStore) ShareByID(ctx context.Context, id uuid.UUID) (*share.Share, error) {
	var (
		shareID, resourceID, sharedBy, sharedWith uuid.UUID
		rawType, rawRole                          string
		expiresAt                                 pgtype.Timestamptz
		createdAt, updatedAt                      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, resource_type, resource_id, shared_by, shared_with, role, expires_at, created_at, updated_at
		 FROM shares WHERE id = $1`, id,
	).Scan(&shareID, &rawType, &resourceID, &sharedBy, &sharedWith, &rawRole, &expiresAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, wrapReadErr("failed to load share", err)
	}

	resourceType, err := access.NewResourceType(rawType)
	if err != nil {
		return nil, wrapReadErr("invalid resource type in share row", err)
	}
	role, err := access.NewRole(rawRole)
	if err != nil {
		return nil, wrapReadErr("invalid role in share row", err)
	}

	return share.ReconstructShare(
		shareID,
		access.ResourceRef{Type: resourceType, ID: resourceID},
		sharedBy, sharedWith,
		role,
		pgconv.TimePtrFromPgtype(expiresAt),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *CommandReadStore) InviteByCode(ctx context.Context, code string) (*share.InviteCode, error) {
	var (
		id, resourceID, createdBy uuid.UUID
		rawType, rawRole          string
		maxUses, useCount         int32
		expiresAt, createdAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, resource_type, resource_id, created_by, default_role, max_uses, use_count, expires_at, created_at
		 FROM invite_codes WHERE code = $1`, code,
	).Scan(&id, &rawType, &resourceID, &createdBy, &rawRole, &maxUses, &useCount, &expiresAt, &createdAt)
	if err != nil {
		return nil, wrapReadErr("failed to load invite code", err)
	}

	resourceType, err := access.NewResourceType(rawType)
	if err != nil {
		return nil, wrapReadErr("invalid resource type in invite row", err)
	}
	role, err := access.NewRole(rawRole)
	if err != nil {
		return nil, wrapReadErr("invalid role in invite row", err)
	}

	return share.ReconstructInviteCode(
		id, code,
		access.ResourceRef{Type: resourceType, ID: resourceID},
		createdBy,
		role,
		maxUses, useCount,
		pgconv.TimePtrFromPgtype(expiresAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *CommandReadStore) ReservationByItem(ctx context.Context, itemID uuid.UUID) (*purchase.Reservation, error) {
	var (
		id, item, userID      uuid.UUID
		reservedAt, expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, item_id, user_id, reserved_at, expires_at
		 FROM purchase_reservations WHERE item_id = $1`, itemID,
	).Scan(&id, &item, &userID, &reservedAt, &expiresAt)
	if err != nil {
		return nil, wrapReadErr("failed to load reservation", err)
	}
	return purchase.ReconstructReservation(
		id, item, userID,
		pgconv.TimeFromPgtype(reservedAt), pgconv.TimeFromPgtype(expiresAt),
	), nil
}

func (r *CommandReadStore) UserIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND is_active = true`, email,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapReadErr("failed to look up user by email", err)
	}
	return id, nil
}

func (r *CommandReadStore) UserNameByID(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, id).Scan(&name)
	if err != nil {
		return "", wrapReadErr("failed to look up user name", err)
	}
	return name, nil
}
