package readstore

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// resourceChain is the resolved ancestry of one resource: its own owner plus
// the identifiers needed to collect grants along the path to the root
// location.
type resourceChain struct {
	ownerID         uuid.UUID
	locationID      uuid.UUID
	locationOwner   uuid.UUID
	listID          uuid.UUID
	listIsPublic    bool
	listToken       string
	listTokenExpiry pgtype.Timestamptz
}

func (r *CommandReadStore) AccessSnapshot(ctx context.Context, principal access.Principal, resource access.ResourceRef) (*access.Snapshot, error) {
	chain, err := r.loadChain(ctx, resource)
	if err != nil {
		return nil, err
	}

	snap := &access.Snapshot{
		Resource:         resource,
		OwnerID:          chain.ownerID,
		ListIsPublic:     chain.listIsPublic,
		ListGuestToken:   chain.listToken,
		ListGuestExpires: pgconv.TimePtrFromPgtype(chain.listTokenExpiry),
	}

	if principal.IsAnonymous() {
		return snap, nil
	}

	// Owning the enclosing location carries the same weight as owning the
	// resource itself; surface it as an admin grant so the resolver stays a
	// pure max over the snapshot.
	if chain.locationOwner != uuid.Nil && principal.UserID == chain.locationOwner && principal.UserID != chain.ownerID {
		snap.Shares = append(snap.Shares, access.Grant{Role: access.RoleAdmin})
	}

	grants, err := r.sharesForChain(ctx, principal.UserID, chain.locationID, chain.listID)
	if err != nil {
		return nil, err
	}
	snap.Shares = append(snap.Shares, grants...)

	if chain.locationID != uuid.Nil {
		memberRole, err := r.memberRole(ctx, chain.locationID, principal.UserID)
		if err != nil {
			return nil, err
		}
		snap.MemberRole = memberRole
	}

	return snap, nil
}

const locationChainSQL = `
SELECT owner_id FROM locations WHERE id = $1`

const listChainSQL = `
SELECT l.owner_id, l.location_id, loc.owner_id, l.is_public, l.guest_access_token, l.guest_token_expires_at
FROM lists l
JOIN locations loc ON loc.id = l.location_id
WHERE l.id = $1`

const itemChainSQL = `
SELECT l.owner_id, l.id, l.location_id, loc.owner_id, l.is_public, l.guest_access_token, l.guest_token_expires_at
FROM items i
JOIN lists l ON l.id = i.list_id
JOIN locations loc ON loc.id = l.location_id
WHERE i.id = $1`

func (r *CommandReadStore) loadChain(ctx context.Context, resource access.ResourceRef) (*resourceChain, error) {
	var chain resourceChain
	var err error

	switch resource.Type {
	case access.ResourceLocation:
		err = r.db.QueryRow(ctx, locationChainSQL, resource.ID).
			Scan(&chain.ownerID)
		chain.locationID = resource.ID
		chain.locationOwner = chain.ownerID
	case access.ResourceList:
		err = r.db.QueryRow(ctx, listChainSQL, resource.ID).
			Scan(&chain.ownerID, &chain.locationID, &chain.locationOwner, &chain.listIsPublic, &chain.listToken, &chain.listTokenExpiry)
		chain.listID = resource.ID
	case access.ResourceItem:
		err = r.db.QueryRow(ctx, itemChainSQL, resource.ID).
			Scan(&chain.ownerID, &chain.listID, &chain.locationID, &chain.locationOwner, &chain.listIsPublic, &chain.listToken, &chain.listTokenExpiry)
	default:
		return nil, access.ErrUnknownResourceType
	}
	if err != nil {
		return nil, wrapReadErr("failed to load resource chain", err)
	}
	return &chain, nil
}

// Shares on the resource or any ancestor all apply; expiry is the resolver's
// concern, so expired rows come back too.
const sharesForChainSQL = `
SELECT role, expires_at
FROM shares
WHERE shared_with = $1
  AND ((resource_type = 'location' AND resource_id = $2)
    OR (resource_type = 'list' AND resource_id = $3))`

func (r *CommandReadStore) sharesForChain(ctx context.Context, userID, locationID, listID uuid.UUID) ([]access.Grant, error) {
	rows, err := r.db.Query(ctx, sharesForChainSQL, userID, locationID, listID)
	if err != nil {
		return nil, wrapReadErr("failed to load shares for access check", err)
	}
	defer rows.Close()

	var grants []access.Grant
	for rows.Next() {
		var rawRole string
		var expiresAt pgtype.Timestamptz
		if err := rows.Scan(&rawRole, &expiresAt); err != nil {
			return nil, wrapReadErr("failed to scan share grant", err)
		}
		role, err := access.NewRole(rawRole)
		if err != nil {
			return nil, wrapReadErr("invalid role in share row", err)
		}
		grants = append(grants, access.Grant{Role: role, ExpiresAt: pgconv.TimePtrFromPgtype(expiresAt)})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate share grants", err)
	}
	return grants, nil
}

func (r *CommandReadStore) memberRole(ctx context.Context, locationID, userID uuid.UUID) (*access.Role, error) {
	var rawRole string
	err := r.db.QueryRow(ctx,
		`SELECT role FROM location_members WHERE location_id = $1 AND user_id = $2`,
		locationID, userID,
	).Scan(&rawRole)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, wrapReadErr("failed to load location membership", err)
	}
	role, err := access.NewRole(rawRole)
	if err != nil {
		return nil, wrapReadErr("invalid role in membership row", err)
	}
	return &role, nil
}
