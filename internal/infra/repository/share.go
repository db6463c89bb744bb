package repository

import (
	"context"

	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ShareRepository struct{}

func NewShareRepository() *ShareRepository {
	return &ShareRepository{}
}

const upsertShareSQL = `
INSERT INTO shares (id, resource_type, resource_id, shared_by, shared_with, role, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (resource_type, resource_id, shared_with)
DO UPDATE SET role = EXCLUDED.role,
              expires_at = EXCLUDED.expires_at,
              shared_by = EXCLUDED.shared_by,
              updated_at = now()
RETURNING id`

func (r *ShareRepository) Upsert(ctx context.Context, tx db.DBTX, s *share.Share) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, upsertShareSQL,
		s.ID(),
		string(s.Resource().Type),
		s.Resource().ID,
		s.SharedBy(),
		s.SharedWith(),
		s.Role().String(),
		pgconv.TimePtrToPgtype(s.ExpiresAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to upsert share", err)
	}
	return id, nil
}

func (r *ShareRepository) Delete(ctx context.Context, tx db.DBTX, shareID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM shares WHERE id = $1`, shareID); err != nil {
		return wrapWriteErr("failed to delete share", err)
	}
	return nil
}

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

const upsertMemberSQL = `
INSERT INTO location_members (location_id, user_id, role)
VALUES ($1, $2, $3)
ON CONFLICT (location_id, user_id)
DO UPDATE SET role = EXCLUDED.role`

func (r *MemberRepository) Upsert(ctx context.Context, tx db.DBTX, m *share.LocationMember) error {
	if _, err := tx.Exec(ctx, upsertMemberSQL, m.LocationID(), m.UserID(), m.Role().String()); err != nil {
		return wrapWriteErr("failed to upsert location member", err)
	}
	return nil
}

type InviteRepository struct{}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{}
}

const createInviteSQL = `
INSERT INTO invite_codes (id, code, resource_type, resource_id, created_by, default_role, max_uses, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *InviteRepository) Create(ctx context.Context, tx db.DBTX, c *share.InviteCode) error {
	_, err := tx.Exec(ctx, createInviteSQL,
		c.ID(),
		c.Code(),
		string(c.Resource().Type),
		c.Resource().ID,
		c.CreatedBy(),
		c.DefaultRole().String(),
		c.MaxUses(),
		pgconv.TimePtrToPgtype(c.ExpiresAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to create invite code", err)
	}
	return nil
}

// The guard in the WHERE clause makes the increment the arbiter under
// concurrent redemptions: once use_count reaches max_uses no further row
// matches.
const consumeInviteUseSQL = `
UPDATE invite_codes
SET use_count = use_count + 1
WHERE id = $1 AND use_count < max_uses`

func (r *InviteRepository) ConsumeUse(ctx context.Context, tx db.DBTX, codeID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, consumeInviteUseSQL, codeID)
	if err != nil {
		return 0, wrapWriteErr("failed to consume invite use", err)
	}
	return tag.RowsAffected(), nil
}
