package commands

import (
	"context"
	"fmt"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/events"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/pkg/token"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateShareInput struct {
	Resource   access.ResourceRef
	SharedWith uuid.UUID
	Role       access.Role
	ExpiresAt  *time.Time
}

// ShareEntry is one grantee in a batch share, addressed by email; resolution
// to a user happens per entry so an unknown address fails only its own entry.
type ShareEntry struct {
	Email     string
	Role      access.Role
	ExpiresAt *time.Time
}

// ShareResult is one entry's outcome in a batch share. Err is a business
// error from the same taxonomy single shares produce; a failed entry never
// aborts its siblings. SharedWith is uuid.Nil when the email did not resolve.
type ShareResult struct {
	Email      string
	SharedWith uuid.UUID
	ShareID    uuid.UUID
	Err        error
}

type CreateInviteInput struct {
	Resource    access.ResourceRef
	DefaultRole access.Role
	MaxUses     int32
	ExpiresAt   *time.Time
}

type RedeemResult struct {
	Resource access.ResourceRef
	Role     access.Role
}

type ShareCommands interface {
	CreateShare(ctx context.Context, actor uuid.UUID, input CreateShareInput) (uuid.UUID, error)
	RevokeShare(ctx context.Context, actor, shareID uuid.UUID) error
	ShareWithMany(ctx context.Context, actor uuid.UUID, resource access.ResourceRef, entries []ShareEntry) ([]ShareResult, error)
	CreateGuestLink(ctx context.Context, actor, listID uuid.UUID, expiresAt *time.Time) (string, error)
	CreateInviteCode(ctx context.Context, actor uuid.UUID, input CreateInviteInput) (string, error)
	RedeemInviteCode(ctx context.Context, actor uuid.UUID, code string) (*RedeemResult, error)
}

type shareCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShareCommands(uow shared.UnitOfWork, clock clock.Clock) ShareCommands {
	return &shareCommandsImpl{uow: uow, clock: clock}
}

// resourceOwner resolves the exclusive owner for the shareable resource
// types. KindNotFound passes through so callers can mask it.
func resourceOwner(ctx context.Context, reads shared.CommandReads, resource access.ResourceRef) (uuid.UUID, error) {
	switch resource.Type {
	case access.ResourceLocation:
		loc, err := reads.LocationByID(ctx, resource.ID)
		if err != nil {
			return uuid.Nil, err
		}
		return loc.OwnerID, nil
	case access.ResourceList:
		list, err := reads.ListByID(ctx, resource.ID)
		if err != nil {
			return uuid.Nil, err
		}
		return list.OwnerID, nil
	default:
		return uuid.Nil, share.ErrNotShareable
	}
}

// requireOwner masks both absence and non-ownership as NotFound, so probing
// a resource id reveals nothing about its existence.
func requireOwner(ctx context.Context, reads shared.CommandReads, actor uuid.UUID, resource access.ResourceRef) error {
	owner, err := resourceOwner(ctx, reads, resource)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	if owner != actor {
		return errs.ErrNotFound
	}
	return nil
}

func (s *shareCommandsImpl) CreateShare(ctx context.Context, actor uuid.UUID, input CreateShareInput) (uuid.UUID, error) {
	var shareID uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := s.createShare(ctx, tx, actor, input)
		if err != nil {
			return err
		}
		shareID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return shareID, nil
}

// createShare is the transactional body shared by single and batch grants.
func (s *shareCommandsImpl) createShare(ctx context.Context, tx shared.Tx, actor uuid.UUID, input CreateShareInput) (uuid.UUID, error) {
	if err := requireOwner(ctx, tx.Reads(), actor, input.Resource); err != nil {
		return uuid.Nil, err
	}

	if _, err := tx.Reads().UserNameByID(ctx, input.SharedWith); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return uuid.Nil, err
	}

	grant, err := share.NewShare(s.clock.Now(), input.Resource, actor, input.SharedWith, input.Role, input.ExpiresAt)
	if err != nil {
		if err == share.ErrSelfShare {
			return uuid.Nil, errs.Mark(err, errs.ErrSelfShare)
		}
		return uuid.Nil, err
	}

	id, err := tx.Shares().Upsert(ctx, tx.DB(), grant)
	if err != nil {
		return uuid.Nil, err
	}

	payload := fmt.Appendf(nil, `{"shared_with":%q,"role":%q}`, input.SharedWith, input.Role)
	if err := tx.Events().Append(ctx, tx.DB(), events.ShareCreated, input.Resource.ID, payload); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *shareCommandsImpl) RevokeShare(ctx context.Context, actor, shareID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		grant, err := tx.Reads().ShareByID(ctx, shareID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return err
		}

		if err := requireOwner(ctx, tx.Reads(), actor, grant.Resource()); err != nil {
			return err
		}

		if err := tx.Shares().Delete(ctx, tx.DB(), shareID); err != nil {
			return err
		}

		payload := fmt.Appendf(nil, `{"shared_with":%q}`, grant.SharedWith())
		return tx.Events().Append(ctx, tx.DB(), events.ShareRevoked, grant.Resource().ID, payload)
	})
}

// ShareWithMany resolves each email to a user and grants per entry, each in
// its own transaction so one failure never rolls back its siblings.
func (s *shareCommandsImpl) ShareWithMany(ctx context.Context, actor uuid.UUID, resource access.ResourceRef, entries []ShareEntry) ([]ShareResult, error) {
	results := make([]ShareResult, 0, len(entries))
	for _, entry := range entries {
		result := ShareResult{Email: entry.Email}
		result.Err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			// Ownership first: non-owners learn nothing about the grantees.
			if err := requireOwner(ctx, tx.Reads(), actor, resource); err != nil {
				return err
			}

			granteeID, err := tx.Reads().UserIDByEmail(ctx, entry.Email)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrUserNotFound)
				}
				return err
			}
			result.SharedWith = granteeID

			id, err := s.createShare(ctx, tx, actor, CreateShareInput{
				Resource:   resource,
				SharedWith: granteeID,
				Role:       entry.Role,
				ExpiresAt:  entry.ExpiresAt,
			})
			if err != nil {
				return err
			}
			result.ShareID = id
			return nil
		})
		results = append(results, result)
	}
	return results, nil
}

func (s *shareCommandsImpl) CreateGuestLink(ctx context.Context, actor, listID uuid.UUID, expiresAt *time.Time) (string, error) {
	if expiresAt != nil && !expiresAt.After(s.clock.Now()) {
		return "", share.ErrExpiryInPast
	}

	guestToken, err := token.NewGuestToken()
	if err != nil {
		return "", errs.Wrap(err, "failed to mint guest token")
	}

	ref := access.ResourceRef{Type: access.ResourceList, ID: listID}
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireOwner(ctx, tx.Reads(), actor, ref); err != nil {
			return err
		}
		if err := tx.Lists().RotateGuestToken(ctx, tx.DB(), listID, guestToken, expiresAt); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.GuestLinkMinted, listID, nil)
	})
	if err != nil {
		return "", err
	}
	return guestToken, nil
}

func (s *shareCommandsImpl) CreateInviteCode(ctx context.Context, actor uuid.UUID, input CreateInviteInput) (string, error) {
	code, err := token.NewInviteCode()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate invite code")
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireOwner(ctx, tx.Reads(), actor, input.Resource); err != nil {
			return err
		}

		invite, err := share.NewInviteCode(s.clock.Now(), code, input.Resource, actor, input.DefaultRole, input.MaxUses, input.ExpiresAt)
		if err != nil {
			return err
		}
		if err := tx.Invites().Create(ctx, tx.DB(), invite); err != nil {
			return err
		}

		payload := fmt.Appendf(nil, `{"role":%q,"max_uses":%d}`, input.DefaultRole, input.MaxUses)
		return tx.Events().Append(ctx, tx.DB(), events.InviteCreated, input.Resource.ID, payload)
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// activeShareRole is the strongest unexpired share grant in the snapshot.
func activeShareRole(now time.Time, snap *access.Snapshot) access.Role {
	var held access.Role
	for _, g := range snap.Shares {
		if g.ExpiresAt != nil && !g.ExpiresAt.After(now) {
			continue
		}
		if held == "" || g.Role.AtLeast(held) {
			held = g.Role
		}
	}
	return held
}

func (s *shareCommandsImpl) RedeemInviteCode(ctx context.Context, actor uuid.UUID, code string) (*RedeemResult, error) {
	var result *RedeemResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		invite, err := tx.Reads().InviteByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return err
		}

		now := s.clock.Now()
		if err := invite.ValidateRedemption(now); err != nil {
			switch err {
			case share.ErrCodeExpired:
				return errs.Mark(err, errs.ErrExpired)
			case share.ErrCodeExhausted:
				return errs.Mark(err, errs.ErrExhausted)
			}
			return err
		}
		if invite.CreatedBy() == actor {
			return errs.ErrSelfShare
		}

		// The guarded increment is the arbiter under concurrent redemptions.
		rows, err := tx.Invites().ConsumeUse(ctx, tx.DB(), invite.ID())
		if err != nil {
			return err
		}
		if rows == 0 {
			return errs.ErrExhausted
		}

		role := invite.DefaultRole()
		resource := invite.Resource()

		switch resource.Type {
		case access.ResourceLocation:
			// Redemption only ever upgrades a standing membership.
			snap, err := tx.Reads().AccessSnapshot(ctx, access.Principal{UserID: actor}, resource)
			if err != nil {
				return err
			}
			if snap.MemberRole != nil && snap.MemberRole.AtLeast(role) {
				role = *snap.MemberRole
			}
			member := share.NewLocationMember(resource.ID, actor, role)
			if err := tx.Members().Upsert(ctx, tx.DB(), member); err != nil {
				return err
			}
		case access.ResourceList:
			// Same upgrade-only rule for shares: an existing grant at or above
			// the code's role stays untouched instead of being replaced.
			snap, err := tx.Reads().AccessSnapshot(ctx, access.Principal{UserID: actor}, resource)
			if err != nil {
				return err
			}
			if held := activeShareRole(now, snap); held != "" && held.AtLeast(role) {
				role = held
			} else {
				grant, err := share.NewShare(now, resource, invite.CreatedBy(), actor, role, invite.ExpiresAt())
				if err != nil {
					return err
				}
				if _, err := tx.Shares().Upsert(ctx, tx.DB(), grant); err != nil {
					return err
				}
			}
		default:
			return share.ErrNotShareable
		}

		payload := fmt.Appendf(nil, `{"redeemed_by":%q,"role":%q}`, actor, role)
		if err := tx.Events().Append(ctx, tx.DB(), events.InviteRedeemed, resource.ID, payload); err != nil {
			return err
		}

		result = &RedeemResult{Resource: resource, Role: role}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
