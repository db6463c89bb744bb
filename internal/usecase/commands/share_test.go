//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/events"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/shared"
	"wishkeeper/tests/common/builder"
	sharedmock "wishkeeper/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type shareFixture struct {
	reads   *sharedmock.MockCommandReads
	shares  *sharedmock.MockShareRepository
	members *sharedmock.MockMemberRepository
	invites *sharedmock.MockInviteRepository
	lists   *sharedmock.MockListRepository
	events  *sharedmock.MockEventRepository
	cmd     commands.ShareCommands
}

func newShareFixture(t *testing.T, now time.Time) *shareFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &shareFixture{
		reads:   sharedmock.NewMockCommandReads(ctrl),
		shares:  sharedmock.NewMockShareRepository(ctrl),
		members: sharedmock.NewMockMemberRepository(ctrl),
		invites: sharedmock.NewMockInviteRepository(ctrl),
		lists:   sharedmock.NewMockListRepository(ctrl),
		events:  sharedmock.NewMockEventRepository(ctrl),
	}

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	tx.EXPECT().Shares().Return(f.shares).AnyTimes()
	tx.EXPECT().Members().Return(f.members).AnyTimes()
	tx.EXPECT().Invites().Return(f.invites).AnyTimes()
	tx.EXPECT().Lists().Return(f.lists).AnyTimes()
	tx.EXPECT().Events().Return(f.events).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	f.cmd = commands.NewShareCommands(uow, clock.NewMockClock(now))
	return f
}

// ownsList stubs the ownership read for a list resource.
func (f *shareFixture) ownsList(listID, owner uuid.UUID) {
	f.reads.EXPECT().ListByID(gomock.Any(), listID).
		Return(&shared.ListSnapshot{ID: listID, OwnerID: owner}, nil).AnyTimes()
}

func TestShareCommands_CreateShare(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	actor := uuid.New()
	grantee := uuid.New()
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	t.Run("owner shares a list", func(t *testing.T) {
		f := newShareFixture(t, now)
		shareID := uuid.New()

		f.ownsList(listRef.ID, actor)
		f.reads.EXPECT().UserNameByID(ctx, grantee).Return("Bob", nil)
		f.shares.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, s *share.Share) (uuid.UUID, error) {
				assert.Equal(t, grantee, s.SharedWith())
				assert.Equal(t, access.RoleEditor, s.Role())
				return shareID, nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ShareCreated, listRef.ID, gomock.Any()).Return(nil)

		got, err := f.cmd.CreateShare(ctx, actor, commands.CreateShareInput{
			Resource:   listRef,
			SharedWith: grantee,
			Role:       access.RoleEditor,
		})
		require.NoError(t, err)
		assert.Equal(t, shareID, got)
	})

	t.Run("sharing with yourself is rejected", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.ownsList(listRef.ID, actor)
		f.reads.EXPECT().UserNameByID(ctx, actor).Return("Alice", nil)

		_, err := f.cmd.CreateShare(ctx, actor, commands.CreateShareInput{
			Resource:   listRef,
			SharedWith: actor,
			Role:       access.RoleViewer,
		})
		assert.ErrorIs(t, err, errs.ErrSelfShare)
	})

	t.Run("unknown grantee is reported, not masked", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.ownsList(listRef.ID, actor)
		f.reads.EXPECT().UserNameByID(ctx, grantee).Return("", infraNotFound())

		_, err := f.cmd.CreateShare(ctx, actor, commands.CreateShareInput{
			Resource:   listRef,
			SharedWith: grantee,
			Role:       access.RoleViewer,
		})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("non-owners cannot tell the list exists", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.ownsList(listRef.ID, uuid.New())

		_, err := f.cmd.CreateShare(ctx, actor, commands.CreateShareInput{
			Resource:   listRef,
			SharedWith: grantee,
			Role:       access.RoleViewer,
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("missing resource masks the same way", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.reads.EXPECT().ListByID(gomock.Any(), listRef.ID).Return(nil, infraNotFound())

		_, err := f.cmd.CreateShare(ctx, actor, commands.CreateShareInput{
			Resource:   listRef,
			SharedWith: grantee,
			Role:       access.RoleViewer,
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestShareCommands_RevokeShare(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	actor := uuid.New()
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	newGrant := func(t *testing.T) *share.Share {
		t.Helper()
		grant, err := builder.NewShareBuilder().
			WithResource(listRef).
			WithSharedBy(actor).
			BuildDomain()
		require.NoError(t, err)
		return grant
	}

	t.Run("owner revokes a share", func(t *testing.T) {
		f := newShareFixture(t, now)
		grant := newGrant(t)
		shareID := uuid.New()

		f.reads.EXPECT().ShareByID(ctx, shareID).Return(grant, nil)
		f.ownsList(listRef.ID, actor)
		f.shares.EXPECT().Delete(ctx, gomock.Any(), shareID).Return(nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ShareRevoked, listRef.ID, gomock.Any()).Return(nil)

		require.NoError(t, f.cmd.RevokeShare(ctx, actor, shareID))
	})

	t.Run("only the resource owner may revoke", func(t *testing.T) {
		f := newShareFixture(t, now)
		grant := newGrant(t)
		shareID := uuid.New()

		f.reads.EXPECT().ShareByID(ctx, shareID).Return(grant, nil)
		f.ownsList(listRef.ID, uuid.New())

		err := f.cmd.RevokeShare(ctx, actor, shareID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown share id is not found", func(t *testing.T) {
		f := newShareFixture(t, now)
		shareID := uuid.New()

		f.reads.EXPECT().ShareByID(ctx, shareID).Return(nil, infraNotFound())

		err := f.cmd.RevokeShare(ctx, actor, shareID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestShareCommands_ShareWithMany(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	actor := uuid.New()
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	t.Run("a failed entry never aborts its siblings", func(t *testing.T) {
		f := newShareFixture(t, now)
		bob := uuid.New()
		carol := uuid.New()

		f.ownsList(listRef.ID, actor)
		f.reads.EXPECT().UserIDByEmail(gomock.Any(), "bob@example.com").Return(bob, nil)
		f.reads.EXPECT().UserIDByEmail(gomock.Any(), "alice@example.com").Return(actor, nil)
		f.reads.EXPECT().UserIDByEmail(gomock.Any(), "carol@example.com").Return(carol, nil)
		f.reads.EXPECT().UserNameByID(gomock.Any(), gomock.Any()).Return("someone", nil).AnyTimes()
		f.shares.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ShareCreated, listRef.ID, gomock.Any()).
			Return(nil).Times(2)

		results, err := f.cmd.ShareWithMany(ctx, actor, listRef, []commands.ShareEntry{
			{Email: "bob@example.com", Role: access.RoleViewer},
			{Email: "alice@example.com", Role: access.RoleViewer}, // the actor's own address
			{Email: "carol@example.com", Role: access.RoleEditor},
		})
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.NoError(t, results[0].Err)
		assert.Equal(t, bob, results[0].SharedWith)
		assert.NotEqual(t, uuid.Nil, results[0].ShareID)
		assert.ErrorIs(t, results[1].Err, errs.ErrSelfShare)
		assert.NoError(t, results[2].Err)
	})

	t.Run("an unknown email fails only its own entry", func(t *testing.T) {
		f := newShareFixture(t, now)
		bob := uuid.New()

		f.ownsList(listRef.ID, actor)
		f.reads.EXPECT().UserIDByEmail(gomock.Any(), "ghost@example.com").
			Return(uuid.Nil, infraNotFound())
		f.reads.EXPECT().UserIDByEmail(gomock.Any(), "bob@example.com").Return(bob, nil)
		f.reads.EXPECT().UserNameByID(gomock.Any(), bob).Return("Bob", nil)
		f.shares.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ShareCreated, listRef.ID, gomock.Any()).Return(nil)

		results, err := f.cmd.ShareWithMany(ctx, actor, listRef, []commands.ShareEntry{
			{Email: "ghost@example.com", Role: access.RoleViewer},
			{Email: "bob@example.com", Role: access.RoleViewer},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.ErrorIs(t, results[0].Err, errs.ErrUserNotFound)
		assert.Equal(t, uuid.Nil, results[0].SharedWith)
		assert.NoError(t, results[1].Err)
	})

	t.Run("non-owners never learn whether grantees exist", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.ownsList(listRef.ID, uuid.New())

		results, err := f.cmd.ShareWithMany(ctx, actor, listRef, []commands.ShareEntry{
			{Email: "bob@example.com", Role: access.RoleViewer},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.ErrorIs(t, results[0].Err, errs.ErrNotFound)
	})
}

func TestShareCommands_CreateGuestLink(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	actor := uuid.New()
	listID := uuid.New()

	t.Run("owner mints a fresh token and rotates the old one out", func(t *testing.T) {
		f := newShareFixture(t, now)
		var stored string

		f.ownsList(listID, actor)
		f.lists.EXPECT().RotateGuestToken(ctx, gomock.Any(), listID, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, tok string, _ *time.Time) error {
				stored = tok
				return nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.GuestLinkMinted, listID, gomock.Any()).Return(nil)

		got, err := f.cmd.CreateGuestLink(ctx, actor, listID, nil)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		assert.Len(t, got, 43)
	})

	t.Run("a time-bounded link stores its expiry", func(t *testing.T) {
		f := newShareFixture(t, now)
		expiry := now.Add(time.Hour)

		f.ownsList(listID, actor)
		f.lists.EXPECT().RotateGuestToken(ctx, gomock.Any(), listID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, _ string, expiresAt *time.Time) error {
				require.NotNil(t, expiresAt)
				assert.True(t, expiry.Equal(*expiresAt))
				return nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.GuestLinkMinted, listID, gomock.Any()).Return(nil)

		_, err := f.cmd.CreateGuestLink(ctx, actor, listID, &expiry)
		require.NoError(t, err)
	})

	t.Run("an expiry in the past is rejected", func(t *testing.T) {
		f := newShareFixture(t, now)
		past := now.Add(-time.Minute)

		_, err := f.cmd.CreateGuestLink(ctx, actor, listID, &past)
		assert.ErrorIs(t, err, share.ErrExpiryInPast)
	})

	t.Run("non-owners get not found", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.ownsList(listID, uuid.New())

		_, err := f.cmd.CreateGuestLink(ctx, actor, listID, nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestShareCommands_CreateInviteCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	actor := uuid.New()
	locRef := access.ResourceRef{Type: access.ResourceLocation, ID: uuid.New()}

	t.Run("owner mints a short code", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.reads.EXPECT().LocationByID(gomock.Any(), locRef.ID).
			Return(&shared.LocationSnapshot{ID: locRef.ID, OwnerID: actor}, nil)
		f.invites.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, c *share.InviteCode) error {
				assert.Equal(t, int32(5), c.MaxUses())
				return nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteCreated, locRef.ID, gomock.Any()).Return(nil)

		code, err := f.cmd.CreateInviteCode(ctx, actor, commands.CreateInviteInput{
			Resource:    locRef,
			DefaultRole: access.RoleViewer,
			MaxUses:     5,
		})
		require.NoError(t, err)
		assert.Len(t, code, 6)
	})
}

func TestShareCommands_RedeemInviteCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	creator := uuid.New()
	redeemer := uuid.New()
	locRef := access.ResourceRef{Type: access.ResourceLocation, ID: uuid.New()}
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	t.Run("redeeming grants membership on a location", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(1), nil)
		f.reads.EXPECT().AccessSnapshot(ctx, access.Principal{UserID: redeemer}, locRef).
			Return(&access.Snapshot{Resource: locRef, OwnerID: creator}, nil)
		f.members.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, m *share.LocationMember) error {
				assert.Equal(t, redeemer, m.UserID())
				assert.Equal(t, access.RoleViewer, m.Role())
				return nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteRedeemed, locRef.ID, gomock.Any()).Return(nil)

		result, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		require.NoError(t, err)
		assert.Equal(t, locRef, result.Resource)
		assert.Equal(t, access.RoleViewer, result.Role)
	})

	t.Run("redemption never downgrades a standing membership", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			WithRole(access.RoleViewer).
			BuildDomain()
		editor := access.RoleEditor

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(1), nil)
		f.reads.EXPECT().AccessSnapshot(ctx, access.Principal{UserID: redeemer}, locRef).
			Return(&access.Snapshot{Resource: locRef, OwnerID: creator, MemberRole: &editor}, nil)
		f.members.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, m *share.LocationMember) error {
				assert.Equal(t, access.RoleEditor, m.Role())
				return nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteRedeemed, locRef.ID, gomock.Any()).Return(nil)

		result, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		require.NoError(t, err)
		assert.Equal(t, access.RoleEditor, result.Role)
	})

	t.Run("redeeming a list invite upserts a share", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(listRef).
			WithCreatedBy(creator).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(1), nil)
		f.reads.EXPECT().AccessSnapshot(ctx, access.Principal{UserID: redeemer}, listRef).
			Return(&access.Snapshot{Resource: listRef, OwnerID: creator}, nil)
		f.shares.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, s *share.Share) (uuid.UUID, error) {
				assert.Equal(t, redeemer, s.SharedWith())
				assert.Equal(t, creator, s.SharedBy())
				return uuid.New(), nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteRedeemed, listRef.ID, gomock.Any()).Return(nil)

		_, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		require.NoError(t, err)
	})

	t.Run("redemption never downgrades a standing share", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(listRef).
			WithCreatedBy(creator).
			WithRole(access.RoleViewer).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(1), nil)
		f.reads.EXPECT().AccessSnapshot(ctx, access.Principal{UserID: redeemer}, listRef).
			Return(&access.Snapshot{
				Resource: listRef,
				OwnerID:  creator,
				Shares:   []access.Grant{{Role: access.RoleEditor}},
			}, nil)
		// No Upsert: the editor grant stays as it is.
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteRedeemed, listRef.ID, gomock.Any()).Return(nil)

		result, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		require.NoError(t, err)
		assert.Equal(t, access.RoleEditor, result.Role)
	})

	t.Run("an expired share does not block a fresh list grant", func(t *testing.T) {
		f := newShareFixture(t, now)
		stale := now.Add(-time.Minute)
		invite := builder.NewInviteBuilder().
			WithResource(listRef).
			WithCreatedBy(creator).
			WithRole(access.RoleViewer).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(1), nil)
		f.reads.EXPECT().AccessSnapshot(ctx, access.Principal{UserID: redeemer}, listRef).
			Return(&access.Snapshot{
				Resource: listRef,
				OwnerID:  creator,
				Shares:   []access.Grant{{Role: access.RoleEditor, ExpiresAt: &stale}},
			}, nil)
		f.shares.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, s *share.Share) (uuid.UUID, error) {
				assert.Equal(t, access.RoleViewer, s.Role())
				return uuid.New(), nil
			})
		f.events.EXPECT().Append(ctx, gomock.Any(), events.InviteRedeemed, listRef.ID, gomock.Any()).Return(nil)

		result, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		require.NoError(t, err)
		assert.Equal(t, access.RoleViewer, result.Role)
	})

	t.Run("expired codes are gone", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			ExpiringAt(now.Add(-time.Minute)).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)

		_, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		assert.ErrorIs(t, err, errs.ErrExpired)
	})

	t.Run("used-up codes are exhausted", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			WithUses(3, 3).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)

		_, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		assert.ErrorIs(t, err, errs.ErrExhausted)
	})

	t.Run("losing the last use in a race is exhausted too", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			WithUses(3, 2).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)
		f.invites.EXPECT().ConsumeUse(ctx, gomock.Any(), invite.ID()).Return(int64(0), nil)

		_, err := f.cmd.RedeemInviteCode(ctx, redeemer, invite.Code())
		assert.ErrorIs(t, err, errs.ErrExhausted)
	})

	t.Run("the creator cannot redeem their own code", func(t *testing.T) {
		f := newShareFixture(t, now)
		invite := builder.NewInviteBuilder().
			WithResource(locRef).
			WithCreatedBy(creator).
			BuildDomain()

		f.reads.EXPECT().InviteByCode(ctx, invite.Code()).Return(invite, nil)

		_, err := f.cmd.RedeemInviteCode(ctx, creator, invite.Code())
		assert.ErrorIs(t, err, errs.ErrSelfShare)
	})

	t.Run("unknown codes are not found", func(t *testing.T) {
		f := newShareFixture(t, now)

		f.reads.EXPECT().InviteByCode(ctx, "NOPE42").Return(nil, infraNotFound())

		_, err := f.cmd.RedeemInviteCode(ctx, redeemer, "NOPE42")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
