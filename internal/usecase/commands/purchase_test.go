//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/purchase"
	"wishkeeper/internal/events"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/config"
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

const reservationTTL = 10 * time.Minute

type purchaseFixture struct {
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	items        *sharedmock.MockItemRepository
	events       *sharedmock.MockEventRepository
	clock        *clock.MockClock
	cmd          commands.PurchaseCommands
}

func newPurchaseFixture(t *testing.T, now time.Time) *purchaseFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &purchaseFixture{
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		items:        sharedmock.NewMockItemRepository(ctrl),
		events:       sharedmock.NewMockEventRepository(ctrl),
		clock:        clock.NewMockClock(now),
	}

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	tx.EXPECT().Items().Return(f.items).AnyTimes()
	tx.EXPECT().Events().Return(f.events).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	f.cmd = commands.NewPurchaseCommands(uow, f.clock, config.ReservationConfig{TTL: reservationTTL})
	return f
}

func infraNotFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", nil)
}

func reservationFor(at time.Time, itemID, holder uuid.UUID) *purchase.Reservation {
	return purchase.NewReservation(at, reservationTTL, itemID, holder)
}

// grant stubs the access snapshot so the principal holds the given role on
// the item through a share.
func (f *purchaseFixture) grant(itemID, owner uuid.UUID, role access.Role) {
	snap := &access.Snapshot{
		Resource: access.ResourceRef{Type: access.ResourceItem, ID: itemID},
		OwnerID:  owner,
		Shares:   []access.Grant{{Role: role}},
	}
	f.reads.EXPECT().AccessSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)
}

func TestPurchaseCommands_Reserve(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	owner := uuid.New()
	shopper := access.Principal{UserID: uuid.New()}

	t.Run("reserves an available item with a fresh TTL", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(nil, infraNotFound())
		f.reservations.EXPECT().Acquire(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ItemReserved, item.ID, gomock.Any()).Return(nil)

		result, err := f.cmd.Reserve(ctx, shopper, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, result.ItemID)
		assert.Equal(t, now.Add(reservationTTL), result.ExpiresAt)
	})

	t.Run("anonymous principals cannot reserve", func(t *testing.T) {
		f := newPurchaseFixture(t, now)

		_, err := f.cmd.Reserve(ctx, access.Principal{GuestToken: "tok"}, uuid.New())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("without read access the item does not exist", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		itemID := uuid.New()

		snap := &access.Snapshot{
			Resource: access.ResourceRef{Type: access.ResourceItem, ID: itemID},
			OwnerID:  owner,
		}
		f.reads.EXPECT().AccessSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(snap, nil)

		_, err := f.cmd.Reserve(ctx, shopper, itemID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("the list owner is locked out of the purchase surface", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		ownerPrincipal := access.Principal{UserID: owner}
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)

		_, err := f.cmd.Reserve(ctx, ownerPrincipal, item.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("a live rival reservation blocks and names the holder", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		rival := uuid.New()
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()
		rivalRes := reservationFor(now, item.ID, rival)

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(rivalRes, nil)
		f.reads.EXPECT().UserNameByID(ctx, rival).Return("Bob", nil)

		_, err := f.cmd.Reserve(ctx, shopper, item.ID)
		require.ErrorIs(t, err, errs.ErrAlreadyReserved)

		var reserved *commands.AlreadyReservedError
		require.ErrorAs(t, err, &reserved)
		assert.Equal(t, "Bob", reserved.HolderName)
	})

	t.Run("losing the insert race reports the winner", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		rival := uuid.New()
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(nil, infraNotFound())
		f.reservations.EXPECT().Acquire(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(reservationFor(now, item.ID, rival), nil)
		f.reads.EXPECT().UserNameByID(ctx, rival).Return("Bob", nil)

		_, err := f.cmd.Reserve(ctx, shopper, item.ID)
		assert.ErrorIs(t, err, errs.ErrAlreadyReserved)
	})

	t.Run("purchased items cannot be reserved", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		buyer := uuid.New()
		item := builder.NewItemSnapshotBuilder().
			WithListOwner(owner).
			PurchasedByUser(buyer, now.Add(-time.Hour)).
			Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(nil, infraNotFound())

		_, err := f.cmd.Reserve(ctx, shopper, item.ID)
		assert.ErrorIs(t, err, errs.ErrAlreadyPurchased)
	})
}

func TestPurchaseCommands_ConfirmPurchase(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	owner := uuid.New()
	shopper := access.Principal{UserID: uuid.New()}

	t.Run("converts a live reservation into a purchase", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(reservationFor(now, item.ID, shopper.UserID), nil)
		f.items.EXPECT().MarkPurchased(ctx, gomock.Any(), item.ID, shopper.UserID, now).Return(int64(1), nil)
		f.reservations.EXPECT().DeleteByItem(ctx, gomock.Any(), item.ID).Return(nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ItemPurchased, item.ID, gomock.Any()).Return(nil)

		require.NoError(t, f.cmd.ConfirmPurchase(ctx, shopper, item.ID))
	})

	t.Run("confirm requires a live reservation", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(nil, infraNotFound())

		err := f.cmd.ConfirmPurchase(ctx, shopper, item.ID)
		assert.ErrorIs(t, err, errs.ErrNoReservation)
	})

	t.Run("an expired reservation no longer confirms", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(reservationFor(now.Add(-reservationTTL-time.Second), item.ID, shopper.UserID), nil)

		err := f.cmd.ConfirmPurchase(ctx, shopper, item.ID)
		assert.ErrorIs(t, err, errs.ErrNoReservation)
	})

	t.Run("losing the conditional update names the winning purchaser", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		rival := uuid.New()
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()
		purchased := builder.NewItemSnapshotBuilder().
			WithID(item.ID).
			WithListOwner(owner).
			PurchasedByUser(rival, now).
			Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(reservationFor(now, item.ID, shopper.UserID), nil)
		f.items.EXPECT().MarkPurchased(ctx, gomock.Any(), item.ID, shopper.UserID, now).Return(int64(0), nil)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(purchased, nil)
		f.reads.EXPECT().UserNameByID(ctx, rival).Return("Bob", nil)

		err := f.cmd.ConfirmPurchase(ctx, shopper, item.ID)
		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *commands.PurchaseConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Bob", conflict.PurchaserName)
	})
}

func TestPurchaseCommands_Release(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	owner := uuid.New()
	shopper := access.Principal{UserID: uuid.New()}

	t.Run("releases the caller's own reservation", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(reservationFor(now, item.ID, shopper.UserID), nil)
		f.reservations.EXPECT().DeleteByHolder(ctx, gomock.Any(), item.ID, shopper.UserID).Return(nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ItemReleased, item.ID, gomock.Any()).Return(nil)

		require.NoError(t, f.cmd.Release(ctx, shopper, item.ID))
	})

	t.Run("releasing with no live reservation is a no-op", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).Return(nil, infraNotFound())

		assert.NoError(t, f.cmd.Release(ctx, shopper, item.ID))
	})

	t.Run("someone else's reservation is left alone", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.reads.EXPECT().ReservationByItem(ctx, item.ID).
			Return(reservationFor(now, item.ID, uuid.New()), nil)

		// No delete, no event; the rival's hold survives.
		assert.NoError(t, f.cmd.Release(ctx, shopper, item.ID))
	})
}

func TestPurchaseCommands_UnmarkPurchase(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	owner := uuid.New()
	buyer := access.Principal{UserID: uuid.New()}

	t.Run("the purchaser can unmark", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().
			WithListOwner(owner).
			PurchasedByUser(buyer.UserID, now.Add(-time.Hour)).
			Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.items.EXPECT().UnmarkPurchased(ctx, gomock.Any(), item.ID).Return(nil)
		f.reservations.EXPECT().DeleteByItem(ctx, gomock.Any(), item.ID).Return(nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ItemUnmarked, item.ID, gomock.Any()).Return(nil)

		require.NoError(t, f.cmd.UnmarkPurchase(ctx, buyer, item.ID))
	})

	t.Run("a viewer who is not the purchaser may not unmark", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		other := access.Principal{UserID: uuid.New()}
		item := builder.NewItemSnapshotBuilder().
			WithListOwner(owner).
			PurchasedByUser(buyer.UserID, now.Add(-time.Hour)).
			Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)

		err := f.cmd.UnmarkPurchase(ctx, other, item.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("a list editor may unmark anyone's purchase", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		editor := access.Principal{UserID: uuid.New()}
		item := builder.NewItemSnapshotBuilder().
			WithListOwner(owner).
			PurchasedByUser(buyer.UserID, now.Add(-time.Hour)).
			Build()

		f.grant(item.ID, owner, access.RoleEditor)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)
		f.items.EXPECT().UnmarkPurchased(ctx, gomock.Any(), item.ID).Return(nil)
		f.reservations.EXPECT().DeleteByItem(ctx, gomock.Any(), item.ID).Return(nil)
		f.events.EXPECT().Append(ctx, gomock.Any(), events.ItemUnmarked, item.ID, gomock.Any()).Return(nil)

		require.NoError(t, f.cmd.UnmarkPurchase(ctx, editor, item.ID))
	})

	t.Run("unmarking an unpurchased item is a conflict", func(t *testing.T) {
		f := newPurchaseFixture(t, now)
		item := builder.NewItemSnapshotBuilder().WithListOwner(owner).Build()

		f.grant(item.ID, owner, access.RoleViewer)
		f.reads.EXPECT().ItemByID(ctx, item.ID).Return(item, nil)

		err := f.cmd.UnmarkPurchase(ctx, buyer, item.ID)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
