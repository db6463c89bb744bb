//go:build unit

package share_test

import (
	"testing"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/share"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInviteCode(t *testing.T) {
	now := time.Now()
	creator := uuid.New()
	locationRef := access.ResourceRef{Type: access.ResourceLocation, ID: uuid.New()}

	t.Run("basic success case", func(t *testing.T) {
		c, err := share.NewInviteCode(now, "ABC234", locationRef, creator, access.RoleViewer, 10, nil)
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "ABC234", c.Code())
		assert.Equal(t, int32(10), c.MaxUses())
		assert.Equal(t, int32(0), c.UseCount())
	})

	t.Run("zero max uses is rejected", func(t *testing.T) {
		_, err := share.NewInviteCode(now, "ABC234", locationRef, creator, access.RoleViewer, 0, nil)
		assert.ErrorIs(t, err, share.ErrInvalidUses)
	})

	t.Run("item codes are rejected", func(t *testing.T) {
		itemRef := access.ResourceRef{Type: access.ResourceItem, ID: uuid.New()}
		_, err := share.NewInviteCode(now, "ABC234", itemRef, creator, access.RoleViewer, 1, nil)
		assert.ErrorIs(t, err, share.ErrNotShareable)
	})

	t.Run("past expiry is rejected", func(t *testing.T) {
		past := now.Add(-time.Hour)
		_, err := share.NewInviteCode(now, "ABC234", locationRef, creator, access.RoleViewer, 1, &past)
		assert.ErrorIs(t, err, share.ErrExpiryInPast)
	})
}

func TestInviteCode_ValidateRedemption(t *testing.T) {
	now := time.Now()
	creator := uuid.New()
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	reconstruct := func(maxUses, useCount int32, expiresAt *time.Time) *share.InviteCode {
		return share.ReconstructInviteCode(
			uuid.New(), "XYZ789", listRef, creator, access.RoleViewer,
			maxUses, useCount, expiresAt, now,
		)
	}

	t.Run("fresh code redeems", func(t *testing.T) {
		assert.NoError(t, reconstruct(3, 0, nil).ValidateRedemption(now))
	})

	t.Run("last use still redeems", func(t *testing.T) {
		assert.NoError(t, reconstruct(3, 2, nil).ValidateRedemption(now))
	})

	t.Run("exhausted code is rejected", func(t *testing.T) {
		err := reconstruct(3, 3, nil).ValidateRedemption(now)
		assert.ErrorIs(t, err, share.ErrCodeExhausted)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		past := now.Add(-time.Minute)
		err := reconstruct(3, 0, &past).ValidateRedemption(now)
		assert.ErrorIs(t, err, share.ErrCodeExpired)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		at := now
		err := reconstruct(3, 0, &at).ValidateRedemption(now)
		assert.ErrorIs(t, err, share.ErrCodeExpired)
	})
}
