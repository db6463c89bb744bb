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

func TestNewShare(t *testing.T) {
	now := time.Now()
	owner := uuid.New()
	friend := uuid.New()
	listRef := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	t.Run("basic success case", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		s, err := share.NewShare(now, listRef, owner, friend, access.RoleEditor, &future)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, listRef, s.Resource())
		assert.Equal(t, owner, s.SharedBy())
		assert.Equal(t, friend, s.SharedWith())
		assert.Equal(t, access.RoleEditor, s.Role())
		assert.True(t, s.IsActiveAt(now))
	})

	t.Run("permanent share has no expiry", func(t *testing.T) {
		s, err := share.NewShare(now, listRef, owner, friend, access.RoleViewer, nil)
		require.NoError(t, err)

		assert.Nil(t, s.ExpiresAt())
		assert.True(t, s.IsActiveAt(now.Add(100*365*24*time.Hour)))
	})

	t.Run("sharing with yourself is rejected", func(t *testing.T) {
		_, err := share.NewShare(now, listRef, owner, owner, access.RoleViewer, nil)
		assert.ErrorIs(t, err, share.ErrSelfShare)
	})

	t.Run("items cannot be shared directly", func(t *testing.T) {
		itemRef := access.ResourceRef{Type: access.ResourceItem, ID: uuid.New()}
		_, err := share.NewShare(now, itemRef, owner, friend, access.RoleViewer, nil)
		assert.ErrorIs(t, err, share.ErrNotShareable)
	})

	t.Run("expiry in the past is rejected", func(t *testing.T) {
		past := now.Add(-time.Minute)
		_, err := share.NewShare(now, listRef, owner, friend, access.RoleViewer, &past)
		assert.ErrorIs(t, err, share.ErrExpiryInPast)
	})

	t.Run("expiry exactly now is rejected", func(t *testing.T) {
		at := now
		_, err := share.NewShare(now, listRef, owner, friend, access.RoleViewer, &at)
		assert.ErrorIs(t, err, share.ErrExpiryInPast)
	})
}

func TestShare_IsActiveAt(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)
	s := share.ReconstructShare(
		uuid.New(),
		access.ResourceRef{Type: access.ResourceList, ID: uuid.New()},
		uuid.New(), uuid.New(),
		access.RoleViewer,
		&expiry,
		now, now,
	)

	assert.True(t, s.IsActiveAt(now))
	assert.True(t, s.IsActiveAt(expiry.Add(-time.Second)))
	assert.False(t, s.IsActiveAt(expiry))
	assert.False(t, s.IsActiveAt(expiry.Add(time.Second)))
}
