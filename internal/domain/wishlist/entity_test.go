//go:build unit

package wishlist_test

import (
	"strings"
	"testing"

	"wishkeeper/internal/domain/wishlist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, raw string) wishlist.Name {
	t.Helper()
	n, err := wishlist.NewName(raw)
	require.NoError(t, err)
	return n
}

func TestNewName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := wishlist.NewName("  Lego castle  ")
		require.NoError(t, err)
		assert.Equal(t, "Lego castle", n.String())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := wishlist.NewName("   ")
		assert.ErrorIs(t, err, wishlist.ErrEmptyName)
	})

	t.Run("maximum length boundary", func(t *testing.T) {
		_, err := wishlist.NewName(strings.Repeat("a", wishlist.MaxNameLength))
		assert.NoError(t, err)

		_, err = wishlist.NewName(strings.Repeat("a", wishlist.MaxNameLength+1))
		assert.ErrorIs(t, err, wishlist.ErrNameTooLong)
	})
}

func TestNewList(t *testing.T) {
	locationID := uuid.New()
	ownerID := uuid.New()
	name := mustName(t, "Christmas 2026")

	t.Run("basic success case", func(t *testing.T) {
		l, err := wishlist.NewList(locationID, ownerID, name, 2026, "tok")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, ownerID, l.OwnerID())
		assert.Equal(t, 2026, l.Year())
		assert.False(t, l.IsPublic())
	})

	t.Run("year boundaries", func(t *testing.T) {
		for _, year := range []int{2000, 2200} {
			_, err := wishlist.NewList(locationID, ownerID, name, year, "")
			assert.NoError(t, err)
		}
		for _, year := range []int{1999, 2201, 0} {
			_, err := wishlist.NewList(locationID, ownerID, name, year, "")
			assert.ErrorIs(t, err, wishlist.ErrInvalidYear)
		}
	})
}

func TestNewItem(t *testing.T) {
	listID := uuid.New()
	name := mustName(t, "Wool socks")

	t.Run("basic success case", func(t *testing.T) {
		i, err := wishlist.NewItem(listID, name, nil, 1999, 3)
		require.NoError(t, err)

		assert.Equal(t, listID, i.ListID())
		assert.Equal(t, int64(1999), i.PriceCents())
		assert.False(t, i.IsPurchased())
		assert.Nil(t, i.PurchasedBy())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := wishlist.NewItem(listID, name, nil, -1, 3)
		assert.ErrorIs(t, err, wishlist.ErrNegativePrice)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := wishlist.NewItem(listID, name, nil, 0, 3)
		assert.NoError(t, err)
	})

	t.Run("priority boundaries", func(t *testing.T) {
		for _, p := range []int{wishlist.MinPriority, wishlist.MaxPriority} {
			_, err := wishlist.NewItem(listID, name, nil, 0, p)
			assert.NoError(t, err)
		}
		for _, p := range []int{0, 6, -1} {
			_, err := wishlist.NewItem(listID, name, nil, 0, p)
			assert.ErrorIs(t, err, wishlist.ErrInvalidPriority)
		}
	})
}
