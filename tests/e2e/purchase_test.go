//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedListWithItem builds the fixture every purchase scenario needs: an
// owner with a location, a list and one item, shared with the given shoppers
// by email.
func seedListWithItem(t *testing.T, router *gin.Engine, ownerToken string, shopperEmails ...string) (listID, itemID uuid.UUID) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/locations", map[string]string{
		"name": "Our Home",
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var loc struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &loc)

	w = doJSON(t, router, http.MethodPost, "/api/lists", map[string]any{
		"location_id": loc.ID,
		"name":        "Christmas 2026",
		"year":        2026,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var list struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &list)

	w = doJSON(t, router, http.MethodPost, "/api/lists/"+list.ID.String()+"/items", map[string]any{
		"name":        "Wool socks",
		"price_cents": 1500,
		"priority":    3,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &item)

	if len(shopperEmails) > 0 {
		entries := make([]map[string]any, 0, len(shopperEmails))
		for _, email := range shopperEmails {
			entries = append(entries, map[string]any{"email": email, "role": "viewer"})
		}
		w = doJSON(t, router, http.MethodPost, "/api/shares/batch", map[string]any{
			"resource_type": "list",
			"resource_id":   list.ID,
			"entries":       entries,
		}, ownerToken)
		require.Equal(t, http.StatusMultiStatus, w.Code, w.Body.String())
	}

	return list.ID, item.ID
}

func TestPurchaseLifecycle(t *testing.T) {
	_, router := setupE2EEnvironment(t)

	_, ownerToken := registerAndLogin(t, router, "owner@example.com", "Olivia")
	_, aliceToken := registerAndLogin(t, router, "alice@example.com", "Alice")
	_, bobToken := registerAndLogin(t, router, "bob@example.com", "Bob")

	listID, itemID := seedListWithItem(t, router, ownerToken, "alice@example.com", "bob@example.com")

	// Alice reserves; Bob is told who holds the item.
	w := doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, aliceToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, bobToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	var conflict struct {
		Detail struct {
			ReservedBy string `json:"reserved_by"`
		} `json:"detail"`
	}
	decodeBody(t, w, &conflict)
	assert.Equal(t, "Alice", conflict.Detail.ReservedBy)

	// Re-reserving your own hold refreshes it.
	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, aliceToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Only the holder can confirm.
	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/purchase", nil, bobToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/purchase", nil, aliceToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Purchased items cannot be reserved again.
	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, bobToken)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Shoppers see the purchase state; the owner never does.
	type itemView struct {
		ID              uuid.UUID  `json:"id"`
		IsPurchased     *bool      `json:"is_purchased"`
		PurchasedBy     *uuid.UUID `json:"purchased_by"`
		PurchasedByName *string    `json:"purchased_by_name"`
	}
	type listView struct {
		Items []itemView `json:"items"`
	}

	w = doJSON(t, router, http.MethodGet, "/api/lists/"+listID.String(), nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var shopperView listView
	decodeBody(t, w, &shopperView)
	require.Len(t, shopperView.Items, 1)
	require.NotNil(t, shopperView.Items[0].IsPurchased)
	assert.True(t, *shopperView.Items[0].IsPurchased)
	require.NotNil(t, shopperView.Items[0].PurchasedByName)
	assert.Equal(t, "Alice", *shopperView.Items[0].PurchasedByName)

	w = doJSON(t, router, http.MethodGet, "/api/lists/"+listID.String(), nil, ownerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ownerView listView
	decodeBody(t, w, &ownerView)
	require.Len(t, ownerView.Items, 1)
	assert.Nil(t, ownerView.Items[0].IsPurchased)
	assert.Nil(t, ownerView.Items[0].PurchasedBy)
	assert.Nil(t, ownerView.Items[0].PurchasedByName)

	// Alice unmarks; the item is open again and Bob can now reserve it.
	w = doJSON(t, router, http.MethodDelete, "/api/items/"+itemID.String()+"/purchase", nil, aliceToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestOwnerLockedOutOfPurchaseSurface(t *testing.T) {
	_, router := setupE2EEnvironment(t)

	_, ownerToken := registerAndLogin(t, router, "owner@example.com", "Olivia")
	_, _ = registerAndLogin(t, router, "alice@example.com", "Alice")

	_, itemID := seedListWithItem(t, router, ownerToken, "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, ownerToken)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/purchase", nil, ownerToken)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}

// TestConcurrentReservations exercises the insert-or-takeover guard under
// real database concurrency: many shoppers race, exactly one wins.
func TestConcurrentReservations(t *testing.T) {
	_, router := setupE2EEnvironment(t)

	_, ownerToken := registerAndLogin(t, router, "owner@example.com", "Olivia")

	const shoppers = 8
	emails := make([]string, shoppers)
	tokens := make([]string, shoppers)
	for i := range shoppers {
		emails[i] = fmt.Sprintf("shopper%d@example.com", i)
		_, tokens[i] = registerAndLogin(t, router, emails[i], fmt.Sprintf("Shopper %d", i))
	}

	_, itemID := seedListWithItem(t, router, ownerToken, emails...)

	var wg sync.WaitGroup
	codes := make([]int, shoppers)
	for i := range shoppers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doJSON(t, router, http.MethodPost, "/api/items/"+itemID.String()+"/reserve", nil, tokens[i])
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			winners++
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, winners, "exactly one shopper must win the reservation")
}
