package response

import (
	"time"

	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ListResponse struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemResponse mirrors the query projection: for list owners the purchase
// fields arrive already redacted and stay omitted here.
type ItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	ListID          uuid.UUID  `json:"list_id"`
	Name            string     `json:"name"`
	URL             *string    `json:"url,omitempty"`
	PriceCents      int64      `json:"price_cents"`
	Priority        int        `json:"priority"`
	IsPurchased     *bool      `json:"is_purchased,omitempty"`
	PurchasedBy     *uuid.UUID `json:"purchased_by,omitempty"`
	PurchasedByName *string    `json:"purchased_by_name,omitempty"`
	PurchasedAt     *time.Time `json:"purchased_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ListItemsResponse struct {
	List  ListResponse   `json:"list"`
	Items []ItemResponse `json:"items"`
}

func FromListItemsView(v *queries.ListItemsView) *ListItemsResponse {
	var resp ListItemsResponse
	_ = copier.Copy(&resp.List, v.List)
	resp.Items = make([]ItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		var ir ItemResponse
		_ = copier.Copy(&ir, item)
		resp.Items = append(resp.Items, ir)
	}
	return &resp
}

type ReservationResponse struct {
	ItemID     uuid.UUID `json:"item_id"`
	ItemName   string    `json:"item_name"`
	ListID     uuid.UUID `json:"list_id"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func FromReservationViews(views []*queries.ReservationView) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		var rr ReservationResponse
		_ = copier.Copy(&rr, v)
		resp = append(resp, rr)
	}
	return resp
}

type ReserveResponse struct {
	ItemID    uuid.UUID `json:"item_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromReserveResult(r *commands.ReserveResult) ReserveResponse {
	return ReserveResponse{ItemID: r.ItemID, ExpiresAt: r.ExpiresAt}
}
