package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type CreateListRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	Name       string    `json:"name" binding:"required,max=200"`
	Year       int       `json:"year" binding:"required,min=2000,max=2200"`
}

type SetListPublicRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type CreateItemRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	URL        *string `json:"url,omitempty" binding:"omitempty,url"`
	PriceCents int64   `json:"price_cents" binding:"min=0"`
	Priority   int     `json:"priority" binding:"required,min=1,max=5"`
}

func (r CreateItemRequest) TrimmedURL() *string {
	if r.URL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.URL)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateItemRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	URL        *string `json:"url,omitempty" binding:"omitempty,url"`
	PriceCents int64   `json:"price_cents" binding:"min=0"`
	Priority   int     `json:"priority" binding:"required,min=1,max=5"`
}

func (r UpdateItemRequest) TrimmedURL() *string {
	if r.URL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.URL)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
