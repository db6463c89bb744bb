package request

import (
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateShareRequest struct {
	ResourceType string     `json:"resource_type" binding:"required,oneof=location list"`
	ResourceID   uuid.UUID  `json:"resource_id" binding:"required"`
	SharedWith   uuid.UUID  `json:"shared_with" binding:"required"`
	Role         string     `json:"role" binding:"required,oneof=viewer editor admin"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

func (r CreateShareRequest) ToInput() (commands.CreateShareInput, error) {
	resourceType, err := access.NewResourceType(r.ResourceType)
	if err != nil {
		return commands.CreateShareInput{}, err
	}
	role, err := access.NewRole(r.Role)
	if err != nil {
		return commands.CreateShareInput{}, err
	}
	return commands.CreateShareInput{
		Resource:   access.ResourceRef{Type: resourceType, ID: r.ResourceID},
		SharedWith: r.SharedWith,
		Role:       role,
		ExpiresAt:  r.ExpiresAt,
	}, nil
}

type ShareEntryRequest struct {
	Email     string     `json:"email" binding:"required,email"`
	Role      string     `json:"role" binding:"required,oneof=viewer editor admin"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type ShareManyRequest struct {
	ResourceType string              `json:"resource_type" binding:"required,oneof=location list"`
	ResourceID   uuid.UUID           `json:"resource_id" binding:"required"`
	Entries      []ShareEntryRequest `json:"entries" binding:"required,min=1,max=50,dive"`
}

func (r ShareManyRequest) ToEntries() (access.ResourceRef, []commands.ShareEntry, error) {
	resourceType, err := access.NewResourceType(r.ResourceType)
	if err != nil {
		return access.ResourceRef{}, nil, err
	}
	entries := make([]commands.ShareEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		role, err := access.NewRole(e.Role)
		if err != nil {
			return access.ResourceRef{}, nil, err
		}
		entries = append(entries, commands.ShareEntry{
			Email:     e.Email,
			Role:      role,
			ExpiresAt: e.ExpiresAt,
		})
	}
	return access.ResourceRef{Type: resourceType, ID: r.ResourceID}, entries, nil
}

type CreateInviteRequest struct {
	ResourceType string     `json:"resource_type" binding:"required,oneof=location list"`
	ResourceID   uuid.UUID  `json:"resource_id" binding:"required"`
	Role         string     `json:"role" binding:"required,oneof=viewer editor admin"`
	MaxUses      int32      `json:"max_uses" binding:"required,min=1,max=1000"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

func (r CreateInviteRequest) ToInput() (commands.CreateInviteInput, error) {
	resourceType, err := access.NewResourceType(r.ResourceType)
	if err != nil {
		return commands.CreateInviteInput{}, err
	}
	role, err := access.NewRole(r.Role)
	if err != nil {
		return commands.CreateInviteInput{}, err
	}
	return commands.CreateInviteInput{
		Resource:    access.ResourceRef{Type: resourceType, ID: r.ResourceID},
		DefaultRole: role,
		MaxUses:     r.MaxUses,
		ExpiresAt:   r.ExpiresAt,
	}, nil
}

// GuestLinkRequest is the optional body of a guest-link mint; an absent body
// means the link never expires.
type GuestLinkRequest struct {
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type RedeemInviteRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}
