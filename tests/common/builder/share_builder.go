//go:build unit || e2e

package builder

import (
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/share"

	"github.com/google/uuid"
)

type ShareBuilder struct {
	Resource   access.ResourceRef
	SharedBy   uuid.UUID
	SharedWith uuid.UUID
	Role       access.Role
	ExpiresAt  *time.Time
	Now        time.Time
}

func NewShareBuilder() *ShareBuilder {
	return &ShareBuilder{
		Resource:   access.ResourceRef{Type: access.ResourceList, ID: uuid.New()},
		SharedBy:   uuid.New(),
		SharedWith: uuid.New(),
		Role:       access.RoleViewer,
		Now:        time.Now(),
	}
}

func (b *ShareBuilder) With(mutate func(*ShareBuilder)) *ShareBuilder {
	mutate(b)
	return b
}

func (b *ShareBuilder) BuildDomain() (*share.Share, error) {
	return share.NewShare(b.Now, b.Resource, b.SharedBy, b.SharedWith, b.Role, b.ExpiresAt)
}

func (b *ShareBuilder) WithResource(resource access.ResourceRef) *ShareBuilder {
	b.Resource = resource
	return b
}

func (b *ShareBuilder) WithSharedBy(id uuid.UUID) *ShareBuilder {
	b.SharedBy = id
	return b
}

func (b *ShareBuilder) WithSharedWith(id uuid.UUID) *ShareBuilder {
	b.SharedWith = id
	return b
}

func (b *ShareBuilder) WithRole(role access.Role) *ShareBuilder {
	b.Role = role
	return b
}

func (b *ShareBuilder) ExpiringAt(t time.Time) *ShareBuilder {
	b.ExpiresAt = &t
	return b
}

type InviteBuilder struct {
	Code        string
	Resource    access.ResourceRef
	CreatedBy   uuid.UUID
	DefaultRole access.Role
	MaxUses     int32
	UseCount    int32
	ExpiresAt   *time.Time
	Now         time.Time
}

func NewInviteBuilder() *InviteBuilder {
	return &InviteBuilder{
		Code:        "WKPR23",
		Resource:    access.ResourceRef{Type: access.ResourceLocation, ID: uuid.New()},
		CreatedBy:   uuid.New(),
		DefaultRole: access.RoleViewer,
		MaxUses:     5,
		Now:         time.Now(),
	}
}

func (b *InviteBuilder) With(mutate func(*InviteBuilder)) *InviteBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs so tests can seed an arbitrary use count.
func (b *InviteBuilder) BuildDomain() *share.InviteCode {
	return share.ReconstructInviteCode(
		uuid.New(), b.Code, b.Resource, b.CreatedBy, b.DefaultRole,
		b.MaxUses, b.UseCount, b.ExpiresAt, b.Now,
	)
}

func (b *InviteBuilder) WithResource(resource access.ResourceRef) *InviteBuilder {
	b.Resource = resource
	return b
}

func (b *InviteBuilder) WithCreatedBy(id uuid.UUID) *InviteBuilder {
	b.CreatedBy = id
	return b
}

func (b *InviteBuilder) WithRole(role access.Role) *InviteBuilder {
	b.DefaultRole = role
	return b
}

func (b *InviteBuilder) WithUses(maxUses, useCount int32) *InviteBuilder {
	b.MaxUses = maxUses
	b.UseCount = useCount
	return b
}

func (b *InviteBuilder) ExpiringAt(t time.Time) *InviteBuilder {
	b.ExpiresAt = &t
	return b
}
