package share

import (
	"errors"
	"time"

	"wishkeeper/internal/domain/access"

	"github.com/google/uuid"
)

var (
	ErrCodeExpired   = errors.New("invite code has expired")
	ErrCodeExhausted = errors.New("invite code use count reached")
	ErrInvalidUses   = errors.New("max uses must be positive")
)

// InviteCode is a short redeemable code minted by a resource owner. Redeeming
// it creates a share (lists) or a location membership (locations) at the
// code's default role.
type InviteCode struct {
	id          uuid.UUID
	code        string
	resource    access.ResourceRef
	createdBy   uuid.UUID
	defaultRole access.Role
	maxUses     int32
	useCount    int32
	expiresAt   *time.Time
	createdAt   time.Time
}

func NewInviteCode(
	now time.Time,
	code string,
	resource access.ResourceRef,
	createdBy uuid.UUID,
	defaultRole access.Role,
	maxUses int32,
	expiresAt *time.Time,
) (*InviteCode, error) {
	if resource.Type == access.ResourceItem {
		return nil, ErrNotShareable
	}
	if maxUses <= 0 {
		return nil, ErrInvalidUses
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	return &InviteCode{
		id:          uuid.New(),
		code:        code,
		resource:    resource,
		createdBy:   createdBy,
		defaultRole: defaultRole,
		maxUses:     maxUses,
		expiresAt:   expiresAt,
	}, nil
}

func ReconstructInviteCode(
	id uuid.UUID,
	code string,
	resource access.ResourceRef,
	createdBy uuid.UUID,
	defaultRole access.Role,
	maxUses, useCount int32,
	expiresAt *time.Time,
	createdAt time.Time,
) *InviteCode {
	return &InviteCode{
		id:          id,
		code:        code,
		resource:    resource,
		createdBy:   createdBy,
		defaultRole: defaultRole,
		maxUses:     maxUses,
		useCount:    useCount,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
	}
}

// ValidateRedemption reports whether one more redemption is allowed at now.
// The authoritative check is the store's atomic use-count increment; this
// guards the happy path and produces the typed outcome.
func (c *InviteCode) ValidateRedemption(now time.Time) error {
	if c.expiresAt != nil && !c.expiresAt.After(now) {
		return ErrCodeExpired
	}
	if c.useCount >= c.maxUses {
		return ErrCodeExhausted
	}
	return nil
}

func (c *InviteCode) ID() uuid.UUID                { return c.id }
func (c *InviteCode) Code() string                 { return c.code }
func (c *InviteCode) Resource() access.ResourceRef { return c.resource }
func (c *InviteCode) CreatedBy() uuid.UUID         { return c.createdBy }
func (c *InviteCode) DefaultRole() access.Role     { return c.defaultRole }
func (c *InviteCode) MaxUses() int32               { return c.maxUses }
func (c *InviteCode) UseCount() int32              { return c.useCount }
func (c *InviteCode) ExpiresAt() *time.Time        { return c.expiresAt }
func (c *InviteCode) CreatedAt() time.Time         { return c.createdAt }
