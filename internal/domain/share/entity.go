package share

import (
	"errors"
	"time"

	"wishkeeper/internal/domain/access"

	"github.com/google/uuid"
)

var (
	ErrSelfShare    = errors.New("owner cannot share with themselves")
	ErrExpiryInPast = errors.New("expiry must be in the future")
	ErrShareExpired = errors.New("share has expired")
	ErrNotShareable = errors.New("items cannot be shared directly")
)

// Share is a directed, time-boundable grant from a resource owner to a
// specific user. It never transfers ownership.
type Share struct {
	id         uuid.UUID
	resource   access.ResourceRef
	sharedBy   uuid.UUID
	sharedWith uuid.UUID
	role       access.Role
	expiresAt  *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewShare(
	now time.Time,
	resource access.ResourceRef,
	sharedBy, sharedWith uuid.UUID,
	role access.Role,
	expiresAt *time.Time,
) (*Share, error) {
	if resource.Type == access.ResourceItem {
		return nil, ErrNotShareable
	}
	if sharedBy == sharedWith {
		return nil, ErrSelfShare
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	return &Share{
		id:         uuid.New(),
		resource:   resource,
		sharedBy:   sharedBy,
		sharedWith: sharedWith,
		role:       role,
		expiresAt:  expiresAt,
	}, nil
}

func ReconstructShare(
	id uuid.UUID,
	resource access.ResourceRef,
	sharedBy, sharedWith uuid.UUID,
	role access.Role,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Share {
	return &Share{
		id:         id,
		resource:   resource,
		sharedBy:   sharedBy,
		sharedWith: sharedWith,
		role:       role,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Share) IsActiveAt(now time.Time) bool {
	return s.expiresAt == nil || s.expiresAt.After(now)
}

func (s *Share) ID() uuid.UUID                { return s.id }
func (s *Share) Resource() access.ResourceRef { return s.resource }
func (s *Share) SharedBy() uuid.UUID          { return s.sharedBy }
func (s *Share) SharedWith() uuid.UUID        { return s.sharedWith }
func (s *Share) Role() access.Role            { return s.role }
func (s *Share) ExpiresAt() *time.Time        { return s.expiresAt }
func (s *Share) CreatedAt() time.Time         { return s.createdAt }
func (s *Share) UpdatedAt() time.Time         { return s.updatedAt }

// LocationMember is a standing, non-expiring membership on a location,
// distinct from time-boundable shares.
type LocationMember struct {
	locationID uuid.UUID
	userID     uuid.UUID
	role       access.Role
	createdAt  time.Time
}

func NewLocationMember(locationID, userID uuid.UUID, role access.Role) *LocationMember {
	return &LocationMember{
		locationID: locationID,
		userID:     userID,
		role:       role,
	}
}

func (m *LocationMember) LocationID() uuid.UUID { return m.locationID }
func (m *LocationMember) UserID() uuid.UUID     { return m.userID }
func (m *LocationMember) Role() access.Role     { return m.role }
func (m *LocationMember) CreatedAt() time.Time  { return m.createdAt }
