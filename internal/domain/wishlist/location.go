package wishlist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrNameTooLong = errors.New("name too long")
)

const MaxNameLength = 200

type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Name{}, ErrEmptyName
	}
	if len(v) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Location is a named grouping of lists (a household), exclusively owned by
// one user. Deleting it cascades its lists.
type Location struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewLocation(ownerID uuid.UUID, name Name) *Location {
	return &Location{
		id:      uuid.New(),
		ownerID: ownerID,
		name:    name,
	}
}

func ReconstructLocation(id, ownerID uuid.UUID, name Name, createdAt, updatedAt time.Time) *Location {
	return &Location{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (l *Location) ID() uuid.UUID        { return l.id }
func (l *Location) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Location) Name() Name           { return l.name }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }
