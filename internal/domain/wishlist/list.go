package wishlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidYear = errors.New("invalid year")

// List is one person's wishlist for one year. The guest access token is an
// unguessable secret granting anonymous read access; at most one is live per
// list and minting a new one invalidates the old.
type List struct {
	id               uuid.UUID
	locationID       uuid.UUID
	ownerID          uuid.UUID
	name             Name
	year             int
	isPublic         bool
	guestAccessToken string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewList(locationID, ownerID uuid.UUID, name Name, year int, guestAccessToken string) (*List, error) {
	if year < 2000 || year > 2200 {
		return nil, ErrInvalidYear
	}
	return &List{
		id:               uuid.New(),
		locationID:       locationID,
		ownerID:          ownerID,
		name:             name,
		year:             year,
		guestAccessToken: guestAccessToken,
	}, nil
}

func ReconstructList(
	id, locationID, ownerID uuid.UUID,
	name Name,
	year int,
	isPublic bool,
	guestAccessToken string,
	createdAt, updatedAt time.Time,
) *List {
	return &List{
		id:               id,
		locationID:       locationID,
		ownerID:          ownerID,
		name:             name,
		year:             year,
		isPublic:         isPublic,
		guestAccessToken: guestAccessToken,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (l *List) ID() uuid.UUID            { return l.id }
func (l *List) LocationID() uuid.UUID    { return l.locationID }
func (l *List) OwnerID() uuid.UUID       { return l.ownerID }
func (l *List) Name() Name               { return l.name }
func (l *List) Year() int                { return l.year }
func (l *List) IsPublic() bool           { return l.isPublic }
func (l *List) GuestAccessToken() string { return l.guestAccessToken }
func (l *List) CreatedAt() time.Time     { return l.createdAt }
func (l *List) UpdatedAt() time.Time     { return l.updatedAt }
