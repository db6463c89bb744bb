package shared

import (
	"context"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/purchase"
	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/domain/user"
	"wishkeeper/internal/domain/wishlist"
	"wishkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Shares() ShareRepository
	Members() MemberRepository
	Invites() InviteRepository
	Locations() LocationRepository
	Lists() ListRepository
	Items() ItemRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Events() EventRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the point reads commands revalidate inside their
// transactions. Authorization state is never cached across requests; every
// command re-reads ownership and grants at call time.
type CommandReads interface {
	// AccessSnapshot loads everything the resolver needs for one decision:
	// the ownership chain, the principal's shares and membership along it,
	// and the list flags. Returns a snapshot with OwnerID zero for orphaned
	// resources (the resolver fails closed on it).
	AccessSnapshot(ctx context.Context, principal access.Principal, resource access.ResourceRef) (*access.Snapshot, error)

	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	ListByID(ctx context.Context, id uuid.UUID) (*ListSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	ShareByID(ctx context.Context, id uuid.UUID) (*share.Share, error)
	InviteByCode(ctx context.Context, code string) (*share.InviteCode, error)
	ReservationByItem(ctx context.Context, itemID uuid.UUID) (*purchase.Reservation, error)
	UserIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	UserNameByID(ctx context.Context, id uuid.UUID) (string, error)
}

type LocationSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type ListSnapshot struct {
	ID               uuid.UUID
	LocationID       uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	Year             int
	IsPublic         bool
	GuestAccessToken string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	ListOwnerID uuid.UUID
	Name        string
	IsPurchased bool
	PurchasedBy *uuid.UUID
	PurchasedAt *time.Time
}

func (s *ItemSnapshot) PurchaseState() purchase.ItemState {
	return purchase.ItemState{
		ItemID:      s.ID,
		IsPurchased: s.IsPurchased,
		PurchasedBy: s.PurchasedBy,
		PurchasedAt: s.PurchasedAt,
	}
}

type ShareRepository interface {
	// Upsert replaces role/expiry for an existing (resource, grantee) pair;
	// last write wins, no duplicate rows.
	Upsert(ctx context.Context, tx db.DBTX, s *share.Share) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, shareID uuid.UUID) error
}

type MemberRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, m *share.LocationMember) error
}

type InviteRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *share.InviteCode) error
	// ConsumeUse atomically increments use_count while it is still below
	// max_uses; returns the rows affected (0 means exhausted in a race).
	ConsumeUse(ctx context.Context, tx db.DBTX, codeID uuid.UUID) (int64, error)
}

type LocationRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *wishlist.Location) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ListRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *wishlist.List) error
	SetPublic(ctx context.Context, tx db.DBTX, listID uuid.UUID, isPublic bool) error
	// RotateGuestToken replaces the list's token and its expiry; the previous
	// link dies with it, keeping at most one live token per list.
	RotateGuestToken(ctx context.Context, tx db.DBTX, listID uuid.UUID, token string, expiresAt *time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, i *wishlist.Item) error
	// Update rewrites the describable attributes of the row identified by id;
	// purchase state is out of its reach.
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, i *wishlist.Item) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// MarkPurchased is the conditional update of the purchase protocol: it
	// only succeeds while is_purchased is still false. Zero rows affected
	// means another commit won the race.
	MarkPurchased(ctx context.Context, tx db.DBTX, itemID, purchasedBy uuid.UUID, at time.Time) (int64, error)
	UnmarkPurchased(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error
}

type ReservationRepository interface {
	// Acquire inserts or refreshes the single reservation row for the item.
	// The row may be taken over only by its holder or once expired; zero rows
	// affected means a live reservation is held by someone else.
	Acquire(ctx context.Context, tx db.DBTX, r *purchase.Reservation) (int64, error)
	DeleteByHolder(ctx context.Context, tx db.DBTX, itemID, userID uuid.UUID) error
	DeleteByItem(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

// EventRepository is the change-notifier port: one row per committed
// mutation, written in the same transaction. An out-of-process dispatcher
// owns delivery.
type EventRepository interface {
	Append(ctx context.Context, tx db.DBTX, name string, resourceID uuid.UUID, payload []byte) error
}
