package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/infra/readstore"
	"wishkeeper/internal/infra/repository"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 3
	baseRetryDelay = 10 * time.Millisecond
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.withRetry(ctx, func(ctx context.Context) error {
		tx, err := u.pool.Begin(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to begin transaction")
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := fn(ctx, newPgTx(tx)); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return errs.Wrap(err, "failed to commit transaction")
		}
		return nil
	})
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Wrap(err, "failed to begin read-only transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit read-only transaction")
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.pool)
}

// withRetry reruns fn on serialization failures and deadlocks with
// exponential backoff plus jitter. Business errors pass through untouched on
// the first occurrence.
func (u *PostgresUoW) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

func backoffDelay(attempt int) time.Duration {
	delay := baseRetryDelay << (attempt - 1)
	// Jitter spreads colliding retries apart.
	if n, err := rand.Int(rand.Reader, big.NewInt(int64(delay))); err == nil {
		delay += time.Duration(n.Int64())
	}
	return delay
}

// pgTx hands out stateless repositories lazily over one open transaction.
type pgTx struct {
	tx pgx.Tx

	shares       *repository.ShareRepository
	members      *repository.MemberRepository
	invites      *repository.InviteRepository
	locations    *repository.LocationRepository
	lists        *repository.ListRepository
	items        *repository.ItemRepository
	reservations *repository.ReservationRepository
	users        *repository.UserRepository
	events       *repository.EventRepository
	reads        *readstore.CommandReadStore
}

func newPgTx(tx pgx.Tx) shared.Tx {
	return &pgTx{tx: tx}
}

func (t *pgTx) Shares() shared.ShareRepository {
	if t.shares == nil {
		t.shares = repository.NewShareRepository()
	}
	return t.shares
}

func (t *pgTx) Members() shared.MemberRepository {
	if t.members == nil {
		t.members = repository.NewMemberRepository()
	}
	return t.members
}

func (t *pgTx) Invites() shared.InviteRepository {
	if t.invites == nil {
		t.invites = repository.NewInviteRepository()
	}
	return t.invites
}

func (t *pgTx) Locations() shared.LocationRepository {
	if t.locations == nil {
		t.locations = repository.NewLocationRepository()
	}
	return t.locations
}

func (t *pgTx) Lists() shared.ListRepository {
	if t.lists == nil {
		t.lists = repository.NewListRepository()
	}
	return t.lists
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.items == nil {
		t.items = repository.NewItemRepository()
	}
	return t.items
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository()
	}
	return t.reservations
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository()
	}
	return t.users
}

func (t *pgTx) Events() shared.EventRepository {
	if t.events == nil {
		t.events = repository.NewEventRepository()
	}
	return t.events
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = readstore.NewCommandReadStore(t.tx)
	}
	return t.reads
}

func (t *pgTx) DB() db.DBTX {
	return t.tx
}
