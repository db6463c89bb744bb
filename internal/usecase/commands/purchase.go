package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/purchase"
	"wishkeeper/internal/events"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/config"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// AlreadyReservedError carries the current holder's name so the API can tell
// a blocked shopper who got there first. It unwraps to ErrAlreadyReserved.
type AlreadyReservedError struct {
	HolderName string
}

func (e *AlreadyReservedError) Error() string {
	return fmt.Sprintf("item already reserved by %s", e.HolderName)
}

func (e *AlreadyReservedError) Unwrap() error { return errs.ErrAlreadyReserved }

// PurchaseConflictError reports a confirm that lost the race to another
// commit, naming the shopper whose purchase landed first. It unwraps to
// ErrConflict.
type PurchaseConflictError struct {
	PurchaserName string
}

func (e *PurchaseConflictError) Error() string {
	return fmt.Sprintf("item already purchased by %s", e.PurchaserName)
}

func (e *PurchaseConflictError) Unwrap() error { return errs.ErrConflict }

type ReserveResult struct {
	ItemID    uuid.UUID
	ExpiresAt time.Time
}

type PurchaseCommands interface {
	// Reserve takes or refreshes the advisory lock on an item. Idempotent for
	// the current holder; the TTL restarts on every successful call.
	Reserve(ctx context.Context, principal access.Principal, itemID uuid.UUID) (*ReserveResult, error)
	// ConfirmPurchase converts the caller's live reservation into a purchase.
	ConfirmPurchase(ctx context.Context, principal access.Principal, itemID uuid.UUID) error
	Release(ctx context.Context, principal access.Principal, itemID uuid.UUID) error
	UnmarkPurchase(ctx context.Context, principal access.Principal, itemID uuid.UUID) error
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewPurchaseCommands(uow shared.UnitOfWork, clock clock.Clock, cfg config.ReservationConfig) PurchaseCommands {
	return &purchaseCommandsImpl{uow: uow, clock: clock, ttl: cfg.TTL}
}

// itemForShopper authorizes the principal as a shopper on the item: viewer
// access or better, authenticated, and not the list owner. Owners are locked
// out of the purchase surface entirely so nothing can leak purchase state
// back to them.
func (p *purchaseCommandsImpl) itemForShopper(ctx context.Context, tx shared.Tx, principal access.Principal, itemID uuid.UUID) (*shared.ItemSnapshot, access.Decision, error) {
	if principal.IsAnonymous() {
		return nil, access.Denied(), errs.ErrForbidden
	}

	ref := access.ResourceRef{Type: access.ResourceItem, ID: itemID}
	decision, err := usecase.CheckAccessTx(ctx, p.clock, tx.Reads(), principal, ref, access.RoleViewer)
	if err != nil {
		return nil, access.Denied(), err
	}
	if !decision.Granted {
		return nil, access.Denied(), errs.ErrNotFound
	}

	item, err := tx.Reads().ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, access.Denied(), errs.Mark(err, errs.ErrNotFound)
		}
		return nil, access.Denied(), err
	}
	if item.ListOwnerID == principal.UserID {
		return nil, access.Denied(), errs.ErrForbidden
	}
	return item, decision, nil
}

// liveReservation loads the item's reservation, treating absence as nil.
func liveReservation(ctx context.Context, tx shared.Tx, itemID uuid.UUID) (*purchase.Reservation, error) {
	res, err := tx.Reads().ReservationByItem(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// purchaseConflict re-reads the item after a lost conditional update so the
// caller learns who won. The caller already passed the shopper gate, so
// naming the purchaser leaks nothing to the list owner.
func (p *purchaseCommandsImpl) purchaseConflict(ctx context.Context, tx shared.Tx, itemID uuid.UUID) error {
	current, err := tx.Reads().ItemByID(ctx, itemID)
	if err != nil || current.PurchasedBy == nil {
		return errs.ErrConflict
	}
	name, err := tx.Reads().UserNameByID(ctx, *current.PurchasedBy)
	if err != nil {
		name = "another shopper"
	}
	return &PurchaseConflictError{PurchaserName: name}
}

func (p *purchaseCommandsImpl) alreadyReserved(ctx context.Context, tx shared.Tx, holder uuid.UUID) error {
	name, err := tx.Reads().UserNameByID(ctx, holder)
	if err != nil {
		name = "another shopper"
	}
	return &AlreadyReservedError{HolderName: name}
}

func (p *purchaseCommandsImpl) Reserve(ctx context.Context, principal access.Principal, itemID uuid.UUID) (*ReserveResult, error) {
	var result *ReserveResult
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, _, err := p.itemForShopper(ctx, tx, principal, itemID)
		if err != nil {
			return err
		}

		now := p.clock.Now()
		existing, err := liveReservation(ctx, tx, itemID)
		if err != nil {
			return err
		}

		holder, err := purchase.DecideReserve(now, item.PurchaseState(), existing, principal.UserID)
		if err != nil {
			switch {
			case errors.Is(err, purchase.ErrAlreadyPurchased):
				return errs.Mark(err, errs.ErrAlreadyPurchased)
			case errors.Is(err, purchase.ErrAlreadyReserved):
				return p.alreadyReserved(ctx, tx, holder)
			}
			return err
		}

		res := purchase.NewReservation(now, p.ttl, itemID, principal.UserID)
		rows, err := tx.Reservations().Acquire(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the insert race; whoever holds the row now wins.
			current, err := liveReservation(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if current == nil {
				return errs.ErrConflict
			}
			return p.alreadyReserved(ctx, tx, current.UserID())
		}

		if err := tx.Events().Append(ctx, tx.DB(), events.ItemReserved, itemID, nil); err != nil {
			return err
		}
		result = &ReserveResult{ItemID: itemID, ExpiresAt: res.ExpiresAt()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *purchaseCommandsImpl) ConfirmPurchase(ctx context.Context, principal access.Principal, itemID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, _, err := p.itemForShopper(ctx, tx, principal, itemID)
		if err != nil {
			return err
		}

		now := p.clock.Now()
		existing, err := liveReservation(ctx, tx, itemID)
		if err != nil {
			return err
		}

		if err := purchase.DecideConfirm(now, item.PurchaseState(), existing, principal.UserID); err != nil {
			switch {
			case errors.Is(err, purchase.ErrAlreadyPurchased):
				return errs.Mark(err, errs.ErrAlreadyPurchased)
			case errors.Is(err, purchase.ErrNoReservation):
				return errs.Mark(err, errs.ErrNoReservation)
			}
			return err
		}

		// The guarded update is the final arbiter; a concurrent commit that
		// got there first leaves zero rows for us.
		rows, err := tx.Items().MarkPurchased(ctx, tx.DB(), itemID, principal.UserID, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return p.purchaseConflict(ctx, tx, itemID)
		}

		if err := tx.Reservations().DeleteByItem(ctx, tx.DB(), itemID); err != nil {
			return err
		}

		payload := fmt.Appendf(nil, `{"purchased_by":%q}`, principal.UserID)
		return tx.Events().Append(ctx, tx.DB(), events.ItemPurchased, itemID, payload)
	})
}

func (p *purchaseCommandsImpl) Release(ctx context.Context, principal access.Principal, itemID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, err := p.itemForShopper(ctx, tx, principal, itemID); err != nil {
			return err
		}

		existing, err := liveReservation(ctx, tx, itemID)
		if err != nil {
			return err
		}
		// Releasing nothing, or a hold owned by someone else, is a no-op.
		if existing == nil || !existing.IsLiveAt(p.clock.Now()) || !existing.HeldBy(principal.UserID) {
			return nil
		}

		if err := tx.Reservations().DeleteByHolder(ctx, tx.DB(), itemID, principal.UserID); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ItemReleased, itemID, nil)
	})
}

func (p *purchaseCommandsImpl) UnmarkPurchase(ctx context.Context, principal access.Principal, itemID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, decision, err := p.itemForShopper(ctx, tx, principal, itemID)
		if err != nil {
			return err
		}

		hasEditorRole := decision.Role.AtLeast(access.RoleEditor)
		if err := purchase.DecideUnmark(item.PurchaseState(), principal.UserID, hasEditorRole); err != nil {
			switch {
			case errors.Is(err, purchase.ErrNotPurchased):
				return errs.Mark(err, errs.ErrConflict)
			case errors.Is(err, purchase.ErrUnmarkForbidden):
				return errs.Mark(err, errs.ErrForbidden)
			}
			return err
		}

		if err := tx.Items().UnmarkPurchased(ctx, tx.DB(), itemID); err != nil {
			return err
		}
		// Unmarking reopens the item; any stale reservation row goes with it.
		if err := tx.Reservations().DeleteByItem(ctx, tx.DB(), itemID); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ItemUnmarked, itemID, nil)
	})
}
