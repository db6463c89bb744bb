package commands

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/domain/wishlist"
	"wishkeeper/internal/events"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/pkg/token"
	"wishkeeper/internal/usecase"
	"wishkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListInput struct {
	LocationID uuid.UUID
	Name       string
	Year       int
}

type CreateItemInput struct {
	ListID     uuid.UUID
	Name       string
	URL        *string
	PriceCents int64
	Priority   int
}

type UpdateItemInput struct {
	ItemID     uuid.UUID
	Name       string
	URL        *string
	PriceCents int64
	Priority   int
}

type WishlistCommands interface {
	CreateLocation(ctx context.Context, actor uuid.UUID, name string) (uuid.UUID, error)
	DeleteLocation(ctx context.Context, actor, locationID uuid.UUID) error
	CreateList(ctx context.Context, actor uuid.UUID, input CreateListInput) (uuid.UUID, error)
	SetListPublic(ctx context.Context, actor, listID uuid.UUID, isPublic bool) error
	DeleteList(ctx context.Context, actor, listID uuid.UUID) error
	CreateItem(ctx context.Context, principal access.Principal, input CreateItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, principal access.Principal, input UpdateItemInput) error
	DeleteItem(ctx context.Context, principal access.Principal, itemID uuid.UUID) error
}

type wishlistCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWishlistCommands(uow shared.UnitOfWork, clock clock.Clock) WishlistCommands {
	return &wishlistCommandsImpl{uow: uow, clock: clock}
}

func (w *wishlistCommandsImpl) CreateLocation(ctx context.Context, actor uuid.UUID, rawName string) (uuid.UUID, error) {
	name, err := wishlist.NewName(rawName)
	if err != nil {
		return uuid.Nil, err
	}
	loc := wishlist.NewLocation(actor, name)

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locations().Create(ctx, tx.DB(), loc); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.LocationCreated, loc.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return loc.ID(), nil
}

func (w *wishlistCommandsImpl) DeleteLocation(ctx context.Context, actor, locationID uuid.UUID) error {
	ref := access.ResourceRef{Type: access.ResourceLocation, ID: locationID}
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireOwner(ctx, tx.Reads(), actor, ref); err != nil {
			return err
		}
		if err := tx.Locations().Delete(ctx, tx.DB(), locationID); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.LocationDeleted, locationID, nil)
	})
}

func (w *wishlistCommandsImpl) CreateList(ctx context.Context, actor uuid.UUID, input CreateListInput) (uuid.UUID, error) {
	name, err := wishlist.NewName(input.Name)
	if err != nil {
		return uuid.Nil, err
	}
	guestToken, err := token.NewGuestToken()
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to mint guest token")
	}
	list, err := wishlist.NewList(input.LocationID, actor, name, input.Year, guestToken)
	if err != nil {
		return uuid.Nil, err
	}

	ref := access.ResourceRef{Type: access.ResourceLocation, ID: input.LocationID}
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Members and editors may add their own list to the household.
		decision, err := usecase.CheckAccessTx(ctx, w.clock, tx.Reads(), access.Principal{UserID: actor}, ref, access.RoleEditor)
		if err != nil {
			return err
		}
		if !decision.Granted {
			return errs.ErrNotFound
		}
		if err := tx.Lists().Create(ctx, tx.DB(), list); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ListCreated, list.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return list.ID(), nil
}

func (w *wishlistCommandsImpl) SetListPublic(ctx context.Context, actor, listID uuid.UUID, isPublic bool) error {
	ref := access.ResourceRef{Type: access.ResourceList, ID: listID}
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireOwner(ctx, tx.Reads(), actor, ref); err != nil {
			return err
		}
		if err := tx.Lists().SetPublic(ctx, tx.DB(), listID, isPublic); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ListVisibilityChanged, listID, nil)
	})
}

func (w *wishlistCommandsImpl) DeleteList(ctx context.Context, actor, listID uuid.UUID) error {
	ref := access.ResourceRef{Type: access.ResourceList, ID: listID}
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireOwner(ctx, tx.Reads(), actor, ref); err != nil {
			return err
		}
		if err := tx.Lists().Delete(ctx, tx.DB(), listID); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ListDeleted, listID, nil)
	})
}

func (w *wishlistCommandsImpl) CreateItem(ctx context.Context, principal access.Principal, input CreateItemInput) (uuid.UUID, error) {
	name, err := wishlist.NewName(input.Name)
	if err != nil {
		return uuid.Nil, err
	}
	item, err := wishlist.NewItem(input.ListID, name, input.URL, input.PriceCents, input.Priority)
	if err != nil {
		return uuid.Nil, err
	}

	ref := access.ResourceRef{Type: access.ResourceList, ID: input.ListID}
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision, err := usecase.CheckAccessTx(ctx, w.clock, tx.Reads(), principal, ref, access.RoleEditor)
		if err != nil {
			return err
		}
		if !decision.Granted {
			return errs.ErrNotFound
		}
		if err := tx.Items().Create(ctx, tx.DB(), item); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ItemCreated, item.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return item.ID(), nil
}

func (w *wishlistCommandsImpl) UpdateItem(ctx context.Context, principal access.Principal, input UpdateItemInput) error {
	name, err := wishlist.NewName(input.Name)
	if err != nil {
		return err
	}

	ref := access.ResourceRef{Type: access.ResourceItem, ID: input.ItemID}
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision, err := usecase.CheckAccessTx(ctx, w.clock, tx.Reads(), principal, ref, access.RoleEditor)
		if err != nil {
			return err
		}
		if !decision.Granted {
			return errs.ErrNotFound
		}

		current, err := tx.Reads().ItemByID(ctx, input.ItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return err
		}

		// Validation rides on the constructor; the entity itself is discarded.
		updated, err := wishlist.NewItem(current.ListID, name, input.URL, input.PriceCents, input.Priority)
		if err != nil {
			return err
		}
		if err := tx.Items().Update(ctx, tx.DB(), input.ItemID, updated); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ItemUpdated, input.ItemID, nil)
	})
}

func (w *wishlistCommandsImpl) DeleteItem(ctx context.Context, principal access.Principal, itemID uuid.UUID) error {
	ref := access.ResourceRef{Type: access.ResourceItem, ID: itemID}
	return w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision, err := usecase.CheckAccessTx(ctx, w.clock, tx.Reads(), principal, ref, access.RoleEditor)
		if err != nil {
			return err
		}
		if !decision.Granted {
			return errs.ErrNotFound
		}
		if err := tx.Items().Delete(ctx, tx.DB(), itemID); err != nil {
			return err
		}
		return tx.Events().Append(ctx, tx.DB(), events.ItemDeleted, itemID, nil)
	})
}
