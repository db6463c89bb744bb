package queries

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	// ListWithItems returns the unredacted projection; redaction is this
	// layer's job, keyed off the caller's identity.
	ListWithItems(ctx context.Context, listID uuid.UUID) (*ListItemsView, error)
	ReservationsByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ItemQueries interface {
	GetListItems(ctx context.Context, principal access.Principal, listID uuid.UUID) (*ListItemsView, error)
	MyReservations(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type itemQueriesImpl struct {
	store    ItemReadStore
	accessor usecase.AccessService
}

func NewItemQueries(store ItemReadStore, accessor usecase.AccessService) ItemQueries {
	return &itemQueriesImpl{store: store, accessor: accessor}
}

func (q *itemQueriesImpl) GetListItems(ctx context.Context, principal access.Principal, listID uuid.UUID) (*ListItemsView, error) {
	ref := access.ResourceRef{Type: access.ResourceList, ID: listID}

	decision, err := q.accessor.CheckAccess(ctx, principal, ref, access.RoleViewer)
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		// Denied and nonexistent look identical from the outside.
		return nil, errs.ErrNotFound
	}

	view, err := q.store.ListWithItems(ctx, listID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	// Gift secrecy: the list owner never sees purchase state of their own
	// items, regardless of how the request was authorized.
	if !principal.IsAnonymous() && principal.UserID == view.List.OwnerID {
		for _, item := range view.Items {
			item.RedactForOwner()
		}
	}

	return view, nil
}

func (q *itemQueriesImpl) MyReservations(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.ReservationsByUser(ctx, userID)
}
