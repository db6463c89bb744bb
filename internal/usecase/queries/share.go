package queries

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase"
)

type ShareReadStore interface {
	FindByResource(ctx context.Context, resource access.ResourceRef) ([]*ShareView, error)
}

type ShareQueries interface {
	// ListForResource is admin-scoped: principals without admin on the
	// resource get NotFound, not an empty list.
	ListForResource(ctx context.Context, principal access.Principal, resource access.ResourceRef) ([]*ShareView, error)
}

type shareQueriesImpl struct {
	store    ShareReadStore
	accessor usecase.AccessService
}

func NewShareQueries(store ShareReadStore, accessor usecase.AccessService) ShareQueries {
	return &shareQueriesImpl{store: store, accessor: accessor}
}

func (q *shareQueriesImpl) ListForResource(ctx context.Context, principal access.Principal, resource access.ResourceRef) ([]*ShareView, error) {
	decision, err := q.accessor.CheckAccess(ctx, principal, resource, access.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		return nil, errs.ErrNotFound
	}
	return q.store.FindByResource(ctx, resource)
}
