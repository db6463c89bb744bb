package usecase

import (
	"context"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/clock"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/shared"
)

// AccessService is the single authorization entry point. It re-reads current
// ownership and grants on every call; decisions are never cached across
// requests, so a revoke takes effect on the next request.
type AccessService interface {
	CheckAccess(ctx context.Context, principal access.Principal, resource access.ResourceRef, required access.Role) (access.Decision, error)
}

type accessServiceImpl struct {
	reads shared.CommandReads
	clock clock.Clock
}

func NewAccessService(uow shared.UnitOfWork, clock clock.Clock) AccessService {
	return &accessServiceImpl{
		reads: uow.CommandReads(),
		clock: clock,
	}
}

func (a *accessServiceImpl) CheckAccess(ctx context.Context, principal access.Principal, resource access.ResourceRef, required access.Role) (access.Decision, error) {
	snap, err := a.reads.AccessSnapshot(ctx, principal, resource)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Unknown resources deny like inaccessible ones; the caller maps
			// both to the same NotFound surface.
			return access.Denied(), nil
		}
		return access.Denied(), errs.Wrap(err, "failed to load access snapshot")
	}

	return access.Resolve(a.clock.Now(), *snap, principal, required), nil
}

// CheckAccessTx runs the same resolution against an open transaction's reads,
// for commands that must authorize and mutate in one atomic section.
func CheckAccessTx(ctx context.Context, now clock.Clock, reads shared.CommandReads, principal access.Principal, resource access.ResourceRef, required access.Role) (access.Decision, error) {
	snap, err := reads.AccessSnapshot(ctx, principal, resource)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return access.Denied(), nil
		}
		return access.Denied(), errs.Wrap(err, "failed to load access snapshot")
	}
	return access.Resolve(now.Now(), *snap, principal, required), nil
}
