package errs

import "errors"

// Business outcome taxonomy shared by the usecase layers. All of these are
// expected, recoverable results and travel as values up to the API boundary.
var (
	// ErrNotFound doubles as the existence mask: principals without access to
	// a resource get ErrNotFound, never ErrForbidden.
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrNotOwner is the stricter case of ErrForbidden for mutations that
	// require ownership, not just an admin grant.
	ErrNotOwner  = errors.New("not owner")
	ErrSelfShare = errors.New("cannot share with yourself")

	ErrAlreadyReserved  = errors.New("item already reserved")
	ErrAlreadyPurchased = errors.New("item already purchased")
	ErrNoReservation    = errors.New("no live reservation held")
	ErrConflict         = errors.New("lost race at commit time")

	ErrExpired   = errors.New("expired")
	ErrExhausted = errors.New("invite code exhausted")

	ErrUserNotFound = errors.New("user not found")
)
