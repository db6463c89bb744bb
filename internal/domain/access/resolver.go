package access

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// Grant is one access edge collected for a resolution: a share row or a
// location membership, already scoped to the principal and resource chain.
type Grant struct {
	Role      Role
	ExpiresAt *time.Time
}

func (g Grant) activeAt(now time.Time) bool {
	return g.ExpiresAt == nil || g.ExpiresAt.After(now)
}

// Snapshot is everything a single resolution needs, read from the store in
// one consistent view. Resolve is pure over it: same snapshot, same answer.
type Snapshot struct {
	Resource ResourceRef

	// OwnerID is the exclusive owner of the resource (for items and lists,
	// resolved through the parent chain). uuid.Nil marks an orphaned row.
	OwnerID uuid.UUID

	// Shares targeted at the principal on the resource or any of its
	// ancestors; expired entries are allowed here and filtered during
	// resolution.
	Shares []Grant

	// MemberRole is the principal's standing location membership, if the
	// resource is a location or sits inside one the principal belongs to.
	MemberRole *Role

	// List flags, populated when the resource is a list or an item in one.
	// A nil expiry means the guest token never expires.
	ListIsPublic     bool
	ListGuestToken   string
	ListGuestExpires *time.Time
}

// Resolve computes the effective role of principal on the snapshot's
// resource. Several grants may coexist; the result is the maximum applicable
// role, not the first match. An unresolvable owner denies everything.
func Resolve(now time.Time, snap Snapshot, principal Principal, required Role) Decision {
	if _, ok := roleRank[required]; !ok {
		return Denied()
	}

	// Fail closed on orphaned rows.
	if snap.OwnerID == uuid.Nil {
		return Denied()
	}

	if !principal.IsAnonymous() && principal.UserID == snap.OwnerID {
		return Granted(RoleAdmin)
	}

	var effective Role

	for _, g := range snap.Shares {
		if g.activeAt(now) {
			effective = maxRole(effective, g.Role)
		}
	}

	if snap.MemberRole != nil {
		effective = maxRole(effective, *snap.MemberRole)
	}

	if snap.ListIsPublic && snap.Resource.Type != ResourceLocation {
		effective = maxRole(effective, RoleViewer)
	}

	if guestTokenMatches(now, snap, principal) {
		effective = maxRole(effective, RoleViewer)
	}

	if effective == "" || !effective.AtLeast(required) {
		return Denied()
	}
	return Granted(effective)
}

// Constant-time comparison; the token is a bearer secret and the comparison
// must not leak prefix length through timing. An expired token is treated as
// absent, like an expired share.
func guestTokenMatches(now time.Time, snap Snapshot, principal Principal) bool {
	if snap.Resource.Type == ResourceLocation {
		return false
	}
	if principal.GuestToken == "" || snap.ListGuestToken == "" {
		return false
	}
	if snap.ListGuestExpires != nil && !snap.ListGuestExpires.After(now) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(principal.GuestToken), []byte(snap.ListGuestToken)) == 1
}
