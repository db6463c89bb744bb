package access

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownRole         = errors.New("unknown role")
	ErrUnknownResourceType = errors.New("unknown resource type")
)

// Role is the effective permission level on a resource,
// ordered viewer < editor < admin.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

func NewRole(raw string) (Role, error) {
	r := Role(raw)
	if _, ok := roleRank[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) AtLeast(minimum Role) bool {
	rr, ok := roleRank[r]
	mr, mok := roleRank[minimum]
	return ok && mok && rr >= mr
}

// maxRole returns the higher-ranked of a and b; either may be empty.
func maxRole(a, b Role) Role {
	if roleRank[b] > roleRank[a] {
		return b
	}
	return a
}

type ResourceType string

const (
	ResourceLocation ResourceType = "location"
	ResourceList     ResourceType = "list"
	ResourceItem     ResourceType = "item"
)

func NewResourceType(raw string) (ResourceType, error) {
	switch t := ResourceType(raw); t {
	case ResourceLocation, ResourceList, ResourceItem:
		return t, nil
	default:
		return "", ErrUnknownResourceType
	}
}

type ResourceRef struct {
	Type ResourceType
	ID   uuid.UUID
}

// Principal is the authenticated user or anonymous guest-token holder making
// a request. UserID is uuid.Nil for anonymous principals.
type Principal struct {
	UserID     uuid.UUID
	GuestToken string
}

func (p Principal) IsAnonymous() bool { return p.UserID == uuid.Nil }

type Decision struct {
	Granted bool
	Role    Role
}

func Denied() Decision { return Decision{} }

func Granted(role Role) Decision { return Decision{Granted: true, Role: role} }
