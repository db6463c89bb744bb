package response

import (
	"time"

	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ShareResponse struct {
	ID             uuid.UUID  `json:"id"`
	ResourceType   string     `json:"resource_type"`
	ResourceID     uuid.UUID  `json:"resource_id"`
	SharedWith     uuid.UUID  `json:"shared_with"`
	SharedWithName string     `json:"shared_with_name"`
	Role           string     `json:"role"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromShareView(v *queries.ShareView) *ShareResponse {
	var resp ShareResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type CreateShareResponse struct {
	ID uuid.UUID `json:"id"`
}

// ShareResultResponse is one entry's outcome in a batch share; Error is nil
// for successes, SharedWith is absent when the email did not resolve.
type ShareResultResponse struct {
	Email      string     `json:"email"`
	SharedWith *uuid.UUID `json:"shared_with,omitempty"`
	ShareID    *uuid.UUID `json:"share_id,omitempty"`
	Error      *string    `json:"error,omitempty"`
}

func FromShareResults(results []commands.ShareResult) []ShareResultResponse {
	resp := make([]ShareResultResponse, 0, len(results))
	for _, r := range results {
		entry := ShareResultResponse{Email: r.Email}
		if r.SharedWith != uuid.Nil {
			id := r.SharedWith
			entry.SharedWith = &id
		}
		if r.Err != nil {
			msg := r.Err.Error()
			entry.Error = &msg
		} else {
			id := r.ShareID
			entry.ShareID = &id
		}
		resp = append(resp, entry)
	}
	return resp
}

type GuestLinkResponse struct {
	Token string `json:"token"`
}

type InviteCodeResponse struct {
	Code string `json:"code"`
}

type RedeemResponse struct {
	ResourceType string    `json:"resource_type"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Role         string    `json:"role"`
}

func FromRedeemResult(r *commands.RedeemResult) RedeemResponse {
	return RedeemResponse{
		ResourceType: string(r.Resource.Type),
		ResourceID:   r.Resource.ID,
		Role:         r.Role.String(),
	}
}
