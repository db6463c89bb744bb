package response

import (
	"wishkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return resp
}
