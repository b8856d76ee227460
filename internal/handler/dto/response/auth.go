package response

import (
	"time"

	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	if v == nil {
		return nil
	}
	return &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		LastLogin:   v.LastLogin,
	}
}
