package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/user/domain/models"
)

// UserResponse is the JSON shape of a dashboard account.
type UserResponse struct {
	ID         int64      `json:"id"         example:"1"`
	Name       string     `json:"name"       example:"Dana Whitfield"`
	Email      string     `json:"email"      example:"dana.whitfield@thoron.dev"`
	Role       string     `json:"role"       example:"Admin"`
	Department string     `json:"department" example:"Operations"`
	LastLogin  *time.Time `json:"lastLogin"`
	Status     string     `json:"status"     example:"Active"`
	CreatedAt  time.Time  `json:"createdAt"`
} // @name UserResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		LastLogin:  u.LastLogin,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
	}
}
