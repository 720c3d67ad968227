package repositories

import (
	"context"

	"github.com/ghuser/thoron/services/user/domain/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateRole returns domain.ErrUserNotFound when id does not exist.
	UpdateRole(ctx context.Context, id int64, role models.Role) error
}
