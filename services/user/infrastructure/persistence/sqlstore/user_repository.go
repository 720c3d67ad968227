// Package sqlstore implements the user repository on database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/thoron/pkg/database"
	userdomain "github.com/ghuser/thoron/services/user/domain"
	"github.com/ghuser/thoron/services/user/domain/models"
	"github.com/ghuser/thoron/services/user/domain/repositories"
)

const userColumns = `id, name, email, role, department, last_login, status, created_at`

// UserRepository implements repositories.UserRepository.
type UserRepository struct {
	db *database.Database
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// NewUserRepository returns a UserRepository backed by the given pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users in creation order.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.db.DB().QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, userdomain.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	res, err := r.db.DB().ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, string(role), id)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u         models.User
		role      string
		lastLogin sql.NullTime
	)
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Department, &lastLogin, &u.Status, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = models.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}
