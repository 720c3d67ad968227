package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/thoron/pkg/testutil"
	userdomain "github.com/ghuser/thoron/services/user/domain"
	"github.com/ghuser/thoron/services/user/domain/models"
)

type fakeUserRepo struct {
	users map[int64]*models.User
}

func (f *fakeUserRepo) List(context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role models.Role) error {
	u, ok := f.users[id]
	if !ok {
		return userdomain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func TestUserService_ChangeRole(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Name: "Ken Ashby", Role: models.RoleDriver},
	}}
	svc := NewUserService(repo, testutil.Logger())

	u, err := svc.ChangeRole(context.Background(), 1, "Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role: got %q", u.Role)
	}

	if _, err := svc.ChangeRole(context.Background(), 1, "Root"); !errors.Is(err, userdomain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
	if repo.users[1].Role != models.RoleAdmin {
		t.Error("invalid role must not change the user")
	}
	if _, err := svc.ChangeRole(context.Background(), 7, "Driver"); !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
