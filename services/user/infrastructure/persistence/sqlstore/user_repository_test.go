package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/testutil"
	userdomain "github.com/ghuser/thoron/services/user/domain"
	"github.com/ghuser/thoron/services/user/domain/models"
	"github.com/ghuser/thoron/services/user/infrastructure/persistence/sqlstore"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlstore.NewUserRepository(db)
	login := time.Date(2026, 2, 24, 7, 55, 0, 0, time.UTC)
	testutil.Exec(t, db, `INSERT INTO users (name, email, role, department, last_login, status, created_at)
		VALUES ('Dana Whitfield', 'dana@thoron.dev', 'Admin', 'Operations', $1, 'Active', $2)`, login, login)
	testutil.Exec(t, db, `INSERT INTO users (name, email, status, created_at) VALUES ('Maria Garcia', 'maria@acme.example', 'Invited', $1)`, login)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Dana Whitfield", users[0].Name)
	require.NotNil(t, users[0].LastLogin)
	assert.True(t, login.Equal(*users[0].LastLogin))
	assert.Equal(t, models.RoleCustomer, users[1].Role)
	assert.Nil(t, users[1].LastLogin)

	require.NoError(t, repo.UpdateRole(context.Background(), users[1].ID, models.RoleDispatcher))
	u, err := repo.FindByID(context.Background(), users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDispatcher, u.Role)

	require.ErrorIs(t, repo.UpdateRole(context.Background(), 99, models.RoleDriver), userdomain.ErrUserNotFound)
	_, err = repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, userdomain.ErrUserNotFound)
}
