package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/testutil"
	carrierdomain "github.com/ghuser/thoron/services/carrier/domain"
	"github.com/ghuser/thoron/services/carrier/domain/models"
	"github.com/ghuser/thoron/services/carrier/infrastructure/persistence/sqlstore"
)

func newRepo(t *testing.T) (*sqlstore.CarrierRepository, *database.Database) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return sqlstore.NewCarrierRepository(db), db
}

func createCarrier(t *testing.T, repo *sqlstore.CarrierRepository, name string, rating float64) *models.Carrier {
	t.Helper()
	c, err := models.NewCarrier(models.CarrierProfile{Name: name, Modes: "LTL"})
	require.NoError(t, err)
	c.Rating = rating
	require.NoError(t, repo.Create(context.Background(), c))
	require.NotZero(t, c.ID)
	return c
}

func TestList_OrderedByRating(t *testing.T) {
	repo, _ := newRepo(t)
	createCarrier(t, repo, "XPO Logistics", 4.2)
	createCarrier(t, repo, "Old Dominion", 4.9)
	createCarrier(t, repo, "Estes Express Lines", 4.5)

	carriers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, carriers, 3)
	assert.Equal(t, "Old Dominion", carriers[0].Name)
	assert.Equal(t, "Estes Express Lines", carriers[1].Name)
	assert.Equal(t, "XPO Logistics", carriers[2].Name)
}

func TestList_EmptyIsNonNil(t *testing.T) {
	repo, _ := newRepo(t)

	carriers, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, carriers)
	assert.Empty(t, carriers)
}

func TestFindByID_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	created := createCarrier(t, repo, "FedEx Freight", 4.8)

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "FedEx Freight", got.Name)
	assert.Equal(t, models.CarrierStatusActive, got.Status)
	assert.Equal(t, float64(models.DefaultInsuranceLimit), got.InsuranceLimit)
	assert.Equal(t, "LTL", got.Modes)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.FindByID(context.Background(), created.ID+100)
	require.ErrorIs(t, err, carrierdomain.ErrCarrierNotFound)
}

func TestUpdate(t *testing.T) {
	repo, _ := newRepo(t)
	c := createCarrier(t, repo, "Saia", 4.1)

	require.NoError(t, c.Apply(models.CarrierProfile{Name: "Saia LTL Freight", Status: "Pending", InsuranceLimit: 250000}))
	require.NoError(t, repo.Update(context.Background(), c))

	got, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saia LTL Freight", got.Name)
	assert.Equal(t, models.CarrierStatusPending, got.Status)
	assert.Equal(t, 250000.0, got.InsuranceLimit)
	assert.Equal(t, 4.1, got.Rating)

	c.ID = 999
	require.ErrorIs(t, repo.Update(context.Background(), c), carrierdomain.ErrCarrierNotFound)
}

func TestDelete(t *testing.T) {
	repo, db := newRepo(t)
	free := createCarrier(t, repo, "Free Carrier", 3.0)
	busy := createCarrier(t, repo, "Busy Carrier", 3.0)
	testutil.Exec(t, db, `INSERT INTO shipments (origin, destination, weight, carrier_id) VALUES ('A', 'B', 10, $1)`, busy.ID)

	require.NoError(t, repo.Delete(context.Background(), free.ID))
	require.ErrorIs(t, repo.Delete(context.Background(), free.ID), carrierdomain.ErrCarrierNotFound)

	err := repo.Delete(context.Background(), busy.ID)
	require.ErrorIs(t, err, carrierdomain.ErrCarrierInUse)
	assert.Equal(t, 1, testutil.Count(t, db, "carriers"))
}
