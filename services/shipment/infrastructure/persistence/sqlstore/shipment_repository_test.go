package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/testutil"
	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	"github.com/ghuser/thoron/services/shipment/domain/models"
	"github.com/ghuser/thoron/services/shipment/infrastructure/persistence/sqlstore"
)

func newRepo(t *testing.T) (*sqlstore.ShipmentRepository, *database.Database) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return sqlstore.NewShipmentRepository(db, nil), db
}

func createShipment(t *testing.T, repo *sqlstore.ShipmentRepository, origin string, carrierID *int64, createdAt time.Time) *models.Shipment {
	t.Helper()
	s, err := models.NewShipment(origin, "Dallas, TX", 1850, "48x40x48", "70", models.ShipmentStatusInTransit)
	require.NoError(t, err)
	s.CarrierID = carrierID
	s.CreatedAt = createdAt
	require.NoError(t, repo.Create(context.Background(), s))
	require.NotZero(t, s.ID)
	return s
}

func addEvent(t *testing.T, repo *sqlstore.ShipmentRepository, shipmentID int64, eventType string, at time.Time) {
	t.Helper()
	e, err := models.NewShipmentEvent(shipmentID, eventType, "Somewhere", "", at)
	require.NoError(t, err)
	require.NoError(t, repo.AppendEvent(context.Background(), e))
}

func TestCreate_UnknownCarrier(t *testing.T) {
	repo, db := newRepo(t)
	missing := int64(404)

	s, err := models.NewShipment("Chicago, IL", "Dallas, TX", 10, "", "", models.ShipmentStatusPending)
	require.NoError(t, err)
	s.CarrierID = &missing

	err = repo.Create(context.Background(), s)
	require.ErrorIs(t, err, shipmentdomain.ErrUnknownCarrier)
	assert.Equal(t, 0, testutil.Count(t, db, "shipments"))
}

func TestList_RoundTripsOptionalFields(t *testing.T) {
	repo, db := newRepo(t)
	testutil.Exec(t, db, `INSERT INTO carriers (name) VALUES ('FedEx Freight')`)
	carrierID := int64(1)
	tracking := "FDX-2211-2024"

	s, err := models.NewShipment("New York, NY", "Miami, FL", 920, "48x48x36", "55", models.ShipmentStatusDelivered)
	require.NoError(t, err)
	s.CarrierID = &carrierID
	s.TrackingNumber = &tracking
	require.NoError(t, repo.Create(context.Background(), s))
	createShipment(t, repo, "Boston, MA", nil, time.Now().UTC())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	require.NotNil(t, first.CarrierID)
	assert.Equal(t, carrierID, *first.CarrierID)
	require.NotNil(t, first.TrackingNumber)
	assert.Equal(t, tracking, *first.TrackingNumber)
	assert.Nil(t, first.EstimatedDelivery)
	assert.Equal(t, models.ShipmentStatusDelivered, first.Status)

	assert.Nil(t, list[1].CarrierID)
	assert.Nil(t, list[1].TrackingNumber)
}

func TestTrackingBoard_LatestEventAndOrder(t *testing.T) {
	repo, db := newRepo(t)
	testutil.Exec(t, db, `INSERT INTO carriers (name, contact_phone) VALUES ('Old Dominion Freight', '1-800-432-6335')`)
	carrierID := int64(1)
	base := time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)

	older := createShipment(t, repo, "Chicago, IL", &carrierID, base)
	newer := createShipment(t, repo, "Houston, TX", nil, base.Add(time.Hour))

	addEvent(t, repo, older.ID, "In Transit", base.Add(22*time.Hour))
	addEvent(t, repo, older.ID, "Picked Up", base)
	addEvent(t, repo, older.ID, "Departed Terminal", base.Add(6*time.Hour))

	board, err := repo.TrackingBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 2)

	assert.Equal(t, newer.ID, board[0].ID, "newest shipment first")
	assert.Nil(t, board[0].CarrierName)
	assert.Nil(t, board[0].LastEventType)
	assert.Nil(t, board[0].LastEventTime)

	assert.Equal(t, older.ID, board[1].ID)
	require.NotNil(t, board[1].CarrierName)
	assert.Equal(t, "Old Dominion Freight", *board[1].CarrierName)
	require.NotNil(t, board[1].LastEventType)
	assert.Equal(t, "In Transit", *board[1].LastEventType)
	require.NotNil(t, board[1].LastEventTime)
	assert.True(t, board[1].LastEventTime.Equal(base.Add(22*time.Hour)))
}

func TestTrackingDetail_TimelineAscending(t *testing.T) {
	repo, db := newRepo(t)
	testutil.Exec(t, db, `INSERT INTO carriers (name, contact_phone) VALUES ('Old Dominion Freight', '1-800-432-6335')`)
	carrierID := int64(1)
	base := time.Date(2026, 2, 21, 7, 30, 0, 0, time.UTC)

	s := createShipment(t, repo, "New York, NY", &carrierID, base)
	addEvent(t, repo, s.ID, "Delivered", base.Add(52*time.Hour))
	addEvent(t, repo, s.ID, "Picked Up", base)
	addEvent(t, repo, s.ID, "In Transit", base.Add(5*time.Hour))

	d, err := repo.TrackingDetail(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, d.CarrierPhone)
	assert.Equal(t, "1-800-432-6335", *d.CarrierPhone)
	require.Len(t, d.Events, 3)
	assert.Equal(t, "Picked Up", d.Events[0].EventType)
	assert.Equal(t, "In Transit", d.Events[1].EventType)
	assert.Equal(t, "Delivered", d.Events[2].EventType)
}

func TestTrackingDetail_NoEvents(t *testing.T) {
	repo, _ := newRepo(t)
	s := createShipment(t, repo, "Boston, MA", nil, time.Now().UTC())

	d, err := repo.TrackingDetail(context.Background(), s.ID)
	require.NoError(t, err)
	assert.NotNil(t, d.Events)
	assert.Empty(t, d.Events)
	assert.Nil(t, d.CarrierName)
}

func TestTrackingDetail_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.TrackingDetail(context.Background(), 99)
	require.ErrorIs(t, err, shipmentdomain.ErrShipmentNotFound)
}

func TestAppendEvent_UnknownShipment(t *testing.T) {
	repo, db := newRepo(t)

	e, err := models.NewShipmentEvent(77, "Picked Up", "", "", time.Time{})
	require.NoError(t, err)

	err = repo.AppendEvent(context.Background(), e)
	require.ErrorIs(t, err, shipmentdomain.ErrShipmentNotFound)
	assert.Equal(t, 0, testutil.Count(t, db, "shipment_events"))
}
