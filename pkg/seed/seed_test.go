package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/seed"
	"github.com/ghuser/thoron/pkg/testutil"
)

func TestRun_SeedsEmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := seed.New(db, testutil.Logger())

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 6, testutil.Count(t, db, "carriers"))
	assert.Equal(t, 6, testutil.Count(t, db, "shipments"))
	assert.Equal(t, 14, testutil.Count(t, db, "shipment_events"))
	assert.Equal(t, 6, testutil.Count(t, db, "orders"))
	assert.Equal(t, 5, testutil.Count(t, db, "invoices"))
	assert.Equal(t, 5, testutil.Count(t, db, "documents"))
	assert.Equal(t, 5, testutil.Count(t, db, "users"))
}

func TestRun_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := seed.New(db, testutil.Logger())

	require.NoError(t, s.Run(context.Background()))
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 6, testutil.Count(t, db, "carriers"))
	assert.Equal(t, 6, testutil.Count(t, db, "shipments"))
	assert.Equal(t, 5, testutil.Count(t, db, "users"))
}

func TestResetTracking_RestoresFreightKeepsCarriers(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := seed.New(db, testutil.Logger())
	ctx := context.Background()
	require.NoError(t, s.Run(ctx))

	testutil.Exec(t, db, `INSERT INTO carriers (name) VALUES ('Regional Haulers')`)
	testutil.Exec(t, db, `INSERT INTO shipments (origin, destination, weight) VALUES ('A', 'B', 10)`)
	testutil.Exec(t, db, `UPDATE orders SET status = 'Planned', shipment_id = (SELECT MIN(id) FROM shipments)`)

	require.NoError(t, s.ResetTracking(ctx))

	assert.Equal(t, 7, testutil.Count(t, db, "carriers"))
	assert.Equal(t, 6, testutil.Count(t, db, "shipments"))
	assert.Equal(t, 14, testutil.Count(t, db, "shipment_events"))

	var unplanned int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM orders WHERE status = 'Unplanned'`).Scan(&unplanned))
	assert.Equal(t, 6, unplanned)

	var carrierName string
	require.NoError(t, db.DB().QueryRow(`
		SELECT c.name FROM shipments s JOIN carriers c ON c.id = s.carrier_id
		WHERE s.tracking_number = 'XPO-8823-2024'`).Scan(&carrierName))
	assert.Equal(t, "XPO Logistics", carrierName)
}

func TestResetTracking_MissingCarrierLeavesShipmentUnassigned(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := seed.New(db, testutil.Logger())
	ctx := context.Background()
	require.NoError(t, s.Run(ctx))

	testutil.Exec(t, db, `DELETE FROM invoices`)
	testutil.Exec(t, db, `UPDATE shipments SET carrier_id = NULL`)
	testutil.Exec(t, db, `DELETE FROM carriers WHERE name = 'Werner Enterprises'`)

	require.NoError(t, s.ResetTracking(ctx))

	var unassigned int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM shipments WHERE carrier_id IS NULL`).Scan(&unassigned))
	assert.Equal(t, 1, unassigned)
	assert.Equal(t, 4, testutil.Count(t, db, "invoices"))
}

func TestResetCarriers(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := seed.New(db, testutil.Logger())
	ctx := context.Background()
	require.NoError(t, s.Run(ctx))

	testutil.Exec(t, db, `UPDATE carriers SET rating = 1.0 WHERE name = 'FedEx Freight'`)
	testutil.Exec(t, db, `INSERT INTO carriers (name) VALUES ('Regional Haulers')`)

	require.NoError(t, s.ResetCarriers(ctx))

	assert.Equal(t, 6, testutil.Count(t, db, "carriers"))
	assert.Equal(t, 6, testutil.Count(t, db, "shipments"))
	assert.Equal(t, 5, testutil.Count(t, db, "users"))

	var rating float64
	require.NoError(t, db.DB().QueryRow(`SELECT rating FROM carriers WHERE name = 'FedEx Freight'`).Scan(&rating))
	assert.Equal(t, 4.8, rating)
}
