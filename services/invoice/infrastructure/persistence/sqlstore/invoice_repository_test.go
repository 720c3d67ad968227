package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/testutil"
	invoicedomain "github.com/ghuser/thoron/services/invoice/domain"
	"github.com/ghuser/thoron/services/invoice/domain/models"
	"github.com/ghuser/thoron/services/invoice/infrastructure/persistence/sqlstore"
)

func seedInvoices(t *testing.T, db *database.Database) {
	t.Helper()
	testutil.Exec(t, db, `INSERT INTO carriers (name) VALUES ('XPO Logistics')`)
	testutil.Exec(t, db, `INSERT INTO shipments (origin, destination, weight, carrier_id, tracking_number)
		VALUES ('Atlanta, GA', 'Los Angeles, CA', 3400, 1, 'XPO-8823-2024')`)
	testutil.Exec(t, db, `INSERT INTO shipments (origin, destination, weight, carrier_id) VALUES ('Boston, MA', 'Charlotte, NC', 450, 1)`)
	testutil.Exec(t, db, `INSERT INTO invoices (shipment_id, carrier_id, invoice_number, quoted_amount, actual_amount, status, due_date)
		VALUES (1, 1, 'INV-1', 2890, 3120.5, 'Disputed', '2026-03-12')`)
	testutil.Exec(t, db, `INSERT INTO invoices (shipment_id, carrier_id, invoice_number, quoted_amount, actual_amount, due_date)
		VALUES (2, 1, 'INV-2', 540, 540, '2026-03-18')`)
}

func TestInvoiceRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedInvoices(t, db)
	repo := sqlstore.NewInvoiceRepository(db)

	invoices, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, "INV-2", invoices[0].InvoiceNumber)
	assert.Equal(t, models.InvoiceStatusPending, invoices[0].Status)
	assert.Nil(t, invoices[0].TrackingNumber)

	inv := invoices[1]
	assert.Equal(t, "XPO Logistics", inv.CarrierName)
	require.NotNil(t, inv.TrackingNumber)
	assert.Equal(t, "XPO-8823-2024", *inv.TrackingNumber)
	assert.Equal(t, "Atlanta, GA", inv.Origin)
	assert.Equal(t, "Los Angeles, CA", inv.Destination)
	assert.Equal(t, 230.5, inv.Variance())
	assert.Equal(t, "2026-03-12", inv.DueDate)
}

func TestInvoiceRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedInvoices(t, db)
	repo := sqlstore.NewInvoiceRepository(db)

	require.NoError(t, repo.UpdateStatus(context.Background(), 1, models.InvoiceStatusApproved))
	inv, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusApproved, inv.Status)

	require.ErrorIs(t, repo.UpdateStatus(context.Background(), 99, models.InvoiceStatusPaid), invoicedomain.ErrInvoiceNotFound)
	_, err = repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, invoicedomain.ErrInvoiceNotFound)
}
