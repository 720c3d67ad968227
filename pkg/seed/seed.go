// Package seed loads the demo data set used by the dashboard and restores it
// on the development reset endpoints.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/logger"
)

// Seeder writes the demo data set.
type Seeder struct {
	db  *database.Database
	log logger.Logger
}

// New returns a Seeder for db.
func New(db *database.Database, log logger.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Run seeds each part of the data set whose tables are empty. Running it
// against a populated database is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		carrierIDs, err := existingOrSeededCarriers(ctx, tx)
		if err != nil {
			return err
		}

		empty, err := isEmpty(ctx, tx, "shipments")
		if err != nil {
			return err
		}
		if empty {
			if err := seedFreight(ctx, tx, carrierIDs); err != nil {
				return err
			}
		}

		if empty, err = isEmpty(ctx, tx, "users"); err != nil {
			return err
		}
		if empty {
			if err := seedUsers(ctx, tx); err != nil {
				return err
			}
		}

		s.log.InfoContext(ctx, "demo data ready")
		return nil
	})
}

// ResetTracking replaces shipments and everything that hangs off them (events,
// orders, invoices, documents) with the demo set. Carriers are kept and linked
// by name.
func (s *Seeder) ResetTracking(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, "documents", "invoices", "orders", "shipment_events", "shipments"); err != nil {
			return err
		}
		carrierIDs, err := carrierIDsByName(ctx, tx)
		if err != nil {
			return err
		}
		if err := seedFreight(ctx, tx, carrierIDs); err != nil {
			return err
		}
		s.log.InfoContext(ctx, "tracking demo data reset",
			"shipments", len(shipments), "events", len(shipmentEvents))
		return nil
	})
}

// ResetCarriers replaces the carrier table with the six demo carriers. Every
// shipment references a carrier, so the freight data is reseeded with it.
func (s *Seeder) ResetCarriers(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, "documents", "invoices", "orders", "shipment_events", "shipments",
			"rates", "lanes", "carriers"); err != nil {
			return err
		}
		carrierIDs, err := seedCarriers(ctx, tx)
		if err != nil {
			return err
		}
		if err := seedFreight(ctx, tx, carrierIDs); err != nil {
			return err
		}
		s.log.InfoContext(ctx, "carrier demo data reset", "carriers", len(carrierIDs))
		return nil
	})
}

func existingOrSeededCarriers(ctx context.Context, tx *sql.Tx) ([]*int64, error) {
	empty, err := isEmpty(ctx, tx, "carriers")
	if err != nil {
		return nil, err
	}
	if empty {
		return seedCarriers(ctx, tx)
	}
	return carrierIDsByName(ctx, tx)
}

// seedCarriers inserts the demo carriers and returns their ids by index.
func seedCarriers(ctx context.Context, tx *sql.Tx) ([]*int64, error) {
	ids := make([]*int64, len(carriers))
	for i, c := range carriers {
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO carriers (name, mc_number, dot_number, contact_name, contact_email, contact_phone,
				insurance_limit, service_level, modes, on_time_rate, claim_rate, rating, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id`,
			c.name, c.mc, c.dot, c.contact, c.email, c.phone,
			c.insurance, c.serviceLevel, c.modes, c.onTime, c.claims, c.rating, c.status,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed carrier %q: %w", c.name, err)
		}
		ids[i] = &id
	}
	return ids, nil
}

// carrierIDsByName maps each demo carrier to its current id, or nil when the
// carrier no longer exists.
func carrierIDsByName(ctx context.Context, tx *sql.Tx) ([]*int64, error) {
	ids := make([]*int64, len(carriers))
	for i, c := range carriers {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM carriers WHERE name = $1 ORDER BY id LIMIT 1`, c.name).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return nil, fmt.Errorf("look up carrier %q: %w", c.name, err)
		default:
			ids[i] = &id
		}
	}
	return ids, nil
}

// seedFreight inserts shipments, their events, orders, invoices and documents.
func seedFreight(ctx context.Context, tx *sql.Tx, carrierIDs []*int64) error {
	shipmentIDs := make([]int64, len(shipments))
	for i, sh := range shipments {
		var tracking *string
		if sh.tracking != "" {
			tracking = &sh.tracking
		}
		eta := sh.eta
		err := tx.QueryRowContext(ctx, `
			INSERT INTO shipments (origin, destination, weight, dimensions, freight_class, status,
				carrier_id, tracking_number, estimated_delivery, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			sh.origin, sh.destination, sh.weight, sh.dimensions, sh.class, sh.status,
			database.NullInt64(carrierIDs[sh.carrier]), database.NullString(tracking), database.NullString(&eta), sh.createdAt,
		).Scan(&shipmentIDs[i])
		if err != nil {
			return fmt.Errorf("seed shipment %s -> %s: %w", sh.origin, sh.destination, err)
		}
	}

	for _, e := range shipmentEvents {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shipment_events (shipment_id, event_type, location, message, event_time)
			VALUES ($1, $2, $3, $4, $5)`,
			shipmentIDs[e.shipment], e.eventType, e.location, e.msg, e.at,
		); err != nil {
			return fmt.Errorf("seed shipment event: %w", err)
		}
	}

	for _, o := range orders {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO orders (customer_name, po_number, origin, destination, weight, dimensions, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, 'Unplanned', $7)`,
			o.customer, o.po, o.origin, o.destination, o.weight, o.dimensions, o.createdAt,
		); err != nil {
			return fmt.Errorf("seed order %s: %w", o.po, err)
		}
	}

	for _, inv := range invoices {
		carrierID := carrierIDs[shipments[inv.shipment].carrier]
		if carrierID == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO invoices (shipment_id, carrier_id, invoice_number, quoted_amount, actual_amount, status, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			shipmentIDs[inv.shipment], *carrierID, inv.number, inv.quoted, inv.actual, inv.status, inv.due,
		); err != nil {
			return fmt.Errorf("seed invoice %s: %w", inv.number, err)
		}
	}

	for _, d := range documents {
		var shipmentID sql.NullInt64
		if d.shipment >= 0 {
			shipmentID = sql.NullInt64{Int64: shipmentIDs[d.shipment], Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (shipment_id, type, filename, size, status, uploaded_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			shipmentID, d.docType, d.name, d.size, d.status, d.uploadedAt,
		); err != nil {
			return fmt.Errorf("seed document %s: %w", d.name, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, tx *sql.Tx) error {
	for _, u := range users {
		var lastLogin sql.NullTime
		if u.lastLogin != nil {
			lastLogin = sql.NullTime{Time: *u.lastLogin, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (name, email, role, department, last_login, status)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			u.name, u.email, u.role, u.department, lastLogin, u.status,
		); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}
	return nil
}

func isEmpty(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}

// deleteAll deletes every row of tables, in the given order.
func deleteAll(ctx context.Context, tx *sql.Tx, tables ...string) error {
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return fmt.Errorf("clear %s: %w", t, err)
		}
	}
	return nil
}
