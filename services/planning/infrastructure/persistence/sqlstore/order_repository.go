// Package sqlstore implements the planning repositories on database/sql with
// SQL that runs unchanged on PostgreSQL and SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/events"
	planningdomain "github.com/ghuser/thoron/services/planning/domain"
	domainevents "github.com/ghuser/thoron/services/planning/domain/events"
	"github.com/ghuser/thoron/services/planning/domain/models"
	"github.com/ghuser/thoron/services/planning/domain/repositories"
)

// shipmentStatusPending is the initial status of every consolidated shipment.
const shipmentStatusPending = "Pending"

const orderColumns = `id, customer_name, po_number, origin, destination, weight, dimensions, status, shipment_id, created_at`

// OrderRepository implements repositories.OrderRepository.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository returns an OrderRepository backed by the given pool.
// bus may be nil; when set, a LoadPlannedEvent is written to the outbox in the
// consolidation transaction.
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

// FindByStatus lists orders oldest first, optionally filtered by status.
func (r *OrderRepository) FindByStatus(ctx context.Context, status *models.OrderStatus) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at, id`

	orders, err := queryOrders(ctx, r.db.DB(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	return orders, nil
}

// Create inserts order and sets order.ID.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, po_number, origin, destination, weight, dimensions, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		order.CustomerName, order.PONumber, order.Origin, order.Destination,
		order.Weight, order.Dimensions, string(order.Status), order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Consolidate runs the whole plan in one serializable transaction:
//  1. read the plan's orders
//  2. let policy accept or reject them
//  3. insert the Pending shipment
//  4. flip every order Unplanned -> Planned, conditional on its status
//  5. write load.planned to the outbox (when the bus is configured)
//
// Any failure rolls back every step. A lost concurrency race surfaces as
// ErrOrderNotUnplanned (the orders were planned first) or ErrPlanningConflict
// (the database aborted the transaction).
func (r *OrderRepository) Consolidate(ctx context.Context, plan *models.LoadPlan, policy repositories.ConsolidationPolicy) (*models.PlannedLoad, error) {
	var planned *models.PlannedLoad

	err := r.db.WithSerializableTx(ctx, func(tx *sql.Tx) error {
		orders, err := findByIDs(ctx, tx, plan.OrderIDs)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}

		shipmentWeight, orderWeight, err := policy(orders)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		var shipmentID int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO shipments (origin, destination, weight, dimensions, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			plan.Origin, plan.Destination, shipmentWeight, plan.Dimensions, shipmentStatusPending, now,
		).Scan(&shipmentID); err != nil {
			return fmt.Errorf("insert shipment: %w", err)
		}

		args := append([]any{string(models.OrderStatusPlanned), shipmentID, string(models.OrderStatusUnplanned)},
			database.Int64Args(plan.OrderIDs)...)
		res, err := tx.ExecContext(ctx, `
			UPDATE orders SET status = $1, shipment_id = $2
			WHERE status = $3 AND id IN (`+database.Placeholders(4, len(plan.OrderIDs))+`)`,
			args...,
		)
		if err != nil {
			return fmt.Errorf("assign orders: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("assign orders: %w", err)
		}
		if n != int64(len(plan.OrderIDs)) {
			return fmt.Errorf("%w: assigned %d of %d orders", planningdomain.ErrOrderNotUnplanned, n, len(plan.OrderIDs))
		}

		planned = &models.PlannedLoad{
			ShipmentID:  shipmentID,
			OrderIDs:    plan.OrderIDs,
			Origin:      plan.Origin,
			Destination: plan.Destination,
			Weight:      shipmentWeight,
			OrderWeight: orderWeight,
			PlannedAt:   now,
		}

		if r.bus != nil {
			if err := r.publishPlanned(ctx, tx, planned); err != nil {
				return fmt.Errorf("publish load planned: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if database.IsSerializationFailure(err) && !errors.Is(err, planningdomain.ErrPlanningConflict) {
			return nil, fmt.Errorf("%w: %w", planningdomain.ErrPlanningConflict, err)
		}
		return nil, err
	}
	return planned, nil
}

func (r *OrderRepository) publishPlanned(ctx context.Context, tx *sql.Tx, p *models.PlannedLoad) error {
	event := domainevents.LoadPlannedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ShipmentID:  p.ShipmentID,
		OrderIDs:    p.OrderIDs,
		Origin:      p.Origin,
		Destination: p.Destination,
		Weight:      p.Weight,
		OccurredAt:  p.PlannedAt,
	}
	return r.bus.PublishJSON(ctx, tx, domainevents.TopicLoadPlanned, event.EventID.String(), event.Version, event)
}

func findByIDs(ctx context.Context, q database.DBTX, ids []int64) ([]*models.Order, error) {
	return queryOrders(ctx, q,
		`SELECT `+orderColumns+` FROM orders WHERE id IN (`+database.Placeholders(1, len(ids))+`)`,
		database.Int64Args(ids)...,
	)
}

func queryOrders(ctx context.Context, q database.DBTX, query string, args ...any) ([]*models.Order, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var orders []*models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanOrder(rows *sql.Rows) (*models.Order, error) {
	var (
		o          models.Order
		status     string
		shipmentID sql.NullInt64
	)
	if err := rows.Scan(
		&o.ID, &o.CustomerName, &o.PONumber, &o.Origin, &o.Destination,
		&o.Weight, &o.Dimensions, &status, &shipmentID, &o.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	o.Status = models.OrderStatus(status)
	if shipmentID.Valid {
		id := shipmentID.Int64
		o.ShipmentID = &id
	}
	return &o, nil
}
