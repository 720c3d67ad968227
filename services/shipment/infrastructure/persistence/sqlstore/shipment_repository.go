// Package sqlstore implements the shipment repositories on database/sql with
// SQL that runs unchanged on PostgreSQL and SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/events"
	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	domainevents "github.com/ghuser/thoron/services/shipment/domain/events"
	"github.com/ghuser/thoron/services/shipment/domain/models"
	"github.com/ghuser/thoron/services/shipment/domain/repositories"
)

const shipmentColumns = `s.id, s.origin, s.destination, s.weight, s.dimensions, s.freight_class, s.status,
	s.carrier_id, s.tracking_number, s.estimated_delivery, s.created_at`

// ShipmentRepository implements repositories.ShipmentRepository.
type ShipmentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.ShipmentRepository = (*ShipmentRepository)(nil)

// NewShipmentRepository returns a ShipmentRepository backed by the given pool.
// bus may be nil; when set, appended milestones are also written to the outbox.
func NewShipmentRepository(db *database.Database, bus *events.EventBus) *ShipmentRepository {
	return &ShipmentRepository{db: db, bus: bus}
}

// List returns every shipment in insertion order.
func (r *ShipmentRepository) List(ctx context.Context) ([]*models.Shipment, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT `+shipmentColumns+` FROM shipments s ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Shipment
	for rows.Next() {
		var (
			s     models.Shipment
			nulls scanNulls
		)
		if err := rows.Scan(shipmentDest(&s, &nulls)...); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		nulls.apply(&s)
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	return out, nil
}

// Create inserts s and sets s.ID. An unknown carrier id maps to
// ErrUnknownCarrier.
func (r *ShipmentRepository) Create(ctx context.Context, s *models.Shipment) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO shipments (origin, destination, weight, dimensions, freight_class, status,
			carrier_id, tracking_number, estimated_delivery, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		s.Origin, s.Destination, s.Weight, s.Dimensions, s.FreightClass, string(s.Status),
		database.NullInt64(s.CarrierID), database.NullString(s.TrackingNumber), database.NullString(s.EstimatedDelivery), s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d", shipmentdomain.ErrUnknownCarrier, derefID(s.CarrierID))
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// TrackingBoard returns every shipment, newest first, with its carrier name and
// latest milestone. The latest milestone is picked by event time, then id.
func (r *ShipmentRepository) TrackingBoard(ctx context.Context) ([]*models.TrackingSummary, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+shipmentColumns+`, c.name, e.event_type, e.location, e.event_time
		FROM shipments s
		LEFT JOIN carriers c ON c.id = s.carrier_id
		LEFT JOIN shipment_events e ON e.id = (
			SELECT e2.id FROM shipment_events e2
			WHERE e2.shipment_id = s.id
			ORDER BY e2.event_time DESC, e2.id DESC
			LIMIT 1
		)
		ORDER BY s.created_at DESC, s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query tracking board: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.TrackingSummary
	for rows.Next() {
		var (
			t                              models.TrackingSummary
			nulls                          scanNulls
			carrierName, lastType, lastLoc sql.NullString
			lastTime                       sql.NullTime
		)
		dest := append(shipmentDest(&t.Shipment, &nulls), &carrierName, &lastType, &lastLoc, &lastTime)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan tracking row: %w", err)
		}
		nulls.apply(&t.Shipment)
		t.CarrierName = nullString(carrierName)
		t.LastEventType = nullString(lastType)
		t.LastLocation = nullString(lastLoc)
		if lastTime.Valid {
			at := lastTime.Time
			t.LastEventTime = &at
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query tracking board: %w", err)
	}
	return out, nil
}

// TrackingDetail returns one shipment with carrier contact and its timeline
// ordered by event time ascending.
func (r *ShipmentRepository) TrackingDetail(ctx context.Context, id int64) (*models.TrackingDetail, error) {
	var (
		d                         models.TrackingDetail
		nulls                     scanNulls
		carrierName, carrierPhone sql.NullString
	)
	dest := append(shipmentDest(&d.Shipment, &nulls), &carrierName, &carrierPhone)
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT `+shipmentColumns+`, c.name, c.contact_phone
		FROM shipments s
		LEFT JOIN carriers c ON c.id = s.carrier_id
		WHERE s.id = $1`, id,
	).Scan(dest...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", shipmentdomain.ErrShipmentNotFound, id)
		}
		return nil, fmt.Errorf("query shipment: %w", err)
	}
	nulls.apply(&d.Shipment)
	d.CarrierName = nullString(carrierName)
	d.CarrierPhone = nullString(carrierPhone)

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, shipment_id, event_type, location, message, event_time
		FROM shipment_events
		WHERE shipment_id = $1
		ORDER BY event_time, id`, id)
	if err != nil {
		return nil, fmt.Errorf("query shipment events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	d.Events = []models.ShipmentEvent{}
	for rows.Next() {
		var e models.ShipmentEvent
		if err := rows.Scan(&e.ID, &e.ShipmentID, &e.EventType, &e.Location, &e.Message, &e.EventTime); err != nil {
			return nil, fmt.Errorf("scan shipment event: %w", err)
		}
		d.Events = append(d.Events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query shipment events: %w", err)
	}
	return &d, nil
}

// AppendEvent inserts the milestone and, when the bus is configured, writes
// shipment.milestone_recorded to the outbox in the same transaction.
func (r *ShipmentRepository) AppendEvent(ctx context.Context, e *models.ShipmentEvent) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM shipments WHERE id = $1`, e.ShipmentID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %d", shipmentdomain.ErrShipmentNotFound, e.ShipmentID)
			}
			return fmt.Errorf("check shipment: %w", err)
		}

		if err := tx.QueryRowContext(ctx, `
			INSERT INTO shipment_events (shipment_id, event_type, location, message, event_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			e.ShipmentID, e.EventType, e.Location, e.Message, e.EventTime,
		).Scan(&e.ID); err != nil {
			return fmt.Errorf("insert shipment event: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		evt := domainevents.MilestoneRecordedEvent{
			EventID:     uuid.New(),
			Version:     1,
			ShipmentID:  e.ShipmentID,
			MilestoneID: e.ID,
			EventType:   e.EventType,
			Location:    e.Location,
			EventTime:   e.EventTime,
		}
		if err := r.bus.PublishJSON(ctx, tx, domainevents.TopicMilestoneRecorded, evt.EventID.String(), evt.Version, evt); err != nil {
			return fmt.Errorf("publish milestone recorded: %w", err)
		}
		return nil
	})
}

// scanNulls receives the nullable shipment columns.
type scanNulls struct {
	status            string
	carrierID         sql.NullInt64
	trackingNumber    sql.NullString
	estimatedDelivery sql.NullString
}

func (n *scanNulls) apply(s *models.Shipment) {
	s.Status = models.ShipmentStatus(n.status)
	if n.carrierID.Valid {
		id := n.carrierID.Int64
		s.CarrierID = &id
	}
	s.TrackingNumber = nullString(n.trackingNumber)
	s.EstimatedDelivery = nullString(n.estimatedDelivery)
}

// shipmentDest returns Scan destinations matching shipmentColumns. Callers
// must call n.apply after a successful Scan.
func shipmentDest(s *models.Shipment, n *scanNulls) []any {
	return []any{
		&s.ID, &s.Origin, &s.Destination, &s.Weight, &s.Dimensions, &s.FreightClass, &n.status,
		&n.carrierID, &n.trackingNumber, &n.estimatedDelivery, &s.CreatedAt,
	}
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
