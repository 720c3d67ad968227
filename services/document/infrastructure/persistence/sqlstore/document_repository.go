// Package sqlstore implements the document repository on database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghuser/thoron/pkg/database"
	documentdomain "github.com/ghuser/thoron/services/document/domain"
	"github.com/ghuser/thoron/services/document/domain/models"
	"github.com/ghuser/thoron/services/document/domain/repositories"
)

// DocumentRepository implements repositories.DocumentRepository.
type DocumentRepository struct {
	db *database.Database
}

var _ repositories.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository returns a DocumentRepository backed by the given pool.
func NewDocumentRepository(db *database.Database) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) List(ctx context.Context) ([]*models.DocumentListing, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT d.id, d.shipment_id, d.type, d.filename, d.size, d.status, d.uploaded_at, s.tracking_number
		FROM documents d
		LEFT JOIN shipments s ON s.id = d.shipment_id
		ORDER BY d.uploaded_at DESC, d.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	docs := make([]*models.DocumentListing, 0)
	for rows.Next() {
		var (
			d          models.DocumentListing
			shipmentID sql.NullInt64
			docType    string
			status     string
			tracking   sql.NullString
		)
		if err := rows.Scan(&d.ID, &shipmentID, &docType, &d.Filename, &d.Size, &status, &d.UploadedAt, &tracking); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Type = models.DocumentType(docType)
		d.Status = models.DocumentStatus(status)
		if shipmentID.Valid {
			id := shipmentID.Int64
			d.ShipmentID = &id
		}
		if tracking.Valid {
			tn := tracking.String
			d.TrackingNumber = &tn
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// Create inserts d and sets d.ID.
func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO documents (shipment_id, type, filename, size, status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		database.NullInt64(d.ShipmentID), string(d.Type), d.Filename, d.Size, string(d.Status), d.UploadedAt,
	).Scan(&d.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d", documentdomain.ErrUnknownShipment, *d.ShipmentID)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return documentdomain.ErrDocumentNotFound
	}
	return nil
}
