// Package sqlstore implements the carrier repository on database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/thoron/pkg/database"
	carrierdomain "github.com/ghuser/thoron/services/carrier/domain"
	"github.com/ghuser/thoron/services/carrier/domain/models"
	"github.com/ghuser/thoron/services/carrier/domain/repositories"
)

const carrierColumns = `id, name, mc_number, dot_number, contact_name, contact_email, contact_phone,
	insurance_limit, service_level, modes, on_time_rate, claim_rate, rating, status, created_at`

// CarrierRepository implements repositories.CarrierRepository.
type CarrierRepository struct {
	db *database.Database
}

var _ repositories.CarrierRepository = (*CarrierRepository)(nil)

// NewCarrierRepository returns a CarrierRepository backed by the given pool.
func NewCarrierRepository(db *database.Database) *CarrierRepository {
	return &CarrierRepository{db: db}
}

// List returns carriers best rated first, ties broken by id.
func (r *CarrierRepository) List(ctx context.Context) ([]*models.Carrier, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+carrierColumns+` FROM carriers ORDER BY rating DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query carriers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	carriers := make([]*models.Carrier, 0)
	for rows.Next() {
		c, err := scanCarrier(rows)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}
	return carriers, rows.Err()
}

func (r *CarrierRepository) FindByID(ctx context.Context, id int64) (*models.Carrier, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+carrierColumns+` FROM carriers WHERE id = $1`, id)
	c, err := scanCarrier(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, carrierdomain.ErrCarrierNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts c and sets c.ID.
func (r *CarrierRepository) Create(ctx context.Context, c *models.Carrier) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO carriers (name, mc_number, dot_number, contact_name, contact_email, contact_phone,
			insurance_limit, service_level, modes, on_time_rate, claim_rate, rating, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		c.Name, c.MCNumber, c.DOTNumber, c.ContactName, c.ContactEmail, c.ContactPhone,
		c.InsuranceLimit, c.ServiceLevel, c.Modes, c.OnTimeRate, c.ClaimRate, c.Rating,
		string(c.Status), c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert carrier: %w", err)
	}
	return nil
}

// Update overwrites the editable profile of c. Performance figures are left alone.
func (r *CarrierRepository) Update(ctx context.Context, c *models.Carrier) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE carriers SET name = $1, mc_number = $2, dot_number = $3, contact_name = $4,
			contact_email = $5, contact_phone = $6, insurance_limit = $7, service_level = $8,
			modes = $9, status = $10
		WHERE id = $11`,
		c.Name, c.MCNumber, c.DOTNumber, c.ContactName, c.ContactEmail, c.ContactPhone,
		c.InsuranceLimit, c.ServiceLevel, c.Modes, string(c.Status), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update carrier: %w", err)
	}
	return expectOne(res)
}

func (r *CarrierRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM carriers WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", carrierdomain.ErrCarrierInUse, err)
		}
		return fmt.Errorf("delete carrier: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return carrierdomain.ErrCarrierNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCarrier(s scanner) (*models.Carrier, error) {
	var (
		c      models.Carrier
		status string
	)
	if err := s.Scan(
		&c.ID, &c.Name, &c.MCNumber, &c.DOTNumber, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
		&c.InsuranceLimit, &c.ServiceLevel, &c.Modes, &c.OnTimeRate, &c.ClaimRate, &c.Rating,
		&status, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan carrier: %w", err)
	}
	c.Status = models.CarrierStatus(status)
	return &c, nil
}
