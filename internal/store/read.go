package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

const selectColumns = `
	SELECT id, medicine_name, cost, quantity, total_payment,
	       purchase_date, expiry_date, created_at, updated_at
	FROM medicines
`

// List returns all records. Insertion order is not guaranteed; callers
// that need an ordering sort the result themselves.
//
// Returns an empty slice (not nil) when the collection is empty. Never
// publishes a change signal.
func (s *Store) List(ctx context.Context) ([]record.Medicine, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	var records []record.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medicines: %w", err)
	}

	// Return empty slice instead of nil
	if records == nil {
		records = []record.Medicine{}
	}

	return records, nil
}

// GetByID returns the record with the given id, or an ErrCodeNotFound
// error. Never publishes a change signal.
func (s *Store) GetByID(ctx context.Context, id int64) (record.Medicine, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	m, err := scanMedicine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Medicine{}, newNotFoundError(id)
	}
	if err != nil {
		return record.Medicine{}, fmt.Errorf("get medicine %d: %w", id, err)
	}
	return m, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedicine(row rowScanner) (record.Medicine, error) {
	var (
		m         record.Medicine
		createdAt string
		updatedAt sql.NullString
	)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Cost,
		&m.Quantity,
		&m.TotalPayment,
		&m.PurchaseDate,
		&m.ExpiryDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return record.Medicine{}, err
	}

	m.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return record.Medicine{}, fmt.Errorf("parse created_at for %d: %w", m.ID, err)
	}
	if updatedAt.Valid {
		m.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt.String)
		if err != nil {
			return record.Medicine{}, fmt.Errorf("parse updated_at for %d: %w", m.ID, err)
		}
	}
	return m, nil
}
