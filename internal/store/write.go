package store

import (
	"context"
	"errors"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// Add inserts a new record in its own transaction.
//
// If the record carries no ID, a timestamp-derived one is assigned, along
// with CreatedAt. Inserting an ID that already exists fails with
// ErrCodeConflict. TotalPayment is recomputed from cost × quantity; any
// caller-supplied value is ignored.
//
// On commit, one change signal is published. Returns the record as stored.
func (s *Store) Add(ctx context.Context, m record.Medicine) (record.Medicine, error) {
	if m.ID == 0 {
		m.ID = s.ids.Next()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.TotalPayment = m.Total()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return record.Medicine{}, newTxError("add: begin tx", m.ID, err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO medicines
		(id, medicine_name, cost, quantity, total_payment, purchase_date, expiry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`,
		m.ID,
		m.Name,
		m.Cost,
		m.Quantity,
		m.TotalPayment,
		m.PurchaseDate,
		m.ExpiryDate,
		m.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		var sqlErr sqlite3.Error
		if errors.As(err, &sqlErr) && sqlErr.Code == sqlite3.ErrConstraint {
			return record.Medicine{}, newConflictError(m.ID, err)
		}
		return record.Medicine{}, newTxError("add", m.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return record.Medicine{}, newTxError("add: commit", m.ID, err)
	}

	s.log.WithFields(map[string]any{"op": "add", "id": m.ID, "name": m.Name}).Debug("record added")
	s.publish()
	return m, nil
}

// Update upserts the record by ID in its own transaction, replacing the
// whole stored row with the caller-supplied merged record. Callers merge
// fields themselves before calling; the store does not patch.
//
// UpdatedAt is set here; TotalPayment is recomputed from cost × quantity.
// On commit, one change signal is published.
func (s *Store) Update(ctx context.Context, m record.Medicine) (record.Medicine, error) {
	if m.ID == 0 {
		return record.Medicine{}, newTxError("update: record has no id", 0, nil)
	}
	m.UpdatedAt = time.Now()
	m.TotalPayment = m.Total()

	var createdAt any
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt.Format(time.RFC3339Nano)
	} else {
		// Upsert of a previously unseen id: this write is the creation.
		m.CreatedAt = m.UpdatedAt
		createdAt = m.CreatedAt.Format(time.RFC3339Nano)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return record.Medicine{}, newTxError("update: begin tx", m.ID, err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO medicines
		(id, medicine_name, cost, quantity, total_payment, purchase_date, expiry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			medicine_name = excluded.medicine_name,
			cost          = excluded.cost,
			quantity      = excluded.quantity,
			total_payment = excluded.total_payment,
			purchase_date = excluded.purchase_date,
			expiry_date   = excluded.expiry_date,
			updated_at    = excluded.updated_at
	`,
		m.ID,
		m.Name,
		m.Cost,
		m.Quantity,
		m.TotalPayment,
		m.PurchaseDate,
		m.ExpiryDate,
		createdAt,
		m.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return record.Medicine{}, newTxError("update", m.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return record.Medicine{}, newTxError("update: commit", m.ID, err)
	}

	s.log.WithFields(map[string]any{"op": "update", "id": m.ID, "name": m.Name}).Debug("record updated")
	s.publish()
	return m, nil
}

// Remove deletes the record by ID in its own transaction. Removing an id
// that does not exist is a success, not an error, matching key-store
// delete semantics. The transaction still commits, so a change signal is
// still published.
func (s *Store) Remove(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return newTxError("remove: begin tx", id, err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM medicines WHERE id = ?`, id); err != nil {
		return newTxError("remove", id, err)
	}

	if err := tx.Commit(); err != nil {
		return newTxError("remove: commit", id, err)
	}

	s.log.WithFields(map[string]any{"op": "remove", "id": id}).Debug("record removed")
	s.publish()
	return nil
}

// Clear deletes all records in one transaction.
// On commit, one change signal is published.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return newTxError("clear: begin tx", 0, err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM medicines`); err != nil {
		return newTxError("clear", 0, err)
	}

	if err := tx.Commit(); err != nil {
		return newTxError("clear: commit", 0, err)
	}

	s.log.WithField("op", "clear").Debug("collection cleared")
	s.publish()
	return nil
}
