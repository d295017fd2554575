package record

import "time"

// Medicine is the single persisted entity: one stock line in the pharmacy
// inventory. JSON field names match the stored document layout.
//
// TotalPayment is derived (cost × quantity) and is recomputed by the store
// on every write; aggregate views recompute it from the source fields and
// never read the stored value.
type Medicine struct {
	// ID is the primary key. Assigned once at creation from a
	// timestamp-derived generator; immutable afterwards.
	ID int64 `json:"id"`

	// Name is the display name. Non-empty expected, not enforced here.
	Name string `json:"medicine_name"`

	// Cost is the unit price. Expected non-negative.
	Cost float64 `json:"cost"`

	// Quantity is the unit count. Expected positive.
	Quantity int64 `json:"quantity"`

	// TotalPayment is Cost × Quantity, maintained by the store.
	TotalPayment float64 `json:"total_payment"`

	// PurchaseDate and ExpiryDate are optional calendar dates in
	// YYYY-MM-DD form. Stored as text so they compare lexically.
	PurchaseDate string `json:"purchase_date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`

	// CreatedAt is set once when the record is first stored.
	CreatedAt time.Time `json:"createdAt,omitzero"`

	// UpdatedAt is set on every update. Zero until the first update.
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Total returns the derived total value of this line (cost × quantity),
// always computed from the source fields.
func (m Medicine) Total() float64 {
	return m.Cost * float64(m.Quantity)
}
