package inventory

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// SortKey selects the field a projection is ordered by.
type SortKey string

const (
	SortByName         SortKey = "medicine_name"
	SortByCost         SortKey = "cost"
	SortByQuantity     SortKey = "quantity"
	SortByTotalPayment SortKey = "total_payment"
	SortByPurchaseDate SortKey = "purchase_date"
	SortByExpiryDate   SortKey = "expiry_date"
)

// SortKeys lists the accepted sort keys, for flag validation.
var SortKeys = []SortKey{
	SortByName, SortByCost, SortByQuantity,
	SortByTotalPayment, SortByPurchaseDate, SortByExpiryDate,
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q: must be one of %v", s, SortKeys)
}

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection validates a user-supplied sort direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Ascending, Descending:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be asc or desc", s)
	}
}

// SortRecords returns a new slice ordered by the given key and direction.
// The sort is stable: records that compare equal keep their prior relative
// order. Numeric fields compare numerically; name and date fields compare
// lexically as stored (dates are YYYY-MM-DD, so lexical order is calendar
// order). The input slice is not modified.
func SortRecords(records []record.Medicine, key SortKey, dir Direction) []record.Medicine {
	out := make([]record.Medicine, len(records))
	copy(out, records)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b record.Medicine) bool {
	switch key {
	case SortByCost:
		return func(a, b record.Medicine) bool { return a.Cost < b.Cost }
	case SortByQuantity:
		return func(a, b record.Medicine) bool { return a.Quantity < b.Quantity }
	case SortByTotalPayment:
		// Compare the derived total, not the stored column.
		return func(a, b record.Medicine) bool { return a.Total() < b.Total() }
	case SortByPurchaseDate:
		return func(a, b record.Medicine) bool { return a.PurchaseDate < b.PurchaseDate }
	case SortByExpiryDate:
		return func(a, b record.Medicine) bool { return a.ExpiryDate < b.ExpiryDate }
	default:
		return func(a, b record.Medicine) bool { return a.Name < b.Name }
	}
}

// FilterByName keeps records whose name contains the query as a
// case-insensitive substring. An empty query keeps everything. The input
// slice is not modified.
func FilterByName(records []record.Medicine, query string) []record.Medicine {
	if strings.TrimSpace(query) == "" {
		out := make([]record.Medicine, len(records))
		copy(out, records)
		return out
	}

	folder := cases.Fold()
	needle := folder.String(query)

	out := make([]record.Medicine, 0, len(records))
	for _, m := range records {
		if strings.Contains(folder.String(m.Name), needle) {
			out = append(out, m)
		}
	}
	return out
}

// Project applies the whole client-side pipeline: filter first, then sort.
// Recomputed together whenever the record set, the query, or the sort key
// changes.
func Project(records []record.Medicine, query string, key SortKey, dir Direction) []record.Medicine {
	return SortRecords(FilterByName(records, query), key, dir)
}
