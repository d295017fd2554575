package inventory

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// LowStockThreshold is the quantity below which a record counts as low
// stock.
const LowStockThreshold = 10

// TotalValue sums cost × quantity over all records.
//
// It deliberately recomputes from the source fields instead of summing the
// stored total_payment column, so a drifted stored value can never skew the
// aggregate.
func TotalValue(records []record.Medicine) float64 {
	var total float64
	for _, m := range records {
		total += m.Total()
	}
	return total
}

// LowStockCount counts records with quantity strictly below
// LowStockThreshold.
func LowStockCount(records []record.Medicine) int {
	count := 0
	for _, m := range records {
		if m.Quantity < LowStockThreshold {
			count++
		}
	}
	return count
}

// GroupSummary aggregates all records sharing one medicine name.
type GroupSummary struct {
	// Name is the display name from the first record seen for the group.
	Name string `json:"medicine_name"`

	// Records is how many records fold into this group.
	Records int `json:"records"`

	// Quantity is the summed unit count across the group.
	Quantity int64 `json:"quantity"`

	// MinCost and MaxCost bound the unit prices seen in the group.
	MinCost float64 `json:"min_cost"`
	MaxCost float64 `json:"max_cost"`
}

// GroupByName folds records into per-name summaries, keyed
// case-insensitively. Groups come back sorted by folded name so the output
// is deterministic.
func GroupByName(records []record.Medicine) []GroupSummary {
	folder := cases.Fold()

	keys := make([]string, 0)
	groups := make(map[string]*GroupSummary)
	for _, m := range records {
		key := folder.String(m.Name)
		g, ok := groups[key]
		if !ok {
			g = &GroupSummary{
				Name:    m.Name,
				MinCost: m.Cost,
				MaxCost: m.Cost,
			}
			groups[key] = g
			keys = append(keys, key)
		}
		g.Records++
		g.Quantity += m.Quantity
		if m.Cost < g.MinCost {
			g.MinCost = m.Cost
		}
		if m.Cost > g.MaxCost {
			g.MaxCost = m.Cost
		}
	}

	sort.Strings(keys)
	out := make([]GroupSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}

// Names returns the distinct medicine names, case-insensitively deduped
// (first-seen casing wins), sorted by folded name. This feeds the bulk
// reprice name picker.
func Names(records []record.Medicine) []string {
	folder := cases.Fold()

	seen := make(map[string]string)
	keys := make([]string, 0)
	for _, m := range records {
		key := folder.String(m.Name)
		if _, ok := seen[key]; !ok {
			seen[key] = m.Name
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, seen[key])
	}
	return out
}
