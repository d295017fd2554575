package inventory

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// RecordUpdater is the slice of the store the repricer needs.
type RecordUpdater interface {
	List(ctx context.Context) ([]record.Medicine, error)
	Update(ctx context.Context, m record.Medicine) (record.Medicine, error)
}

// Repricer applies a new unit cost to every record whose name matches a
// target, each as an independent store update.
type Repricer struct {
	store RecordUpdater
	log   *logrus.Logger
}

// NewRepricer creates a repricer over the given store. A nil logger falls
// back to the logrus standard logger.
func NewRepricer(store RecordUpdater, log *logrus.Logger) *Repricer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Repricer{store: store, log: log}
}

// RepriceResult reports the outcome of one bulk reprice.
type RepriceResult struct {
	// Matched is how many records matched the target name.
	Matched int `json:"matched"`

	// Updated is how many of those were written successfully.
	Updated int `json:"updated"`

	// FailedIDs lists records whose update failed. Updates already
	// applied are NOT rolled back.
	FailedIDs []int64 `json:"failed_ids,omitempty"`
}

// ByName sets the cost of every record whose name equals the target,
// case-insensitively. Each matching record is updated by its own
// independent store call; there is no batch transaction, so a failure
// partway leaves earlier updates in place. Failed record IDs are logged
// and returned in the result.
//
// A target that matches nothing is not an error: the result simply reports
// zero matches.
func (r *Repricer) ByName(ctx context.Context, name string, cost float64) (RepriceResult, error) {
	if cost < 0 {
		return RepriceResult{}, fmt.Errorf("reprice %q: cost must not be negative", name)
	}

	records, err := r.store.List(ctx)
	if err != nil {
		return RepriceResult{}, fmt.Errorf("reprice %q: %w", name, err)
	}

	folder := cases.Fold()
	target := folder.String(name)

	var result RepriceResult
	for _, m := range records {
		if folder.String(m.Name) != target {
			continue
		}
		result.Matched++

		m.Cost = cost
		if _, err := r.store.Update(ctx, m); err != nil {
			result.FailedIDs = append(result.FailedIDs, m.ID)
			r.log.WithFields(logrus.Fields{
				"id":   m.ID,
				"name": m.Name,
				"cost": cost,
			}).WithError(err).Warn("reprice update failed")
			continue
		}
		result.Updated++
	}

	if len(result.FailedIDs) > 0 {
		return result, fmt.Errorf("reprice %q: %d of %d updates failed",
			name, len(result.FailedIDs), result.Matched)
	}
	return result, nil
}
