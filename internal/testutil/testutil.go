// Package testutil provides shared helpers for tests: quiet loggers,
// deterministic record IDs and record builders.
package testutil

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// QuietLogger returns a logrus logger that discards everything. Tests use
// it to keep store and repricer chatter out of test output.
func QuietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// FrozenIDs returns an ID generator pinned to a fixed instant, so tests
// get the deterministic sequence base, base+1, base+2, ...
func FrozenIDs(base int64) *record.IDGenerator {
	fixed := time.UnixMilli(base)
	return record.NewIDGeneratorWithNow(func() time.Time { return fixed })
}

// Medicine builds a record with the fields tests care about and sensible
// dates.
func Medicine(name string, cost float64, quantity int64) record.Medicine {
	return record.Medicine{
		Name:         name,
		Cost:         cost,
		Quantity:     quantity,
		PurchaseDate: "2026-01-10",
		ExpiryDate:   "2027-01-10",
	}
}
