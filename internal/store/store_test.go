package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shahrukh04/medicine-management-app/internal/notify"
	"github.com/shahrukh04/medicine-management-app/internal/record"
)

// openTestStore opens a store on a temp path with a fresh broadcaster and
// a quiet logger.
func openTestStore(t *testing.T) (*Store, *notify.Broadcaster) {
	t.Helper()

	bus := notify.NewBroadcaster()
	s, err := Open(filepath.Join(t.TempDir(), "medicines.db"), bus)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s.SetLogger(quiet)

	return s, bus
}

func testMedicine(name string, cost float64, quantity int64) record.Medicine {
	return record.Medicine{
		Name:         name,
		Cost:         cost,
		Quantity:     quantity,
		PurchaseDate: "2026-01-10",
		ExpiryDate:   "2027-01-10",
	}
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.db")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.db")

	// Open multiple times
	for i := 0; i < 3; i++ {
		s, err := Open(path, nil)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	// Final open should work and the table should be intact
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	var name string
	err = s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='medicines'",
	).Scan(&name)
	if err != nil {
		t.Errorf("medicines table not found after idempotent opens: %v", err)
	}
}

func TestOpen_TwoHandlesSamePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.db")

	s1, err := Open(path, nil)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	defer s1.Close()

	s2, err := Open(path, nil)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	// A write through one handle is visible through the other.
	ctx := context.Background()
	added, err := s1.Add(ctx, testMedicine("Aspirin", 4.5, 12))
	if err != nil {
		t.Fatalf("Add() via first handle failed: %v", err)
	}
	got, err := s2.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID() via second handle failed: %v", err)
	}
	if got.Name != "Aspirin" {
		t.Errorf("got name %q, want %q", got.Name, "Aspirin")
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/medicines.db", nil)
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestOpen_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.db")
	ctx := context.Background()

	s1, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	added, err := s1.Add(ctx, testMedicine("Ibuprofen", 6, 30))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID() after reopen failed: %v", err)
	}
	if got.Cost != 6 || got.Quantity != 30 {
		t.Errorf("record did not survive reopen: %+v", got)
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestSetIDGenerator(t *testing.T) {
	s, _ := openTestStore(t)

	fixed := time.UnixMilli(1700000000000)
	s.SetIDGenerator(record.NewIDGeneratorWithNow(func() time.Time { return fixed }))

	added, err := s.Add(context.Background(), testMedicine("Cetirizine", 2, 20))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if added.ID != 1700000000000 {
		t.Errorf("got id %d, want deterministic 1700000000000", added.ID)
	}
}
