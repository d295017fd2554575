package store

import (
	"context"
	"testing"
	"time"
)

func TestAdd_AssignsIDAndCreatedAt(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	before := time.Now()
	added, err := s.Add(ctx, testMedicine("Paracetamol", 2.5, 100))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if added.ID == 0 {
		t.Error("Add() did not assign an id")
	}
	if added.CreatedAt.Before(before.Add(-time.Second)) {
		t.Errorf("CreatedAt not set: %v", added.CreatedAt)
	}
	if !added.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt should be zero until first update, got %v", added.UpdatedAt)
	}
	if added.TotalPayment != 250 {
		t.Errorf("TotalPayment = %v, want 250", added.TotalPayment)
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	in := testMedicine("Amoxicillin", 8.75, 40)
	added, err := s.Add(ctx, in)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got, err := s.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	// Equal to the input except for the fields the store assigns.
	if got.Name != in.Name || got.Cost != in.Cost || got.Quantity != in.Quantity {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.PurchaseDate != in.PurchaseDate || got.ExpiryDate != in.ExpiryDate {
		t.Errorf("dates did not round trip: got %+v", got)
	}
	if got.ID != added.ID {
		t.Errorf("id mismatch: %d vs %d", got.ID, added.ID)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("CreatedAt mismatch: %v vs %v", got.CreatedAt, added.CreatedAt)
	}
}

func TestAdd_DuplicateIDConflicts(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, testMedicine("Loratadine", 3, 15))
	if err != nil {
		t.Fatalf("first Add() failed: %v", err)
	}

	dup := testMedicine("Loratadine", 3, 15)
	dup.ID = added.ID
	_, err = s.Add(ctx, dup)
	if err == nil {
		t.Fatal("duplicate Add() should fail")
	}
	if !IsConflict(err) {
		t.Errorf("want conflict error, got %v", err)
	}
}

func TestAdd_IgnoresCallerTotalPayment(t *testing.T) {
	s, _ := openTestStore(t)

	in := testMedicine("Omeprazole", 10, 3)
	in.TotalPayment = 9999 // stale caller value must not be trusted
	added, err := s.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if added.TotalPayment != 30 {
		t.Errorf("TotalPayment = %v, want recomputed 30", added.TotalPayment)
	}
}

func TestAdd_Broadcasts(t *testing.T) {
	s, bus := openTestStore(t)

	// Two independent subscribers registered before the mutation must
	// each receive exactly one signal.
	var first, second int
	bus.Subscribe(func() { first++ })
	bus.Subscribe(func() { second++ })

	if _, err := s.Add(context.Background(), testMedicine("Insulin", 25, 8)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if first != 1 || second != 1 {
		t.Errorf("broadcast fan-out: first=%d second=%d, want 1 and 1", first, second)
	}
}

func TestAdd_BroadcastFollowsCommit(t *testing.T) {
	s, bus := openTestStore(t)
	ctx := context.Background()

	// By the time the signal arrives, the committed row must be visible
	// to a re-fetch.
	var seen int
	bus.Subscribe(func() {
		records, err := s.List(ctx)
		if err != nil {
			t.Errorf("List() inside handler failed: %v", err)
			return
		}
		seen = len(records)
	})

	if _, err := s.Add(ctx, testMedicine("Metformin", 5, 60)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if seen != 1 {
		t.Errorf("subscriber saw %d records, want 1", seen)
	}
}

func TestUpdate_Upsert(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, testMedicine("Aspirin", 4, 50))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	// Caller merges fields, store replaces the whole row.
	merged := added
	merged.Cost = 4.5
	merged.Quantity = 45

	updated, err := s.Update(ctx, merged)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("Update() did not set UpdatedAt")
	}
	if updated.TotalPayment != 4.5*45 {
		t.Errorf("TotalPayment = %v, want %v", updated.TotalPayment, 4.5*45)
	}

	got, err := s.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Cost != 4.5 || got.Quantity != 45 {
		t.Errorf("stored record not replaced: %+v", got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v vs %v", got.CreatedAt, added.CreatedAt)
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, testMedicine("Diazepam", 7, 20))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	first, err := s.Update(ctx, added)
	if err != nil {
		t.Fatalf("first Update() failed: %v", err)
	}
	second, err := s.Update(ctx, added)
	if err != nil {
		t.Fatalf("second Update() failed: %v", err)
	}

	// Same payload twice yields the same stored state; only UpdatedAt
	// moves.
	first.UpdatedAt, second.UpdatedAt = time.Time{}, time.Time{}
	if first != second {
		t.Errorf("repeated update changed state:\n  first:  %+v\n  second: %+v", first, second)
	}
}

func TestUpdate_UnknownIDInserts(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	m := testMedicine("Warfarin", 12, 10)
	m.ID = 424242

	if _, err := s.Update(ctx, m); err != nil {
		t.Fatalf("Update() of unseen id failed: %v", err)
	}

	got, err := s.GetByID(ctx, 424242)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Name != "Warfarin" {
		t.Errorf("upsert did not insert: %+v", got)
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Update(context.Background(), testMedicine("NoID", 1, 1))
	if err == nil {
		t.Error("Update() without id should fail")
	}
}

func TestUpdate_Broadcasts(t *testing.T) {
	s, bus := openTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, testMedicine("Codeine", 9, 25))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	var signals int
	bus.Subscribe(func() { signals++ })

	if _, err := s.Update(ctx, added); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if signals != 1 {
		t.Errorf("got %d signals, want 1", signals)
	}
}

func TestRemove(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, testMedicine("Naproxen", 6, 30))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if err := s.Remove(ctx, added.ID); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	_, err = s.GetByID(ctx, added.ID)
	if !IsNotFound(err) {
		t.Errorf("record still present after Remove(): %v", err)
	}
}

func TestRemove_MissingIDIsNotError(t *testing.T) {
	s, bus := openTestStore(t)

	var signals int
	bus.Subscribe(func() { signals++ })

	// Idempotent delete: no error, and the committed (empty) transaction
	// still signals.
	if err := s.Remove(context.Background(), 987654321); err != nil {
		t.Errorf("Remove() of missing id should succeed, got %v", err)
	}
	if signals != 1 {
		t.Errorf("got %d signals, want 1", signals)
	}
}

func TestClear(t *testing.T) {
	s, bus := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		if _, err := s.Add(ctx, testMedicine(name, 1, 10)); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	var signals int
	bus.Subscribe(func() { signals++ })

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if signals != 1 {
		t.Errorf("Clear() emitted %d signals, want 1", signals)
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("collection not empty after Clear(): %d records", len(records))
	}
}
