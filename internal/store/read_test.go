package store

import (
	"context"
	"testing"
)

func TestList_Empty(t *testing.T) {
	s, _ := openTestStore(t)

	records, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if records == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("List() returned %d records, want 0", len(records))
	}
}

func TestList_ReturnsAll(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	names := []string{"Paracetamol", "Aspirin", "Ibuprofen"}
	for _, name := range names {
		if _, err := s.Add(ctx, testMedicine(name, 2, 20)); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("List() returned %d records, want %d", len(records), len(names))
	}

	seen := make(map[string]bool)
	for _, m := range records {
		seen[m.Name] = true
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("record %q missing from List()", name)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	s, bus := openTestStore(t)

	var signals int
	bus.Subscribe(func() { signals++ })

	_, err := s.GetByID(context.Background(), 12345)
	if !IsNotFound(err) {
		t.Errorf("want not-found error, got %v", err)
	}

	// Reads never signal.
	if signals != 0 {
		t.Errorf("read emitted %d signals, want 0", signals)
	}
}

func TestList_DoesNotBroadcast(t *testing.T) {
	s, bus := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, testMedicine("Zinc", 1, 90)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	var signals int
	bus.Subscribe(func() { signals++ })

	if _, err := s.List(ctx); err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if signals != 0 {
		t.Errorf("List() emitted %d signals, want 0", signals)
	}
}
