package model

import (
	"testing"

	"main/internal/bond"
)

func TestPositionMergeDoesNotAlias(t *testing.T) {
	product := bond.NewRegistry().All()[0]

	a := NewPosition(product)
	a.Add("TRSY1", 1_000_000)
	a.Add("TRSY2", -500_000)

	b := NewPosition(product)
	b.Add("TRSY1", 2_000_000)
	b.Add("TRSY3", 750_000)

	merged := a.Merge(b)
	if merged.Quantity("TRSY1") != 3_000_000 {
		t.Fatalf("TRSY1: got %d want 3000000", merged.Quantity("TRSY1"))
	}
	if merged.Quantity("TRSY2") != -500_000 {
		t.Fatalf("TRSY2: got %d want -500000", merged.Quantity("TRSY2"))
	}
	if merged.Aggregate() != 3_250_000 {
		t.Fatalf("aggregate: got %d want 3250000", merged.Aggregate())
	}

	merged.Add("TRSY1", 99)
	if a.Quantity("TRSY1") != 1_000_000 || b.Quantity("TRSY1") != 2_000_000 {
		t.Fatalf("merge aliased an input map")
	}
}

func TestPositionFieldsSortedByBook(t *testing.T) {
	product := bond.NewRegistry().All()[0]
	p := NewPosition(product)
	p.Add("TRSY3", 3)
	p.Add("TRSY1", 1)
	p.Add("TRSY2", 2)

	fields := p.Fields()
	want := []string{product.ID(), "TRSY1", "1", "TRSY2", "2", "TRSY3", "3"}
	if len(fields) != len(want) {
		t.Fatalf("fields: got %v", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("fields[%d]: got %q want %q", i, fields[i], want[i])
		}
	}
}
