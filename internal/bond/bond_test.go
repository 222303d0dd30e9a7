package bond

import (
	"testing"
)

func TestRegistryHoldsTheCurve(t *testing.T) {
	reg := NewRegistry()
	if reg.Count() != 6 {
		t.Fatalf("count: got %d want 6", reg.Count())
	}

	cases := []struct {
		cusip  string
		ticker string
		pv01   string
	}{
		{"9128283H1", "US2Y", "0.01948992"},
		{"9128283L2", "US3Y", "0.02865304"},
		{"912828M80", "US5Y", "0.04581119"},
		{"9128283J7", "US7Y", "0.06127718"},
		{"9128283F5", "US10Y", "0.08161449"},
		{"912810RZ3", "US30Y", "0.15013155"},
	}
	for _, c := range cases {
		b := reg.Get(c.cusip)
		if b.Ticker != c.ticker {
			t.Fatalf("%s ticker: got %q want %q", c.cusip, b.Ticker, c.ticker)
		}
		if b.ID() != c.cusip {
			t.Fatalf("%s id: got %q", c.cusip, b.ID())
		}
		if got := reg.PV01(c.cusip).String(); got != c.pv01 {
			t.Fatalf("%s pv01: got %s want %s", c.cusip, got, c.pv01)
		}
	}
}

func TestUnknownCUSIPYieldsZeroValues(t *testing.T) {
	reg := NewRegistry()
	if b := reg.Get("nope"); b != (Bond{}) {
		t.Fatalf("unknown bond: got %+v", b)
	}
	if !reg.PV01("nope").IsZero() {
		t.Fatalf("unknown pv01: got %s", reg.PV01("nope"))
	}
}

func TestAllReturnsStableOrder(t *testing.T) {
	reg := NewRegistry()
	first := reg.All()
	second := reg.All()
	if len(first) != len(second) {
		t.Fatalf("lengths differ")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
