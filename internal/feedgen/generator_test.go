package feedgen

import (
	"testing"

	"main/internal/bond"
	"main/internal/booking"
	"main/internal/model"
	"main/internal/model/enum"
)

func collect(g Generator, n int) [][]string {
	records := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.Next())
	}
	return records
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	reg := bond.NewRegistry()

	a := collect(NewPriceGenerator(reg), 50)
	b := collect(NewPriceGenerator(reg), 50)
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("price record %d diverged: %v vs %v", i, a[i], b[i])
			}
		}
	}
}

func TestPriceGeneratorEmitsValidTicks(t *testing.T) {
	reg := bond.NewRegistry()
	g := NewPriceGenerator(reg)

	for i := 0; i < 3*reg.Count(); i++ {
		record := g.Next()
		if len(record) != 3 {
			t.Fatalf("record %d: %v", i, record)
		}
		if reg.Get(record[0]).IsZero() {
			t.Fatalf("record %d references unknown product %q", i, record[0])
		}
		bid, err := model.ParsePrice(record[1])
		if err != nil {
			t.Fatalf("record %d bid: %v", i, err)
		}
		offer, err := model.ParsePrice(record[2])
		if err != nil {
			t.Fatalf("record %d offer: %v", i, err)
		}
		if offer <= bid {
			t.Fatalf("record %d inverted: bid %s offer %s", i, record[1], record[2])
		}
	}
}

func TestBookGeneratorEmitsFullBooks(t *testing.T) {
	reg := bond.NewRegistry()
	depth := 5
	g := NewBookGenerator(reg, depth)

	records := collect(g, 2*depth)
	for i, record := range records {
		if len(record) != 4 {
			t.Fatalf("record %d: %v", i, record)
		}
		if record[0] != records[0][0] {
			t.Fatalf("book split across products at %d", i)
		}
		wantSide := enum.SideBid.String()
		if i >= depth {
			wantSide = enum.SideOffer.String()
		}
		if record[3] != wantSide {
			t.Fatalf("record %d side: got %q want %q", i, record[3], wantSide)
		}
	}
}

func TestTradeGeneratorAlternatesSides(t *testing.T) {
	reg := bond.NewRegistry()
	g := NewTradeGenerator(reg, booking.DefaultBooks)

	records := collect(g, 6)
	for i, record := range records {
		if len(record) != 6 {
			t.Fatalf("record %d: %v", i, record)
		}
		want := enum.SideBuy.String()
		if i%2 == 1 {
			want = enum.SideSell.String()
		}
		if record[5] != want {
			t.Fatalf("record %d side: got %q want %q", i, record[5], want)
		}
	}
}

func TestInquiryGeneratorStartsReceived(t *testing.T) {
	reg := bond.NewRegistry()
	g := NewInquiryGenerator(reg)

	for i, record := range collect(g, 4) {
		if len(record) != 6 {
			t.Fatalf("record %d: %v", i, record)
		}
		if record[5] != enum.InquiryReceived.String() {
			t.Fatalf("record %d state: got %q", i, record[5])
		}
	}
}
