package model

import (
	"testing"

	"main/internal/model/enum"
)

func mustPrice(t *testing.T, s string) Price {
	t.Helper()
	p, err := ParsePrice(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return p
}

func TestBestBidOffer(t *testing.T) {
	book := OrderBook{
		Bids: []Order{
			{Price: mustPrice(t, "99-310"), Quantity: 10, Side: enum.SideBid},
			{Price: mustPrice(t, "99-31+"), Quantity: 20, Side: enum.SideBid},
			{Price: mustPrice(t, "99-300"), Quantity: 30, Side: enum.SideBid},
		},
		Offers: []Order{
			{Price: mustPrice(t, "100-010"), Quantity: 10, Side: enum.SideOffer},
			{Price: mustPrice(t, "100-00+"), Quantity: 20, Side: enum.SideOffer},
			{Price: mustPrice(t, "100-020"), Quantity: 30, Side: enum.SideOffer},
		},
	}

	bo := book.BestBidOffer()
	if bo.Bid.Price.Fraction() != "99-31+" || bo.Bid.Quantity != 20 {
		t.Fatalf("best bid: got %+v", bo.Bid)
	}
	if bo.Offer.Price.Fraction() != "100-00+" || bo.Offer.Quantity != 20 {
		t.Fatalf("best offer: got %+v", bo.Offer)
	}
	if bo.Spread() != TicksPer32nd {
		t.Fatalf("spread: got %d ticks want %d", bo.Spread(), TicksPer32nd)
	}
}

func TestBestBidOfferTiesGoToFirstOccurrence(t *testing.T) {
	book := OrderBook{
		Bids: []Order{
			{Price: 100, Quantity: 1, Side: enum.SideBid},
			{Price: 100, Quantity: 2, Side: enum.SideBid},
		},
		Offers: []Order{
			{Price: 200, Quantity: 3, Side: enum.SideOffer},
			{Price: 200, Quantity: 4, Side: enum.SideOffer},
		},
	}

	bo := book.BestBidOffer()
	if bo.Bid.Quantity != 1 || bo.Offer.Quantity != 3 {
		t.Fatalf("tie break: got bid %+v offer %+v", bo.Bid, bo.Offer)
	}
}

func TestBestBidOfferDominatedOrdersIrrelevant(t *testing.T) {
	base := OrderBook{
		Bids:   []Order{{Price: 100, Quantity: 1}},
		Offers: []Order{{Price: 104, Quantity: 1}},
	}
	padded := OrderBook{
		Bids:   append([]Order{{Price: 90, Quantity: 50}}, base.Bids...),
		Offers: append([]Order{{Price: 120, Quantity: 50}}, base.Offers...),
	}

	if base.BestBidOffer() != padded.BestBidOffer() {
		t.Fatalf("dominated orders changed the top of book")
	}
}

func TestAggregateDepth(t *testing.T) {
	book := OrderBook{
		Bids: []Order{
			{Price: 100, Quantity: 10, Side: enum.SideBid},
			{Price: 99, Quantity: 20, Side: enum.SideBid},
			{Price: 100, Quantity: 30, Side: enum.SideBid},
		},
		Offers: []Order{
			{Price: 101, Quantity: 5, Side: enum.SideOffer},
			{Price: 101, Quantity: 7, Side: enum.SideOffer},
		},
	}

	agg := book.AggregateDepth()
	if len(agg.Bids) != 2 || len(agg.Offers) != 1 {
		t.Fatalf("levels: got %d bids %d offers", len(agg.Bids), len(agg.Offers))
	}
	if agg.Bids[0].Price != 100 || agg.Bids[0].Quantity != 40 {
		t.Fatalf("bid level 0: got %+v", agg.Bids[0])
	}
	if agg.Bids[1].Price != 99 || agg.Bids[1].Quantity != 20 {
		t.Fatalf("bid level 1: got %+v", agg.Bids[1])
	}
	if agg.Offers[0].Quantity != 12 {
		t.Fatalf("offer level 0: got %+v", agg.Offers[0])
	}

	// Raw stacks are untouched.
	if book.Bids[0].Quantity != 10 || len(book.Bids) != 3 {
		t.Fatalf("raw book mutated: %+v", book.Bids)
	}
}

func TestAggregateDepthConservesQuantityPerSide(t *testing.T) {
	book := OrderBook{
		Bids: []Order{
			{Price: 100, Quantity: 1}, {Price: 100, Quantity: 2}, {Price: 98, Quantity: 4},
		},
		Offers: []Order{
			{Price: 100, Quantity: 8}, {Price: 103, Quantity: 16},
		},
	}

	sum := func(stack []Order) Quantity {
		var total Quantity
		for _, o := range stack {
			total += o.Quantity
		}
		return total
	}

	agg := book.AggregateDepth()
	if sum(agg.Bids) != sum(book.Bids) {
		t.Fatalf("bid quantity not conserved: got %d want %d", sum(agg.Bids), sum(book.Bids))
	}
	if sum(agg.Offers) != sum(book.Offers) {
		t.Fatalf("offer quantity not conserved: got %d want %d", sum(agg.Offers), sum(book.Offers))
	}
}
