package model

import (
	"main/internal/bond"
	"main/internal/model/enum"
)

// Order is one raw entry on a side of the book.
type Order struct {
	Price    Price
	Quantity Quantity
	Side     enum.PricingSide
}

func (o Order) Fields() []string {
	return []string{o.Price.Fraction(), formatQuantity(o.Quantity), o.Side.String()}
}

// BidOffer pairs the best bid and best offer of a book. It is derived
// on demand and never stored.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// Spread returns offer price minus bid price in ticks.
func (bo BidOffer) Spread() Price {
	return bo.Offer.Price - bo.Bid.Price
}

// OrderBook is the raw depth for one product: bid and offer stacks that
// may hold several entries at the same price until aggregated.
type OrderBook struct {
	Product bond.Bond
	Bids    []Order
	Offers  []Order
}

// BestBidOffer scans the raw stacks for the maximum-price bid and the
// minimum-price offer. Ties go to the first occurrence. Always recomputed
// from raw depth, never cached.
func (b OrderBook) BestBidOffer() BidOffer {
	var bo BidOffer
	for i, o := range b.Bids {
		if i == 0 || o.Price > bo.Bid.Price {
			bo.Bid = o
		}
	}
	for i, o := range b.Offers {
		if i == 0 || o.Price < bo.Offer.Price {
			bo.Offer = o
		}
	}
	return bo
}

// AggregateDepth sums quantities per distinct price level, each side into
// its own accumulator, preserving first-occurrence price order.
func (b OrderBook) AggregateDepth() OrderBook {
	return OrderBook{
		Product: b.Product,
		Bids:    aggregateSide(b.Bids),
		Offers:  aggregateSide(b.Offers),
	}
}

func aggregateSide(stack []Order) []Order {
	levels := make([]Order, 0, len(stack))
	index := make(map[Price]int, len(stack))
	for _, o := range stack {
		if i, ok := index[o.Price]; ok {
			levels[i].Quantity += o.Quantity
			continue
		}
		index[o.Price] = len(levels)
		levels = append(levels, o)
	}
	return levels
}
