package model

import "main/internal/bond"

// PriceUpdate is an internal mid price with its bid/offer spread for one
// product. Spread is non-negative by construction at the feed boundary.
type PriceUpdate struct {
	Product bond.Bond
	Mid     Price
	Spread  Price
}

func (p PriceUpdate) Fields() []string {
	return []string{p.Product.ID(), p.Mid.Fraction(), p.Spread.Fraction()}
}
