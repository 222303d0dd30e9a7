package model

import (
	"main/internal/bond"
	"main/internal/model/enum"
)

// PriceStreamOrder is one leg of a two-way streamed quote.
type PriceStreamOrder struct {
	Price           Price
	VisibleQuantity Quantity
	HiddenQuantity  Quantity
	Side            enum.PricingSide
}

func (o PriceStreamOrder) Fields() []string {
	return []string{
		o.Price.Fraction(),
		formatQuantity(o.VisibleQuantity),
		formatQuantity(o.HiddenQuantity),
		o.Side.String(),
	}
}

// PriceStream is a two-way market for one product.
type PriceStream struct {
	Product bond.Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

func (s PriceStream) Fields() []string {
	fields := make([]string, 0, 9)
	fields = append(fields, s.Product.ID())
	fields = append(fields, s.Bid.Fields()...)
	fields = append(fields, s.Offer.Fields()...)
	return fields
}
