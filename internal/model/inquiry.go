package model

import (
	"main/internal/bond"
	"main/internal/model/enum"
)

// Inquiry is a customer request for a quote on a product.
type Inquiry struct {
	InquiryID string
	Product   bond.Bond
	Side      enum.TradeSide
	Quantity  Quantity
	Price     Price
	State     enum.InquiryState
}

// WithState returns a copy in the given state.
func (i Inquiry) WithState(state enum.InquiryState) Inquiry {
	i.State = state
	return i
}

// WithPrice returns a copy quoted at the given price.
func (i Inquiry) WithPrice(price Price) Inquiry {
	i.Price = price
	return i
}

func (i Inquiry) Fields() []string {
	return []string{
		i.InquiryID,
		i.Product.ID(),
		i.Side.String(),
		formatQuantity(i.Quantity),
		i.Price.Fraction(),
		i.State.String(),
	}
}
