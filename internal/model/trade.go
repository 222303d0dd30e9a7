package model

import (
	"main/internal/bond"
	"main/internal/model/enum"
)

// Trade is a fill booked against one of the desk's internal books.
type Trade struct {
	Product  bond.Bond
	TradeID  string
	Price    Price
	Book     string
	Quantity Quantity
	Side     enum.TradeSide
}

func (t Trade) Fields() []string {
	return []string{
		t.Product.ID(),
		t.TradeID,
		t.Price.Fraction(),
		t.Book,
		formatQuantity(t.Quantity),
		t.Side.String(),
	}
}
