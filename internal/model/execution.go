package model

import (
	"main/internal/bond"
	"main/internal/model/enum"
)

// ExecutionOrder is an order placeable on an exchange. The spread-crossing
// engine only ever produces top-level market orders with no hidden size.
type ExecutionOrder struct {
	Product         bond.Bond
	Side            enum.PricingSide
	OrderID         string
	Type            enum.OrderType
	Price           Price
	VisibleQuantity Quantity
	HiddenQuantity  Quantity
	ParentOrderID   string
	IsChild         bool
}

func (o ExecutionOrder) Fields() []string {
	child := "NO"
	if o.IsChild {
		child = "YES"
	}
	return []string{
		o.Product.ID(),
		o.Side.String(),
		o.OrderID,
		o.Type.String(),
		o.Price.Fraction(),
		formatQuantity(o.VisibleQuantity),
		formatQuantity(o.HiddenQuantity),
		o.ParentOrderID,
		child,
	}
}
