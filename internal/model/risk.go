package model

import (
	"github.com/shopspring/decimal"

	"main/internal/bond"
)

// PV01 is the dollar value of a one-basis-point yield move for the
// position size it was computed against.
type PV01 struct {
	Product  bond.Bond
	Value    decimal.Decimal
	Quantity Quantity
}

func (p PV01) Fields() []string {
	return []string{p.Product.ID(), p.Value.String(), formatQuantity(p.Quantity)}
}

// BucketedSector is a named, fixed set of products used only as a risk
// aggregation key.
type BucketedSector struct {
	Name     string
	Products []bond.Bond
}

// SectorRisk is the aggregate PV01 over a sector's constituents.
type SectorRisk struct {
	Sector   BucketedSector
	Value    decimal.Decimal
	Quantity Quantity
}

func (r SectorRisk) Fields() []string {
	return []string{r.Sector.Name, r.Value.String(), formatQuantity(r.Quantity)}
}
