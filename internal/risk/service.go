package risk

import (
	"github.com/shopspring/decimal"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/model"
)

// Service vends PV01 risk per product and aggregated over bucketed
// sectors, keyed by product id.
type Service struct {
	*fabric.Store[model.PV01]
	reg *bond.Registry
}

func NewService(reg *bond.Registry) *Service {
	return &Service{
		Store: fabric.NewStore(func(p model.PV01) string { return p.Product.ID() }),
		reg:   reg,
	}
}

// AddPosition recomputes the product's PV01 against its aggregate
// position and announces the result.
func (s *Service) AddPosition(p model.Position) {
	pv01 := model.PV01{
		Product:  p.Product,
		Value:    s.reg.PV01(p.Product.ID()),
		Quantity: p.Aggregate(),
	}
	s.Put(pv01)
	s.NotifyAdd(pv01)
}

// BucketedRisk sums pv01 x quantity over the sector's constituents using
// whatever PV01 is currently stored. Constituents without a stored PV01
// contribute zero.
func (s *Service) BucketedRisk(sector model.BucketedSector) model.SectorRisk {
	total := decimal.Zero
	for _, b := range sector.Products {
		pv := s.Get(b.ID())
		total = total.Add(pv.Value.Mul(decimal.NewFromInt(pv.Quantity)))
	}
	return model.SectorRisk{Sector: sector, Value: total, Quantity: 1}
}

// PositionListener feeds netted positions into risk.
type PositionListener struct {
	fabric.BaseListener[model.Position]
	svc *Service
}

func NewPositionListener(svc *Service) *PositionListener {
	return &PositionListener{svc: svc}
}

func (l *PositionListener) ProcessAdd(p model.Position) {
	l.svc.AddPosition(p)
}

// CurveSectors buckets the treasury curve into the desk's standard
// reporting sectors.
func CurveSectors(reg *bond.Registry) []model.BucketedSector {
	return []model.BucketedSector{
		{Name: "FrontEnd", Products: []bond.Bond{reg.Get("9128283H1"), reg.Get("9128283L2")}},
		{Name: "Belly", Products: []bond.Bond{reg.Get("912828M80"), reg.Get("9128283J7"), reg.Get("9128283F5")}},
		{Name: "LongEnd", Products: []bond.Bond{reg.Get("912810RZ3")}},
	}
}
