package position

import (
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

// Service nets trades into per-book positions, keyed by product id.
// Trades are not deduplicated by id; replaying a trade doubles its
// contribution by design.
type Service struct {
	*fabric.Store[model.Position]
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(p model.Position) string { return p.Product.ID() }),
	}
}

// AddTrade credits the trade's signed quantity to its book, merges the
// delta with the product's existing position, and announces the result.
func (s *Service) AddTrade(t model.Trade) {
	signed := t.Quantity
	if t.Side == enum.SideSell {
		signed = -signed
	}

	delta := model.NewPosition(t.Product)
	delta.Add(t.Book, signed)

	next := delta.Merge(s.Get(t.Product.ID()))
	s.Put(next)
	s.NotifyAdd(next)
}

// TradeListener feeds booked trades into position netting.
type TradeListener struct {
	fabric.BaseListener[model.Trade]
	svc *Service
}

func NewTradeListener(svc *Service) *TradeListener {
	return &TradeListener{svc: svc}
}

func (l *TradeListener) ProcessAdd(t model.Trade) {
	l.svc.AddTrade(t)
}
