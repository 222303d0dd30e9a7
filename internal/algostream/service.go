package algostream

import (
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

const baseVisibleQuantity = 10_000_000

// Service turns internal prices into two-way streamed quotes, keyed by
// product id. Visible size alternates between 10mm and 20mm by call
// parity; hidden size is always twice the visible size.
type Service struct {
	*fabric.Store[model.PriceStream]
	count int64
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(s model.PriceStream) string { return s.Product.ID() }),
	}
}

// OnPrice quotes both sides of the spread around the mid and announces
// the stream.
func (s *Service) OnPrice(p model.PriceUpdate) {
	visible := (s.count%2 + 1) * baseVisibleQuantity
	hidden := visible * 2
	s.count++

	stream := model.PriceStream{
		Product: p.Product,
		Bid: model.PriceStreamOrder{
			Price:           p.Mid - p.Spread/2,
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            enum.SideBid,
		},
		Offer: model.PriceStreamOrder{
			Price:           p.Mid + p.Spread/2,
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            enum.SideOffer,
		},
	}
	s.Put(stream)
	s.NotifyAdd(stream)
}

// PriceListener feeds pricing updates into the quoting engine.
type PriceListener struct {
	fabric.BaseListener[model.PriceUpdate]
	svc *Service
}

func NewPriceListener(svc *Service) *PriceListener {
	return &PriceListener{svc: svc}
}

func (l *PriceListener) ProcessAdd(p model.PriceUpdate) {
	l.svc.OnPrice(p)
}
