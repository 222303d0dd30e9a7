package streaming

import (
	"main/internal/fabric"
	"main/internal/model"
)

// Service vends streamed two-way quotes to historical consumers, keyed
// by product id.
type Service struct {
	*fabric.Store[model.PriceStream]
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(s model.PriceStream) string { return s.Product.ID() }),
	}
}

// OnMessage records an externally reported stream without announcing it.
func (s *Service) OnMessage(stream model.PriceStream) {
	s.Put(stream)
}

// PublishPrice announces an already-recorded stream downstream.
func (s *Service) PublishPrice(stream model.PriceStream) {
	s.NotifyAdd(stream)
}

// AlgoListener bridges the quoting engine into this service.
type AlgoListener struct {
	fabric.BaseListener[model.PriceStream]
	svc *Service
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc}
}

func (l *AlgoListener) ProcessAdd(stream model.PriceStream) {
	l.svc.Put(stream)
	l.svc.PublishPrice(stream)
}
