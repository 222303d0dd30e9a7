package execution

import (
	"main/internal/fabric"
	"main/internal/model"
)

// Service vends execution orders to booking and historical consumers,
// keyed by order id.
type Service struct {
	*fabric.Store[model.ExecutionOrder]
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(o model.ExecutionOrder) string { return o.OrderID }),
	}
}

// OnMessage records an externally reported order without announcing it.
func (s *Service) OnMessage(o model.ExecutionOrder) {
	s.Put(o)
}

// ExecuteOrder records the order and announces it downstream. This is
// the sole channel by which booking learns of new orders.
func (s *Service) ExecuteOrder(o model.ExecutionOrder) {
	s.Put(o)
	s.NotifyAdd(o)
}

// AlgoListener bridges the spread-crossing engine into this service.
type AlgoListener struct {
	fabric.BaseListener[model.ExecutionOrder]
	svc *Service
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc}
}

func (l *AlgoListener) ProcessAdd(o model.ExecutionOrder) {
	l.svc.ExecuteOrder(o)
}
