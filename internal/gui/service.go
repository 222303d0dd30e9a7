package gui

import (
	"time"

	"main/internal/fabric"
	"main/internal/model"
)

// DefaultThrottle is the minimum spacing between forwarded updates.
const DefaultThrottle = 300 * time.Millisecond

// Service rate-limits the live price display. Updates arriving inside
// the throttle window are dropped, never queued or replayed.
type Service struct {
	*fabric.Store[model.PriceUpdate]
	throttle   time.Duration
	lastMillis int64
	sinks      []fabric.Publisher[model.PriceUpdate]
	now        func() time.Time
}

func NewService(throttle time.Duration, sinks ...fabric.Publisher[model.PriceUpdate]) *Service {
	if throttle <= 0 {
		throttle = DefaultThrottle
	}
	return &Service{
		Store:    fabric.NewStore(func(p model.PriceUpdate) string { return p.Product.ID() }),
		throttle: throttle,
		sinks:    sinks,
		now:      time.Now,
	}
}

// OnPrice records the update and forwards it if the throttle window has
// elapsed since the last forward.
func (s *Service) OnPrice(p model.PriceUpdate) {
	s.Put(p)

	nowMillis := s.now().UnixMilli()
	// A clock that appears to have gone backward is walked forward in
	// whole-second steps until the elapsed time is non-negative.
	for nowMillis < s.lastMillis {
		nowMillis += 1000
	}
	if nowMillis-s.lastMillis < s.throttle.Milliseconds() {
		return
	}
	s.lastMillis = nowMillis

	for _, sink := range s.sinks {
		sink.Publish(p)
	}
}

// PriceListener feeds pricing updates into the throttled display.
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
