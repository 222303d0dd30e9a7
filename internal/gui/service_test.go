package gui

import (
	"testing"
	"time"

	"main/internal/bond"
	"main/internal/model"
)

type captureSink struct {
	updates []model.PriceUpdate
}

func (c *captureSink) Publish(p model.PriceUpdate) {
	c.updates = append(c.updates, p)
}

func serviceWithClock(t *testing.T, millis []int64, sink *captureSink) *Service {
	t.Helper()
	svc := NewService(DefaultThrottle, sink)
	index := 0
	svc.now = func() time.Time {
		m := millis[index]
		index++
		return time.UnixMilli(m)
	}
	return svc
}

func TestThrottleDropsInsideWindow(t *testing.T) {
	sink := &captureSink{}
	svc := serviceWithClock(t, []int64{1000, 1100, 1400}, sink)

	update := model.PriceUpdate{Product: bond.NewRegistry().All()[0], Mid: 25600, Spread: 2}
	svc.OnPrice(update)
	svc.OnPrice(update)
	svc.OnPrice(update)

	if len(sink.updates) != 2 {
		t.Fatalf("forwarded: got %d want 2", len(sink.updates))
	}
	// Every update still lands in the store.
	if svc.Size() != 1 {
		t.Fatalf("store size: got %d want 1", svc.Size())
	}
}

func TestThrottleWalksBackwardClockForward(t *testing.T) {
	sink := &captureSink{}
	// The third reading jumps behind the second; it is walked forward in
	// whole seconds to 1500, still inside the window.
	svc := serviceWithClock(t, []int64{1000, 1400, 500, 900}, sink)

	update := model.PriceUpdate{Product: bond.NewRegistry().All()[0], Mid: 25600, Spread: 2}
	svc.OnPrice(update) // 1000: forwarded
	svc.OnPrice(update) // 1400: forwarded
	svc.OnPrice(update) // 500 -> 1500: dropped
	svc.OnPrice(update) // 900 -> 1900: forwarded

	if len(sink.updates) != 3 {
		t.Fatalf("forwarded: got %d want 3", len(sink.updates))
	}
}

func TestFirstUpdateAlwaysForwarded(t *testing.T) {
	sink := &captureSink{}
	svc := serviceWithClock(t, []int64{7}, sink)

	svc.OnPrice(model.PriceUpdate{Product: bond.NewRegistry().All()[0]})
	if len(sink.updates) != 1 {
		t.Fatalf("first update dropped")
	}
}
