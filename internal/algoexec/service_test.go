package algoexec

import (
	"strconv"
	"testing"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

type captureOrders struct {
	fabric.BaseListener[model.ExecutionOrder]
	orders *[]model.ExecutionOrder
}

func (c *captureOrders) ProcessAdd(o model.ExecutionOrder) {
	*c.orders = append(*c.orders, o)
}

func tightBook(product bond.Bond) model.OrderBook {
	return model.OrderBook{
		Product: product,
		Bids:    []model.Order{{Price: 25600, Quantity: 10_000_000, Side: enum.SideBid}},
		Offers:  []model.Order{{Price: 25602, Quantity: 20_000_000, Side: enum.SideOffer}},
	}
}

func newTestService() *Service {
	svc := NewService(DefaultThreshold)
	seq := 0
	svc.newID = func() string {
		seq++
		return "ORD" + strconv.Itoa(seq)
	}
	return svc
}

func TestOnOrderBookAlternatesSidesStartingBid(t *testing.T) {
	svc := newTestService()
	var orders []model.ExecutionOrder
	svc.AddListener(&captureOrders{orders: &orders})

	product := bond.NewRegistry().All()[0]
	book := tightBook(product)
	for i := 0; i < 4; i++ {
		svc.OnOrderBook(book)
	}

	if len(orders) != 4 {
		t.Fatalf("orders: got %d want 4", len(orders))
	}
	wantSides := []enum.PricingSide{enum.SideBid, enum.SideOffer, enum.SideBid, enum.SideOffer}
	for i, o := range orders {
		if o.Side != wantSides[i] {
			t.Fatalf("order %d side: got %v want %v", i, o.Side, wantSides[i])
		}
	}
	if orders[0].Price != 25600 || orders[0].VisibleQuantity != 10_000_000 {
		t.Fatalf("bid-side order took wrong level: %+v", orders[0])
	}
	if orders[1].Price != 25602 || orders[1].VisibleQuantity != 20_000_000 {
		t.Fatalf("offer-side order took wrong level: %+v", orders[1])
	}
}

func TestOnOrderBookIgnoresWideSpread(t *testing.T) {
	svc := newTestService()
	var orders []model.ExecutionOrder
	svc.AddListener(&captureOrders{orders: &orders})

	product := bond.NewRegistry().All()[0]
	wide := model.OrderBook{
		Product: product,
		Bids:    []model.Order{{Price: 25600, Quantity: 10, Side: enum.SideBid}},
		Offers:  []model.Order{{Price: 25600 + model.Price(DefaultThreshold) + 1, Quantity: 10, Side: enum.SideOffer}},
	}
	svc.OnOrderBook(wide)

	if len(orders) != 0 {
		t.Fatalf("wide spread produced orders: %+v", orders)
	}
	if svc.Size() != 0 {
		t.Fatalf("wide spread stored orders: %d", svc.Size())
	}

	// A skipped book does not advance the side parity.
	svc.OnOrderBook(tightBook(product))
	if orders[0].Side != enum.SideBid {
		t.Fatalf("parity advanced on skipped book: %+v", orders[0])
	}
}

func TestOrdersAreTopLevelMarketOrders(t *testing.T) {
	svc := newTestService()
	var orders []model.ExecutionOrder
	svc.AddListener(&captureOrders{orders: &orders})

	svc.OnOrderBook(tightBook(bond.NewRegistry().All()[0]))

	o := orders[0]
	if o.Type != enum.OrderTypeMarket || o.HiddenQuantity != 0 || o.IsChild || o.ParentOrderID != "" {
		t.Fatalf("unexpected order shape: %+v", o)
	}
	if o.OrderID != "ORD1" {
		t.Fatalf("order id: got %q", o.OrderID)
	}
}
