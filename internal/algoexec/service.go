package algoexec

import (
	"github.com/google/uuid"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

// DefaultThreshold is the widest spread the engine will cross, 1/128.
const DefaultThreshold = 2 * model.TicksPerEighth

// Service crosses the spread when a book tightens to the threshold,
// alternating the side it takes by call parity. Keyed by order id.
type Service struct {
	*fabric.Store[model.ExecutionOrder]
	threshold model.Price
	count     int64
	newID     func() string
}

func NewService(threshold model.Price) *Service {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Service{
		Store:     fabric.NewStore(func(o model.ExecutionOrder) string { return o.OrderID }),
		threshold: threshold,
		newID:     uuid.NewString,
	}
}

// OnOrderBook evaluates one book update. Within threshold it emits a
// top-level market order taking the bid on even calls and the offer on
// odd calls; outside threshold nothing is produced.
func (s *Service) OnOrderBook(book model.OrderBook) {
	bo := book.BestBidOffer()
	if bo.Spread() > s.threshold {
		return
	}

	var (
		side     enum.PricingSide
		price    model.Price
		quantity model.Quantity
	)
	if s.count%2 == 0 {
		side, price, quantity = enum.SideBid, bo.Bid.Price, bo.Bid.Quantity
	} else {
		side, price, quantity = enum.SideOffer, bo.Offer.Price, bo.Offer.Quantity
	}
	s.count++

	order := model.ExecutionOrder{
		Product:         book.Product,
		Side:            side,
		OrderID:         s.newID(),
		Type:            enum.OrderTypeMarket,
		Price:           price,
		VisibleQuantity: quantity,
		HiddenQuantity:  0,
		ParentOrderID:   "",
		IsChild:         false,
	}
	s.Put(order)
	s.NotifyAdd(order)
}

// BookListener feeds market data book updates into the engine.
type BookListener struct {
	fabric.BaseListener[model.OrderBook]
	svc *Service
}

func NewBookListener(svc *Service) *BookListener {
	return &BookListener{svc: svc}
}

func (l *BookListener) ProcessAdd(book model.OrderBook) {
	l.svc.OnOrderBook(book)
}
