package booking

import (
	"io"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/feed"
	"main/internal/model"
	"main/internal/model/enum"
)

// DefaultBooks are the desk's internal sub-ledgers for round-robin
// assignment of algo executions.
var DefaultBooks = []string{"TRSY1", "TRSY2", "TRSY3"}

// Service books trades against the desk's internal books, keyed by
// trade id.
type Service struct {
	*fabric.Store[model.Trade]
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(t model.Trade) string { return t.TradeID }),
	}
}

// BookTrade announces an already-recorded trade downstream.
func (s *Service) BookTrade(t model.Trade) {
	s.NotifyAdd(t)
}

// FeedConnector parses booked trade records,
// `productId,tradeId,priceFraction,book,quantity,side`.
type FeedConnector struct {
	svc *Service
	reg *bond.Registry
}

func NewFeedConnector(svc *Service, reg *bond.Registry) *FeedConnector {
	return &FeedConnector{svc: svc, reg: reg}
}

// Publish is a no-op; this connector is inbound only.
func (c *FeedConnector) Publish(model.Trade) {}

func (c *FeedConnector) Subscribe(r io.Reader) error {
	count := 0
	err := feed.ForEachRecord(r, func(cells []string) error {
		if len(cells) != 6 {
			return errors.Wrap(feed.ErrBadRecord, "want 6 trade cells")
		}
		price, err := model.ParsePrice(cells[2])
		if err != nil {
			return err
		}
		quantity, err := feed.ParseQuantity(cells[4])
		if err != nil {
			return err
		}
		side, err := enum.ParseTradeSide(cells[5])
		if err != nil {
			return err
		}
		c.svc.OnMessage(model.Trade{
			Product:  c.reg.Get(cells[0]),
			TradeID:  cells[1],
			Price:    price,
			Book:     cells[3],
			Quantity: quantity,
			Side:     side,
		})
		count++
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "trade feed")
	}
	logs.Infof("trade feed done, records: %d", count)
	return nil
}

// ExecutionListener converts execution orders into trades. The desk takes
// the opposite side of the order it hit: a bid-side execution books as a
// sell, an offer-side execution as a buy. Books rotate by call count.
type ExecutionListener struct {
	fabric.BaseListener[model.ExecutionOrder]
	svc   *Service
	books []string
	count int64
}

func NewExecutionListener(svc *Service, books []string) *ExecutionListener {
	if len(books) == 0 {
		books = DefaultBooks
	}
	return &ExecutionListener{svc: svc, books: books}
}

func (l *ExecutionListener) ProcessAdd(o model.ExecutionOrder) {
	l.count++

	side := enum.SideBuy
	if o.Side == enum.SideBid {
		side = enum.SideSell
	}

	trade := model.Trade{
		Product:  o.Product,
		TradeID:  o.OrderID,
		Price:    o.Price,
		Book:     l.books[l.count%int64(len(l.books))],
		Quantity: o.VisibleQuantity + o.HiddenQuantity,
		Side:     side,
	}
	l.svc.Put(trade)
	l.svc.BookTrade(trade)
}
