package marketdata

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

const DefaultBookDepth = 5

// Service distributes order book market data, keyed by product id.
type Service struct {
	*fabric.Store[model.OrderBook]
	depth int
}

func NewService(depth int) *Service {
	if depth <= 0 {
		depth = DefaultBookDepth
	}
	return &Service{
		Store: fabric.NewStore(func(b model.OrderBook) string { return b.Product.ID() }),
		depth: depth,
	}
}

// BookDepth returns the configured number of levels per side.
func (s *Service) BookDepth() int {
	return s.depth
}

// BidOffer returns the best bid and offer for a product, recomputed from
// the raw stacks on every call.
func (s *Service) BidOffer(productID string) model.BidOffer {
	return s.Get(productID).BestBidOffer()
}

// AggregateDepth returns the product's book with one entry per distinct
// price level on each side. The stored raw book is left untouched.
func (s *Service) AggregateDepth(productID string) model.OrderBook {
	return s.Get(productID).AggregateDepth()
}

// FeedConnector groups raw ticks into order books. Records are
// `productId,priceFraction,quantity,side`; every 2x depth records close
// one book and start a fresh pair of stacks.
type FeedConnector struct {
	svc *Service
	reg *bond.Registry
}

func NewFeedConnector(svc *Service, reg *bond.Registry) *FeedConnector {
	return &FeedConnector{svc: svc, reg: reg}
}

// Publish is a no-op; this connector is inbound only.
func (c *FeedConnector) Publish(model.OrderBook) {}

func (c *FeedConnector) Subscribe(r io.Reader) error {
	var (
		batch    = 2 * c.svc.BookDepth()
		count    = 0
		books    = 0
		bids     []model.Order
		offers   []model.Order
		lastProd string
	)

	err := feed.ForEachRecord(r, func(cells []string) error {
		if len(cells) != 4 {
			return errors.Wrap(feed.ErrBadRecord, "want 4 market data cells")
		}
		price, err := model.ParsePrice(cells[1])
		if err != nil {
			return err
		}
		quantity, err := feed.ParseQuantity(cells[2])
		if err != nil {
			return err
		}
		side, err := enum.ParsePricingSide(cells[3])
		if err != nil {
			return err
		}

		lastProd = cells[0]
		order := model.Order{Price: price, Quantity: quantity, Side: side}
		switch side {
		case enum.SideBid:
			bids = append(bids, order)
		case enum.SideOffer:
			offers = append(offers, order)
		}

		count++
		if count%batch == 0 {
			c.svc.OnMessage(model.OrderBook{
				Product: c.reg.Get(lastProd),
				Bids:    bids,
				Offers:  offers,
			})
			books++
			bids = nil
			offers = nil
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "market data feed")
	}
	logs.Infof("market data feed done, ticks: %d, books: %d", count, books)
	return nil
}
