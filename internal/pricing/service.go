package pricing

import (
	"io"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/feed"
	"main/internal/model"
)

// Service manages internal mid prices and bid/offer spreads, keyed by
// product id.
type Service struct {
	*fabric.Store[model.PriceUpdate]
}

func NewService() *Service {
	return &Service{
		Store: fabric.NewStore(func(p model.PriceUpdate) string { return p.Product.ID() }),
	}
}

// FeedConnector parses raw price ticks into PriceUpdate records.
// Records are `productId,bidFraction,offerFraction`.
type FeedConnector struct {
	svc *Service
	reg *bond.Registry
}

func NewFeedConnector(svc *Service, reg *bond.Registry) *FeedConnector {
	return &FeedConnector{svc: svc, reg: reg}
}

// Publish is a no-op; this connector is inbound only.
func (c *FeedConnector) Publish(model.PriceUpdate) {}

func (c *FeedConnector) Subscribe(r io.Reader) error {
	count := 0
	err := feed.ForEachRecord(r, func(cells []string) error {
		if len(cells) != 3 {
			return errors.Wrap(feed.ErrBadRecord, "want 3 price cells")
		}
		bid, err := model.ParsePrice(cells[1])
		if err != nil {
			return err
		}
		offer, err := model.ParsePrice(cells[2])
		if err != nil {
			return err
		}
		c.svc.OnMessage(model.PriceUpdate{
			Product: c.reg.Get(cells[0]),
			Mid:     model.Mid(bid, offer),
			Spread:  offer - bid,
		})
		count++
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "price feed")
	}
	logs.Infof("price feed done, records: %d", count)
	return nil
}
