package enum

import "github.com/yanun0323/errors"

var ErrUnknownEnum = errors.New("unknown enumerator")

// PricingSide is the side of a quoted or resting order.
type PricingSide uint8

const (
	_pricingSide_beg PricingSide = iota
	SideBid
	SideOffer
	_pricingSide_end
)

func (s PricingSide) IsAvailable() bool {
	return s > _pricingSide_beg && s < _pricingSide_end
}

func (s PricingSide) String() string {
	switch s {
	case SideBid:
		return "BID"
	case SideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// ParsePricingSide maps the feed spelling to a PricingSide.
func ParsePricingSide(s string) (PricingSide, error) {
	switch s {
	case "BID":
		return SideBid, nil
	case "OFFER":
		return SideOffer, nil
	default:
		return 0, errors.Wrap(ErrUnknownEnum, "pricing side "+s)
	}
}

// TradeSide is the direction of a booked trade.
type TradeSide uint8

const (
	_tradeSide_beg TradeSide = iota
	SideBuy
	SideSell
	_tradeSide_end
)

func (s TradeSide) IsAvailable() bool {
	return s > _tradeSide_beg && s < _tradeSide_end
}

func (s TradeSide) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseTradeSide maps the feed spelling to a TradeSide.
func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	default:
		return 0, errors.Wrap(ErrUnknownEnum, "trade side "+s)
	}
}
