package enum

// OrderType is the execution style of an order sent to a venue.
type OrderType uint8

const (
	OrderTypeUnknown OrderType = iota
	OrderTypeFOK
	OrderTypeIOC
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeFOK:
		return "FOK"
	case OrderTypeIOC:
		return "IOC"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}
