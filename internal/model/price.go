package model

import (
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
)

var ErrBadFraction = errors.New("malformed fractional price")

// Price is a scaled integer count of 1/256ths of a point, the finest
// quotable increment for treasuries. All book and quote arithmetic is
// exact in this scale.
type Price int64

// Ticks per unit of treasury fraction notation.
const (
	TicksPerPoint  Price = 256
	TicksPer32nd   Price = 8
	TicksPerEighth Price = 1
)

// ParsePrice converts fraction notation "<whole>-<32nds><8ths>" to ticks.
// The 8ths position uses '+' for the conventional half-32nd.
func ParsePrice(s string) (Price, error) {
	dash := strings.IndexByte(s, '-')
	if dash <= 0 || len(s)-dash != 4 {
		return 0, errors.Wrap(ErrBadFraction, s)
	}

	whole, err := strconv.ParseInt(s[:dash], 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrBadFraction, s)
	}

	frac := s[dash+1:]
	n32, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil || n32 > 31 {
		return 0, errors.Wrap(ErrBadFraction, s)
	}

	var n8 int64
	switch {
	case frac[2] == '+':
		n8 = 4
	case frac[2] >= '0' && frac[2] <= '7':
		n8 = int64(frac[2] - '0')
	default:
		return 0, errors.Wrap(ErrBadFraction, s)
	}

	return Price(whole)*TicksPerPoint + Price(n32)*TicksPer32nd + Price(n8), nil
}

// Fraction renders the price in fraction notation. A half-32nd renders
// as '+' in the 8ths position.
func (p Price) Fraction() string {
	whole := p / TicksPerPoint
	rem := p % TicksPerPoint
	n32 := rem / TicksPer32nd
	n8 := rem % TicksPer32nd

	var b strings.Builder
	b.Grow(8)
	b.WriteString(strconv.FormatInt(int64(whole), 10))
	b.WriteByte('-')
	if n32 < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(int64(n32), 10))
	if n8 == 4 {
		b.WriteByte('+')
	} else {
		b.WriteString(strconv.FormatInt(int64(n8), 10))
	}
	return b.String()
}

// Float64 returns the price in points for display feeds.
func (p Price) Float64() float64 {
	return float64(p) / float64(TicksPerPoint)
}

// Mid returns the midpoint of two prices, rounded down to the tick.
func Mid(bid, offer Price) Price {
	return (bid + offer) / 2
}

// Quantity is an order or trade size in face-value units.
type Quantity = int64

func formatQuantity(q Quantity) string {
	return strconv.FormatInt(q, 10)
}
