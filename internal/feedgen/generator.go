/*
Feedgen creates deterministic synthetic feed files for the desk.

Every generator walks the product registry round-robin and emits one
comma-separated record per call, so a given record count always produces
the same file. Prices oscillate inside the 99 to 101 band in minimum
ticks, with the top-of-book spread alternating between 1/128 and 1/64.
*/
package feedgen

import (
	"strconv"

	"main/internal/bond"
	"main/internal/model"
	"main/internal/model/enum"
)

const (
	lowPrice  = model.Price(99 * model.TicksPerPoint)
	highPrice = model.Price(101 * model.TicksPerPoint)

	narrowSpread = model.Price(2 * model.TicksPerEighth)
	wideSpread   = model.Price(4 * model.TicksPerEighth)
)

type productWalk struct {
	products []bond.Bond
	index    int
}

func newProductWalk(reg *bond.Registry) productWalk {
	return productWalk{products: reg.All()}
}

func (w *productWalk) next() bond.Bond {
	p := w.products[w.index]
	w.index = (w.index + 1) % len(w.products)
	return p
}

// PriceGenerator emits raw price ticks, `productId,bid,offer`. Each
// product's mid sweeps up the band one tick at a time, then back down;
// the spread alternates narrow and wide per tick.
type PriceGenerator struct {
	walk  productWalk
	mids  map[string]model.Price
	up    map[string]bool
	count int
}

func NewPriceGenerator(reg *bond.Registry) *PriceGenerator {
	return &PriceGenerator{
		walk: newProductWalk(reg),
		mids: make(map[string]model.Price),
		up:   make(map[string]bool),
	}
}

func (g *PriceGenerator) Next() []string {
	product := g.walk.next()
	id := product.ID()

	mid, ok := g.mids[id]
	if !ok {
		mid = lowPrice
		g.up[id] = true
	}

	spread := narrowSpread
	if g.count%2 == 1 {
		spread = wideSpread
	}
	g.count++

	record := []string{
		id,
		(mid - spread/2).Fraction(),
		(mid + spread/2).Fraction(),
	}

	if g.up[id] {
		mid++
		if mid >= highPrice {
			g.up[id] = false
		}
	} else {
		mid--
		if mid <= lowPrice {
			g.up[id] = true
		}
	}
	g.mids[id] = mid
	return record
}

// BookGenerator emits raw order ticks, `productId,price,quantity,side`.
// Each book is depth bid levels then depth offer levels around the
// product's sweeping mid; level quantities climb 10M per level.
type BookGenerator struct {
	prices *PriceGenerator
	depth  int

	pending [][]string
}

func NewBookGenerator(reg *bond.Registry, depth int) *BookGenerator {
	return &BookGenerator{prices: NewPriceGenerator(reg), depth: depth}
}

func (g *BookGenerator) Next() []string {
	if len(g.pending) == 0 {
		g.fill()
	}
	record := g.pending[0]
	g.pending = g.pending[1:]
	return record
}

func (g *BookGenerator) fill() {
	tick := g.prices.Next()
	id := tick[0]
	bid, _ := model.ParsePrice(tick[1])
	offer, _ := model.ParsePrice(tick[2])

	for level := 0; level < g.depth; level++ {
		quantity := int64(level+1) * 10_000_000
		g.pending = append(g.pending, []string{
			id,
			(bid - model.Price(level)*narrowSpread).Fraction(),
			strconv.FormatInt(quantity, 10),
			enum.SideBid.String(),
		})
	}
	for level := 0; level < g.depth; level++ {
		quantity := int64(level+1) * 10_000_000
		g.pending = append(g.pending, []string{
			id,
			(offer + model.Price(level)*narrowSpread).Fraction(),
			strconv.FormatInt(quantity, 10),
			enum.SideOffer.String(),
		})
	}
}

// TradeGenerator emits booked trades,
// `productId,tradeId,price,book,quantity,side`. Sides alternate starting
// BUY, books rotate, quantities cycle 1M through 5M.
type TradeGenerator struct {
	walk  productWalk
	books []string
	count int
}

func NewTradeGenerator(reg *bond.Registry, books []string) *TradeGenerator {
	return &TradeGenerator{walk: newProductWalk(reg), books: books}
}

func (g *TradeGenerator) Next() []string {
	product := g.walk.next()

	side := enum.SideBuy
	price := lowPrice
	if g.count%2 == 1 {
		side = enum.SideSell
		price = highPrice
	}
	quantity := int64(g.count%5+1) * 1_000_000
	book := g.books[g.count%len(g.books)]
	g.count++

	return []string{
		product.ID(),
		"T" + strconv.Itoa(g.count),
		price.Fraction(),
		book,
		strconv.FormatInt(quantity, 10),
		side.String(),
	}
}

// InquiryGenerator emits customer inquiries,
// `inquiryId,productId,side,quantity,price,state`. All inquiries start
// in RECEIVED at the band's midpoint.
type InquiryGenerator struct {
	walk  productWalk
	count int
}

func NewInquiryGenerator(reg *bond.Registry) *InquiryGenerator {
	return &InquiryGenerator{walk: newProductWalk(reg)}
}

func (g *InquiryGenerator) Next() []string {
	product := g.walk.next()

	side := enum.SideBuy
	if g.count%2 == 1 {
		side = enum.SideSell
	}
	quantity := int64(g.count%5+1) * 1_000_000
	g.count++

	return []string{
		"INQ" + strconv.Itoa(g.count),
		product.ID(),
		side.String(),
		strconv.FormatInt(quantity, 10),
		model.Mid(lowPrice, highPrice).Fraction(),
		enum.InquiryReceived.String(),
	}
}
