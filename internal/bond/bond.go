package bond

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bond is the product reference for a single US treasury issue.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}

// ID returns the product identifier used to key every per-product store.
func (b Bond) ID() string {
	return b.CUSIP
}

func (b Bond) IsZero() bool {
	return b.CUSIP == ""
}

type entry struct {
	bond Bond
	pv01 decimal.Decimal
}

// Registry is the fixed reference table for the on-the-run treasury curve.
// Lookups on unknown CUSIPs return zero values, never an error; risk
// bucketing over not-yet-priced constituents relies on that.
type Registry struct {
	entries map[string]entry
	order   []string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewRegistry builds the registry for the 2Y through 30Y on-the-run issues.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	r.add(Bond{"9128283H1", "US2Y", 0.01750, date(2019, time.November, 30)}, "0.01948992")
	r.add(Bond{"9128283L2", "US3Y", 0.01875, date(2020, time.December, 15)}, "0.02865304")
	r.add(Bond{"912828M80", "US5Y", 0.02000, date(2022, time.November, 30)}, "0.04581119")
	r.add(Bond{"9128283J7", "US7Y", 0.02125, date(2024, time.November, 30)}, "0.06127718")
	r.add(Bond{"9128283F5", "US10Y", 0.02250, date(2027, time.December, 15)}, "0.08161449")
	r.add(Bond{"912810RZ3", "US30Y", 0.02750, date(2047, time.December, 15)}, "0.15013155")
	return r
}

func (r *Registry) add(b Bond, pv01 string) {
	r.entries[b.CUSIP] = entry{bond: b, pv01: decimal.RequireFromString(pv01)}
	r.order = append(r.order, b.CUSIP)
}

// Get returns the bond for a CUSIP, or a zero Bond if unknown.
func (r *Registry) Get(cusip string) Bond {
	return r.entries[cusip].bond
}

// PV01 returns the per-unit PV01 for a CUSIP, zero if unknown.
func (r *Registry) PV01(cusip string) decimal.Decimal {
	return r.entries[cusip].pv01
}

// All returns every bond in curve order.
func (r *Registry) All() []Bond {
	bonds := make([]Bond, 0, len(r.order))
	for _, cusip := range r.order {
		bonds = append(bonds, r.entries[cusip].bond)
	}
	return bonds
}

// Count returns the number of registered issues.
func (r *Registry) Count() int {
	return len(r.order)
}
