// Package rental accumulates the equipment lines of a quote.
package rental

import (
	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/catalog"
)

// LineItem is one confirmed rental selection. It is never modified after
// being added to a Ledger.
type LineItem struct {
	Grade        catalog.Grade
	GradeLabel   string
	Package      catalog.Package
	PackageLabel string
	Days         int
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// Description is the label shown on quotes, e.g. "Gama Plata - Full Kit".
func (it LineItem) Description() string {
	g, p := it.GradeLabel, it.PackageLabel
	if g == "" {
		g = string(it.Grade)
	}
	if p == "" {
		p = string(it.Package)
	}
	return g + " - " + p
}

// Ledger is an ordered list of line items. Insertion order is display order.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	items []LineItem
}

func NewLedger() *Ledger { return &Ledger{} }

// Add prices the selection against cat and appends it. Identical selections
// are kept as separate lines.
func (l *Ledger) Add(cat *catalog.Catalog, g catalog.Grade, p catalog.Package, days, qty int) LineItem {
	unit := cat.Price(g, p, days)
	if days > catalog.Tiers {
		days = catalog.Tiers
	}
	gl, pl, _ := cat.Lookup(g, p)
	it := LineItem{
		Grade:        g,
		GradeLabel:   gl,
		Package:      p,
		PackageLabel: pl,
		Days:         days,
		Quantity:     qty,
		UnitPrice:    unit,
		Subtotal:     unit.Mul(decimal.NewFromInt(int64(qty))),
	}
	l.items = append(l.items, it)
	return it
}

func (l *Ledger) Clear() {
	l.items = nil
}

// Total is the sum of all subtotals, zero for an empty ledger.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []LineItem {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int { return len(l.items) }
