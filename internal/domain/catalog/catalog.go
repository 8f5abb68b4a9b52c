// Package catalog is the rental price list: grade -> package -> price per
// rental-day tier.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tiers is the number of priced day tiers. Longer rentals are charged at the
// last tier.
const Tiers = 5

var ErrInvalid = errors.New("invalid catalog")

type Grade string

type Package string

type PackageEntry struct {
	Package Package
	Label   string
	Prices  [Tiers]decimal.Decimal
}

type GradeEntry struct {
	Grade    Grade
	Label    string
	Packages []PackageEntry
}

// Catalog is immutable after New.
type Catalog struct {
	grades []GradeEntry
	index  map[Grade]map[Package]int
	byKey  map[Grade]int
}

// New validates grades and builds a catalog preserving their order.
func New(grades []GradeEntry) (*Catalog, error) {
	if len(grades) == 0 {
		return nil, fmt.Errorf("%w: no grades", ErrInvalid)
	}
	c := &Catalog{
		grades: make([]GradeEntry, 0, len(grades)),
		index:  make(map[Grade]map[Package]int, len(grades)),
		byKey:  make(map[Grade]int, len(grades)),
	}
	for _, g := range grades {
		if g.Grade == "" {
			return nil, fmt.Errorf("%w: empty grade id", ErrInvalid)
		}
		if _, dup := c.byKey[g.Grade]; dup {
			return nil, fmt.Errorf("%w: duplicate grade %q", ErrInvalid, g.Grade)
		}
		if len(g.Packages) == 0 {
			return nil, fmt.Errorf("%w: grade %q has no packages", ErrInvalid, g.Grade)
		}
		pkgs := make(map[Package]int, len(g.Packages))
		for i, p := range g.Packages {
			if _, dup := pkgs[p.Package]; dup {
				return nil, fmt.Errorf("%w: duplicate package %q in grade %q", ErrInvalid, p.Package, g.Grade)
			}
			if err := checkPrices(p.Prices); err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", ErrInvalid, g.Grade, p.Package, err)
			}
			pkgs[p.Package] = i
		}
		entry := g
		entry.Packages = append([]PackageEntry(nil), g.Packages...)
		c.byKey[g.Grade] = len(c.grades)
		c.index[g.Grade] = pkgs
		c.grades = append(c.grades, entry)
	}
	return c, nil
}

func checkPrices(prices [Tiers]decimal.Decimal) error {
	for i, p := range prices {
		if p.IsNegative() {
			return fmt.Errorf("negative price for %d days", i+1)
		}
		if i > 0 && p.LessThan(prices[i-1]) {
			return fmt.Errorf("price for %d days (%s) below %d days (%s)", i+1, p, i, prices[i-1])
		}
	}
	return nil
}

// Price returns the unit price of a package for the given rental length.
// Days above Tiers are charged at the last tier, days below 1 cost nothing,
// and an unknown grade/package pair costs nothing.
func (c *Catalog) Price(g Grade, p Package, days int) decimal.Decimal {
	if days < 1 {
		return decimal.Zero
	}
	if days > Tiers {
		days = Tiers
	}
	entry, ok := c.entry(g, p)
	if !ok {
		return decimal.Zero
	}
	return entry.Prices[days-1]
}

// Lookup returns the labels of a grade/package pair.
func (c *Catalog) Lookup(g Grade, p Package) (gradeLabel, packageLabel string, ok bool) {
	entry, ok := c.entry(g, p)
	if !ok {
		return "", "", false
	}
	return c.grades[c.byKey[g]].Label, entry.Label, true
}

// Grades returns the catalog in display order. Callers must not modify it.
func (c *Catalog) Grades() []GradeEntry {
	return c.grades
}

func (c *Catalog) entry(g Grade, p Package) (PackageEntry, bool) {
	gi, ok := c.byKey[g]
	if !ok {
		return PackageEntry{}, false
	}
	pi, ok := c.index[g][p]
	if !ok {
		return PackageEntry{}, false
	}
	return c.grades[gi].Packages[pi], true
}
