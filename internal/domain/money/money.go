// Package money holds the currency formatting used by every quote surface.
package money

import "github.com/shopspring/decimal"

const currencySuffix = " eur"

var hundred = decimal.NewFromInt(100)

// Format renders an amount with exactly two decimals, e.g. "462.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatEUR renders an amount followed by the currency suffix used in documents.
func FormatEUR(d decimal.Decimal) string {
	return Format(d) + currencySuffix
}

// Cents rounds an amount to two decimals, half away from zero.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns pct percent of d, rounded to cents.
func Percent(d, pct decimal.Decimal) decimal.Decimal {
	return Cents(d.Mul(pct).Div(hundred))
}
