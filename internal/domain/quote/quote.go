package quote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/lesson"
	"malacara/go_backend/internal/domain/money"
	"malacara/go_backend/internal/domain/rental"
)

const fileNamePrefix = "Presupuesto_Malacara_"

var ErrUnknownDiscountMode = errors.New("unknown discount mode")

type DiscountMode string

const (
	DiscountPercentage DiscountMode = "percentage"
	DiscountFixed      DiscountMode = "fixed"
)

func ParseDiscountMode(s string) (DiscountMode, error) {
	switch DiscountMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixed:
		return DiscountFixed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDiscountMode, s)
}

type Discount struct {
	Enabled bool
	Mode    DiscountMode
	Value   decimal.Decimal
	Reason  string
}

type Client struct {
	Name        string
	TravelDates string
	Phone       string
	Email       string
	RequestDate time.Time
}

type Summary struct {
	LessonTotal    decimal.Decimal
	RentalTotal    decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
}

// Document is everything a quote renderer needs, already computed.
type Document struct {
	Client   Client
	Lesson   lesson.Quote
	Rentals  []rental.LineItem
	Summary  Summary
	Discount Discount
}

// ComputeSummary adds lesson and rental totals and applies the discount.
// A discount larger than the subtotal yields a negative final total.
func ComputeSummary(lessonTotal, rentalTotal decimal.Decimal, d Discount) Summary {
	s := Summary{
		LessonTotal:    lessonTotal,
		RentalTotal:    rentalTotal,
		Subtotal:       lessonTotal.Add(rentalTotal),
		DiscountAmount: decimal.Zero,
	}
	if d.Enabled {
		switch d.Mode {
		case DiscountFixed:
			s.DiscountAmount = d.Value
		default:
			s.DiscountAmount = money.Percent(s.Subtotal, d.Value)
		}
	}
	s.FinalTotal = s.Subtotal.Sub(s.DiscountAmount)
	return s
}

// Build assembles a renderable document from the priced parts.
func Build(c Client, l lesson.Quote, rentals []rental.LineItem, d Discount) Document {
	rentalTotal := decimal.Zero
	for _, it := range rentals {
		rentalTotal = rentalTotal.Add(it.Subtotal)
	}
	lessonTotal := decimal.Zero
	if l.Selected() {
		lessonTotal = l.Total
	}
	return Document{
		Client:   c,
		Lesson:   l,
		Rentals:  rentals,
		Summary:  ComputeSummary(lessonTotal, rentalTotal, d),
		Discount: d,
	}
}

// FileName is the download name of a quote for the given client.
func FileName(clientName string) string {
	return fileNamePrefix + strings.ReplaceAll(clientName, " ", "_") + ".pdf"
}
