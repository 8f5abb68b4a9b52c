// Package lesson prices ski and snowboard lessons.
package lesson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindNone       Kind = "none"
	KindCollective Kind = "collective"
	KindPrivate    Kind = "private"
)

var ErrUnknownKind = errors.New("unknown lesson kind")

var (
	// CollectiveRate is charged per person per 3h day block.
	CollectiveRate = decimal.NewFromInt(55)
	// PrivateBaseRate is the hourly rate for the first person of a private lesson.
	PrivateBaseRate = decimal.NewFromInt(50)
	// PrivateExtraPerson is added to the hourly rate for each extra person.
	PrivateExtraPerson = decimal.NewFromInt(5)
)

// Request describes a lesson selection. Duration is days for collective
// courses and total contracted hours for private lessons.
type Request struct {
	Kind      Kind
	Headcount int
	Duration  int
}

type Quote struct {
	Kind        Kind
	Total       decimal.Decimal
	Description string
	Detail      string
	UnitPrice   decimal.Decimal
}

// Selected reports whether the quote covers an actual lesson.
func (q Quote) Selected() bool {
	return q.Kind == KindCollective || q.Kind == KindPrivate
}

// ParseKind maps a wire value to a Kind. The empty string means no lesson.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindNone:
		return KindNone, nil
	case KindCollective:
		return KindCollective, nil
	case KindPrivate:
		return KindPrivate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Price computes the lesson cost. Headcount and duration are expected to be
// positive; they are not validated here.
func Price(req Request) Quote {
	people := decimal.NewFromInt(int64(req.Headcount))
	duration := decimal.NewFromInt(int64(req.Duration))

	switch req.Kind {
	case KindCollective:
		return Quote{
			Kind:        KindCollective,
			UnitPrice:   CollectiveRate,
			Total:       CollectiveRate.Mul(people).Mul(duration),
			Description: fmt.Sprintf("Collective Course (%d days)", req.Duration),
			Detail:      fmt.Sprintf("%d days x %d people", req.Duration, req.Headcount),
		}
	case KindPrivate:
		extra := max(0, req.Headcount-1)
		hourly := PrivateBaseRate.Add(PrivateExtraPerson.Mul(decimal.NewFromInt(int64(extra))))
		return Quote{
			Kind:        KindPrivate,
			UnitPrice:   hourly,
			Total:       hourly.Mul(duration),
			Description: fmt.Sprintf("Private Lesson (%d total hours)", req.Duration),
			Detail:      fmt.Sprintf("%dh total x %d people", req.Duration, req.Headcount),
		}
	}
	return Quote{Kind: KindNone, Total: decimal.Zero, UnitPrice: decimal.Zero}
}
