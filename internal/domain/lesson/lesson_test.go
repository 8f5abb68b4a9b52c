package lesson

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		unit        int64
		total       int64
		description string
		detail      string
	}{
		{
			name:        "collective two people three days",
			req:         Request{Kind: KindCollective, Headcount: 2, Duration: 3},
			unit:        55,
			total:       330,
			description: "Collective Course (3 days)",
			detail:      "3 days x 2 people",
		},
		{
			name:        "private three people two hours",
			req:         Request{Kind: KindPrivate, Headcount: 3, Duration: 2},
			unit:        60,
			total:       120,
			description: "Private Lesson (2 total hours)",
			detail:      "2h total x 3 people",
		},
		{
			name:        "private single person",
			req:         Request{Kind: KindPrivate, Headcount: 1, Duration: 4},
			unit:        50,
			total:       200,
			description: "Private Lesson (4 total hours)",
			detail:      "4h total x 1 people",
		},
		{
			name:        "private zero headcount has no negative surcharge",
			req:         Request{Kind: KindPrivate, Headcount: 0, Duration: 1},
			unit:        50,
			total:       50,
			description: "Private Lesson (1 total hours)",
			detail:      "1h total x 0 people",
		},
		{
			name: "no lesson",
			req:  Request{Kind: KindNone, Headcount: 4, Duration: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.req)
			if !got.UnitPrice.Equal(decimal.NewFromInt(tt.unit)) {
				t.Errorf("UnitPrice = %s, want %d", got.UnitPrice, tt.unit)
			}
			if !got.Total.Equal(decimal.NewFromInt(tt.total)) {
				t.Errorf("Total = %s, want %d", got.Total, tt.total)
			}
			if got.Description != tt.description {
				t.Errorf("Description = %q, want %q", got.Description, tt.description)
			}
			if got.Detail != tt.detail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.detail)
			}
		})
	}
}

func TestSelected(t *testing.T) {
	if Price(Request{Kind: KindNone}).Selected() {
		t.Fatal("none should not be selected")
	}
	if !Price(Request{Kind: KindCollective, Headcount: 1, Duration: 1}).Selected() {
		t.Fatal("collective should be selected")
	}
	if (Quote{}).Selected() {
		t.Fatal("zero quote should not be selected")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", KindNone},
		{"none", KindNone},
		{"Collective", KindCollective},
		{" private ", KindPrivate},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseKind("group"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(group) error = %v, want ErrUnknownKind", err)
	}
}
