package quote

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/domain/lesson"
	"malacara/go_backend/internal/domain/rental"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name     string
		lesson   string
		rental   string
		discount Discount
		wantDisc string
		wantTot  string
	}{
		{"no discount", "330", "132", Discount{}, "0", "462"},
		{"disabled ignores value", "300", "200", Discount{Mode: DiscountFixed, Value: dec("99")}, "0", "500"},
		{"percentage", "300", "200", Discount{Enabled: true, Mode: DiscountPercentage, Value: dec("10")}, "50", "450"},
		{"fixed", "300", "200", Discount{Enabled: true, Mode: DiscountFixed, Value: dec("20")}, "20", "480"},
		{"percentage rounds to cents", "0", "99.99", Discount{Enabled: true, Mode: DiscountPercentage, Value: dec("15")}, "15", "84.99"},
		{"fixed above subtotal goes negative", "0", "50", Discount{Enabled: true, Mode: DiscountFixed, Value: dec("80")}, "80", "-30"},
		{"empty quote", "0", "0", Discount{Enabled: true, Mode: DiscountPercentage, Value: dec("10")}, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSummary(dec(tt.lesson), dec(tt.rental), tt.discount)
			if !got.Subtotal.Equal(dec(tt.lesson).Add(dec(tt.rental))) {
				t.Errorf("Subtotal = %s", got.Subtotal)
			}
			if !got.DiscountAmount.Equal(dec(tt.wantDisc)) {
				t.Errorf("DiscountAmount = %s, want %s", got.DiscountAmount, tt.wantDisc)
			}
			if !got.FinalTotal.Equal(dec(tt.wantTot)) {
				t.Errorf("FinalTotal = %s, want %s", got.FinalTotal, tt.wantTot)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	l := rental.NewLedger()
	l.Add(catalog.Default(), catalog.GradeSilver, catalog.PackageFullKit, 3, 2)
	lq := lesson.Price(lesson.Request{Kind: lesson.KindCollective, Headcount: 2, Duration: 3})

	doc := Build(Client{Name: "Ana López", RequestDate: time.Now()}, lq, l.Items(), Discount{})

	if !doc.Summary.LessonTotal.Equal(dec("330")) || !doc.Summary.RentalTotal.Equal(dec("132")) {
		t.Fatalf("got lesson=%s rental=%s", doc.Summary.LessonTotal, doc.Summary.RentalTotal)
	}
	if !doc.Summary.FinalTotal.Equal(dec("462")) {
		t.Fatalf("FinalTotal = %s, want 462", doc.Summary.FinalTotal)
	}
	if len(doc.Rentals) != 1 {
		t.Fatalf("got %d rentals", len(doc.Rentals))
	}
}

func TestBuildWithoutLesson(t *testing.T) {
	doc := Build(Client{}, lesson.Price(lesson.Request{Kind: lesson.KindNone}), nil, Discount{})
	if !doc.Summary.FinalTotal.IsZero() {
		t.Fatalf("FinalTotal = %s, want 0", doc.Summary.FinalTotal)
	}
}

func TestParseDiscountMode(t *testing.T) {
	if m, err := ParseDiscountMode("Fixed"); err != nil || m != DiscountFixed {
		t.Fatalf("got (%q, %v)", m, err)
	}
	if m, err := ParseDiscountMode(""); err != nil || m != DiscountPercentage {
		t.Fatalf("got (%q, %v)", m, err)
	}
	if _, err := ParseDiscountMode("bogo"); !errors.Is(err, ErrUnknownDiscountMode) {
		t.Fatalf("error = %v, want ErrUnknownDiscountMode", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ana López", "Presupuesto_Malacara_Ana_López.pdf"},
		{"Iván  Fernández", "Presupuesto_Malacara_Iván__Fernández.pdf"},
		{"", "Presupuesto_Malacara_.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
