package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/money"
	"malacara/go_backend/internal/domain/quote"
	"malacara/go_backend/internal/domain/rental"
)

const defaultDiscountReason = "Commercial discount"

var errNegativeDiscount = errors.New("discount value must be >= 0")

type discountRequest struct {
	Enabled bool            `json:"enabled"`
	Mode    string          `json:"mode"`
	Value   decimal.Decimal `json:"value"`
	Reason  string          `json:"reason"`
}

type CreateQuoteRequest struct {
	Client struct {
		Name        string `json:"name"`
		TravelDates string `json:"travel_dates"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
	} `json:"client"`
	Lesson   *lessonRequest   `json:"lesson"`
	Discount *discountRequest `json:"discount"`
}

type summaryResponse struct {
	Lesson         lessonResponse `json:"lesson"`
	Rentals        int            `json:"rentals"`
	LessonTotal    string         `json:"lesson_total"`
	RentalTotal    string         `json:"rental_total"`
	Subtotal       string         `json:"subtotal"`
	DiscountAmount string         `json:"discount_amount"`
	FinalTotal     string         `json:"final_total"`
}

func (req *discountRequest) discount() (quote.Discount, error) {
	if req == nil {
		return quote.Discount{}, nil
	}
	mode, err := quote.ParseDiscountMode(req.Mode)
	if err != nil {
		return quote.Discount{}, err
	}
	if req.Value.IsNegative() {
		return quote.Discount{}, errNegativeDiscount
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultDiscountReason
	}
	return quote.Discount{Enabled: req.Enabled, Mode: mode, Value: req.Value, Reason: reason}, nil
}

// buildDocument prices the request against the caller's ledger.
func (h *Handlers) buildDocument(w http.ResponseWriter, r *http.Request) (quote.Document, bool) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return quote.Document{}, false
	}
	lq, err := req.Lesson.price()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return quote.Document{}, false
	}
	d, err := req.Discount.discount()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return quote.Document{}, false
	}

	var items []rental.LineItem
	h.withLedger(r, func(l *rental.Ledger) { items = l.Items() })

	client := quote.Client{
		Name:        strings.TrimSpace(req.Client.Name),
		TravelDates: req.Client.TravelDates,
		Phone:       req.Client.Phone,
		Email:       req.Client.Email,
		RequestDate: h.now(),
	}
	return quote.Build(client, lq, items, d), true
}

func (h *Handlers) QuoteSummary(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	s := doc.Summary
	h.writeJSON(w, http.StatusOK, summaryResponse{
		Lesson:         newLessonResponse(doc.Lesson),
		Rentals:        len(doc.Rentals),
		LessonTotal:    money.Format(s.LessonTotal),
		RentalTotal:    money.Format(s.RentalTotal),
		Subtotal:       money.Format(s.Subtotal),
		DiscountAmount: money.Format(s.DiscountAmount),
		FinalTotal:     money.Format(s.FinalTotal),
	})
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}

	pdfBytes, err := h.PDF.Generate(doc)
	if err != nil {
		h.Log.Error("quote pdf: generate failed", "err", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	name := quote.FileName(doc.Client.Name)
	h.Log.Info("quote generated",
		"file", name, "lesson", doc.Lesson.Kind, "rentals", len(doc.Rentals),
		"final_total", money.Format(doc.Summary.FinalTotal), "bytes", len(pdfBytes))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
