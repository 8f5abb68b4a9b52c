package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/domain/money"
	"malacara/go_backend/internal/domain/rental"
)

// maxRentalQuantity caps units per line, as the shop's booking form does.
const maxRentalQuantity = 10

type addRentalRequest struct {
	Grade    string `json:"grade"`
	Package  string `json:"package"`
	Days     int    `json:"days"`
	Quantity int    `json:"quantity"`
}

type rentalItemResponse struct {
	Grade        string `json:"grade"`
	GradeLabel   string `json:"grade_label"`
	Package      string `json:"package"`
	PackageLabel string `json:"package_label"`
	Description  string `json:"description"`
	Days         int    `json:"days"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	Subtotal     string `json:"subtotal"`
}

type rentalsResponse struct {
	Items []rentalItemResponse `json:"items"`
	Total string               `json:"total"`
}

func newRentalItemResponse(it rental.LineItem) rentalItemResponse {
	return rentalItemResponse{
		Grade:        string(it.Grade),
		GradeLabel:   it.GradeLabel,
		Package:      string(it.Package),
		PackageLabel: it.PackageLabel,
		Description:  it.Description(),
		Days:         it.Days,
		Quantity:     it.Quantity,
		UnitPrice:    money.Format(it.UnitPrice),
		Subtotal:     money.Format(it.Subtotal),
	}
}

func newRentalsResponse(items []rental.LineItem, total decimal.Decimal) rentalsResponse {
	resp := rentalsResponse{Items: []rentalItemResponse{}, Total: money.Format(total)}
	for _, it := range items {
		resp.Items = append(resp.Items, newRentalItemResponse(it))
	}
	return resp
}

func (h *Handlers) ListRentals(w http.ResponseWriter, r *http.Request) {
	var resp rentalsResponse
	h.withLedger(r, func(l *rental.Ledger) {
		resp = newRentalsResponse(l.Items(), l.Total())
	})
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) AddRental(w http.ResponseWriter, r *http.Request) {
	var req addRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	g, p := catalog.Grade(req.Grade), catalog.Package(req.Package)
	if _, _, ok := h.Catalog.Lookup(g, p); !ok {
		http.Error(w, "unknown grade/package", http.StatusBadRequest)
		return
	}
	if req.Days < 1 {
		http.Error(w, "days must be > 0", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 || req.Quantity > maxRentalQuantity {
		http.Error(w, fmt.Sprintf("quantity must be between 1 and %d", maxRentalQuantity), http.StatusBadRequest)
		return
	}

	s := h.session(w, r)
	var item rental.LineItem
	var lines int
	s.WithLedger(func(l *rental.Ledger) {
		item = l.Add(h.Catalog, g, p, req.Days, req.Quantity)
		lines = l.Len()
	})
	h.Log.Info("rental added",
		"session_id", s.ID, "grade", item.Grade, "package", item.Package,
		"days", item.Days, "quantity", item.Quantity, "subtotal", money.Format(item.Subtotal), "lines", lines)

	h.writeJSON(w, http.StatusCreated, newRentalItemResponse(item))
}

func (h *Handlers) ClearRentals(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.Sessions.Find(sessionID(r)); ok {
		s.WithLedger(func(l *rental.Ledger) { l.Clear() })
		h.Log.Info("rentals cleared", "session_id", s.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}
