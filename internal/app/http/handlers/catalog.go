package handlers

import (
	"net/http"

	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/domain/money"
)

type catalogPackage struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Prices []string `json:"prices"`
}

type catalogGrade struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Packages []catalogPackage `json:"packages"`
}

type catalogResponse struct {
	Tiers  int            `json:"tiers"`
	Grades []catalogGrade `json:"grades"`
}

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{Tiers: catalog.Tiers}
	for _, g := range h.Catalog.Grades() {
		cg := catalogGrade{ID: string(g.Grade), Label: g.Label}
		for _, p := range g.Packages {
			cp := catalogPackage{ID: string(p.Package), Label: p.Label}
			for _, price := range p.Prices {
				cp.Prices = append(cp.Prices, money.Format(price))
			}
			cg.Packages = append(cg.Packages, cp)
		}
		resp.Grades = append(resp.Grades, cg)
	}
	h.writeJSON(w, http.StatusOK, resp)
}
