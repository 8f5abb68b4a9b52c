package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"malacara/go_backend/internal/app/config"
	"malacara/go_backend/internal/app/http/handlers"
	"malacara/go_backend/internal/app/http/middleware"
	"malacara/go_backend/internal/app/session"
	"malacara/go_backend/internal/domain/catalog"
	pdfgen "malacara/go_backend/internal/domain/quote/pdf/gofpdf"
)

func NewRouter(cfg config.Config, cat *catalog.Catalog, sessions *session.Store, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	gen := pdfgen.New()
	if !cfg.PDFCompress {
		gen = pdfgen.NewUncompressed()
	}
	h := handlers.New(cat, sessions, gen, log)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", h.ListCatalog)
		r.Post("/lessons/price", h.PriceLesson)

		r.Get("/rentals", h.ListRentals)
		r.Post("/rentals", h.AddRental)
		r.Delete("/rentals", h.ClearRentals)

		r.Post("/quotes/summary", h.QuoteSummary)
		r.Post("/quotes", h.CreateQuote)
	})

	return r
}
