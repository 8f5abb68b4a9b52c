package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"malacara/go_backend/internal/app/session"
	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/domain/quote/pdf"
	"malacara/go_backend/internal/domain/rental"
)

const sessionCookie = "malacara_session"

type Handlers struct {
	Catalog  *catalog.Catalog
	Sessions *session.Store
	PDF      pdf.Generator
	Log      *slog.Logger

	now func() time.Time
}

func New(cat *catalog.Catalog, sessions *session.Store, gen pdf.Generator, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		Catalog:  cat,
		Sessions: sessions,
		PDF:      gen,
		Log:      log,
		now:      time.Now,
	}
}

// session returns the caller's session, starting one and setting the cookie
// when the request carries none or an expired one.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) *session.Session {
	s, created := h.Sessions.Get(sessionID(r))
	if created {
		h.Log.Debug("session started", "session_id", s.ID)
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}

// withLedger runs fn on the caller's ledger, or on an empty one when the
// caller has no live session. Nothing is stored for session-less callers.
func (h *Handlers) withLedger(r *http.Request, fn func(l *rental.Ledger)) {
	if s, ok := h.Sessions.Find(sessionID(r)); ok {
		s.WithLedger(fn)
		return
	}
	fn(rental.NewLedger())
}

func sessionID(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Debug("write response failed", "status", status, "err", err)
	}
}
