package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"malacara/go_backend/internal/app/config"
	"malacara/go_backend/internal/app/session"
	"malacara/go_backend/internal/domain/catalog"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	cfg := config.Config{CORSAllowOrigin: "*", PDFCompress: false}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(cfg, catalog.Default(), session.NewStore(0), log))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func TestHealth(t *testing.T) {
	srv, client := newTestServer(t)
	resp, err := client.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("got (%d, %q)", resp.StatusCode, body)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("CORS header missing")
	}
}

func TestPreflight(t *testing.T) {
	srv, client := newTestServer(t)
	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/v1/rentals", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
}

func TestQuoteEndToEnd(t *testing.T) {
	srv, client := newTestServer(t)

	post := func(path, body string) *http.Response {
		t.Helper()
		resp, err := client.Post(srv.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		return resp
	}

	resp := post("/v1/rentals", `{"grade":"silver","package":"full-kit","days":3,"quantity":2}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add rental status = %d", resp.StatusCode)
	}

	quoteReq := `{"client":{"name":"Ana López"},"lesson":{"kind":"collective","headcount":2,"duration":3}}`

	resp = post("/v1/quotes/summary", quoteReq)
	var summary map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	resp.Body.Close()
	if summary["final_total"] != "462.00" || summary["rental_total"] != "132.00" || summary["lesson_total"] != "330.00" {
		t.Fatalf("unexpected summary: %v", summary)
	}

	resp = post("/v1/quotes", quoteReq)
	pdf, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create quote status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(pdf), "462.00 eur") {
		t.Fatal("PDF does not contain the final total")
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
		t.Fatalf("Content-Disposition = %q", cd)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/v1/rentals", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()

	resp = post("/v1/quotes/summary", quoteReq)
	summary = nil
	json.NewDecoder(resp.Body).Decode(&summary)
	resp.Body.Close()
	if summary["final_total"] != "330.00" {
		t.Fatalf("after clear final_total = %v, want 330.00", summary["final_total"])
	}
}
