package session

import (
	"sync"
	"testing"
	"time"

	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/domain/rental"
)

func TestGetCreatesAndReuses(t *testing.T) {
	st := NewStore(time.Hour)

	s, created := st.Get("")
	if !created || s.ID == "" {
		t.Fatalf("got (%q, %v), want new session", s.ID, created)
	}
	again, created := st.Get(s.ID)
	if created || again != s {
		t.Fatal("existing session not reused")
	}
	if _, created := st.Get("unknown-id"); !created {
		t.Fatal("unknown id should start a new session")
	}
	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}
}

func TestFindDoesNotCreate(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	st := NewStore(30 * time.Minute)
	st.now = func() time.Time { return now }

	for _, id := range []string{"", "unknown-id"} {
		if s, ok := st.Find(id); ok || s != nil {
			t.Fatalf("Find(%q) = (%v, %v), want miss", id, s, ok)
		}
	}
	if st.Len() != 0 {
		t.Fatalf("Len = %d after lookups, want 0", st.Len())
	}

	s, _ := st.Get("")
	now = now.Add(20 * time.Minute)
	if got, ok := st.Find(s.ID); !ok || got != s {
		t.Fatal("live session not found")
	}
	// Find refreshed lastSeen, so 20 more minutes keeps it alive.
	now = now.Add(20 * time.Minute)
	if _, ok := st.Find(s.ID); !ok {
		t.Fatal("Find did not refresh the session")
	}

	now = now.Add(31 * time.Minute)
	if _, ok := st.Find(s.ID); ok {
		t.Fatal("expired session found")
	}
	if st.Len() != 0 {
		t.Fatalf("Len = %d, expired session kept", st.Len())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	st := NewStore(0)
	a, _ := st.Get("")
	b, _ := st.Get("")

	a.WithLedger(func(l *rental.Ledger) {
		l.Add(catalog.Default(), catalog.GradeSilver, catalog.PackageFullKit, 3, 2)
	})
	b.WithLedger(func(l *rental.Ledger) {
		if l.Len() != 0 {
			t.Fatalf("session b sees %d items from session a", l.Len())
		}
	})
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	st := NewStore(30 * time.Minute)
	st.now = func() time.Time { return now }

	s, _ := st.Get("")
	now = now.Add(20 * time.Minute)
	if _, created := st.Get(s.ID); created {
		t.Fatal("session expired too early")
	}

	now = now.Add(31 * time.Minute)
	if _, created := st.Get(s.ID); !created {
		t.Fatal("expired session was reused")
	}
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	st := NewStore(time.Minute)
	st.now = func() time.Time { return now }

	st.Get("")
	st.Get("")
	now = now.Add(2 * time.Minute)
	st.Get("")

	if n := st.Sweep(); n != 2 {
		t.Fatalf("Sweep removed %d, want 2", n)
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d, want 1", st.Len())
	}
}

func TestWithLedgerSerialisesAccess(t *testing.T) {
	st := NewStore(0)
	s, _ := st.Get("")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.WithLedger(func(l *rental.Ledger) {
				l.Add(catalog.Default(), catalog.GradeBronze, catalog.PackageSkiBoots, 1, 1)
			})
		}()
	}
	wg.Wait()

	s.WithLedger(func(l *rental.Ledger) {
		if l.Len() != 50 {
			t.Fatalf("Len = %d, want 50", l.Len())
		}
	})
}
