package airports

import (
	"context"
	"errors"
	"testing"
	"time"

	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

func init() {
	logger.Init("test")
}

type failingLister struct{}

func (failingLister) ListAirports(context.Context) ([]models.Airport, error) {
	return nil, errors.New("provider down")
}

func TestStaticDirectory(t *testing.T) {
	d := NewStaticDirectory()
	ctx := context.Background()

	t.Run("known_code_case_insensitive", func(t *testing.T) {
		a, err := d.LookupAirport(ctx, " del ")
		if err != nil || a == nil {
			t.Fatalf("expected DEL, got %v, %v", a, err)
		}
		if a.City != "New Delhi" {
			t.Errorf("expected New Delhi, got %s", a.City)
		}
	})

	t.Run("unknown_code", func(t *testing.T) {
		a, err := d.LookupAirport(ctx, "JFK")
		if err != nil || a != nil {
			t.Fatalf("expected absent, got %v, %v", a, err)
		}
	})

	t.Run("fallback_has_fifteen_airports", func(t *testing.T) {
		list, _ := d.ListAirports(ctx)
		if len(list) != 15 {
			t.Errorf("expected 15 airports, got %d", len(list))
		}
	})
}

func TestMockAmadeus(t *testing.T) {
	ctx := context.Background()

	t.Run("caches_hits", func(t *testing.T) {
		p := NewMockAmadeus(0)
		for i := 0; i < 3; i++ {
			a, err := p.LookupAirport(ctx, "BOM")
			if err != nil || a == nil || a.City != "Mumbai" {
				t.Fatalf("unexpected result %v, %v", a, err)
			}
		}
		if p.Calls() != 1 {
			t.Errorf("expected 1 provider call, got %d", p.Calls())
		}
	})

	t.Run("unknown_code_is_absent", func(t *testing.T) {
		a, err := NewMockAmadeus(0).LookupAirport(ctx, "PNQ")
		if err != nil || a != nil {
			t.Fatalf("expected absent, got %v, %v", a, err)
		}
	})

	t.Run("honours_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := NewMockAmadeus(time.Hour).LookupAirport(cctx, "DEL"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("list_returns_known_provider_codes", func(t *testing.T) {
		list, err := NewMockAmadeus(time.Millisecond).ListAirports(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 6 {
			t.Fatalf("expected 6 airports, got %d", len(list))
		}
		if list[0].Code != "DEL" || list[5].Code != "HYD" {
			t.Errorf("expected provider order, got %s..%s", list[0].Code, list[5].Code)
		}
	})
}

func TestChain(t *testing.T) {
	chain := Chain{NewMockAmadeus(0), NewStaticDirectory()}
	a, err := chain.LookupAirport(context.Background(), "IXZ")
	if err != nil || a == nil || a.City != "Port Blair" {
		t.Fatalf("expected fallback hit, got %v, %v", a, err)
	}
	a, err = chain.LookupAirport(context.Background(), "XXX")
	if err != nil || a != nil {
		t.Fatalf("expected absent, got %v, %v", a, err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("uses_provider", func(t *testing.T) {
		s := store.NewMemoryStore()
		list, err := Seed(ctx, s, NewMockAmadeus(0), NewStaticDirectory())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 6 {
			t.Errorf("expected 6 provider airports, got %d", len(list))
		}

		a, err := NewStoreDirectory(s).LookupAirport(ctx, "HYD")
		if err != nil || a == nil {
			t.Fatalf("expected HYD in store, got %v, %v", a, err)
		}
	})

	t.Run("falls_back_when_provider_fails", func(t *testing.T) {
		s := store.NewMemoryStore()
		list, err := Seed(ctx, s, failingLister{}, NewStaticDirectory())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 15 {
			t.Errorf("expected 15 fallback airports, got %d", len(list))
		}
	})

	t.Run("keeps_existing_data", func(t *testing.T) {
		s := store.NewMemoryStore()
		custom := []models.Airport{{Code: "JFK", City: "New York"}}
		_ = store.SetJSON(ctx, s, store.KeyAirportData, custom)

		list, err := Seed(ctx, s, NewMockAmadeus(0), NewStaticDirectory())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].Code != "JFK" {
			t.Errorf("expected existing data to be kept, got %+v", list)
		}
	})
}
