package services

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"skyvoyager/internal/airports"
	"skyvoyager/internal/catalog"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
	"skyvoyager/internal/testutil"
)

func TestSearchFlights(t *testing.T) {
	ctx := context.Background()
	key := store.FlightsKey("DEL", "BOM", testutil.TestDate)

	t.Run("first_search_generates_cold_catalog", func(t *testing.T) {
		h := newHarness(t)

		result, err := h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertNoError(t, err)

		if !result.Generated {
			t.Error("expected the catalog to be generated")
		}
		if len(result.Flights) != 10 {
			t.Fatalf("expected 10 flights, got %d", len(result.Flights))
		}
		for _, f := range result.Flights {
			if f.CurrentPrice != f.BasePrice || f.ViewCount != 0 || f.LastViewed != nil {
				t.Errorf("expected cold flight, got %+v", f)
			}
		}

		stored := testutil.LoadJSON[[]models.Flight](t, h.store, key)
		if len(stored) != 10 {
			t.Errorf("expected 10 stored flights, got %d", len(stored))
		}
		if got := promtest.ToFloat64(h.metrics.CatalogSearches.WithLabelValues("generated")); got != 1 {
			t.Errorf("expected 1 generated search, got %v", got)
		}
	})

	t.Run("later_search_views_every_flight", func(t *testing.T) {
		h := newHarness(t)

		first, err := h.flights.SearchFlights(ctx, "del", "bom", testutil.TestDate)
		testutil.AssertNoError(t, err)

		h.clock.Advance(time.Minute)
		second, err := h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertNoError(t, err)

		if second.Generated {
			t.Error("expected the stored catalog to be reused")
		}
		for i, f := range second.Flights {
			if f.ID != first.Flights[i].ID {
				t.Errorf("expected flight %s at %d, got %s", first.Flights[i].ID, i, f.ID)
			}
			if f.ViewCount != 1 {
				t.Errorf("expected viewCount 1, got %d", f.ViewCount)
			}
			if f.LastViewed == nil || *f.LastViewed != h.clock.Now().UnixMilli() {
				t.Errorf("expected lastViewed to be now, got %v", f.LastViewed)
			}
		}

		stored := testutil.LoadJSON[[]models.Flight](t, h.store, key)
		if stored[0].ViewCount != 1 {
			t.Errorf("expected evaluated catalog to be persisted, got viewCount %d", stored[0].ViewCount)
		}
	})

	t.Run("third_search_surges_all", func(t *testing.T) {
		h := newHarness(t)

		for range 4 {
			_, err := h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
			testutil.AssertNoError(t, err)
			h.clock.Advance(time.Minute)
		}
		result, err := h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertNoError(t, err)

		// views per search: generated, 1, 2, 3 (surge), 4
		if len(result.SurgedFlightIDs) != 0 {
			t.Errorf("expected no new surges on the fifth search, got %v", result.SurgedFlightIDs)
		}
		if h.notifier.count() != 10 {
			t.Errorf("expected 10 surge notifications, got %d", h.notifier.count())
		}
		for _, f := range result.Flights {
			if f.CurrentPrice != f.BasePrice*110/100 {
				t.Errorf("expected surged price for %s, got %d (base %d)", f.ID, f.CurrentPrice, f.BasePrice)
			}
		}
	})

	t.Run("corrupted_catalog_is_regenerated", func(t *testing.T) {
		h := newHarness(t)
		if err := h.store.Set(ctx, key, []byte("{not json")); err != nil {
			t.Fatalf("set: %v", err)
		}

		result, err := h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertNoError(t, err)
		if !result.Generated {
			t.Error("expected a corrupted catalog to be treated as absent")
		}
	})

	t.Run("errors", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.flights.SearchFlights(ctx, "DEL", "XXX", testutil.TestDate)
		testutil.AssertAppError(t, err, "AIRPORT_NOT_FOUND")

		_, err = h.flights.SearchFlights(ctx, "DEL", "del", testutil.TestDate)
		testutil.AssertAppError(t, err, "SAME_AIRPORT")

		_, err = h.flights.SearchFlights(ctx, "DEL", "BOM", "01-06-2025")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("oversized_catalog_fails_fast", func(t *testing.T) {
		h := newHarness(t)
		directory := airports.NewStaticDirectory(testutil.Delhi, testutil.Mumbai)
		gen := catalog.NewGenerator(rand.New(rand.NewPCG(1, 2)))
		flights := NewFlightService(h.store, directory, gen, h.notifier, h.metrics, h.clock.Now, catalog.MaxSize()+1)

		_, err := flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		// the service lock was released
		_, err = h.flights.SearchFlights(ctx, "DEL", "BOM", testutil.TestDate)
		testutil.AssertNoError(t, err)
	})
}

func TestGetFlight(t *testing.T) {
	ctx := context.Background()

	t.Run("three_views_surge_once", func(t *testing.T) {
		h := newHarness(t)
		flight := testutil.NewTestFlight(2000)
		testutil.SeedFlights(t, h.store, flight)

		var view *FlightView
		var err error
		for i := 1; i <= 3; i++ {
			view, err = h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, flight.ID)
			testutil.AssertNoError(t, err)
			if i < 3 && view.PriceSurged {
				t.Fatalf("unexpected surge on view %d", i)
			}
			h.clock.Advance(time.Minute)
		}

		if !view.PriceSurged || view.Notice != SurgeNotice {
			t.Errorf("expected surge notice on the third view, got %+v", view)
		}
		if view.Flight.CurrentPrice != 2200 || view.Flight.ViewCount != 3 {
			t.Errorf("expected price 2200 after 3 views, got %d (views %d)", view.Flight.CurrentPrice, view.Flight.ViewCount)
		}
		if h.notifier.count() != 1 {
			t.Errorf("expected 1 notification, got %d", h.notifier.count())
		}
		if got := promtest.ToFloat64(h.metrics.PriceSurges); got != 1 {
			t.Errorf("expected 1 surge metric, got %v", got)
		}

		view, err = h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, flight.ID)
		testutil.AssertNoError(t, err)
		if view.PriceSurged || view.Flight.CurrentPrice != 2200 || view.Flight.ViewCount != 4 {
			t.Errorf("expected no compounding on the fourth view, got %+v", view)
		}
	})

	t.Run("stale_view_resets", func(t *testing.T) {
		h := newHarness(t)
		flight := testutil.NewTestFlight(2000)
		last := h.clock.Now().Add(-11 * time.Minute).UnixMilli()
		flight.LastViewed = &last
		flight.ViewCount = 7
		flight.CurrentPrice = 2200
		testutil.SeedFlights(t, h.store, flight)

		view, err := h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, flight.ID)
		testutil.AssertNoError(t, err)
		if view.Flight.CurrentPrice != 2000 || view.Flight.ViewCount != 1 {
			t.Errorf("expected reset to base, got %+v", view.Flight)
		}
	})

	t.Run("only_the_viewed_flight_changes", func(t *testing.T) {
		h := newHarness(t)
		a, b := testutil.NewTestFlight(2000), testutil.NewTestFlight(2500)
		testutil.SeedFlights(t, h.store, a, b)

		_, err := h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, b.ID)
		testutil.AssertNoError(t, err)

		stored := testutil.LoadJSON[[]models.Flight](t, h.store, store.FlightsKey("DEL", "BOM", testutil.TestDate))
		if stored[0].ViewCount != 0 || stored[0].LastViewed != nil {
			t.Errorf("expected first flight untouched, got %+v", stored[0])
		}
		if stored[1].ViewCount != 1 {
			t.Errorf("expected viewed flight persisted, got %+v", stored[1])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, "SV0001")
		testutil.AssertAppError(t, err, "FLIGHT_NOT_FOUND")

		testutil.SeedFlights(t, h.store, testutil.NewTestFlight(2000))
		_, err = h.flights.GetFlight(ctx, "DEL", "BOM", testutil.TestDate, "missing")
		testutil.AssertAppError(t, err, "FLIGHT_NOT_FOUND")
	})
}

func TestFindFlight(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	flight := testutil.NewTestFlight(2000)
	testutil.SeedFlights(t, h.store, flight)

	for range 3 {
		found, err := h.flights.FindFlight(ctx, "DEL", "BOM", testutil.TestDate, flight.ID)
		testutil.AssertNoError(t, err)
		if found.ViewCount != 0 || found.LastViewed != nil {
			t.Fatalf("expected FindFlight not to count a view, got %+v", found)
		}
	}

	_, err := h.flights.FindFlight(ctx, "DEL", "BOM", testutil.TestDate, "missing")
	testutil.AssertAppError(t, err, "FLIGHT_NOT_FOUND")
}
