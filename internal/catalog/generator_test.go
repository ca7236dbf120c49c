package catalog

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"skyvoyager/internal/models"
)

var (
	del = models.Airport{Code: "DEL", City: "New Delhi"}
	bom = models.Airport{Code: "BOM", City: "Mumbai"}

	flightIDPattern = regexp.MustCompile(`^(SV|AS|CC|ZA)\d{4}$`)
	clockPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):(00|15|30|45)$`)
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

func TestGenerate(t *testing.T) {
	flights, err := seeded(42).Generate(del, bom, "2025-06-01", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flights) != 10 {
		t.Fatalf("expected 10 flights, got %d", len(flights))
	}

	ids := map[string]bool{}
	for i, f := range flights {
		if ids[f.ID] {
			t.Errorf("duplicate flight id %s", f.ID)
		}
		ids[f.ID] = true

		if !flightIDPattern.MatchString(f.ID) {
			t.Errorf("unexpected flight id %q", f.ID)
		}
		if !clockPattern.MatchString(f.DepartureTime) || !clockPattern.MatchString(f.ArrivalTime) {
			t.Errorf("unexpected clock times %s -> %s", f.DepartureTime, f.ArrivalTime)
		}
		if f.BasePrice < 2000 || f.BasePrice >= 3000 {
			t.Errorf("base price %d out of range", f.BasePrice)
		}
		if f.CurrentPrice != f.BasePrice || f.ViewCount != 0 || f.LastViewed != nil {
			t.Errorf("flight %s should be cold: %+v", f.ID, f)
		}
		if f.Stops < 0 || f.Stops > 1 {
			t.Errorf("unexpected stops %d", f.Stops)
		}
		if f.DepartureCity != "New Delhi" || f.ArrivalCity != "Mumbai" {
			t.Errorf("unexpected cities %s -> %s", f.DepartureCity, f.ArrivalCity)
		}
		if f.ArrivalTime < f.DepartureTime && f.ArrivalDate != "2025-06-02" {
			t.Errorf("overnight flight %s should arrive next day, got %s", f.ID, f.ArrivalDate)
		}
		if f.ArrivalTime > f.DepartureTime && f.ArrivalDate != "2025-06-01" {
			t.Errorf("same-day flight %s should arrive on 2025-06-01, got %s", f.ID, f.ArrivalDate)
		}
		if i > 0 && flights[i-1].DepartureTime > f.DepartureTime {
			t.Errorf("flights not sorted by departure: %s before %s", flights[i-1].DepartureTime, f.DepartureTime)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := seeded(7).Generate(del, bom, "2025-06-01", 5)
	b, _ := seeded(7).Generate(del, bom, "2025-06-01", 5)
	for i := range a {
		if a[i].ID != b[i].ID || a[i].BasePrice != b[i].BasePrice || a[i].DepartureTime != b[i].DepartureTime {
			t.Fatalf("same seed produced different catalogs at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_DefaultsAndErrors(t *testing.T) {
	t.Run("non_positive_count_uses_default", func(t *testing.T) {
		flights, err := seeded(1).Generate(del, bom, "2025-06-01", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(flights) != DefaultSize {
			t.Errorf("expected %d flights, got %d", DefaultSize, len(flights))
		}
	})

	t.Run("count_above_distinct_ids", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			_, err := seeded(1).Generate(del, bom, "2025-06-01", MaxSize()+1)
			done <- err
		}()

		select {
		case err := <-done:
			if !errors.Is(err, ErrCatalogTooLarge) {
				t.Fatalf("expected ErrCatalogTooLarge, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Generate did not return for an oversized catalog")
		}
	})

	t.Run("invalid_date", func(t *testing.T) {
		if _, err := seeded(1).Generate(del, bom, "01/06/2025", 3); err == nil {
			t.Fatal("expected error for invalid date")
		}
	})
}

func TestDuration(t *testing.T) {
	cases := []struct {
		dep, arr  int
		minutes   int
		overnight bool
		text      string
	}{
		{dep: 8 * 60, arr: 10*60 + 15, minutes: 135, overnight: false, text: "2h 15m"},
		{dep: 23 * 60, arr: 1*60 + 30, minutes: 150, overnight: true, text: "2h 30m"},
		{dep: 12*60 + 45, arr: 12*60 + 30, minutes: 23*60 + 45, overnight: true, text: "23h 45m"},
	}
	for _, tc := range cases {
		minutes, overnight := Duration(tc.dep, tc.arr)
		if minutes != tc.minutes || overnight != tc.overnight {
			t.Errorf("Duration(%d, %d) = %d, %v; want %d, %v", tc.dep, tc.arr, minutes, overnight, tc.minutes, tc.overnight)
		}
		if got := FormatDuration(minutes); got != tc.text {
			t.Errorf("FormatDuration(%d) = %q, want %q", minutes, got, tc.text)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 5); got != "09:05" {
		t.Errorf("expected 09:05, got %s", got)
	}
}
