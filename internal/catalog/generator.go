// Package catalog generates the synthetic flights offered for a route and date.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"skyvoyager/internal/models"
)

const (
	// DefaultSize is the number of flights generated per search.
	DefaultSize = 10

	minBasePrice  = 2000
	basePriceSpan = 1000

	minFlightNumber  = 1000
	flightNumberSpan = 9000

	dateLayout = "2006-01-02"
)

// Airlines operating the synthetic schedule.
var Airlines = []models.Airline{
	{Code: "SV", Name: "SkyVoyager Airlines", Logo: "/logos/skyvoyager.png"},
	{Code: "AS", Name: "AeroSwift", Logo: "/logos/aeroswift.png"},
	{Code: "CC", Name: "CloudCruise", Logo: "/logos/cloudcruise.png"},
	{Code: "ZA", Name: "ZenithAir", Logo: "/logos/zenithair.png"},
}

// ErrCatalogTooLarge is returned when more flights are requested than there
// are distinct flight ids.
var ErrCatalogTooLarge = errors.New("catalog size exceeds available flight ids")

// MaxSize returns the largest catalog Generate can produce.
func MaxSize() int {
	return len(Airlines) * flightNumberSpan
}

var quarterHours = []int{0, 15, 30, 45}

// Generator produces flight catalogs. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng. Pass a seeded source
// for reproducible catalogs.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewRandomGenerator creates a Generator seeded from the runtime's entropy.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Generate returns count flights from → to on date (YYYY-MM-DD), sorted by
// departure time. Every flight is cold: currentPrice equals basePrice, no
// views and no lastViewed. Flight ids are unique within the result.
func (g *Generator) Generate(from, to models.Airport, date string, count int) ([]models.Flight, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date %q: %w", date, err)
	}
	if count <= 0 {
		count = DefaultSize
	}
	if count > MaxSize() {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrCatalogTooLarge, count, MaxSize())
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]bool, count)
	flights := make([]models.Flight, 0, count)
	for len(flights) < count {
		airline := Airlines[g.rng.IntN(len(Airlines))]
		id := g.flightID()
		if seen[id] {
			continue
		}
		seen[id] = true

		dep := g.clockTime()
		arr := g.clockTime()
		for arr == dep {
			arr = g.clockTime()
		}
		minutes, overnight := Duration(dep, arr)

		arrivalDate := date
		if overnight {
			arrivalDate = day.AddDate(0, 0, 1).Format(dateLayout)
		}

		base := int64(minBasePrice + g.rng.IntN(basePriceSpan))
		flights = append(flights, models.Flight{
			ID:               id,
			Airline:          airline,
			DepartureAirport: from.Code,
			DepartureCity:    from.City,
			ArrivalAirport:   to.Code,
			ArrivalCity:      to.City,
			DepartureDate:    date,
			DepartureTime:    FormatClock(dep),
			ArrivalDate:      arrivalDate,
			ArrivalTime:      FormatClock(arr),
			Duration:         FormatDuration(minutes),
			Stops:            g.rng.IntN(2),
			BasePrice:        base,
			CurrentPrice:     base,
			ViewCount:        0,
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].DepartureTime < flights[j].DepartureTime
	})
	return flights, nil
}

// flightID returns an airline code followed by four digits. The code is
// drawn independently of the operating airline.
func (g *Generator) flightID() string {
	code := Airlines[g.rng.IntN(len(Airlines))].Code
	return fmt.Sprintf("%s%d", code, minFlightNumber+g.rng.IntN(flightNumberSpan))
}

// clockTime returns minutes after midnight on a quarter hour.
func (g *Generator) clockTime() int {
	return g.rng.IntN(24)*60 + quarterHours[g.rng.IntN(len(quarterHours))]
}

// Duration returns the minutes from dep to arr (both minutes after
// midnight). An arrival earlier than the departure lands the next day.
func Duration(dep, arr int) (minutes int, overnight bool) {
	if arr < dep {
		return arr + 24*60 - dep, true
	}
	return arr - dep, false
}

// FormatClock renders minutes after midnight as HH:MM.
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatDuration renders minutes as "<h>h <m>m".
func FormatDuration(m int) string {
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
