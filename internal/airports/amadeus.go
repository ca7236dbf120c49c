package airports

import (
	"context"
	"strings"
	"sync"
	"time"

	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
)

// amadeusAirport mirrors the shape of an Amadeus airport location.
type amadeusAirport struct {
	IATACode     string
	Name         string
	DetailedName string
	CityCode     string
	CityName     string
	CountryCode  string
	CountryName  string
}

func (a amadeusAirport) toAirport() models.Airport {
	return models.Airport{Code: a.IATACode, Name: a.Name, City: a.CityName, Country: a.CountryName}
}

var amadeusFixtures = map[string]amadeusAirport{
	"DEL": {IATACode: "DEL", Name: "Indira Gandhi International Airport", DetailedName: "Delhi, India (DEL)", CityCode: "DEL", CityName: "New Delhi", CountryCode: "IN", CountryName: "India"},
	"BOM": {IATACode: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", DetailedName: "Mumbai, India (BOM)", CityCode: "BOM", CityName: "Mumbai", CountryCode: "IN", CountryName: "India"},
	"MAA": {IATACode: "MAA", Name: "Chennai International Airport", DetailedName: "Chennai, India (MAA)", CityCode: "MAA", CityName: "Chennai", CountryCode: "IN", CountryName: "India"},
	"CCU": {IATACode: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", DetailedName: "Kolkata, India (CCU)", CityCode: "CCU", CityName: "Kolkata", CountryCode: "IN", CountryName: "India"},
	"BLR": {IATACode: "BLR", Name: "Kempegowda International Airport", DetailedName: "Bengaluru, India (BLR)", CityCode: "BLR", CityName: "Bangalore", CountryCode: "IN", CountryName: "India"},
	"HYD": {IATACode: "HYD", Name: "Rajiv Gandhi International Airport", DetailedName: "Hyderabad, India (HYD)", CityCode: "HYD", CityName: "Hyderabad", CountryCode: "IN", CountryName: "India"},
}

// ProviderCodes are the airports requested from the provider when seeding.
var ProviderCodes = []string{"DEL", "BOM", "MAA", "CCU", "BLR", "HYD", "COK", "PNQ", "GAU", "IXC"}

// MockAmadeus simulates the Amadeus airport API: answers come from a small
// fixture table after a fixed latency, and hits are cached per code for the
// lifetime of the instance.
type MockAmadeus struct {
	latency time.Duration

	mu    sync.RWMutex
	cache map[string]models.Airport
	calls int
}

// NewMockAmadeus creates a simulated provider answering after latency.
func NewMockAmadeus(latency time.Duration) *MockAmadeus {
	return &MockAmadeus{latency: latency, cache: make(map[string]models.Airport)}
}

// LookupAirport returns the airport for code, waiting out the simulated
// latency on a cache miss. It returns ctx.Err() if ctx ends first.
func (p *MockAmadeus) LookupAirport(ctx context.Context, code string) (*models.Airport, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	p.mu.RLock()
	cached, ok := p.cache[code]
	p.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	fixture, ok := amadeusFixtures[code]
	if !ok {
		return nil, nil
	}
	airport := fixture.toAirport()

	p.mu.Lock()
	p.cache[code] = airport
	p.mu.Unlock()

	logger.Get().Debugw("airport fetched from provider", "code", code, "detailed_name", fixture.DetailedName)
	return &airport, nil
}

// ListAirports resolves ProviderCodes concurrently and returns the hits in
// ProviderCodes order.
func (p *MockAmadeus) ListAirports(ctx context.Context) ([]models.Airport, error) {
	results := make([]*models.Airport, len(ProviderCodes))
	errs := make([]error, len(ProviderCodes))

	var wg sync.WaitGroup
	for i, code := range ProviderCodes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			results[i], errs[i] = p.LookupAirport(ctx, code)
		}(i, code)
	}
	wg.Wait()

	list := make([]models.Airport, 0, len(results))
	for i, a := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if a != nil {
			list = append(list, *a)
		}
	}
	return list, nil
}

// Calls returns how many uncached lookups reached the simulated API.
func (p *MockAmadeus) Calls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls
}
