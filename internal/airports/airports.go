// Package airports resolves IATA codes to airport records.
package airports

import (
	"context"
	"strings"

	"skyvoyager/internal/models"
)

// Lookup resolves an airport by IATA code. Unknown codes return (nil, nil);
// an error means the lookup itself failed.
type Lookup interface {
	LookupAirport(ctx context.Context, code string) (*models.Airport, error)
}

// Lister returns every airport a source knows about.
type Lister interface {
	ListAirports(ctx context.Context) ([]models.Airport, error)
}

// fallbackAirports is used when the provider yields nothing.
var fallbackAirports = []models.Airport{
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India"},
	{Code: "COK", Name: "Cochin International Airport", City: "Kochi", Country: "India"},
	{Code: "PNQ", Name: "Pune Airport", City: "Pune", Country: "India"},
	{Code: "GAU", Name: "Lokpriya Gopinath Bordoloi International Airport", City: "Guwahati", Country: "India"},
	{Code: "IXC", Name: "Chandigarh Airport", City: "Chandigarh", Country: "India"},
	{Code: "IXB", Name: "Bagdogra Airport", City: "Siliguri", Country: "India"},
	{Code: "PAT", Name: "Jay Prakash Narayan Airport", City: "Patna", Country: "India"},
	{Code: "IXR", Name: "Birsa Munda Airport", City: "Ranchi", Country: "India"},
	{Code: "IXM", Name: "Madurai Airport", City: "Madurai", Country: "India"},
	{Code: "IXZ", Name: "Veer Savarkar International Airport", City: "Port Blair", Country: "India"},
}

// StaticDirectory serves a fixed list of airports.
type StaticDirectory struct {
	airports []models.Airport
}

// NewStaticDirectory serves the given airports, or the built-in fallback
// table when none are given.
func NewStaticDirectory(list ...models.Airport) *StaticDirectory {
	if len(list) == 0 {
		list = fallbackAirports
	}
	return &StaticDirectory{airports: append([]models.Airport(nil), list...)}
}

// LookupAirport finds code in the directory.
func (d *StaticDirectory) LookupAirport(_ context.Context, code string) (*models.Airport, error) {
	return find(d.airports, code), nil
}

// ListAirports returns a copy of the directory.
func (d *StaticDirectory) ListAirports(_ context.Context) ([]models.Airport, error) {
	return append([]models.Airport(nil), d.airports...), nil
}

// Chain consults each Lookup in order and returns the first hit.
type Chain []Lookup

// LookupAirport returns the first non-nil result. A failing lookup aborts the chain.
func (c Chain) LookupAirport(ctx context.Context, code string) (*models.Airport, error) {
	for _, l := range c {
		a, err := l.LookupAirport(ctx, code)
		if err != nil {
			return nil, err
		}
		if a != nil {
			return a, nil
		}
	}
	return nil, nil
}

func find(list []models.Airport, code string) *models.Airport {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range list {
		if list[i].Code == code {
			a := list[i]
			return &a
		}
	}
	return nil
}
