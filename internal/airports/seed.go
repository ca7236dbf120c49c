package airports

import (
	"context"
	"fmt"

	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

// StoreDirectory serves the airport list persisted under the airportData key.
type StoreDirectory struct {
	store store.Store
}

// NewStoreDirectory creates a directory backed by s.
func NewStoreDirectory(s store.Store) *StoreDirectory {
	return &StoreDirectory{store: s}
}

// LookupAirport finds code in the persisted list.
func (d *StoreDirectory) LookupAirport(ctx context.Context, code string) (*models.Airport, error) {
	list, err := d.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	return find(list, code), nil
}

// ListAirports returns the persisted list, empty when nothing was seeded.
func (d *StoreDirectory) ListAirports(ctx context.Context) ([]models.Airport, error) {
	var list []models.Airport
	if _, err := store.GetJSON(ctx, d.store, store.KeyAirportData, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Seed makes sure airportData is populated. An existing list is kept. Otherwise
// the provider is asked first and the fallback directory is used when the
// provider fails or returns nothing.
func Seed(ctx context.Context, s store.Store, provider, fallback Lister) ([]models.Airport, error) {
	log := logger.Get()

	var existing []models.Airport
	found, err := store.GetJSON(ctx, s, store.KeyAirportData, &existing)
	if err != nil {
		return nil, err
	}
	if found && len(existing) > 0 {
		return existing, nil
	}

	list, err := provider.ListAirports(ctx)
	if err != nil {
		log.Warnw("airport provider failed, using fallback data", "error", err)
		list = nil
	}
	if len(list) == 0 {
		if list, err = fallback.ListAirports(ctx); err != nil {
			return nil, fmt.Errorf("fallback airports: %w", err)
		}
	}

	if err := store.SetJSON(ctx, s, store.KeyAirportData, list); err != nil {
		return nil, err
	}
	log.Infow("airport data initialized", "count", len(list))
	return list, nil
}
