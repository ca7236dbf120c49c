package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"skyvoyager/internal/airports"
	"skyvoyager/internal/catalog"
	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/models"
	"skyvoyager/internal/pricing"
	"skyvoyager/internal/store"
)

// SurgeNotice is shown to the traveller when a view pushes the price up.
const SurgeNotice = "Price increased due to high demand"

// flightService handles flight search and per-view pricing.
type flightService struct {
	mu          sync.Mutex
	store       store.Store
	airports    airports.Lookup
	generator   *catalog.Generator
	notifier    PriceNotifier
	metrics     *metrics.Metrics
	now         Clock
	catalogSize int
}

// NewFlightService creates a new FlightServicer.
func NewFlightService(s store.Store, lookup airports.Lookup, gen *catalog.Generator, notifier PriceNotifier, m *metrics.Metrics, now Clock, catalogSize int) FlightServicer {
	return &flightService{
		store:       s,
		airports:    lookup,
		generator:   gen,
		notifier:    notifier,
		metrics:     m,
		now:         now,
		catalogSize: catalogSize,
	}
}

// SearchFlights returns the catalog for a route and date. The first search
// generates and persists a cold catalog; later searches count as a view of
// every flight in it.
func (s *flightService) SearchFlights(ctx context.Context, from, to, date string) (*SearchResult, error) {
	from, to = normalizeCode(from), normalizeCode(to)
	if from == to {
		return nil, apperrors.ErrSameAirport
	}

	dep, err := s.resolveAirport(ctx, from)
	if err != nil {
		return nil, err
	}
	arr, err := s.resolveAirport(ctx, to)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.FlightsKey(from, to, date)
	var flights []models.Flight
	found, err := store.GetJSON(ctx, s.store, key, &flights)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !found || len(flights) == 0 {
		flights, err = s.generator.Generate(*dep, *arr, date, s.catalogSize)
		if errors.Is(err, catalog.ErrCatalogTooLarge) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		if err := store.SetJSON(ctx, s.store, key, flights); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.metrics.CatalogSearches.WithLabelValues("generated").Inc()
		return &SearchResult{Flights: flights, Generated: true}, nil
	}

	now := s.now()
	result := &SearchResult{Flights: make([]models.Flight, 0, len(flights))}
	for _, f := range flights {
		updated, outcome := pricing.Evaluate(f, now)
		s.record(ctx, updated, outcome)
		if outcome == pricing.OutcomeSurged {
			result.SurgedFlightIDs = append(result.SurgedFlightIDs, updated.ID)
		}
		result.Flights = append(result.Flights, updated)
	}

	if err := store.SetJSON(ctx, s.store, key, result.Flights); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.CatalogSearches.WithLabelValues("stored").Inc()
	return result, nil
}

// GetFlight evaluates one flight at the current time and persists the catalog.
func (s *flightService) GetFlight(ctx context.Context, from, to, date, flightID string) (*FlightView, error) {
	key := store.FlightsKey(normalizeCode(from), normalizeCode(to), date)

	s.mu.Lock()
	defer s.mu.Unlock()

	flights, idx, err := s.loadFlight(ctx, key, flightID)
	if err != nil {
		return nil, err
	}

	updated, outcome := pricing.Evaluate(flights[idx], s.now())
	flights[idx] = updated
	if err := store.SetJSON(ctx, s.store, key, flights); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.record(ctx, updated, outcome)

	view := &FlightView{Flight: updated}
	if outcome == pricing.OutcomeSurged {
		view.PriceSurged = true
		view.Notice = SurgeNotice
	}
	return view, nil
}

// FindFlight returns the persisted flight without counting a view. Bookings
// charge the price the traveller was last shown.
func (s *flightService) FindFlight(ctx context.Context, from, to, date, flightID string) (*models.Flight, error) {
	key := store.FlightsKey(normalizeCode(from), normalizeCode(to), date)

	s.mu.Lock()
	defer s.mu.Unlock()

	flights, idx, err := s.loadFlight(ctx, key, flightID)
	if err != nil {
		return nil, err
	}
	flight := flights[idx].Snapshot()
	return &flight, nil
}

func (s *flightService) loadFlight(ctx context.Context, key, flightID string) ([]models.Flight, int, error) {
	var flights []models.Flight
	found, err := store.GetJSON(ctx, s.store, key, &flights)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, 0, apperrors.ErrFlightNotFound
	}
	for i := range flights {
		if flights[i].ID == flightID {
			return flights, i, nil
		}
	}
	return nil, 0, apperrors.ErrFlightNotFound
}

func (s *flightService) resolveAirport(ctx context.Context, code string) (*models.Airport, error) {
	airport, err := s.airports.LookupAirport(ctx, code)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if airport == nil {
		return nil, apperrors.WithMessage(apperrors.ErrAirportNotFound, "airport "+code+" not found")
	}
	return airport, nil
}

func (s *flightService) record(ctx context.Context, flight models.Flight, outcome pricing.Outcome) {
	s.metrics.FlightViews.WithLabelValues(outcome.String()).Inc()
	if outcome != pricing.OutcomeSurged {
		return
	}
	s.metrics.PriceSurges.Inc()
	if s.notifier != nil {
		s.notifier.PriceSurged(ctx, flight)
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
