package services

import (
	"context"
	"strings"
	"sync"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
	"skyvoyager/internal/uuid"
)

var seedDestinations = []models.Destination{
	{
		ID:          "1",
		Name:        "John F. Kennedy International Airport",
		Code:        "JFK",
		City:        "New York",
		Country:     "United States",
		Description: "One of the busiest international airports in the United States",
		Image:       "https://images.unsplash.com/photo-1606768666853-403c90a981ad?q=80&w=2071&auto=format&fit=crop",
	},
	{
		ID:          "2",
		Name:        "Heathrow Airport",
		Code:        "LHR",
		City:        "London",
		Country:     "United Kingdom",
		Description: "The busiest airport in the United Kingdom",
		Image:       "https://images.unsplash.com/photo-1587135941948-670b381f08ce?q=80&w=2070&auto=format&fit=crop",
	},
	{
		ID:          "3",
		Name:        "Tokyo International Airport",
		Code:        "HND",
		City:        "Tokyo",
		Country:     "Japan",
		Description: "Also known as Haneda Airport, one of the two primary airports serving Tokyo",
		Image:       "https://images.unsplash.com/photo-1589552606417-2d438d21ff1f?q=80&w=1974&auto=format&fit=crop",
	},
}

// destinationService handles admin-curated destinations.
type destinationService struct {
	mu    sync.Mutex
	store store.Store
}

// NewDestinationService creates a new DestinationServicer.
func NewDestinationService(s store.Store) DestinationServicer {
	return &destinationService{store: s}
}

// ListDestinations returns all destinations.
func (s *destinationService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// GetDestination returns one destination.
func (s *destinationService) GetDestination(ctx context.Context, id string) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfDestination(list, id)
	if idx < 0 {
		return nil, apperrors.ErrDestinationNotFound
	}
	return &list[idx], nil
}

// CreateDestination adds a destination.
func (s *destinationService) CreateDestination(ctx context.Context, fields DestinationFields) (*models.Destination, error) {
	fields = fields.normalized()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	dest := fields.apply(models.Destination{ID: uuid.New()})
	list = append(list, dest)
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return &dest, nil
}

// UpdateDestination replaces the editable fields of a destination.
func (s *destinationService) UpdateDestination(ctx context.Context, id string, fields DestinationFields) (*models.Destination, error) {
	fields = fields.normalized()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfDestination(list, id)
	if idx < 0 {
		return nil, apperrors.ErrDestinationNotFound
	}
	list[idx] = fields.apply(list[idx])
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return &list[idx], nil
}

// DeleteDestination removes a destination.
func (s *destinationService) DeleteDestination(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOfDestination(list, id)
	if idx < 0 {
		return apperrors.ErrDestinationNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	return s.save(ctx, list)
}

func (s *destinationService) load(ctx context.Context) ([]models.Destination, error) {
	var list []models.Destination
	found, err := store.GetJSON(ctx, s.store, store.KeyDestinations, &list)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		list = append([]models.Destination(nil), seedDestinations...)
	}
	return list, nil
}

func (s *destinationService) save(ctx context.Context, list []models.Destination) error {
	if err := store.SetJSON(ctx, s.store, store.KeyDestinations, list); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (f DestinationFields) normalized() DestinationFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.City = strings.TrimSpace(f.City)
	f.Country = strings.TrimSpace(f.Country)
	f.Description = strings.TrimSpace(f.Description)
	f.Image = strings.TrimSpace(f.Image)
	return f
}

func (f DestinationFields) validate() error {
	if f.Name == "" || f.Code == "" || f.City == "" || f.Country == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name, code, city and country are required")
	}
	return nil
}

func (f DestinationFields) apply(d models.Destination) models.Destination {
	d.Name = f.Name
	d.Code = f.Code
	d.City = f.City
	d.Country = f.Country
	d.Description = f.Description
	d.Image = f.Image
	return d
}

func indexOfDestination(list []models.Destination, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
