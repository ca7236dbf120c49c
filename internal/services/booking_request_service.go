package services

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

func seedBookingRequests() []models.BookingRequest {
	booked := time.Date(2025, 5, 1, 10, 15, 0, 0, time.UTC)
	return []models.BookingRequest{
		{
			ID:             "booking1",
			UserID:         "2",
			FlightNumber:   "BA178",
			Airline:        "British Airways",
			From:           seedDestinations[0],
			To:             seedDestinations[1],
			DepartureTime:  time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 6, 1, 20, 45, 0, 0, time.UTC),
			Price:          850,
			PassengerName:  "Regular User",
			PassengerEmail: "user@example.com",
			BookingDate:    booked,
			Status: models.RequestStatusInfo{
				Status:    models.RequestStatusPending,
				UpdatedAt: booked,
			},
		},
	}
}

// bookingRequestService handles admin review of booking requests.
type bookingRequestService struct {
	mu    sync.Mutex
	store store.Store
	now   Clock
}

// NewBookingRequestService creates a new BookingRequestServicer.
func NewBookingRequestService(s store.Store, now Clock) BookingRequestServicer {
	return &bookingRequestService{store: s, now: now}
}

// ListRequests returns all requests, or only the pending ones.
func (s *bookingRequestService) ListRequests(ctx context.Context, pendingOnly bool) ([]models.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !pendingOnly {
		return list, nil
	}
	pending := []models.BookingRequest{}
	for _, r := range list {
		if r.Status.Status == models.RequestStatusPending {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

// UpdateStatus approves or rejects a pending request.
func (s *bookingRequestService) UpdateStatus(ctx context.Context, id string, action RequestAction, notes, updatedBy string) (*models.BookingRequest, error) {
	var status models.RequestStatus
	switch action {
	case RequestActionApprove:
		status = models.RequestStatusApproved
	case RequestActionReject:
		status = models.RequestStatusRejected
	default:
		return nil, apperrors.ErrInvalidStatusAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrBookingRequestNotFound
	}
	if list[idx].Status.Status != models.RequestStatusPending {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidStatusAction, "booking request is no longer pending")
	}

	list[idx].Status = models.RequestStatusInfo{
		Status:    status,
		UpdatedAt: s.now().UTC(),
		UpdatedBy: updatedBy,
		Notes:     strings.TrimSpace(notes),
	}
	if err := store.SetJSON(ctx, s.store, store.KeyBookingRequests, list); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("booking request reviewed",
		"request_id", id,
		"status", status,
		"updated_by", updatedBy,
	)
	return &list[idx], nil
}

func (s *bookingRequestService) load(ctx context.Context) ([]models.BookingRequest, error) {
	var list []models.BookingRequest
	found, err := store.GetJSON(ctx, s.store, store.KeyBookingRequests, &list)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		list = seedBookingRequests()
	}
	return list, nil
}
