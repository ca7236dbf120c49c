package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/logger"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

const (
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pnrLength   = 6
	seatRows    = 30
	seatLetters = "ABCDEF"

	// RefundPercent is the share of the booked price returned on cancellation.
	RefundPercent = 70
)

// bookingService handles booking and cancellation against the wallet.
type bookingService struct {
	mu      sync.Mutex
	store   store.Store
	wallet  WalletServicer
	rng     *rand.Rand
	metrics *metrics.Metrics
	now     Clock
}

// NewBookingService creates a new BookingServicer.
func NewBookingService(s store.Store, wallet WalletServicer, rng *rand.Rand, m *metrics.Metrics, now Clock) BookingServicer {
	return &bookingService{store: s, wallet: wallet, rng: rng, metrics: m, now: now}
}

// RefundAmount returns floor(price × 0.7).
func RefundAmount(price int64) int64 {
	return price * RefundPercent / 100
}

// BookFlight books a copy of flight for the passenger and debits its current price.
func (s *bookingService) BookFlight(ctx context.Context, flight models.Flight, passengerName, passengerEmail string) (*models.Booking, error) {
	passengerName = strings.TrimSpace(passengerName)
	passengerEmail = strings.TrimSpace(passengerEmail)
	if passengerName == "" || passengerEmail == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "passenger name and email are required")
	}
	if flight.CurrentPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "flight has no price")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking := models.Booking{
		ID:             s.nextID(bookings, now),
		FlightID:       flight.ID,
		Flight:         flight.Snapshot(),
		PassengerName:  passengerName,
		PassengerEmail: passengerEmail,
		BookingDate:    now.UTC().Format(time.RFC3339),
		SeatNumber:     s.seat(),
		Status:         models.BookingStatusConfirmed,
		PNR:            s.pnr(),
	}

	description := fmt.Sprintf("Flight booking: %s to %s", flight.DepartureCity, flight.ArrivalCity)
	if _, err := s.wallet.Debit(ctx, flight.CurrentPrice, description); err != nil {
		return nil, err
	}

	bookings = append(bookings, booking)
	if err := store.SetJSON(ctx, s.store, store.KeyBookings, bookings); err != nil {
		s.compensate(ctx, booking, err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.metrics.Bookings.Inc()
	logger.Get().Infow("flight booked",
		"booking_id", booking.ID,
		"flight_id", booking.FlightID,
		"pnr", booking.PNR,
		"price", flight.CurrentPrice,
	)
	return &booking, nil
}

// GetBookings returns all bookings in insertion order.
func (s *bookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// GetBookingByID returns one booking.
func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfBooking(bookings, bookingID)
	if idx < 0 {
		return nil, apperrors.ErrBookingNotFound
	}
	return &bookings[idx], nil
}

// CancelBooking cancels a confirmed booking and refunds 70% of its price.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfBooking(bookings, bookingID)
	if idx < 0 {
		return nil, apperrors.ErrBookingNotFound
	}
	if bookings[idx].Status == models.BookingStatusCancelled {
		return nil, apperrors.ErrBookingAlreadyCancelled
	}

	bookings[idx].Status = models.BookingStatusCancelled
	if err := store.SetJSON(ctx, s.store, store.KeyBookings, bookings); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	booking := bookings[idx]
	refund := RefundAmount(booking.Flight.CurrentPrice)
	if refund > 0 {
		description := fmt.Sprintf("Refund for cancelled booking: %s to %s", booking.Flight.DepartureCity, booking.Flight.ArrivalCity)
		if _, err := s.wallet.Credit(ctx, refund, description); err != nil {
			bookings[idx].Status = models.BookingStatusConfirmed
			if restoreErr := store.SetJSON(ctx, s.store, store.KeyBookings, bookings); restoreErr != nil {
				logger.Get().Errorw("failed to restore booking after refund failure",
					"booking_id", booking.ID,
					"error", restoreErr,
				)
			}
			return nil, err
		}
	}

	s.metrics.Cancellations.Inc()
	logger.Get().Infow("booking cancelled",
		"booking_id", booking.ID,
		"refund", refund,
	)
	return &booking, nil
}

// compensate returns the debited price when the booking could not be stored.
func (s *bookingService) compensate(ctx context.Context, booking models.Booking, cause error) {
	description := fmt.Sprintf("Refund for failed booking: %s to %s", booking.Flight.DepartureCity, booking.Flight.ArrivalCity)
	if _, err := s.wallet.Credit(ctx, booking.Flight.CurrentPrice, description); err != nil {
		logger.Get().Errorw("failed to refund unsaved booking",
			"booking_id", booking.ID,
			"cause", cause,
			"error", err,
		)
	}
}

func (s *bookingService) load(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if _, err := store.GetJSON(ctx, s.store, store.KeyBookings, &bookings); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// nextID returns BKG-<unix ms>, moved forward until it is unused.
func (s *bookingService) nextID(bookings []models.Booking, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("BKG-%d", ms)
		if indexOfBooking(bookings, id) < 0 {
			return id
		}
		ms++
	}
}

func (s *bookingService) pnr() string {
	var b strings.Builder
	for range pnrLength {
		b.WriteByte(pnrAlphabet[s.rng.IntN(len(pnrAlphabet))])
	}
	return b.String()
}

func (s *bookingService) seat() string {
	return fmt.Sprintf("%d%c", s.rng.IntN(seatRows)+1, seatLetters[s.rng.IntN(len(seatLetters))])
}

func indexOfBooking(bookings []models.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}
