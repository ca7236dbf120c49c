package services

import (
	"context"
	"time"

	"skyvoyager/internal/models"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SearchResult is the outcome of a flight search.
type SearchResult struct {
	Flights []models.Flight `json:"flights"`
	// Generated is true when the catalog was created by this search.
	Generated bool `json:"generated"`
	// SurgedFlightIDs lists flights whose price surged during this search.
	SurgedFlightIDs []string `json:"surgedFlightIds,omitempty"`
}

// FlightView is a single flight as shown to the traveller after a view.
type FlightView struct {
	Flight      models.Flight `json:"flight"`
	PriceSurged bool          `json:"priceSurged"`
	Notice      string        `json:"notice,omitempty"`
}

// FlightServicer defines the contract for flight search and pricing.
type FlightServicer interface {
	SearchFlights(ctx context.Context, from, to, date string) (*SearchResult, error)
	GetFlight(ctx context.Context, from, to, date, flightID string) (*FlightView, error)
	FindFlight(ctx context.Context, from, to, date, flightID string) (*models.Flight, error)
}

// PriceNotifier is told when a flight's price surges due to demand.
type PriceNotifier interface {
	PriceSurged(ctx context.Context, flight models.Flight)
}

// WalletServicer defines the contract for the mock wallet.
type WalletServicer interface {
	GetWallet(ctx context.Context) (*models.Wallet, error)
	Debit(ctx context.Context, amount int64, description string) (*models.Wallet, error)
	Credit(ctx context.Context, amount int64, description string) (*models.Wallet, error)
}

// BookingServicer defines the contract for bookings.
type BookingServicer interface {
	BookFlight(ctx context.Context, flight models.Flight, passengerName, passengerEmail string) (*models.Booking, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// UserServicer defines the contract for the mock user directory and session.
type UserServicer interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, name, email string, role models.UserRole) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// DestinationFields holds the editable fields of a destination.
type DestinationFields struct {
	Name        string
	Code        string
	City        string
	Country     string
	Description string
	Image       string
}

// DestinationServicer defines the contract for admin-managed destinations.
type DestinationServicer interface {
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	GetDestination(ctx context.Context, id string) (*models.Destination, error)
	CreateDestination(ctx context.Context, fields DestinationFields) (*models.Destination, error)
	UpdateDestination(ctx context.Context, id string, fields DestinationFields) (*models.Destination, error)
	DeleteDestination(ctx context.Context, id string) error
}

// RequestAction is an admin decision on a booking request.
type RequestAction string

const (
	RequestActionApprove RequestAction = "approve"
	RequestActionReject  RequestAction = "reject"
)

// BookingRequestServicer defines the contract for admin review of booking requests.
type BookingRequestServicer interface {
	ListRequests(ctx context.Context, pendingOnly bool) ([]models.BookingRequest, error)
	UpdateStatus(ctx context.Context, id string, action RequestAction, notes, updatedBy string) (*models.BookingRequest, error)
}
