package handlers

import (
	"context"

	"skyvoyager/internal/models"
	"skyvoyager/internal/services"
)

// --- mock flight service ---

type mockFlightService struct {
	searchFlightsFn func(ctx context.Context, from, to, date string) (*services.SearchResult, error)
	getFlightFn     func(ctx context.Context, from, to, date, flightID string) (*services.FlightView, error)
	findFlightFn    func(ctx context.Context, from, to, date, flightID string) (*models.Flight, error)
}

func (m *mockFlightService) SearchFlights(ctx context.Context, from, to, date string) (*services.SearchResult, error) {
	if m.searchFlightsFn != nil {
		return m.searchFlightsFn(ctx, from, to, date)
	}
	return &services.SearchResult{Flights: []models.Flight{}}, nil
}

func (m *mockFlightService) GetFlight(ctx context.Context, from, to, date, flightID string) (*services.FlightView, error) {
	if m.getFlightFn != nil {
		return m.getFlightFn(ctx, from, to, date, flightID)
	}
	return &services.FlightView{}, nil
}

func (m *mockFlightService) FindFlight(ctx context.Context, from, to, date, flightID string) (*models.Flight, error) {
	if m.findFlightFn != nil {
		return m.findFlightFn(ctx, from, to, date, flightID)
	}
	return &models.Flight{ID: flightID, CurrentPrice: 2000, BasePrice: 2000}, nil
}

// --- mock booking service ---

type mockBookingService struct {
	bookFlightFn     func(ctx context.Context, flight models.Flight, name, email string) (*models.Booking, error)
	getBookingsFn    func(ctx context.Context) ([]models.Booking, error)
	getBookingByIDFn func(ctx context.Context, id string) (*models.Booking, error)
	cancelBookingFn  func(ctx context.Context, id string) (*models.Booking, error)
}

func (m *mockBookingService) BookFlight(ctx context.Context, flight models.Flight, name, email string) (*models.Booking, error) {
	if m.bookFlightFn != nil {
		return m.bookFlightFn(ctx, flight, name, email)
	}
	return &models.Booking{Flight: flight}, nil
}

func (m *mockBookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	if m.getBookingsFn != nil {
		return m.getBookingsFn(ctx)
	}
	return []models.Booking{}, nil
}

func (m *mockBookingService) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.getBookingByIDFn != nil {
		return m.getBookingByIDFn(ctx, id)
	}
	return &models.Booking{ID: id}, nil
}

func (m *mockBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	if m.cancelBookingFn != nil {
		return m.cancelBookingFn(ctx, id)
	}
	return &models.Booking{ID: id, Status: models.BookingStatusCancelled}, nil
}

// --- mock wallet service ---

type mockWalletService struct {
	getWalletFn func(ctx context.Context) (*models.Wallet, error)
}

func (m *mockWalletService) GetWallet(ctx context.Context) (*models.Wallet, error) {
	if m.getWalletFn != nil {
		return m.getWalletFn(ctx)
	}
	return &models.Wallet{Balance: 50000, Transactions: []models.WalletTransaction{}}, nil
}

func (m *mockWalletService) Debit(context.Context, int64, string) (*models.Wallet, error) {
	return &models.Wallet{}, nil
}

func (m *mockWalletService) Credit(context.Context, int64, string) (*models.Wallet, error) {
	return &models.Wallet{}, nil
}

// --- mock user service ---

type mockUserService struct {
	loginFn       func(ctx context.Context, email, password string) (*models.User, error)
	registerFn    func(ctx context.Context, email, name, password string) (*models.User, error)
	logoutFn      func(ctx context.Context) error
	getUserByIDFn func(ctx context.Context, id string) (*models.User, error)
	listUsersFn   func(ctx context.Context) ([]models.User, error)
	addUserFn     func(ctx context.Context, name, email string, role models.UserRole) (*models.User, error)
	deleteUserFn  func(ctx context.Context, id string) error
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &models.User{ID: "2", Email: email, Role: models.UserRoleUser}, nil
}

func (m *mockUserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, email, name, password)
	}
	return &models.User{ID: "3", Email: email, Name: name, Role: models.UserRoleUser}, nil
}

func (m *mockUserService) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockUserService) CurrentUser(context.Context) (*models.User, error) {
	return &models.User{ID: "2"}, nil
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return []models.User{}, nil
}

func (m *mockUserService) AddUser(ctx context.Context, name, email string, role models.UserRole) (*models.User, error) {
	if m.addUserFn != nil {
		return m.addUserFn(ctx, name, email, role)
	}
	return &models.User{ID: "3", Name: name, Email: email, Role: role}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return nil
}

// --- mock destination service ---

type mockDestinationService struct {
	listFn   func(ctx context.Context) ([]models.Destination, error)
	createFn func(ctx context.Context, fields services.DestinationFields) (*models.Destination, error)
	updateFn func(ctx context.Context, id string, fields services.DestinationFields) (*models.Destination, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDestinationService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Destination{}, nil
}

func (m *mockDestinationService) GetDestination(_ context.Context, id string) (*models.Destination, error) {
	return &models.Destination{ID: id}, nil
}

func (m *mockDestinationService) CreateDestination(ctx context.Context, fields services.DestinationFields) (*models.Destination, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fields)
	}
	return &models.Destination{ID: "new", Name: fields.Name, Code: fields.Code}, nil
}

func (m *mockDestinationService) UpdateDestination(ctx context.Context, id string, fields services.DestinationFields) (*models.Destination, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return &models.Destination{ID: id, Name: fields.Name, Code: fields.Code}, nil
}

func (m *mockDestinationService) DeleteDestination(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- mock booking request service ---

type mockBookingRequestService struct {
	listFn   func(ctx context.Context, pendingOnly bool) ([]models.BookingRequest, error)
	updateFn func(ctx context.Context, id string, action services.RequestAction, notes, updatedBy string) (*models.BookingRequest, error)
}

func (m *mockBookingRequestService) ListRequests(ctx context.Context, pendingOnly bool) ([]models.BookingRequest, error) {
	if m.listFn != nil {
		return m.listFn(ctx, pendingOnly)
	}
	return []models.BookingRequest{}, nil
}

func (m *mockBookingRequestService) UpdateStatus(ctx context.Context, id string, action services.RequestAction, notes, updatedBy string) (*models.BookingRequest, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, action, notes, updatedBy)
	}
	return &models.BookingRequest{ID: id}, nil
}

// --- mock renderer ---

type mockRenderer struct {
	boardingPassFn func(ctx context.Context, booking models.Booking) ([]byte, error)
}

func (m *mockRenderer) BoardingPass(ctx context.Context, booking models.Booking) ([]byte, error) {
	if m.boardingPassFn != nil {
		return m.boardingPassFn(ctx, booking)
	}
	return []byte("%PDF-1.3 test"), nil
}

// verify interface compliance
var (
	_ services.FlightServicer         = (*mockFlightService)(nil)
	_ services.BookingServicer        = (*mockBookingService)(nil)
	_ services.WalletServicer         = (*mockWalletService)(nil)
	_ services.UserServicer           = (*mockUserService)(nil)
	_ services.DestinationServicer    = (*mockDestinationService)(nil)
	_ services.BookingRequestServicer = (*mockBookingRequestService)(nil)
	_ BoardingPassRenderer            = (*mockRenderer)(nil)
)
