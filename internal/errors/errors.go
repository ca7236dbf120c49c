// Package errors provides custom error types for the SkyVoyager API.
// All service-layer errors should use AppError so handlers can render
// consistent responses without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so that
// values produced by Wrap and WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Airport and flight errors.
var (
	ErrAirportNotFound = &AppError{Code: "AIRPORT_NOT_FOUND", Message: "Airport not found", StatusCode: http.StatusNotFound}
	ErrFlightNotFound  = &AppError{Code: "FLIGHT_NOT_FOUND", Message: "Flight not found", StatusCode: http.StatusNotFound}
	ErrSameAirport     = &AppError{Code: "SAME_AIRPORT", Message: "Departure and arrival airports must differ", StatusCode: http.StatusBadRequest}
)

// Booking and wallet errors.
var (
	ErrBookingNotFound         = &AppError{Code: "BOOKING_NOT_FOUND", Message: "Booking not found", StatusCode: http.StatusNotFound}
	ErrBookingAlreadyCancelled = &AppError{Code: "BOOKING_ALREADY_CANCELLED", Message: "Booking is already cancelled", StatusCode: http.StatusConflict}
	ErrInsufficientBalance     = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient wallet balance", StatusCode: http.StatusBadRequest}
)

// Admin errors.
var (
	ErrDestinationNotFound    = &AppError{Code: "DESTINATION_NOT_FOUND", Message: "Destination not found", StatusCode: http.StatusNotFound}
	ErrBookingRequestNotFound = &AppError{Code: "BOOKING_REQUEST_NOT_FOUND", Message: "Booking request not found", StatusCode: http.StatusNotFound}
	ErrInvalidStatusAction    = &AppError{Code: "INVALID_STATUS_ACTION", Message: "Unsupported booking request action", StatusCode: http.StatusBadRequest}
)
