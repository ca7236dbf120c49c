package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/models"
	"skyvoyager/internal/pagination"
	"skyvoyager/internal/services"
)

// BoardingPassRenderer renders a boarding pass document for a booking.
type BoardingPassRenderer interface {
	BoardingPass(ctx context.Context, booking models.Booking) ([]byte, error)
}

// BookingHandler handles booking-related requests.
type BookingHandler struct {
	flightService  services.FlightServicer
	bookingService services.BookingServicer
	renderer       BoardingPassRenderer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(flightService services.FlightServicer, bookingService services.BookingServicer, renderer BoardingPassRenderer) *BookingHandler {
	return &BookingHandler{flightService: flightService, bookingService: bookingService, renderer: renderer}
}

// CreateBookingRequest represents the request payload for booking a flight
type CreateBookingRequest struct {
	From           string `json:"from" binding:"required,iata_code"`
	To             string `json:"to" binding:"required,iata_code"`
	Date           string `json:"date" binding:"required,travel_date"`
	FlightID       string `json:"flightId" binding:"required"`
	PassengerName  string `json:"passengerName" binding:"required,max=100"`
	PassengerEmail string `json:"passengerEmail" binding:"required,email"`
}

// BookingResponse wraps a single booking
type BookingResponse struct {
	Booking models.Booking `json:"booking"`
}

// CancelBookingResponse is the cancelled booking and the amount refunded to the wallet
type CancelBookingResponse struct {
	Booking models.Booking `json:"booking"`
	Refund  int64          `json:"refund"`
}

// CreateBooking books a flight at its current price.
// @Summary     Book a flight
// @Description Books the flight at the price last shown to the traveller and debits the wallet
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBookingRequest true "Booking details"
// @Success     201 {object} BookingResponse
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     404 {object} ErrorResponse "Flight not found"
// @Router      /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	ctx := c.Request.Context()
	flight, err := h.flightService.FindFlight(ctx, req.From, req.To, req.Date, req.FlightID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	booking, err := h.bookingService.BookFlight(ctx, *flight, req.PassengerName, req.PassengerEmail)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, BookingResponse{Booking: *booking})
}

// GetBookings lists bookings in the order they were made.
// @Summary     List bookings
// @Tags        bookings
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page"
// @Success     200 {object} pagination.PageResponse[models.Booking]
// @Router      /bookings [get]
func (h *BookingHandler) GetBookings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	bookings, err := h.bookingService.GetBookings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Paginate(bookings, page))
}

// GetBooking returns one booking.
// @Summary     Get a booking
// @Tags        bookings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Booking ID"
// @Success     200 {object} BookingResponse
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Router      /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BookingResponse{Booking: *booking})
}

// CancelBooking cancels a booking and refunds 70% of its price.
// @Summary     Cancel a booking
// @Tags        bookings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Booking ID"
// @Success     200 {object} CancelBookingResponse
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Failure     409 {object} ErrorResponse "Booking already cancelled"
// @Router      /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelBookingResponse{
		Booking: *booking,
		Refund:  services.RefundAmount(booking.Flight.CurrentPrice),
	})
}

// GetBoardingPass returns the boarding pass of a confirmed booking as a PDF.
// @Summary     Download boarding pass
// @Tags        bookings
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       id path string true "Booking ID"
// @Success     200 {file} file
// @Failure     404 {object} ErrorResponse "Booking not found"
// @Failure     409 {object} ErrorResponse "Booking cancelled"
// @Router      /bookings/{id}/boarding-pass [get]
func (h *BookingHandler) GetBoardingPass(c *gin.Context) {
	ctx := c.Request.Context()
	booking, err := h.bookingService.GetBookingByID(ctx, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrBookingAlreadyCancelled, "No boarding pass for a cancelled booking"))
		return
	}

	pdf, err := h.renderer.BoardingPass(ctx, *booking)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="boarding-pass-%s.pdf"`, booking.PNR))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
