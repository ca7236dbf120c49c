package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyvoyager/internal/middleware"
	"skyvoyager/internal/models"
	"skyvoyager/internal/services"
)

// AdminHandler serves the admin surface: users, destinations and booking requests.
type AdminHandler struct {
	userService        services.UserServicer
	destinationService services.DestinationServicer
	requestService     services.BookingRequestServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService services.UserServicer, destinationService services.DestinationServicer, requestService services.BookingRequestServicer) *AdminHandler {
	return &AdminHandler{
		userService:        userService,
		destinationService: destinationService,
		requestService:     requestService,
	}
}

// AddUserRequest represents the request payload for adding a user
type AddUserRequest struct {
	Name  string          `json:"name" binding:"required,max=100"`
	Email string          `json:"email" binding:"required,email,max=255"`
	Role  models.UserRole `json:"role" binding:"required,user_role"`
}

// DestinationRequest represents the request payload for creating or updating a destination
type DestinationRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Code        string `json:"code" binding:"required,iata_code"`
	City        string `json:"city" binding:"required,max=100"`
	Country     string `json:"country" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Image       string `json:"image" binding:"omitempty,url"`
}

func (r DestinationRequest) fields() services.DestinationFields {
	return services.DestinationFields{
		Name:        r.Name,
		Code:        r.Code,
		City:        r.City,
		Country:     r.Country,
		Description: r.Description,
		Image:       r.Image,
	}
}

// UpdateRequestStatusRequest represents an approve/reject decision
type UpdateRequestStatusRequest struct {
	Action services.RequestAction `json:"action" binding:"required,request_action"`
	Notes  string                 `json:"notes" binding:"max=1000"`
}

// UserListResponse wraps the user list
type UserListResponse struct {
	Users []models.User `json:"users"`
}

// DestinationResponse wraps a single destination
type DestinationResponse struct {
	Destination models.Destination `json:"destination"`
}

// DestinationListResponse wraps the destination list
type DestinationListResponse struct {
	Destinations []models.Destination `json:"destinations"`
}

// BookingRequestResponse wraps a single booking request
type BookingRequestResponse struct {
	BookingRequest models.BookingRequest `json:"bookingRequest"`
}

// BookingRequestListResponse wraps the booking request list
type BookingRequestListResponse struct {
	BookingRequests []models.BookingRequest `json:"bookingRequests"`
}

// ListUsers returns every user.
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserListResponse
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserListResponse{Users: users})
}

// AddUser creates a user.
// @Summary     Add a user
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddUserRequest true "User details"
// @Success     201 {object} UserResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /admin/users [post]
func (h *AdminHandler) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.AddUser(c.Request.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UserResponse{User: *user})
}

// DeleteUser removes a user.
// @Summary     Delete a user
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// ListDestinations returns every destination.
// @Summary     List destinations
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DestinationListResponse
// @Router      /admin/destinations [get]
func (h *AdminHandler) ListDestinations(c *gin.Context) {
	list, err := h.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DestinationListResponse{Destinations: list})
}

// CreateDestination adds a destination.
// @Summary     Add a destination
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DestinationRequest true "Destination details"
// @Success     201 {object} DestinationResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /admin/destinations [post]
func (h *AdminHandler) CreateDestination(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	dest, err := h.destinationService.CreateDestination(c.Request.Context(), req.fields())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, DestinationResponse{Destination: *dest})
}

// UpdateDestination replaces a destination's fields.
// @Summary     Update a destination
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Destination ID"
// @Param       request body DestinationRequest true "Destination details"
// @Success     200 {object} DestinationResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Destination not found"
// @Router      /admin/destinations/{id} [put]
func (h *AdminHandler) UpdateDestination(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	dest, err := h.destinationService.UpdateDestination(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, DestinationResponse{Destination: *dest})
}

// DeleteDestination removes a destination.
// @Summary     Delete a destination
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Destination ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Destination not found"
// @Router      /admin/destinations/{id} [delete]
func (h *AdminHandler) DeleteDestination(c *gin.Context) {
	if err := h.destinationService.DeleteDestination(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Destination deleted"})
}

// ListBookingRequests returns booking requests, pending only with ?status=pending.
// @Summary     List booking requests
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       status query string false "pending to list only pending requests"
// @Success     200 {object} BookingRequestListResponse
// @Router      /admin/booking-requests [get]
func (h *AdminHandler) ListBookingRequests(c *gin.Context) {
	pendingOnly := c.Query("status") == string(models.RequestStatusPending)
	list, err := h.requestService.ListRequests(c.Request.Context(), pendingOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BookingRequestListResponse{BookingRequests: list})
}

// UpdateBookingRequestStatus approves or rejects a pending booking request.
// @Summary     Review a booking request
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                     true "Booking request ID"
// @Param       request body UpdateRequestStatusRequest true "Decision"
// @Success     200 {object} BookingRequestResponse
// @Failure     400 {object} ErrorResponse "Invalid action"
// @Failure     404 {object} ErrorResponse "Booking request not found"
// @Router      /admin/booking-requests/{id}/status [post]
func (h *AdminHandler) UpdateBookingRequestStatus(c *gin.Context) {
	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	updated, err := h.requestService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Action, req.Notes, c.GetString(middleware.ContextEmail))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BookingRequestResponse{BookingRequest: *updated})
}
