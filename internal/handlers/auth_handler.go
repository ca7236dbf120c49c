package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/middleware"
	"skyvoyager/internal/models"
	"skyvoyager/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse wraps a single user
type UserResponse struct {
	User models.User `json:"user"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a traveller account and log it in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// Login handles user login
// @Summary     Login user
// @Description Log in with a known email. The password is not checked.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// Logout handles user logout
// @Summary     Logout user
// @Description Clear the stored session
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: *user})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := middleware.GenerateAccessToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(status, AuthResponse{Token: token, User: *user})
}
