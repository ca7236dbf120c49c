package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skyvoyager/internal/airports"
	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/models"
)

// AirportDirectory is what the airport endpoints read from.
type AirportDirectory interface {
	airports.Lookup
	airports.Lister
}

// AirportResponse wraps a single airport
type AirportResponse struct {
	Airport models.Airport `json:"airport"`
}

// AirportListResponse wraps the airport list
type AirportListResponse struct {
	Airports []models.Airport `json:"airports"`
}

// AirportHandler serves airport data.
type AirportHandler struct {
	directory AirportDirectory
}

// NewAirportHandler creates a new AirportHandler.
func NewAirportHandler(directory AirportDirectory) *AirportHandler {
	return &AirportHandler{directory: directory}
}

// ListAirports returns every known airport.
// @Summary     List airports
// @Tags        airports
// @Produce     json
// @Success     200 {object} AirportListResponse
// @Router      /airports [get]
func (h *AirportHandler) ListAirports(c *gin.Context) {
	list, err := h.directory.ListAirports(c.Request.Context())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, AirportListResponse{Airports: list})
}

// GetAirport returns one airport by IATA code.
// @Summary     Get an airport
// @Tags        airports
// @Produce     json
// @Param       code path string true "IATA code"
// @Success     200 {object} AirportResponse
// @Failure     404 {object} ErrorResponse "Airport not found"
// @Router      /airports/{code} [get]
func (h *AirportHandler) GetAirport(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	airport, err := h.directory.LookupAirport(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	if airport == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrAirportNotFound, "airport "+code+" not found"))
		return
	}
	c.JSON(http.StatusOK, AirportResponse{Airport: *airport})
}
