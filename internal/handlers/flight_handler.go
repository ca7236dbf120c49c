package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyvoyager/internal/services"
)

// FlightHandler handles flight search and flight detail requests.
type FlightHandler struct {
	flightService services.FlightServicer
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(flightService services.FlightServicer) *FlightHandler {
	return &FlightHandler{flightService: flightService}
}

// SearchFlightsQuery holds the search parameters.
type SearchFlightsQuery struct {
	From string `form:"from" binding:"required,iata_code"`
	To   string `form:"to" binding:"required,iata_code"`
	Date string `form:"date" binding:"required,travel_date"`
}

// FlightURI identifies one flight of a catalog.
type FlightURI struct {
	From string `uri:"from" binding:"required,iata_code"`
	To   string `uri:"to" binding:"required,iata_code"`
	Date string `uri:"date" binding:"required,travel_date"`
	ID   string `uri:"id" binding:"required"`
}

// SearchFlights handles a flight search.
// @Summary     Search flights
// @Description Returns the catalog for a route and date. Repeated searches count as views and may change prices.
// @Tags        flights
// @Produce     json
// @Param       from query string true "Departure IATA code"
// @Param       to   query string true "Arrival IATA code"
// @Param       date query string true "Departure date (YYYY-MM-DD)"
// @Success     200 {object} services.SearchResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Airport not found"
// @Router      /flights [get]
func (h *FlightHandler) SearchFlights(c *gin.Context) {
	var q SearchFlightsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.flightService.SearchFlights(c.Request.Context(), q.From, q.To, q.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFlight returns one flight and counts the view.
// @Summary     View a flight
// @Description Evaluates the flight's demand price and returns it with a notice when the price surged.
// @Tags        flights
// @Produce     json
// @Param       from path string true "Departure IATA code"
// @Param       to   path string true "Arrival IATA code"
// @Param       date path string true "Departure date (YYYY-MM-DD)"
// @Param       id   path string true "Flight ID"
// @Success     200 {object} services.FlightView
// @Failure     404 {object} ErrorResponse "Flight not found"
// @Router      /flights/{from}/{to}/{date}/{id} [get]
func (h *FlightHandler) GetFlight(c *gin.Context) {
	var uri FlightURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	view, err := h.flightService.GetFlight(c.Request.Context(), uri.From, uri.To, uri.Date, uri.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
