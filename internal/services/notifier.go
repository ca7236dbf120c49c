package services

import (
	"context"

	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
)

// logNotifier reports price surges to the application log.
type logNotifier struct{}

// NewLogNotifier creates a PriceNotifier that writes surges to the log.
func NewLogNotifier() PriceNotifier {
	return logNotifier{}
}

func (logNotifier) PriceSurged(_ context.Context, flight models.Flight) {
	logger.Get().Infow("flight price surged",
		"flight_id", flight.ID,
		"route", flight.DepartureAirport+"-"+flight.ArrivalAirport,
		"date", flight.DepartureDate,
		"base_price", flight.BasePrice,
		"current_price", flight.CurrentPrice,
		"view_count", flight.ViewCount,
	)
}
