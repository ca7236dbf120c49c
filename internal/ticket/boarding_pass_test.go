package ticket

import (
	"bytes"
	"context"
	"testing"

	"skyvoyager/internal/models"
)

func TestBoardingPass(t *testing.T) {
	booking := models.Booking{
		ID:             "BKG-1748768400000",
		FlightID:       "SV1234",
		PassengerName:  "Asha Rao",
		PassengerEmail: "asha@example.com",
		SeatNumber:     "14C",
		Status:         models.BookingStatusConfirmed,
		PNR:            "X7K2QP",
		Flight: models.Flight{
			ID:               "SV1234",
			Airline:          models.Airline{Code: "SV", Name: "SkyVoyager Airlines"},
			DepartureAirport: "DEL",
			DepartureCity:    "New Delhi",
			ArrivalAirport:   "BOM",
			ArrivalCity:      "Mumbai",
			DepartureDate:    "2025-06-01",
			DepartureTime:    "09:15",
			ArrivalDate:      "2025-06-01",
			ArrivalTime:      "11:30",
			Duration:         "2h 15m",
			BasePrice:        2000,
			CurrentPrice:     2200,
		},
	}

	t.Run("renders_pdf", func(t *testing.T) {
		pdf, err := NewRenderer().BoardingPass(context.Background(), booking)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(pdf, []byte("%PDF")) {
			t.Errorf("expected a PDF document, got prefix %q", pdf[:min(len(pdf), 8)])
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewRenderer().BoardingPass(ctx, booking); err == nil {
			t.Error("expected an error for a cancelled context")
		}
	})
}

func TestStopsLabel(t *testing.T) {
	if got := stopsLabel(0); got != "Non-stop" {
		t.Errorf("expected Non-stop, got %q", got)
	}
	if got := stopsLabel(1); got != "1 stop" {
		t.Errorf("expected 1 stop, got %q", got)
	}
}
