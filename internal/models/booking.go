package models

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records a purchased seat. Flight is a value copy taken at booking
// time; later price changes on the catalog flight never reach it.
type Booking struct {
	ID             string        `json:"id"`
	FlightID       string        `json:"flightId"`
	Flight         Flight        `json:"flight"`
	PassengerName  string        `json:"passengerName"`
	PassengerEmail string        `json:"passengerEmail"`
	BookingDate    string        `json:"bookingDate"`
	SeatNumber     string        `json:"seatNumber"`
	Status         BookingStatus `json:"status"`
	PNR            string        `json:"pnr"`
}
