package models

import "time"

// Airline identifies the carrier operating a flight.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Flight is a synthetic flight as persisted under its route+date key.
// BasePrice is fixed at generation; CurrentPrice, LastViewed and ViewCount
// are owned by the pricing engine.
type Flight struct {
	ID               string  `json:"id"`
	Airline          Airline `json:"airline"`
	DepartureAirport string  `json:"departureAirport"`
	DepartureCity    string  `json:"departureCity"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	ArrivalCity      string  `json:"arrivalCity"`
	DepartureDate    string  `json:"departureDate"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalDate      string  `json:"arrivalDate"`
	ArrivalTime      string  `json:"arrivalTime"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`

	BasePrice    int64  `json:"basePrice"`
	CurrentPrice int64  `json:"currentPrice"`
	LastViewed   *int64 `json:"lastViewed,omitempty"` // epoch milliseconds
	ViewCount    int    `json:"viewCount"`
}

// LastViewedAt returns LastViewed as a time, or the zero time before the first view.
func (f *Flight) LastViewedAt() time.Time {
	if f.LastViewed == nil {
		return time.Time{}
	}
	return time.UnixMilli(*f.LastViewed)
}

// Snapshot returns a deep copy of the flight, safe to embed in a booking.
func (f Flight) Snapshot() Flight {
	if f.LastViewed != nil {
		v := *f.LastViewed
		f.LastViewed = &v
	}
	return f
}
