package models

import "time"

// RequestStatus is the review state of a booking request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// RequestStatusInfo records who moved a request into its current state and why.
type RequestStatusInfo struct {
	Status    RequestStatus `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
	UpdatedBy string        `json:"updatedBy,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// BookingRequest is a booking awaiting admin review.
type BookingRequest struct {
	ID                 string            `json:"id"`
	UserID             string            `json:"userId"`
	FlightNumber       string            `json:"flightNumber"`
	Airline            string            `json:"airline"`
	From               Destination       `json:"from"`
	To                 Destination       `json:"to"`
	DepartureTime      time.Time         `json:"departureTime"`
	ArrivalTime        time.Time         `json:"arrivalTime"`
	Price              int64             `json:"price"`
	PassengerName      string            `json:"passengerName"`
	PassengerEmail     string            `json:"passengerEmail"`
	BookingDate        time.Time         `json:"bookingDate"`
	Status             RequestStatusInfo `json:"status"`
	BoardingPassIssued bool              `json:"boardingPassIssued"`
}
