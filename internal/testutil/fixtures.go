package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Airports used across tests.
var (
	Delhi  = models.Airport{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"}
	Mumbai = models.Airport{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"}
)

// TestDate is the departure date used by flight fixtures.
const TestDate = "2025-06-01"

// Clock is a settable clock for services that take a func() time.Time.
type Clock struct {
	now atomic.Int64
}

// NewClock returns a Clock stopped at start.
func NewClock(start time.Time) *Clock {
	c := &Clock{}
	c.now.Store(start.UnixNano())
	return c
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	return time.Unix(0, c.now.Load())
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now.Add(int64(d))
}

// NewTestFlight returns a cold DEL→BOM flight with the given base price.
func NewTestFlight(basePrice int64) models.Flight {
	return models.Flight{
		ID:               fmt.Sprintf("SV%04d", 1000+nextID()%9000),
		Airline:          models.Airline{Code: "SV", Name: "SkyVoyager Airlines", Logo: "/logos/skyvoyager.png"},
		DepartureAirport: Delhi.Code,
		DepartureCity:    Delhi.City,
		ArrivalAirport:   Mumbai.Code,
		ArrivalCity:      Mumbai.City,
		DepartureDate:    TestDate,
		DepartureTime:    "09:15",
		ArrivalDate:      TestDate,
		ArrivalTime:      "11:30",
		Duration:         "2h 15m",
		BasePrice:        basePrice,
		CurrentPrice:     basePrice,
	}
}

// SeedFlights stores flights as the DEL→BOM catalog for TestDate.
func SeedFlights(t *testing.T, s store.Store, flights ...models.Flight) {
	t.Helper()
	key := store.FlightsKey(Delhi.Code, Mumbai.Code, TestDate)
	if err := store.SetJSON(context.Background(), s, key, flights); err != nil {
		t.Fatalf("failed to seed flights: %v", err)
	}
}

// SeedWallet stores a wallet with the given balance and no transactions.
func SeedWallet(t *testing.T, s store.Store, balance int64) {
	t.Helper()
	wallet := models.Wallet{Balance: balance, Transactions: []models.WalletTransaction{}}
	if err := store.SetJSON(context.Background(), s, store.KeyWallet, wallet); err != nil {
		t.Fatalf("failed to seed wallet: %v", err)
	}
}

// LoadJSON reads key from s into a new T and fails the test when it is absent.
func LoadJSON[T any](t *testing.T, s store.Store, key string) T {
	t.Helper()
	var v T
	found, err := store.GetJSON(context.Background(), s, key, &v)
	if err != nil {
		t.Fatalf("failed to load %q: %v", key, err)
	}
	if !found {
		t.Fatalf("expected key %q to be stored", key)
	}
	return v
}
