package services

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"skyvoyager/internal/airports"
	"skyvoyager/internal/catalog"
	"skyvoyager/internal/logger"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
	"skyvoyager/internal/testutil"
)

func init() {
	logger.Init("test")
}

var testNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

// recordingNotifier collects surge notifications.
type recordingNotifier struct {
	mu      sync.Mutex
	flights []models.Flight
}

func (n *recordingNotifier) PriceSurged(_ context.Context, flight models.Flight) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.flights = append(n.flights, flight)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.flights)
}

// harness wires the flight, wallet and booking services over one store.
type harness struct {
	store    store.Store
	clock    *testutil.Clock
	metrics  *metrics.Metrics
	notifier *recordingNotifier
	flights  FlightServicer
	wallet   WalletServicer
	bookings BookingServicer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		store:    testutil.SetupTestStore(t),
		clock:    testutil.NewClock(testNow),
		metrics:  metrics.New("test"),
		notifier: &recordingNotifier{},
	}
	directory := airports.NewStaticDirectory(testutil.Delhi, testutil.Mumbai)
	gen := catalog.NewGenerator(rand.New(rand.NewPCG(1, 2)))

	h.flights = NewFlightService(h.store, directory, gen, h.notifier, h.metrics, h.clock.Now, catalog.DefaultSize)
	h.wallet = NewWalletService(h.store, h.metrics, h.clock.Now, 50000)
	h.bookings = NewBookingService(h.store, h.wallet, rand.New(rand.NewPCG(3, 4)), h.metrics, h.clock.Now)
	return h
}

func (h *harness) balance(t *testing.T) int64 {
	t.Helper()
	wallet, err := h.wallet.GetWallet(context.Background())
	testutil.AssertNoError(t, err)
	return wallet.Balance
}
