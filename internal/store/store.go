// Package store provides the persisted key/value store the booking services
// read and write. Every value is a whole JSON document: callers load a key,
// modify the decoded value and write it back in one piece.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skyvoyager/internal/logger"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Well-known keys.
const (
	KeyBookings        = "bookings"
	KeyWallet          = "wallet"
	KeyAirportData     = "airportData"
	KeyUser            = "user"
	KeyUsers           = "users"
	KeyDestinations    = "destinations"
	KeyBookingRequests = "bookingRequests"
)

// Store is a whole-value key/value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// FlightsKey returns the key of the generated catalog for one route and date.
func FlightsKey(from, to, date string) string {
	return fmt.Sprintf("flights_%s_%s_%s", from, to, date)
}

// GetJSON decodes the value under key into dst. It reports false when the key
// is absent. A value that fails to decode is logged and treated as absent so
// that a corrupted entry resets instead of wedging every later read.
func GetJSON[T any](ctx context.Context, s Store, key string, dst *T) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store get %q: %w", key, err)
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logger.Get().Warnw("discarding corrupted store value",
			"key", key,
			"error", err,
		)
		return false, nil
	}
	*dst = decoded
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}
