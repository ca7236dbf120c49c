// Package pricing implements demand-based flight pricing.
//
// Each read of a flight is a "view". Views that arrive close together push
// the flight into a hot state; the third view inside the hot window applies
// a single 10% surge that lasts until the flight goes stale and resets.
package pricing

import (
	"time"

	"skyvoyager/internal/models"
)

const (
	// StaleWindow is the idle time after which view history expires.
	StaleWindow = 10 * time.Minute
	// HotWindow is the gap within which a view counts toward the surge.
	HotWindow = 5 * time.Minute
	// SurgeThreshold is the view count at which the surge applies.
	SurgeThreshold = 3
	// SurgePercent is the surge multiplier expressed in percent (1.10).
	SurgePercent = 110
)

// Outcome describes which transition Evaluate took.
type Outcome int

const (
	// OutcomeReset means the flight was cold or stale and was reset to its base price.
	OutcomeReset Outcome = iota
	// OutcomeViewed means a hot view was counted without changing the price.
	OutcomeViewed
	// OutcomeSurged means a hot view crossed the threshold and applied the surge.
	OutcomeSurged
	// OutcomeCooled means the view fell in the cooling band; only freshness moved.
	OutcomeCooled
)

// String returns the outcome name used in logs and metrics labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeReset:
		return "reset"
	case OutcomeViewed:
		return "viewed"
	case OutcomeSurged:
		return "surged"
	case OutcomeCooled:
		return "cooled"
	default:
		return "unknown"
	}
}

// SurgedPrice returns floor(base × 1.1).
func SurgedPrice(base int64) int64 {
	return base * SurgePercent / 100
}

// Evaluate applies one view at now to flight and returns the updated copy.
// It is pure: the input is not modified and the same (flight, now) always
// yields the same result. OutcomeSurged is the caller's cue to notify the
// traveller that the price went up.
//
// flight.BasePrice must be positive; Evaluate does not check it.
func Evaluate(flight models.Flight, now time.Time) (models.Flight, Outcome) {
	updated := flight.Snapshot()
	nowMs := now.UnixMilli()
	updated.LastViewed = &nowMs

	if flight.LastViewed == nil {
		return reset(updated), OutcomeReset
	}

	elapsed := time.Duration(nowMs-*flight.LastViewed) * time.Millisecond

	switch {
	case elapsed >= StaleWindow:
		return reset(updated), OutcomeReset

	case elapsed < HotWindow:
		updated.ViewCount++
		if updated.ViewCount >= SurgeThreshold && updated.CurrentPrice == updated.BasePrice {
			updated.CurrentPrice = SurgedPrice(updated.BasePrice)
			return updated, OutcomeSurged
		}
		return updated, OutcomeViewed

	default:
		return updated, OutcomeCooled
	}
}

func reset(f models.Flight) models.Flight {
	f.CurrentPrice = f.BasePrice
	f.ViewCount = 1
	return f
}
