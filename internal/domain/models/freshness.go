package models

import (
	"math"
	"time"

	"github.com/mbodj/frigo/pkg/dates"
)

// Freshness is the three-level expiration urgency derived from an item's
// expiration date, plus an unknown class for unparseable dates.
type Freshness string

const (
	FreshnessUnknown Freshness = "unknown"
	FreshnessExpired Freshness = "expired"
	FreshnessSoon    Freshness = "soon"
	FreshnessFresh   Freshness = "fresh"
)

// soonWindowDays is the inclusive upper bound of the "expiring soon" window.
const soonWindowDays = 3

// ClassifyFreshness maps an expiration string to its freshness class relative
// to the given reference day. Unparseable input yields FreshnessUnknown so an
// unknown expiration is never treated as expiring today.
func ClassifyFreshness(exp string, today time.Time) Freshness {
	expDate, ok := dates.ParseFlexible(exp)
	if !ok {
		return FreshnessUnknown
	}

	diff := expDate.Sub(dates.StartOfDay(today))
	diffDays := int(math.Floor(diff.Hours() / 24))

	switch {
	case diffDays < 0:
		return FreshnessExpired
	case diffDays <= soonWindowDays:
		return FreshnessSoon
	default:
		return FreshnessFresh
	}
}

// Color returns the fixed display color associated with the class.
func (f Freshness) Color() string {
	switch f {
	case FreshnessExpired:
		return "#dc2626"
	case FreshnessSoon:
		return "#ca8a04"
	case FreshnessFresh:
		return "#16a34a"
	default:
		return "#6b7280"
	}
}
