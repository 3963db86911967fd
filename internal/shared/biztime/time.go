// Package biztime resolves calendar dates in the exchange's business timezone.
// Rates and records are stored in UTC; the business timezone only decides
// which calendar day a moment belongs to, e.g. for historical series labels.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the timezone the exchange quotes in.
	DefaultTimezone = "Asia/Tehran"

	// DateLayout is the YYYY-MM-DD layout used on the wire.
	DateLayout = "2006-01-02"
)

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}

	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}

	if err := Init(""); err != nil {
		// tzdata missing on the host; fall back to a fixed +03:30 offset.
		fixed := time.FixedZone("IRST", 3*60*60+30*60)
		mu.Lock()
		bizLocation = fixed
		mu.Unlock()
		return fixed
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDay returns midnight of t's calendar day in the business timezone.
func StartOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
}

// StartOfDayUTC is StartOfDay converted to UTC for storage queries.
func StartOfDayUTC(t time.Time) time.Time {
	return StartOfDay(t).UTC()
}

// Today returns the start of the current business day.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// FormatDate renders t as YYYY-MM-DD in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
