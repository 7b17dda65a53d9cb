package domain

import (
	"fmt"
	"time"
)

// MonthKey groups records of the same calendar month for aggregation.
// Two keys are equal iff month and year match, so the struct is usable
// directly as a map key.
type MonthKey struct {
	Month time.Month
	Year  int
}

// KeyFor derives the grouping key from an observation date.
func KeyFor(t time.Time) MonthKey {
	return MonthKey{Month: t.Month(), Year: t.Year()}
}

// Before reports whether k is chronologically before other. Used to break
// aggregation ties deterministically in favor of the earliest month.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Label renders the key for display, e.g. "January/2010". Month names are
// the English names from the time package.
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s/%d", k.Month, k.Year)
}

// Compact renders the key with no separator, e.g. "January2007". The
// minimum-temperature report keeps this historical label format; it is
// unambiguous there because that report always filters to a single month.
func (k MonthKey) Compact() string {
	return fmt.Sprintf("%s%d", k.Month, k.Year)
}
