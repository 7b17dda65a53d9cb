package domain

import "time"

// Year bounds of the station series. Queries outside this window are
// rejected rather than silently returning nothing.
const (
	MinYear = 1961
	MaxYear = 2016
)

// MonthYear identifies a calendar month, e.g. March 2015.
type MonthYear struct {
	Month time.Month
	Year  int
}

// Valid reports whether the month is a real month and the year falls
// inside the station series.
func (m MonthYear) Valid() bool {
	return m.Month >= time.January && m.Month <= time.December &&
		m.Year >= MinYear && m.Year <= MaxYear
}

// FirstDay returns midnight UTC on the first day of the month.
func (m MonthYear) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether m is chronologically before other.
func (m MonthYear) Before(other MonthYear) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// DateRange is an inclusive month interval for period queries.
type DateRange struct {
	Start MonthYear
	End   MonthYear
}

// NewDateRange builds a range from the raw month and year integers a
// caller collects, without validating them.
func NewDateRange(startMonth, startYear, endMonth, endYear int) DateRange {
	return DateRange{
		Start: MonthYear{Month: time.Month(startMonth), Year: startYear},
		End:   MonthYear{Month: time.Month(endMonth), Year: endYear},
	}
}

// Valid reports whether both endpoints are inside the series and the start
// does not come after the end. Equal endpoints are a valid one-month range.
func (r DateRange) Valid() bool {
	if !r.Start.Valid() || !r.End.Valid() {
		return false
	}
	return !r.End.Before(r.Start)
}

// Contains reports whether t falls inside the range. Both endpoints are
// anchored to the first day of their month, so the end month contributes
// only its first day. A range January..March 2015 therefore includes
// 15/02/2015 and 01/03/2015 but not 02/03/2015. Callers that want whole
// trailing months extend End by one month.
func (r DateRange) Contains(t time.Time) bool {
	start := r.Start.FirstDay()
	end := r.End.FirstDay()
	return !t.Before(start) && !t.After(end)
}
