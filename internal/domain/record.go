package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the observation date format: two-digit day, two-digit
// month, four-digit year. time.Parse rejects single-digit days and months
// with this layout, which is intentional.
const DateLayout = "02/01/2006"

// minColumns is the smallest row that still carries every measurement.
// Station exports sometimes append extra columns; those are ignored.
const minColumns = 6

// Column positions within a raw CSV row.
const (
	colDate = iota
	colPrecipitation
	colTempMax
	colTempMin
	colHumidity
	colWindSpeed
)

// Record is one day of station observations.
type Record struct {
	Date          time.Time
	Precipitation float64 // mm accumulated over the day
	TempMax       float64 // °C
	TempMin       float64 // °C
	Humidity      float64 // relative humidity, %
	WindSpeed     float64 // m/s
}

// SkipReason classifies why a row could not be parsed. Values double as
// metric label values, so they stay lowercase snake_case.
type SkipReason string

const (
	SkipTooFewColumns SkipReason = "too_few_columns"
	SkipBadDate       SkipReason = "bad_date"
	SkipBadNumber     SkipReason = "bad_number"
)

// RowError reports a single unparseable row. It carries enough context to
// log the skip and account for it, without aborting the surrounding file.
type RowError struct {
	Reason SkipReason
	Field  string // offending column name, empty for too_few_columns
	Err    error  // underlying parse error, may be nil
}

func (e *RowError) Error() string {
	if e.Field == "" {
		if e.Err == nil {
			return string(e.Reason)
		}
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: field %q: %v", e.Reason, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// numericColumns maps each measurement column to its name, in row order
// after the date. Used by ParseRow for error context.
var numericColumns = [...]struct {
	index int
	name  string
}{
	{colPrecipitation, "precipitation"},
	{colTempMax, "temp_max"},
	{colTempMin, "temp_min"},
	{colHumidity, "humidity"},
	{colWindSpeed, "wind_speed"},
}

// ParseRow converts one raw CSV row into a Record. On failure it returns a
// *RowError describing the first problem found: too few columns, then the
// date, then each numeric field left to right. Surrounding whitespace in
// fields is tolerated.
func ParseRow(fields []string) (Record, error) {
	if len(fields) < minColumns {
		return Record{}, &RowError{
			Reason: SkipTooFewColumns,
			Err:    fmt.Errorf("got %d columns, need %d", len(fields), minColumns),
		}
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(fields[colDate]))
	if err != nil {
		return Record{}, &RowError{Reason: SkipBadDate, Field: "date", Err: err}
	}

	var values [len(numericColumns)]float64
	for i, col := range numericColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[col.index]), 64)
		if err != nil {
			return Record{}, &RowError{Reason: SkipBadNumber, Field: col.name, Err: err}
		}
		values[i] = v
	}

	return Record{
		Date:          date,
		Precipitation: values[0],
		TempMax:       values[1],
		TempMin:       values[2],
		Humidity:      values[3],
		WindSpeed:     values[4],
	}, nil
}
