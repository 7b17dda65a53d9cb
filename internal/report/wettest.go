package report

import (
	"clima/internal/domain"
	"clima/internal/pipeline"
)

// MonthPrecipitation is the wettest-month result: one calendar month and
// its accumulated precipitation in millimetres.
type MonthPrecipitation struct {
	Key   domain.MonthKey
	Total float64
}

// WettestMonth accumulates precipitation per calendar month across the
// whole dataset and returns the month with the largest total. Ties go to
// the chronologically earliest month, which keeps the result independent
// of map iteration order. ok is false when the dataset has no records.
func WettestMonth(ds *pipeline.Dataset) (MonthPrecipitation, bool) {
	totals := make(map[domain.MonthKey]float64)
	for _, rec := range ds.Records() {
		totals[domain.KeyFor(rec.Date)] += rec.Precipitation
	}
	if len(totals) == 0 {
		return MonthPrecipitation{}, false
	}

	var best MonthPrecipitation
	first := true
	for key, total := range totals {
		switch {
		case first, total > best.Total:
			best = MonthPrecipitation{Key: key, Total: total}
			first = false
		case total == best.Total && key.Before(best.Key):
			best.Key = key
		}
	}
	return best, true
}
