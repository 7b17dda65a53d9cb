package report

import (
	"sort"
	"time"

	"clima/internal/domain"
	"clima/internal/pipeline"
)

// The minimum-temperature trend always covers this year band, no matter
// how far the dataset extends.
const (
	TrendStartYear = 2006
	TrendEndYear   = 2016
)

// YearAverage is one trend entry: the average minimum temperature of the
// target month in one year.
type YearAverage struct {
	Key     domain.MonthKey
	Average float64
}

// MinTempTrend averages the minimum temperature of the given month for
// each year in [TrendStartYear, TrendEndYear], sorted by year. A year with
// no matching records contributes no entry, never a zero. A month outside
// 1..12 yields an empty result rather than an error; so does a month with
// no data in the band.
func MinTempTrend(ds *pipeline.Dataset, month int) []YearAverage {
	if month < 1 || month > 12 {
		return nil
	}
	target := time.Month(month)

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, rec := range ds.Records() {
		year := rec.Date.Year()
		if year < TrendStartYear || year > TrendEndYear || rec.Date.Month() != target {
			continue
		}
		sums[year] += rec.TempMin
		counts[year]++
	}
	if len(sums) == 0 {
		return nil
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	trend := make([]YearAverage, 0, len(years))
	for _, year := range years {
		trend = append(trend, YearAverage{
			Key:     domain.MonthKey{Month: target, Year: year},
			Average: sums[year] / float64(counts[year]),
		})
	}
	return trend
}

// OverallMean is the unweighted mean of the per-year averages: every year
// counts the same regardless of how many records produced it. ok is false
// for an empty trend.
func OverallMean(trend []YearAverage) (float64, bool) {
	if len(trend) == 0 {
		return 0, false
	}
	var sum float64
	for _, entry := range trend {
		sum += entry.Average
	}
	return sum / float64(len(trend)), true
}
