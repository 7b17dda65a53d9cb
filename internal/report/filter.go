// Package report implements the query side of the dataset: period
// filtering with field projection, and the two monthly aggregations.
package report

import (
	"time"

	"clima/internal/domain"
	"clima/internal/pipeline"
)

// Row is one projected observation prepared for display.
type Row struct {
	Date   time.Time
	Values []float64
}

// FilterRange returns the records whose date falls inside r, preserving
// dataset order. The range must already be validated; neither the filter
// nor the aggregations re-check it.
func FilterRange(ds *pipeline.Dataset, r domain.DateRange) []domain.Record {
	var out []domain.Record
	for _, rec := range ds.Records() {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// Project applies the view profile to each record, keeping order. It never
// touches the records themselves.
func Project(records []domain.Record, profile domain.ViewProfile) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{Date: rec.Date, Values: profile.Values(rec)})
	}
	return rows
}

// FilterProject filters ds to the range and projects the survivors in one
// step.
func FilterProject(ds *pipeline.Dataset, r domain.DateRange, profile domain.ViewProfile) []Row {
	return Project(FilterRange(ds, r), profile)
}
