package pipeline

import (
	"time"

	"clima/internal/domain"
)

// Dataset is the in-memory observation collection built from one source
// file. It is constructed once by Loader.Load and never mutated afterwards,
// so any number of queries may share it without coordination.
type Dataset struct {
	records  []domain.Record
	path     string
	loadedAt time.Time
}

// Records returns the observations in source-file order. The returned
// slice is shared; callers must not modify it.
func (d *Dataset) Records() []domain.Record { return d.records }

// Len returns the number of observations.
func (d *Dataset) Len() int { return len(d.records) }

// Path returns the source file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// LoadedAt returns when the load completed.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
