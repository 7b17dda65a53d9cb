package pipeline

import (
	"errors"
	"log/slog"
	"time"

	"clima/internal/domain"
	"clima/internal/observability"
)

// RowSource yields the raw rows of one observation file, header already
// removed.
type RowSource interface {
	// Rows returns every data row in file order.
	Rows() ([][]string, error)
	// Path identifies the source in logs and on the resulting Dataset.
	Path() string
}

// Loader builds a Dataset from a RowSource. Rows that fail to parse are
// logged, counted, and dropped; they never abort a load.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader with the given observability.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// Load reads every row from src and parses each one independently. Only
// source-level failures (missing or unreadable file) are returned as
// errors; the caller should treat a dataset with zero records as nothing
// to work with.
func (l *Loader) Load(src RowSource) (*Dataset, error) {
	start := time.Now()

	rows, err := src.Rows()
	if err != nil {
		l.logger.Error("load failed", "path", src.Path(), "error", err)
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for i, fields := range rows {
		rec, err := domain.ParseRow(fields)
		if err != nil {
			// Line numbers are 1-based counting the header line.
			l.logger.Warn("row skipped",
				"path", src.Path(),
				"line", i+2,
				"error", err,
			)
			l.metrics.RowsSkipped.WithLabelValues(skipReason(err)).Inc()
			continue
		}
		records = append(records, rec)
	}

	l.metrics.RecordsLoaded.Add(float64(len(records)))
	l.metrics.DatasetRecords.Set(float64(len(records)))
	l.metrics.LoadDuration.Observe(time.Since(start).Seconds())

	l.logger.Info("dataset loaded",
		"path", src.Path(),
		"records", len(records),
		"skipped", len(rows)-len(records),
	)

	return &Dataset{records: records, path: src.Path(), loadedAt: clock.Now()}, nil
}

// skipReason extracts the metric label for a row parse failure.
func skipReason(err error) string {
	var rowErr *domain.RowError
	if errors.As(err, &rowErr) {
		return string(rowErr.Reason)
	}
	return "unknown"
}
