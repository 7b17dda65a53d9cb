package report_test

import (
	"testing"
	"time"

	"clima/internal/domain"
	"clima/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWettestMonth(t *testing.T) {
	ds := loadDataset(t, [][]string{
		{"10/01/2010", "5.0", "30.0", "20.0", "60", "2.0"},
		{"03/02/2010", "20.0", "30.0", "20.0", "60", "2.0"},
	})

	result, ok := report.WettestMonth(ds)

	require.True(t, ok)
	assert.Equal(t, domain.MonthKey{Month: time.February, Year: 2010}, result.Key)
	assert.Equal(t, 20.0, result.Total)
	assert.Equal(t, "February/2010", result.Key.Label())
}

func TestWettestMonth_AccumulatesWithinMonth(t *testing.T) {
	// Two small January readings together outweigh one February reading.
	ds := loadDataset(t, [][]string{
		{"01/01/2010", "8.0", "30.0", "20.0", "60", "2.0"},
		{"20/01/2010", "7.5", "30.0", "20.0", "60", "2.0"},
		{"03/02/2010", "12.0", "30.0", "20.0", "60", "2.0"},
	})

	result, ok := report.WettestMonth(ds)

	require.True(t, ok)
	assert.Equal(t, domain.MonthKey{Month: time.January, Year: 2010}, result.Key)
	assert.Equal(t, 15.5, result.Total)
}

func TestWettestMonth_SameMonthDifferentYearsAreDistinct(t *testing.T) {
	ds := loadDataset(t, [][]string{
		{"10/01/2010", "9.0", "30.0", "20.0", "60", "2.0"},
		{"10/01/2011", "6.0", "30.0", "20.0", "60", "2.0"},
	})

	result, ok := report.WettestMonth(ds)

	require.True(t, ok)
	assert.Equal(t, 2010, result.Key.Year)
	assert.Equal(t, 9.0, result.Total)
}

func TestWettestMonth_TieGoesToEarliestMonth(t *testing.T) {
	ds := loadDataset(t, [][]string{
		{"05/03/2012", "10.0", "30.0", "20.0", "60", "2.0"},
		{"07/09/2008", "10.0", "30.0", "20.0", "60", "2.0"},
		{"11/06/2008", "10.0", "30.0", "20.0", "60", "2.0"},
	})

	result, ok := report.WettestMonth(ds)

	require.True(t, ok)
	assert.Equal(t, domain.MonthKey{Month: time.June, Year: 2008}, result.Key)
}

func TestWettestMonth_EmptyDataset(t *testing.T) {
	ds := loadDataset(t, nil)

	_, ok := report.WettestMonth(ds)
	assert.False(t, ok)
}
