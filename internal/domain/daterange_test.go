package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthYearValid(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		valid bool
	}{
		{"january at series start", time.January, 1961, true},
		{"december at series end", time.December, 2016, true},
		{"mid series", time.June, 1990, true},
		{"month zero", time.Month(0), 2000, false},
		{"month thirteen", time.Month(13), 2000, false},
		{"year before series", time.June, 1960, false},
		{"year after series", time.June, 2017, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MonthYear{Month: tt.month, Year: tt.year}
			assert.Equal(t, tt.valid, m.Valid())
		})
	}
}

func TestDateRangeValid(t *testing.T) {
	tests := []struct {
		name                  string
		startMonth, startYear int
		endMonth, endYear     int
		valid                 bool
	}{
		{"ordinary range", 1, 2010, 3, 2010, true},
		{"single month", 6, 2010, 6, 2010, true},
		{"crosses year boundary", 12, 2010, 1, 2011, true},
		{"whole series", 1, 1961, 12, 2016, true},
		{"start after end same year", 5, 2010, 2, 2010, false},
		{"start year after end year", 1, 2012, 12, 2011, false},
		{"start month invalid", 0, 2010, 3, 2010, false},
		{"end month invalid", 1, 2010, 13, 2010, false},
		{"start year below series", 1, 1960, 3, 2010, false},
		{"end year above series", 1, 2010, 3, 2017, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDateRange(tt.startMonth, tt.startYear, tt.endMonth, tt.endYear)
			assert.Equal(t, tt.valid, r.Valid())
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := NewDateRange(1, 2015, 3, 2015)

	tests := []struct {
		name string
		date string
		in   bool
	}{
		{"first day of start month", "01/01/2015", true},
		{"middle of range", "15/02/2015", true},
		{"first day of end month", "01/03/2015", true},
		{"last day before end anchor", "28/02/2015", true},
		{"day after end anchor", "02/03/2015", false},
		{"month after range", "01/04/2015", false},
		{"day before start anchor", "31/12/2014", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := time.Parse(DateLayout, tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.in, r.Contains(d))
		})
	}
}

func TestMonthYearFirstDay(t *testing.T) {
	m := MonthYear{Month: time.March, Year: 2015}
	assert.Equal(t, time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC), m.FirstDay())
}

func TestMonthYearBefore(t *testing.T) {
	jan2010 := MonthYear{Month: time.January, Year: 2010}
	feb2010 := MonthYear{Month: time.February, Year: 2010}
	jan2011 := MonthYear{Month: time.January, Year: 2011}

	assert.True(t, jan2010.Before(feb2010))
	assert.True(t, feb2010.Before(jan2011))
	assert.False(t, jan2011.Before(jan2010))
	assert.False(t, jan2010.Before(jan2010))
}
