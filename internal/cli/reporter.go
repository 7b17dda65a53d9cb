package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"clima/internal/domain"
	"clima/internal/report"
)

// printTable writes the projected rows as a fixed-width table: a date
// column followed by the profile's value columns, values to one decimal.
func (c *CLI) printTable(rows []report.Row, profile domain.ViewProfile) {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No observations in the requested range.")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)

	fmt.Fprint(w, "Date")
	for _, col := range profile.Columns() {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprint(w, row.Date.Format(domain.DateLayout))
		for _, v := range row.Values {
			fmt.Fprintf(w, "\t%.1f", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Fprintf(c.out, "%d observation(s)\n", len(rows))
}

func (c *CLI) printWettest(result report.MonthPrecipitation) {
	fmt.Fprintf(c.out, "Wettest month: %s with %.2f mm accumulated precipitation\n",
		result.Key.Label(), result.Total)
}

// printTrend writes one line per year and the unweighted mean of the
// per-year averages.
func (c *CLI) printTrend(month int, trend []report.YearAverage) {
	fmt.Fprintf(c.out, "Average minimum temperature in %s, %d-%d:\n",
		monthName(month), report.TrendStartYear, report.TrendEndYear)
	for _, entry := range trend {
		fmt.Fprintf(c.out, "  %d: %.2f °C\n", entry.Key.Year, entry.Average)
	}
	if mean, ok := report.OverallMean(trend); ok {
		fmt.Fprintf(c.out, "Overall mean: %.2f °C\n", mean)
	}
}

func monthName(month int) string {
	return time.Month(month).String()
}
