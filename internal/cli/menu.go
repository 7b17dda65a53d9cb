package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"clima/internal/domain"
	"clima/internal/pipeline"
	"clima/internal/report"
)

// runMenu drives the interactive session over the loaded dataset. The
// dataset is immutable, so every menu option queries the same collection;
// invalid input re-prompts and never ends the session. The loop exits on
// the quit option or when the input stream ends.
func (c *CLI) runMenu(ds *pipeline.Dataset) error {
	if ds.Len() == 0 {
		fmt.Fprintln(c.out, "No observations loaded; nothing to do.")
		return nil
	}
	fmt.Fprintf(c.out, "Loaded %d observations from %s\n", ds.Len(), ds.Path())

	in := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "\n"+
			"1) Display observations for a period\n"+
			"2) Wettest month\n"+
			"3) Average minimum temperature of a month, per year\n"+
			"4) Quit\n"+
			"Choose an option: ")

		line, ok := readLine(in)
		if !ok {
			return nil
		}

		switch line {
		case "1":
			c.menuView(in, ds)
		case "2":
			c.metrics.QueriesRun.WithLabelValues("wettest").Inc()
			if result, ok := report.WettestMonth(ds); ok {
				c.printWettest(result)
			}
		case "3":
			c.menuTrend(in, ds)
		case "4":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown option %q; choose 1-4.\n", line)
		}
	}
}

// menuView collects a date range and view profile, re-prompting until both
// are valid, then prints the filtered table.
func (c *CLI) menuView(in *bufio.Scanner, ds *pipeline.Dataset) {
	var dr domain.DateRange
	for {
		startMonth, ok := c.promptInt(in, "Start month (1-12): ")
		if !ok {
			return
		}
		startYear, ok := c.promptInt(in, fmt.Sprintf("Start year (%d-%d): ", domain.MinYear, domain.MaxYear))
		if !ok {
			return
		}
		endMonth, ok := c.promptInt(in, "End month (1-12): ")
		if !ok {
			return
		}
		endYear, ok := c.promptInt(in, fmt.Sprintf("End year (%d-%d): ", domain.MinYear, domain.MaxYear))
		if !ok {
			return
		}

		dr = domain.NewDateRange(startMonth, startYear, endMonth, endYear)
		if dr.Valid() {
			break
		}
		fmt.Fprintln(c.out, "Invalid date range; try again.")
	}

	var profile domain.ViewProfile
	for {
		choice, ok := c.promptInt(in, "Fields: 1) all  2) precipitation  3) temperatures  4) humidity and wind: ")
		if !ok {
			return
		}
		profile = domain.ViewProfile(choice)
		if profile.Valid() {
			break
		}
		fmt.Fprintln(c.out, "Choose a field option between 1 and 4.")
	}

	c.metrics.QueriesRun.WithLabelValues("view").Inc()
	c.printTable(report.FilterProject(ds, dr, profile), profile)
}

// menuTrend collects the target month, prints the per-year averages, and
// renders the chart.
func (c *CLI) menuTrend(in *bufio.Scanner, ds *pipeline.Dataset) {
	var month int
	for {
		m, ok := c.promptInt(in, "Month (1-12): ")
		if !ok {
			return
		}
		if m >= 1 && m <= 12 {
			month = m
			break
		}
		fmt.Fprintln(c.out, "Month must be between 1 and 12.")
	}

	c.metrics.QueriesRun.WithLabelValues("trend").Inc()
	trend := report.MinTempTrend(ds, month)
	if len(trend) == 0 {
		fmt.Fprintf(c.out, "No observations for %s in %d-%d.\n",
			monthName(month), report.TrendStartYear, report.TrendEndYear)
		return
	}

	c.printTrend(month, trend)
	if err := c.writeTrendChart(month, trend); err != nil {
		c.logger.Error("chart failed", "error", err)
		fmt.Fprintf(c.out, "Could not render chart: %v\n", err)
	}
}

// promptInt prompts until the user types an integer. ok is false once the
// input stream ends.
func (c *CLI) promptInt(in *bufio.Scanner, prompt string) (int, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		line, ok := readLine(in)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "%q is not a number.\n", line)
			continue
		}
		return n, true
	}
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
