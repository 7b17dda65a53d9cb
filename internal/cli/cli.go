// Package cli wires the query engine into a command-line interface: a
// cobra root command whose default action is the interactive menu, plus
// one subcommand per query for scripted use. All console output goes
// through an injected writer so tests can capture transcripts.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"clima/internal/adapter/chart"
	"clima/internal/adapter/csv"
	"clima/internal/config"
	"clima/internal/domain"
	"clima/internal/observability"
	"clima/internal/pipeline"
	"clima/internal/report"
)

// CLI is the assembled command-line interface.
type CLI struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics

	in  io.Reader
	out io.Writer

	dataFile string // --data flag, overrides cfg.DataFile when set
	rootCmd  *cobra.Command
}

// Options configure a CLI. In and Out default to stdin and stdout.
type Options struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	In      io.Reader
	Out     io.Writer
}

// New assembles the command tree.
func New(opts Options) *CLI {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cli := &CLI{
		cfg:     opts.Config,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		in:      opts.In,
		out:     opts.Out,
	}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command tree with os.Args.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// ExecuteArgs runs the command tree with explicit arguments. Used by tests.
func (c *CLI) ExecuteArgs(args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.Execute()
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clima",
		Short: "Historical weather observation reports",
		Long: "clima loads a daily weather observation export and answers period\n" +
			"display and monthly aggregation queries over it. Without a subcommand\n" +
			"it starts the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.loadDataset()
			if err != nil {
				return err
			}
			return c.runMenu(ds)
		},
	}

	cmd.PersistentFlags().StringVar(&c.dataFile, "data", "", "observation CSV file (overrides DATA_FILE)")

	cmd.AddCommand(c.newViewCmd())
	cmd.AddCommand(c.newWettestCmd())
	cmd.AddCommand(c.newTrendCmd())

	return cmd
}

func (c *CLI) newViewCmd() *cobra.Command {
	var (
		startMonth, startYear int
		endMonth, endYear     int
		profileName           string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print observations inside a month/year range",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := domain.ParseViewProfile(profileName)
			if err != nil {
				return err
			}

			dr := domain.NewDateRange(startMonth, startYear, endMonth, endYear)
			if !dr.Valid() {
				return fmt.Errorf("invalid date range %02d/%d to %02d/%d (months 1-12, years %d-%d, start not after end)",
					startMonth, startYear, endMonth, endYear, domain.MinYear, domain.MaxYear)
			}

			ds, err := c.loadDataset()
			if err != nil {
				return err
			}

			c.metrics.QueriesRun.WithLabelValues("view").Inc()
			c.printTable(report.FilterProject(ds, dr, profile), profile)
			return nil
		},
	}

	cmd.Flags().IntVar(&startMonth, "start-month", 0, "start month (1-12)")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "start year")
	cmd.Flags().IntVar(&endMonth, "end-month", 0, "end month (1-12)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "end year")
	cmd.Flags().StringVar(&profileName, "view", "all", "view profile: all, precipitation, temperature or humidity-wind")

	for _, name := range []string{"start-month", "start-year", "end-month", "end-year"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (c *CLI) newWettestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wettest",
		Short: "Report the calendar month with the highest cumulative precipitation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.loadDataset()
			if err != nil {
				return err
			}

			c.metrics.QueriesRun.WithLabelValues("wettest").Inc()
			result, ok := report.WettestMonth(ds)
			if !ok {
				return errors.New("no observations loaded")
			}
			c.printWettest(result)
			return nil
		},
	}
}

func (c *CLI) newTrendCmd() *cobra.Command {
	var (
		month   int
		noChart bool
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Report per-year average minimum temperature for one month",
		Long: fmt.Sprintf("Averages the minimum temperature of the chosen month for each year\n"+
			"in %d-%d and renders the result as a bar chart.", report.TrendStartYear, report.TrendEndYear),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d (want 1-12)", month)
			}

			ds, err := c.loadDataset()
			if err != nil {
				return err
			}

			c.metrics.QueriesRun.WithLabelValues("trend").Inc()
			trend := report.MinTempTrend(ds, month)
			if len(trend) == 0 {
				fmt.Fprintf(c.out, "No observations for %s in %d-%d.\n",
					monthName(month), report.TrendStartYear, report.TrendEndYear)
				return nil
			}

			c.printTrend(month, trend)
			if noChart {
				return nil
			}
			return c.writeTrendChart(month, trend)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "target month (1-12)")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "skip rendering the PNG chart")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

// loadDataset builds the session dataset from the configured source file.
// A missing or unreadable file comes back as an error the caller prints;
// the process then has nothing to query.
func (c *CLI) loadDataset() (*pipeline.Dataset, error) {
	path := c.cfg.DataFile
	if c.dataFile != "" {
		path = c.dataFile
	}

	loader := pipeline.NewLoader(c.logger, c.metrics)
	return loader.Load(csv.NewSource(path))
}

// writeTrendChart renders the trend as a bar chart under CHART_DIR and
// prints where it landed.
func (c *CLI) writeTrendChart(month int, trend []report.YearAverage) error {
	bars := make([]chart.Bar, 0, len(trend))
	for _, entry := range trend {
		bars = append(bars, chart.Bar{Label: fmt.Sprintf("%d", entry.Key.Year), Value: entry.Average})
	}

	path := filepath.Join(c.cfg.ChartDir, fmt.Sprintf("min_temp_%02d.png", month))
	title := fmt.Sprintf("Average Minimum Temperature in %s, %d-%d",
		monthName(month), report.TrendStartYear, report.TrendEndYear)

	if err := chart.WriteBarChart(path, title, "°C", bars); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	c.metrics.ChartsWritten.Inc()
	fmt.Fprintf(c.out, "Chart written to %s\n", path)
	return nil
}
