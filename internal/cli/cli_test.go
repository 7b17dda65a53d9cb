package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clima/internal/config"
	"clima/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "data,precip,tmax,tmin,umid,vento\n" +
	"15/01/2010,5.0,30.1,21.2,60,2.0\n" +
	"10/02/2010,20.0,28.7,20.5,72,3.1\n" +
	"05/06/2011,0.0,18.0,4.0,80,5.5\n"

// newTestCLI builds a CLI over a fixture file, with charts routed to a
// temp dir and output captured in the returned buffer.
func newTestCLI(t *testing.T, csvContent, input string) (*CLI, *bytes.Buffer, *observability.Metrics) {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "observations.csv")
	require.NoError(t, os.WriteFile(dataFile, []byte(csvContent), 0o600))

	cfg := &config.Config{
		DataFile:  dataFile,
		ChartDir:  filepath.Join(dir, "charts"),
		LogLevel:  "error",
		LogFormat: "text",
	}

	metrics := observability.NewMetricsForTesting()
	out := &bytes.Buffer{}
	cli := New(Options{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		Metrics: metrics,
		In:      strings.NewReader(input),
		Out:     out,
	})
	return cli, out, metrics
}

func TestViewCommand(t *testing.T) {
	t.Run("prints records inside the range", func(t *testing.T) {
		cli, out, metrics := newTestCLI(t, fixture, "")

		err := cli.ExecuteArgs([]string{"view",
			"--start-month", "1", "--start-year", "2010",
			"--end-month", "3", "--end-year", "2010",
		})
		require.NoError(t, err)

		assert.Contains(t, out.String(), "15/01/2010")
		assert.Contains(t, out.String(), "10/02/2010")
		assert.NotContains(t, out.String(), "05/06/2011")
		assert.Contains(t, out.String(), "2 observation(s)")
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.QueriesRun.WithLabelValues("view")))
	})

	t.Run("projects the selected profile", func(t *testing.T) {
		cli, out, _ := newTestCLI(t, fixture, "")

		err := cli.ExecuteArgs([]string{"view",
			"--start-month", "1", "--start-year", "2010",
			"--end-month", "3", "--end-year", "2010",
			"--view", "precipitation",
		})
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Precipitation (mm)")
		assert.NotContains(t, out.String(), "Humidity")
	})

	t.Run("rejects an invalid range without loading", func(t *testing.T) {
		cli, _, _ := newTestCLI(t, fixture, "")

		err := cli.ExecuteArgs([]string{"view",
			"--start-month", "5", "--start-year", "2012",
			"--end-month", "1", "--end-year", "2010",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date range")
	})

	t.Run("rejects an unknown profile", func(t *testing.T) {
		cli, _, _ := newTestCLI(t, fixture, "")

		err := cli.ExecuteArgs([]string{"view",
			"--start-month", "1", "--start-year", "2010",
			"--end-month", "3", "--end-year", "2010",
			"--view", "pressure",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown view profile")
	})
}

func TestWettestCommand(t *testing.T) {
	cli, out, _ := newTestCLI(t, fixture, "")

	require.NoError(t, cli.ExecuteArgs([]string{"wettest"}))

	assert.Contains(t, out.String(), "February/2010")
	assert.Contains(t, out.String(), "20.00 mm")
}

func TestTrendCommand(t *testing.T) {
	t.Run("prints averages and writes the chart", func(t *testing.T) {
		cli, out, metrics := newTestCLI(t, fixture, "")

		require.NoError(t, cli.ExecuteArgs([]string{"trend", "--month", "6"}))

		assert.Contains(t, out.String(), "2011: 4.00 °C")
		assert.Contains(t, out.String(), "Overall mean: 4.00 °C")
		assert.Contains(t, out.String(), "min_temp_06.png")
		assert.FileExists(t, filepath.Join(cli.cfg.ChartDir, "min_temp_06.png"))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChartsWritten))
	})

	t.Run("no-chart skips rendering", func(t *testing.T) {
		cli, out, _ := newTestCLI(t, fixture, "")

		require.NoError(t, cli.ExecuteArgs([]string{"trend", "--month", "6", "--no-chart"}))

		assert.NotContains(t, out.String(), ".png")
		assert.NoFileExists(t, filepath.Join(cli.cfg.ChartDir, "min_temp_06.png"))
	})

	t.Run("month with no data reports rather than failing", func(t *testing.T) {
		cli, out, _ := newTestCLI(t, fixture, "")

		require.NoError(t, cli.ExecuteArgs([]string{"trend", "--month", "12"}))

		assert.Contains(t, out.String(), "No observations for December")
	})

	t.Run("out of range month is rejected", func(t *testing.T) {
		cli, _, _ := newTestCLI(t, fixture, "")

		err := cli.ExecuteArgs([]string{"trend", "--month", "13"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid month 13")
	})
}

func TestMissingDataFile(t *testing.T) {
	cli, _, _ := newTestCLI(t, fixture, "")

	err := cli.ExecuteArgs([]string{"wettest", "--data", filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file not found")
}
