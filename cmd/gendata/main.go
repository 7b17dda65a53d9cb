// Command gendata writes a synthetic INMET-style observation CSV for
// development and testing. It reads the file back through the real loader
// so the generated fixture is guaranteed to parse the way production data
// does.
//
// Usage:
//
//	go run ./cmd/gendata -out data/observations.csv -start-year 2006 -end-year 2016
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	csvadapter "clima/internal/adapter/csv"
	"clima/internal/domain"
	"clima/internal/observability"
	"clima/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	startYear := flag.Int("start-year", 2006, "first year of generated observations")
	endYear := flag.Int("end-year", 2016, "last year of generated observations")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible fixtures")
	malformed := flag.Int("malformed", 0, "number of malformed rows to sprinkle in")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *startYear < domain.MinYear || *endYear > domain.MaxYear || *startYear > *endYear {
		return fmt.Errorf("year range %d-%d outside series %d-%d", *startYear, *endYear, domain.MinYear, domain.MaxYear)
	}

	rng := rand.New(rand.NewSource(*seed))

	rows, wellFormed := generate(rng, *startYear, *endYear, *malformed)
	if err := writeCSV(*out, rows); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d data rows to %s", len(rows), *out)

	// Load the fixture through the real pipeline to prove it parses.
	loader := pipeline.NewLoader(slog.New(slog.NewTextHandler(os.Stderr, nil)), observability.NewMetricsForTesting())
	ds, err := loader.Load(csvadapter.NewSource(*out))
	if err != nil {
		return fmt.Errorf("verifying fixture: %w", err)
	}
	if ds.Len() != wellFormed {
		return fmt.Errorf("fixture verification: loaded %d records, expected %d", ds.Len(), wellFormed)
	}
	log.Printf("verified: %d records load cleanly, %d rows skip as intended", ds.Len(), len(rows)-ds.Len())
	return nil
}

// generate produces one row per day across the year range, with seasonal
// temperature swing for a southern-hemisphere station. Returns the rows
// and how many of them are well-formed.
func generate(rng *rand.Rand, startYear, endYear, malformed int) ([][]string, int) {
	var rows [][]string

	day := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	for !day.After(end) {
		// Coldest around June/July, hottest around January.
		seasonal := 10.0 * seasonFactor(day)
		tempMin := 12.0 - seasonal + rng.Float64()*4
		tempMax := tempMin + 6 + rng.Float64()*6

		precip := 0.0
		if rng.Float64() < 0.35 {
			precip = rng.Float64() * 40
		}

		rows = append(rows, []string{
			day.Format(domain.DateLayout),
			fmt.Sprintf("%.1f", precip),
			fmt.Sprintf("%.1f", tempMax),
			fmt.Sprintf("%.1f", tempMin),
			fmt.Sprintf("%.0f", 50+rng.Float64()*45),
			fmt.Sprintf("%.1f", rng.Float64()*8),
		})
		day = day.AddDate(0, 0, 1)
	}
	wellFormed := len(rows)

	// Malformed rows exercise every skip reason the parser knows.
	bad := [][]string{
		{"15/01/2010", "3.2"},
		{"31/02/2010", "0.0", "25.0", "15.0", "70", "2.0"},
		{"2010-01-15", "0.0", "25.0", "15.0", "70", "2.0"},
		{"15/01/2010", "n/a", "25.0", "15.0", "70", "2.0"},
	}
	for i := 0; i < malformed; i++ {
		rows = append(rows, bad[i%len(bad)])
	}

	return rows, wellFormed
}

// seasonFactor is +1 at midwinter (southern hemisphere July) and -1 at
// midsummer.
func seasonFactor(day time.Time) float64 {
	doy := float64(day.YearDay())
	// Day ~182 is early July.
	return 1 - 2*abs(doy-182)/182
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"data", "precip", "maxtemp", "mintemp", "umid_relativa", "vel_vento"}); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
