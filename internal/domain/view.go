package domain

import "fmt"

// ViewProfile selects which measurement fields a period query projects for
// display. Profile numbers match the interactive menu options.
type ViewProfile int

const (
	ViewAll           ViewProfile = 1
	ViewPrecipitation ViewProfile = 2
	ViewTemperature   ViewProfile = 3
	ViewHumidityWind  ViewProfile = 4
)

// Valid reports whether p is one of the four defined profiles.
func (p ViewProfile) Valid() bool {
	return p >= ViewAll && p <= ViewHumidityWind
}

func (p ViewProfile) String() string {
	switch p {
	case ViewAll:
		return "all"
	case ViewPrecipitation:
		return "precipitation"
	case ViewTemperature:
		return "temperature"
	case ViewHumidityWind:
		return "humidity-wind"
	default:
		return fmt.Sprintf("ViewProfile(%d)", int(p))
	}
}

// ParseViewProfile resolves a profile name as accepted on the command
// line. Names match String.
func ParseViewProfile(s string) (ViewProfile, error) {
	switch s {
	case "all":
		return ViewAll, nil
	case "precipitation":
		return ViewPrecipitation, nil
	case "temperature":
		return ViewTemperature, nil
	case "humidity-wind":
		return ViewHumidityWind, nil
	default:
		return 0, fmt.Errorf("unknown view profile %q (want all, precipitation, temperature or humidity-wind)", s)
	}
}

// Columns returns the display headers for the projected value fields, in
// the order Values emits them. The date column is not included; every view
// leads with the date.
func (p ViewProfile) Columns() []string {
	switch p {
	case ViewPrecipitation:
		return []string{"Precipitation (mm)"}
	case ViewTemperature:
		return []string{"Max Temp (°C)", "Min Temp (°C)"}
	case ViewHumidityWind:
		return []string{"Humidity (%)", "Wind (m/s)"}
	default:
		return []string{"Precipitation (mm)", "Max Temp (°C)", "Min Temp (°C)", "Humidity (%)", "Wind (m/s)"}
	}
}

// Values projects the record's measurements for this profile, aligned with
// Columns.
func (p ViewProfile) Values(r Record) []float64 {
	switch p {
	case ViewPrecipitation:
		return []float64{r.Precipitation}
	case ViewTemperature:
		return []float64{r.TempMax, r.TempMin}
	case ViewHumidityWind:
		return []float64{r.Humidity, r.WindSpeed}
	default:
		return []float64{r.Precipitation, r.TempMax, r.TempMin, r.Humidity, r.WindSpeed}
	}
}
