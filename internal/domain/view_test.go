package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewProfileValid(t *testing.T) {
	assert.True(t, ViewAll.Valid())
	assert.True(t, ViewPrecipitation.Valid())
	assert.True(t, ViewTemperature.Valid())
	assert.True(t, ViewHumidityWind.Valid())
	assert.False(t, ViewProfile(0).Valid())
	assert.False(t, ViewProfile(5).Valid())
}

func TestParseViewProfile(t *testing.T) {
	tests := []struct {
		in      string
		profile ViewProfile
	}{
		{"all", ViewAll},
		{"precipitation", ViewPrecipitation},
		{"temperature", ViewTemperature},
		{"humidity-wind", ViewHumidityWind},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseViewProfile(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.profile, p)
			assert.Equal(t, tt.in, p.String())
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseViewProfile("pressure")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pressure")
	})
}

func TestViewProfileProjection(t *testing.T) {
	rec := Record{
		Precipitation: 1.5,
		TempMax:       30.0,
		TempMin:       18.0,
		Humidity:      70.0,
		WindSpeed:     2.5,
	}

	tests := []struct {
		profile ViewProfile
		values  []float64
	}{
		{ViewAll, []float64{1.5, 30.0, 18.0, 70.0, 2.5}},
		{ViewPrecipitation, []float64{1.5}},
		{ViewTemperature, []float64{30.0, 18.0}},
		{ViewHumidityWind, []float64{70.0, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			values := tt.profile.Values(rec)
			assert.Equal(t, tt.values, values)
			assert.Len(t, tt.profile.Columns(), len(values), "headers must align with projected values")
		})
	}
}
