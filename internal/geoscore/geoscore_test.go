package geoscore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susu3304/geoguess/internal/apperr"
)

var landmarks = []Point{
	{48.8584, 2.2945},
	{40.7580, -73.9855},
	{35.6762, 139.6503},
	{-33.8568, 151.2153},
	{-22.9519, -43.2105},
	{-13.1631, -72.5450},
	{52.5200, 13.4050},
}

func TestDistanceKm(t *testing.T) {
	quarter := math.Pi / 2 * EarthRadiusKm
	oneDegree := math.Pi / 180 * EarthRadiusKm

	tests := []struct {
		name  string
		a, b  Point
		want  float64
		delta float64
	}{
		{"same point", Point{48.8584, 2.2945}, Point{48.8584, 2.2945}, 0, 0},
		{"origin", Point{0, 0}, Point{0, 0}, 0, 0},
		{"quarter of the equator", Point{0, 0}, Point{0, 90}, quarter, 1e-6},
		{"equator to pole", Point{0, 0}, Point{90, 0}, quarter, 1e-6},
		{"pole to pole", Point{90, 0}, Point{-90, 0}, MaxDistanceKm, 1e-6},
		{"antipodes on the equator", Point{0, 0}, Point{0, 180}, MaxDistanceKm, 1e-6},
		{"across the antimeridian", Point{0, 179.5}, Point{0, -179.5}, oneDegree, 1e-6},
		{"-180 and 180 are the same meridian", Point{10, -180}, Point{10, 180}, 0, 1e-6},
		{"paris to new york", Point{48.8584, 2.2945}, Point{40.7580, -73.9855}, 5828.89, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			require.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestDistanceKmIdentityIsExactlyZero(t *testing.T) {
	for _, p := range landmarks {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKmSymmetricAndBounded(t *testing.T) {
	for _, a := range landmarks {
		for _, b := range landmarks {
			d := DistanceKm(a, b)
			assert.Equal(t, d, DistanceKm(b, a))
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, MaxDistanceKm+1e-9)
		}
	}
}

func TestDistanceKmAntipodal(t *testing.T) {
	for _, p := range landmarks {
		lng := p.Lng + 180
		if lng > 180 {
			lng -= 360
		}
		got := DistanceKm(p, Point{-p.Lat, lng})
		require.False(t, math.IsNaN(got))
		assert.InDelta(t, MaxDistanceKm, got, 1e-3)
	}
}

func TestDistanceMeters(t *testing.T) {
	a, b := Point{0, 0}, Point{0, 1}
	assert.InDelta(t, DistanceKm(a, b)*1000, DistanceMeters(a, b), 1e-6)
}

func TestScore(t *testing.T) {
	tests := []struct {
		km   float64
		want int
	}{
		{0, 5000},
		{10, 4975},   // 5000·e^-0.005 = 4975.06
		{100, 4756},  // 5000·e^-0.05 = 4756.15
		{1000, 3033}, // 5000·e^-0.5 = 3032.65
		{5000, 410},  // 5000·e^-2.5 = 410.42
		{20000, 0},   // 5000·e^-10 = 0.23
		{20000.0001, 0},
		{20001, 0},
		{MaxDistanceKm, 0},
		{1e9, 0},
		{-5, 5000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.km), "Score(%v)", tt.km)
	}
}

func TestScoreDecreasing(t *testing.T) {
	prev := Score(0)
	for d := 1.0; d <= ForfeitKm; d++ {
		s := Score(d)
		require.LessOrEqual(t, s, prev, "Score(%v)", d)
		prev = s
	}

	// coarse steps stay strictly decreasing after rounding
	prev = Score(0)
	for d := 50.0; d <= 5000; d += 50 {
		s := Score(d)
		require.Less(t, s, prev, "Score(%v)", d)
		prev = s
	}
}

func TestScoreRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{4974.5, 4974},
		{4975.5, 4976},
		{4975.49, 4975},
		{4975.51, 4976},
		{0.5, 0},
		{1.5, 2},
		{4999.5, 5000},
		{5000.4, 5000},
		{-0.4, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundScore(tt.raw), "roundScore(%v)", tt.raw)
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 0.0, RoundKm(0))
	assert.Equal(t, 343.56, RoundKm(343.5555))
	assert.Equal(t, 12.34, RoundKm(12.3412))
}

func TestPerfectGuess(t *testing.T) {
	eiffel := Point{48.8584, 2.2945}
	d := DistanceKm(eiffel, eiffel)
	assert.Equal(t, 0.0, RoundKm(d))
	assert.Equal(t, 5000, Score(d))
}

func TestPointValidate(t *testing.T) {
	tests := []struct {
		name      string
		p         Point
		wantField string
		wantMsg   string
	}{
		{"valid", Point{48.8584, 2.2945}, "", ""},
		{"corners", Point{-90, 180}, "", ""},
		{"lat too high", Point{200, 0}, "lat", MsgLatitudeRange},
		{"lat too low", Point{-90.0001, 0}, "lat", MsgLatitudeRange},
		{"lng too high", Point{0, 180.5}, "lng", MsgLongitudeRange},
		{"lat NaN", Point{math.NaN(), 0}, "lat", MsgLatitudeRange},
		{"lng infinite", Point{0, math.Inf(-1)}, "lng", MsgLongitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate("lat", "lng")
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.Validation))
			assert.Equal(t, tt.wantField, apperr.FieldOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
