package wardrobe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestAverageWorkingDay(t *testing.T) {
	w, err := NewWindow(10, 18)
	require.NoError(t, err)

	avg, err := Average(hours(24), w)
	require.NoError(t, err)
	assert.Equal(t, 13.5, avg)
}

func TestAverageWholeDay(t *testing.T) {
	w, err := NewWindow(0, 24)
	require.NoError(t, err)

	avg, err := Average(hours(24), w)
	require.NoError(t, err)
	assert.Equal(t, 11.5, avg)
}

func TestAverageShortSeries(t *testing.T) {
	w := DefaultWindow()

	_, err := Average(hours(17), w)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Average(nil, w)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// Exactly End entries is enough.
	_, err = Average(hours(18), w)
	require.NoError(t, err)
}

func TestAveragePropagatesNaN(t *testing.T) {
	series := hours(24)
	series[12] = math.NaN()

	avg, err := Average(series, DefaultWindow())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(avg))
}

func TestAverageZeroWindow(t *testing.T) {
	_, err := Average(hours(24), Window{})
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNewWindowBounds(t *testing.T) {
	valid := [][2]int{{0, 1}, {0, 24}, {23, 24}, {10, 18}}
	for _, b := range valid {
		_, err := NewWindow(b[0], b[1])
		assert.NoError(t, err, "%v", b)
	}

	invalid := [][2]int{{-1, 5}, {5, 5}, {18, 10}, {0, 25}, {24, 24}}
	for _, b := range invalid {
		_, err := NewWindow(b[0], b[1])
		assert.ErrorIs(t, err, ErrInvalidWindow, "%v", b)
	}
}

func TestWindowString(t *testing.T) {
	assert.Equal(t, "[10:00,18:00)", DefaultWindow().String())
}
