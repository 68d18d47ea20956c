package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// TestSMA_Series_WarmupIsNaN tests that positions before the window
// fills are NaN, not partial averages
func TestSMA_Series_WarmupIsNaN(t *testing.T) {
	sma := NewSMA(3)

	out := sma.Series([]float64{1, 2, 3, 4, 5})
	require.Len(t, out, 5)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 4.0, out[4], 1e-12)
}

// TestSMA_Series_ShorterThanWindow tests a series that never fills the window
func TestSMA_Series_ShorterThanWindow(t *testing.T) {
	sma := NewSMA(10)

	out := sma.Series([]float64{1, 2, 3})
	require.Len(t, out, 3)
	for i, v := range out {
		assert.True(t, math.IsNaN(v), "expected NaN at index %d", i)
	}
}

// TestSMA_Calculate tests the latest-value calculation
func TestSMA_Calculate(t *testing.T) {
	sma := NewSMA(4)

	value, err := sma.Calculate([]float64{10, 20, 30, 40, 50, 60})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, value, 1e-12)
}

// TestSMA_Calculate_InsufficientHistory tests the error for short series
func TestSMA_Calculate_InsufficientHistory(t *testing.T) {
	sma := NewSMA(50)

	_, err := sma.Calculate([]float64{100, 101, 102})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientHistory)
}

// TestSMA_Calculate_InvalidPeriod tests that a non-positive period is a
// configuration error
func TestSMA_Calculate_InvalidPeriod(t *testing.T) {
	sma := NewSMA(0)

	_, err := sma.Calculate([]float64{100, 101, 102})
	require.Error(t, err)

	var analysisErr *apperrors.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, apperrors.ErrorCategoryConfiguration, analysisErr.Category)
}

// TestSMA_GetRequiredPeriods tests the minimum observation count
func TestSMA_GetRequiredPeriods(t *testing.T) {
	assert.Equal(t, 200, NewSMA(200).GetRequiredPeriods())
	assert.Equal(t, "SMA", NewSMA(200).GetName())
}
