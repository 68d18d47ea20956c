package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// barOn builds one daily bar with the given close
func barOn(year int, month time.Month, day int, close float64) types.OHLCV {
	return types.OHLCV{
		Open:      close,
		High:      close,
		Low:       close,
		Close:     close,
		Volume:    1000,
		Timestamp: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

// TestMonthEndBars tests resampling to the last bar of each calendar month
func TestMonthEndBars(t *testing.T) {
	bars := []types.OHLCV{
		barOn(2024, time.January, 29, 100),
		barOn(2024, time.January, 30, 101),
		barOn(2024, time.January, 31, 102),
		barOn(2024, time.February, 1, 103),
		barOn(2024, time.February, 2, 104),
	}

	out := MonthEndBars(bars)
	require.Len(t, out, 2)

	assert.Equal(t, 102.0, out[0].Close)
	assert.Equal(t, 104.0, out[1].Close)
}

// TestMonthEndBars_SingleBar tests that a lone bar is its own month-end
func TestMonthEndBars_SingleBar(t *testing.T) {
	out := MonthEndBars([]types.OHLCV{barOn(2024, time.March, 15, 100)})
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].Close)
}

// TestEvaluateDCA_SingleMonth tests one contribution at a 100 close
func TestEvaluateDCA_SingleMonth(t *testing.T) {
	bars := []types.OHLCV{
		barOn(2024, time.January, 30, 95),
		barOn(2024, time.January, 31, 100),
	}

	result, err := EvaluateDCA(bars, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Months)
	assert.InDelta(t, 1000.0, result.TotalCost, 1e-9)
	assert.InDelta(t, 10.0, result.TotalShares, 1e-9)
	assert.InDelta(t, 1000.0, result.FinalValue, 1e-9)
	assert.InDelta(t, 0.0, result.Profit, 1e-9)
}

// TestEvaluateDCA_MarksAtLastClose tests that accumulated shares are
// valued at the final close of the daily series, not the last month-end
func TestEvaluateDCA_MarksAtLastClose(t *testing.T) {
	bars := []types.OHLCV{
		barOn(2024, time.January, 31, 100),
		barOn(2024, time.February, 29, 125),
		barOn(2024, time.March, 1, 150),
	}

	result, err := EvaluateDCA(bars, 1000)
	require.NoError(t, err)

	// Contributions at 100 and 125; the March bar only marks the position
	assert.Equal(t, 2, result.Months)
	assert.InDelta(t, 2000.0, result.TotalCost, 1e-9)

	shares := 1000.0/100 + 1000.0/125
	assert.InDelta(t, shares, result.TotalShares, 1e-9)
	assert.InDelta(t, shares*150, result.FinalValue, 1e-9)
	assert.InDelta(t, (shares*150-2000)/2000, result.ROI, 1e-12)
}

// TestEvaluateDCA_EmptySeries tests the zero-month guard
func TestEvaluateDCA_EmptySeries(t *testing.T) {
	_, err := EvaluateDCA(nil, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientHistory)
}

// TestEvaluateDCA_InvalidAmount tests that a non-positive contribution
// is rejected as configuration
func TestEvaluateDCA_InvalidAmount(t *testing.T) {
	bars := []types.OHLCV{barOn(2024, time.January, 31, 100)}

	_, err := EvaluateDCA(bars, 0)
	require.Error(t, err)

	var analysisErr *apperrors.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, apperrors.ErrorCategoryConfiguration, analysisErr.Category)
	assert.True(t, analysisErr.IsFatal())
}

// TestEvaluateDCA_ZeroClose tests the corrupt-price guard
func TestEvaluateDCA_ZeroClose(t *testing.T) {
	bars := []types.OHLCV{barOn(2024, time.January, 31, 0)}

	_, err := EvaluateDCA(bars, 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}
