package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// TestEquityCurve_Compounding tests geometric compounding from initial capital
func TestEquityCurve_Compounding(t *testing.T) {
	dates := tradingDates(3)
	returns := []float64{math.NaN(), 0.10, 0.10}

	curve := EquityCurve(dates, returns, 100_000)
	require.Len(t, curve, 3)

	assert.InDelta(t, 100_000, curve[0].Equity, 1e-6)
	assert.InDelta(t, 110_000, curve[1].Equity, 1e-6)
	assert.InDelta(t, 121_000, curve[2].Equity, 1e-6)
	assert.Equal(t, dates[2], curve[2].Timestamp)
}

// TestMaxDrawdown_PeakToTrough tests the worst decline from a running peak
func TestMaxDrawdown_PeakToTrough(t *testing.T) {
	dates := tradingDates(4)
	curve := []EquityPoint{
		{Timestamp: dates[0], Equity: 100},
		{Timestamp: dates[1], Equity: 120},
		{Timestamp: dates[2], Equity: 90},
		{Timestamp: dates[3], Equity: 130},
	}

	// Trough 90 against peak 120
	assert.InDelta(t, -0.25, MaxDrawdown(curve), 1e-12)
}

// TestMaxDrawdown_NonDecreasingCurveIsZero tests that a curve with no
// declines has zero drawdown
func TestMaxDrawdown_NonDecreasingCurveIsZero(t *testing.T) {
	dates := tradingDates(3)
	curve := []EquityPoint{
		{Timestamp: dates[0], Equity: 100},
		{Timestamp: dates[1], Equity: 100},
		{Timestamp: dates[2], Equity: 105},
	}

	assert.Equal(t, 0.0, MaxDrawdown(curve))
}

// TestMaxDrawdown_NeverPositive tests the sign invariant on a volatile curve
func TestMaxDrawdown_NeverPositive(t *testing.T) {
	dates := tradingDates(6)
	equities := []float64{100, 140, 95, 160, 120, 180}

	curve := make([]EquityPoint, len(equities))
	for i, e := range equities {
		curve[i] = EquityPoint{Timestamp: dates[i], Equity: e}
	}

	assert.LessOrEqual(t, MaxDrawdown(curve), 0.0)
}

// TestEquityCurve_MonotonicIffNonNegativeReturns tests that compounding
// is non-decreasing exactly when every return is >= 0
func TestEquityCurve_MonotonicIffNonNegativeReturns(t *testing.T) {
	dates := tradingDates(4)

	nonNegative := EquityCurve(dates, []float64{0.0, 0.01, 0.0, 0.02}, 100)
	for i := 1; i < len(nonNegative); i++ {
		assert.GreaterOrEqual(t, nonNegative[i].Equity, nonNegative[i-1].Equity)
	}

	withLoss := EquityCurve(dates, []float64{0.01, -0.005, 0.02, 0.0}, 100)
	decreased := false
	for i := 1; i < len(withLoss); i++ {
		if withLoss[i].Equity < withLoss[i-1].Equity {
			decreased = true
		}
	}
	assert.True(t, decreased)
}

// TestMaxDrawdown_RunningMaxRoundTrip tests that a curve's own running
// maximum has zero drawdown at every point
func TestMaxDrawdown_RunningMaxRoundTrip(t *testing.T) {
	dates := tradingDates(6)
	equities := []float64{100, 140, 95, 160, 120, 180}

	peak := equities[0]
	runningMax := make([]EquityPoint, len(equities))
	for i, e := range equities {
		if e > peak {
			peak = e
		}
		runningMax[i] = EquityPoint{Timestamp: dates[i], Equity: peak}
	}

	assert.Equal(t, 0.0, MaxDrawdown(runningMax))
}

// TestAnnualizedVolatility tests the sqrt(252)-scaled sample deviation
func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.01, -0.01}

	expected := math.Sqrt(0.0004/3) * math.Sqrt(252)
	assert.InDelta(t, expected, AnnualizedVolatility(returns), 1e-12)
}

// TestAnnualizedVolatility_ConstantSeriesIsZero tests degenerate input
func TestAnnualizedVolatility_ConstantSeriesIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AnnualizedVolatility([]float64{0.01, 0.01, 0.01}))
}

// TestSharpeRatio_PositiveDrift tests the sign of the ratio for a
// profitable series
func TestSharpeRatio_PositiveDrift(t *testing.T) {
	returns := []float64{0.01, 0.02, 0.01, 0.03, 0.02}

	sharpe, err := SharpeRatio(returns, 0)
	require.NoError(t, err)
	assert.Greater(t, sharpe, 0.0)
}

// TestSharpeRatio_RiskFreeRateLowersRatio tests that a higher hurdle
// shrinks the ratio
func TestSharpeRatio_RiskFreeRateLowersRatio(t *testing.T) {
	returns := []float64{0.01, 0.02, 0.01, 0.03, 0.02}

	base, err := SharpeRatio(returns, 0)
	require.NoError(t, err)
	hurdled, err := SharpeRatio(returns, 0.05)
	require.NoError(t, err)

	assert.Less(t, hurdled, base)
}

// TestSharpeRatio_ZeroVarianceIsUndefined tests that a constant series
// yields the degenerate-variance error, never NaN
func TestSharpeRatio_ZeroVarianceIsUndefined(t *testing.T) {
	_, err := SharpeRatio([]float64{0.01, 0.01, 0.01}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDegenerateVariance)
}

// TestSharpeRatio_NeedsTwoReturns tests the minimum-length guard
func TestSharpeRatio_NeedsTwoReturns(t *testing.T) {
	_, err := SharpeRatio([]float64{0.01}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientHistory)
}

// TestSummarize tests the full statistics bundle on a simple series
func TestSummarize(t *testing.T) {
	dates := tradingDates(4)
	returns := []float64{math.NaN(), 0.10, -0.05, 0.02}

	summary, curve, err := Summarize(dates, returns, 100_000, 0)
	require.NoError(t, err)
	require.Len(t, curve, 4)

	finalEquity := 100_000 * 1.10 * 0.95 * 1.02
	assert.InDelta(t, 100_000, summary.StartBalance, 1e-6)
	assert.InDelta(t, finalEquity, summary.FinalEquity, 1e-6)
	assert.InDelta(t, finalEquity/100_000-1, summary.TotalReturn, 1e-12)
	assert.InDelta(t, -0.05, summary.MaxDrawdown, 1e-12)
	assert.True(t, summary.SharpeDefined)
}

// TestSummarize_UndefinedSharpeDoesNotFail tests that a zero-variance
// series is reported with the flag cleared instead of an error
func TestSummarize_UndefinedSharpeDoesNotFail(t *testing.T) {
	dates := tradingDates(3)
	returns := []float64{0.01, 0.01, 0.01}

	summary, _, err := Summarize(dates, returns, 50_000, 0)
	require.NoError(t, err)

	assert.False(t, summary.SharpeDefined)
	assert.Equal(t, 0.0, summary.SharpeRatio)
	assert.False(t, math.IsNaN(summary.SharpeRatio))
}

// TestSummarize_EmptySeries tests the insufficient-history guard
func TestSummarize_EmptySeries(t *testing.T) {
	_, _, err := Summarize(nil, nil, 100_000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientHistory)
}

// TestSummarize_LengthMismatch tests the misaligned-index guard
func TestSummarize_LengthMismatch(t *testing.T) {
	_, _, err := Summarize(tradingDates(2), []float64{0.01, 0.02, 0.03}, 100_000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}
