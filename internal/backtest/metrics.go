package backtest

import (
	"errors"
	"math"
	"time"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// TradingDaysPerYear is the annualization factor for daily return series.
const TradingDaysPerYear = 252

// EquityPoint is one day of an equity curve
type EquityPoint struct {
	Timestamp time.Time
	Equity    float64
}

// PerformanceSummary holds the fixed set of risk/performance statistics
// derived from one daily strategy-return series
type PerformanceSummary struct {
	StartBalance         float64
	FinalEquity          float64
	TotalReturn          float64
	MaxDrawdown          float64
	AnnualizedVolatility float64

	// SharpeRatio is only meaningful when SharpeDefined is true; a
	// zero-variance return series leaves it undefined rather than NaN.
	SharpeRatio   float64
	SharpeDefined bool
}

// EquityCurve compounds a daily return series into an equity curve
// scaled by the initial capital. NaN returns compound as 0.
func EquityCurve(dates []time.Time, returns []float64, initialCapital float64) []EquityPoint {
	curve := make([]EquityPoint, len(returns))
	equity := initialCapital
	for i, r := range returns {
		if !math.IsNaN(r) {
			equity *= 1 + r
		}
		curve[i] = EquityPoint{Timestamp: dates[i], Equity: equity}
	}
	return curve
}

// MaxDrawdown computes the worst peak-to-trough decline of an equity
// curve as a fraction <= 0. A non-decreasing curve has drawdown 0.
func MaxDrawdown(curve []EquityPoint) float64 {
	maxDD := 0.0
	peak := math.Inf(-1)
	for _, p := range curve {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak > 0 {
			dd := p.Equity/peak - 1
			if dd < maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// AnnualizedVolatility computes stdev of the daily returns scaled by
// sqrt(252). Sample standard deviation; NaN entries are skipped, they
// mark days with no defined return.
func AnnualizedVolatility(returns []float64) float64 {
	return stdDev(defined(returns)) * math.Sqrt(TradingDaysPerYear)
}

// SharpeRatio computes the annualized Sharpe ratio of a daily return
// series against a yearly risk-free rate. A zero-variance series has no
// defined Sharpe ratio and yields a DegenerateVariance error instead of
// a NaN that would leak into downstream consumers.
func SharpeRatio(returns []float64, riskFreeRate float64) (float64, error) {
	usable := defined(returns)
	if len(usable) < 2 {
		return 0, apperrors.NewInsufficientHistoryError("backtest", "sharpe_ratio",
			"need at least two daily returns")
	}

	excess := make([]float64, len(usable))
	for i, r := range usable {
		excess[i] = r - riskFreeRate/TradingDaysPerYear
	}

	sd := stdDev(excess)
	if sd == 0 {
		return 0, apperrors.NewDegenerateVarianceError("backtest", "sharpe_ratio")
	}
	return mean(excess) / sd * math.Sqrt(TradingDaysPerYear), nil
}

// Summarize converts a daily strategy-return series into an equity
// curve and its performance summary. An undefined Sharpe ratio is
// reported through the SharpeDefined flag; it does not fail the
// summary, so sibling strategy evaluations keep running.
func Summarize(dates []time.Time, returns []float64, initialCapital, riskFreeRate float64) (*PerformanceSummary, []EquityPoint, error) {
	if len(returns) == 0 {
		return nil, nil, apperrors.NewInsufficientHistoryError("backtest", "summarize",
			"empty return series")
	}
	if len(dates) != len(returns) {
		return nil, nil, apperrors.NewMissingDataError("backtest", "summarize",
			"date index and return series have different lengths")
	}

	curve := EquityCurve(dates, returns, initialCapital)

	summary := &PerformanceSummary{
		StartBalance:         initialCapital,
		FinalEquity:          curve[len(curve)-1].Equity,
		MaxDrawdown:          MaxDrawdown(curve),
		AnnualizedVolatility: AnnualizedVolatility(returns),
	}
	summary.TotalReturn = summary.FinalEquity/initialCapital - 1

	sharpe, err := SharpeRatio(returns, riskFreeRate)
	switch {
	case err == nil:
		summary.SharpeRatio = sharpe
		summary.SharpeDefined = true
	case errors.Is(err, apperrors.ErrDegenerateVariance), errors.Is(err, apperrors.ErrInsufficientHistory):
		summary.SharpeDefined = false
	default:
		return nil, nil, err
	}

	return summary, curve, nil
}

// Helper functions for statistics

// defined drops NaN entries before a statistic is computed
func defined(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}

	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}
