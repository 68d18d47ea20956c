package backtest

import (
	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// DCAResult summarizes a dollar-cost-averaging accumulation plan
type DCAResult struct {
	TotalCost   float64
	FinalValue  float64
	Profit      float64
	ROI         float64
	TotalShares float64
	Months      int
}

// MonthEndBars resamples a daily series to the last bar of each
// calendar month, in chronological order.
func MonthEndBars(bars []types.OHLCV) []types.OHLCV {
	var out []types.OHLCV
	for i, b := range bars {
		last := i == len(bars)-1
		if !last {
			next := bars[i+1].Timestamp
			cur := b.Timestamp
			if cur.Year() == next.Year() && cur.Month() == next.Month() {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// EvaluateDCA simulates investing a fixed amount at every month-end
// close, accumulating fractional shares with no fees or rounding. The
// final value marks all accumulated shares at the last close of the
// full daily series, not the last month-end.
func EvaluateDCA(bars []types.OHLCV, monthlyAmount float64) (*DCAResult, error) {
	if monthlyAmount <= 0 {
		return nil, apperrors.NewConfigurationError("backtest", "evaluate_dca",
			"monthly investment amount must be positive")
	}

	monthEnds := MonthEndBars(bars)
	if len(monthEnds) == 0 {
		return nil, apperrors.NewInsufficientHistoryError("backtest", "evaluate_dca",
			"price series spans zero month-ends")
	}

	totalCost := 0.0
	totalShares := 0.0
	for _, b := range monthEnds {
		if b.Close <= 0 {
			return nil, apperrors.NewMissingDataError("backtest", "evaluate_dca",
				"month-end close is zero or negative")
		}
		totalCost += monthlyAmount
		totalShares += monthlyAmount / b.Close
	}

	finalValue := totalShares * bars[len(bars)-1].Close
	profit := finalValue - totalCost

	return &DCAResult{
		TotalCost:   totalCost,
		FinalValue:  finalValue,
		Profit:      profit,
		ROI:         profit / totalCost,
		TotalShares: totalShares,
		Months:      len(monthEnds),
	}, nil
}
