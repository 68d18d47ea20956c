package backtest

import (
	"math"
	"time"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/internal/signal"
)

// StrategyReturns applies a position signal to a realized daily return
// series: S[t] = P[t-1] * R[t]. The position used on day t is the one
// decided at the close of day t-1, so the engine never trades on
// information from the same day. S[0] is 0 (no prior position) and NaN
// returns contribute 0.
func StrategyReturns(returns []float64, positions signal.Signal) ([]float64, error) {
	if len(returns) != len(positions.Values) {
		return nil, apperrors.NewMissingDataError("backtest", "strategy_returns",
			"return series and position signal cover different date ranges")
	}

	out := make([]float64, len(returns))
	for t := 1; t < len(returns); t++ {
		if math.IsNaN(returns[t]) {
			continue
		}
		out[t] = float64(positions.Values[t-1]) * returns[t]
	}
	return out, nil
}

// BuyAndHold builds the always-invested baseline signal for a date
// index. Run through StrategyReturns it reproduces the buy-and-hold
// equity curve, with the undefined first return treated as 0.
func BuyAndHold(dates []time.Time) signal.Signal {
	s := signal.New(dates)
	for i := range s.Values {
		s.Values[i] = 1
	}
	return s
}
