package signal

import (
	"math"

	"github.com/quantlab/equity-backtest/internal/indicators"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// MACrossover builds a trend-following signal from a single asset:
// invested on days where the close is above its trailing moving
// average, in cash otherwise. Days where the average is still
// undefined (fewer than window observations) map to cash.
func MACrossover(bars []types.OHLCV, window int) Signal {
	closes := types.Closes(bars)
	ma := indicators.NewSMA(window).Series(closes)

	out := New(types.Dates(bars))
	for i := range bars {
		if !math.IsNaN(ma[i]) && closes[i] > ma[i] {
			out.Values[i] = 1
		}
	}
	return out
}
