package signal

import (
	"math"
	"time"

	"github.com/quantlab/equity-backtest/internal/indicators"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// Breadth builds a basket-wide "risk-on" signal on the reference date
// index. For each basket asset it checks whether the close is above the
// asset's own trailing moving average; the signal is 1 on days where at
// least quorum assets are above. An asset with no bar for a reference
// date, or whose average is still undefined there, counts as not above.
func Breadth(refDates []time.Time, basket [][]types.OHLCV, window, quorum int) Signal {
	counts := make([]int, len(refDates))

	for _, bars := range basket {
		closes := types.Closes(bars)
		ma := indicators.NewSMA(window).Series(closes)

		above := make(map[int64]bool, len(bars))
		for i, b := range bars {
			if !math.IsNaN(ma[i]) && closes[i] > ma[i] {
				above[dateKey(b.Timestamp)] = true
			}
		}

		for i, d := range refDates {
			if above[dateKey(d)] {
				counts[i]++
			}
		}
	}

	out := New(refDates)
	for i, c := range counts {
		if c >= quorum {
			out.Values[i] = 1
		}
	}
	return out
}
