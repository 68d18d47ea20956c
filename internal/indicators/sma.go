package indicators

import (
	"math"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// SMA represents the trailing Simple Moving Average technical indicator
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator
func NewSMA(period int) *SMA {
	return &SMA{
		period: period,
	}
}

// Series computes the trailing moving average for every position in the
// close-price series. Positions with fewer than period observations are
// NaN; there is no partial-window averaging.
func (s *SMA) Series(closes []float64) []float64 {
	out := make([]float64, len(closes))
	if s.period <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= s.period {
			sum -= closes[i-s.period]
		}
		if i >= s.period-1 {
			out[i] = sum / float64(s.period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Calculate returns the moving average at the end of the series
func (s *SMA) Calculate(closes []float64) (float64, error) {
	if s.period <= 0 {
		return 0, apperrors.NewConfigurationError("indicators", "sma", "period must be positive")
	}
	if len(closes) < s.period {
		return 0, apperrors.NewInsufficientHistoryError("indicators", "sma", "not enough observations for window")
	}

	sum := 0.0
	for i := len(closes) - s.period; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(s.period), nil
}

// GetName returns the indicator name
func (s *SMA) GetName() string {
	return "SMA"
}

// GetRequiredPeriods returns the minimum number of observations needed
func (s *SMA) GetRequiredPeriods() int {
	return s.period
}
