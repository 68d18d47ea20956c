package types

import "time"

// OHLCV is a single daily price bar. Timestamp holds the trading date
// (midnight UTC); intraday resolution is not supported.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Closes extracts the close-price column from a bar series.
func Closes(bars []OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// Dates extracts the date column from a bar series.
func Dates(bars []OHLCV) []time.Time {
	dates := make([]time.Time, len(bars))
	for i, b := range bars {
		dates[i] = b.Timestamp
	}
	return dates
}
