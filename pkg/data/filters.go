package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/quantlab/equity-backtest/pkg/types"
)

// DefaultDataFilter implements DataFilter for common filtering operations
type DefaultDataFilter struct{}

// NewDefaultDataFilter creates a new default data filter
func NewDefaultDataFilter() *DefaultDataFilter {
	return &DefaultDataFilter{}
}

// FilterByDateRange filters data to a specific date range, inclusive on
// both ends. Returns a new slice; the input is not modified.
func (f *DefaultDataFilter) FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV {
	if len(data) == 0 {
		return data
	}

	var filtered []types.OHLCV
	for _, bar := range data {
		if (bar.Timestamp.After(start) || bar.Timestamp.Equal(start)) &&
			(bar.Timestamp.Before(end) || bar.Timestamp.Equal(end)) {
			filtered = append(filtered, bar)
		}
	}

	return filtered
}

// ValidateTimeSequence ensures data is in chronological order with no
// duplicate trading dates
func (f *DefaultDataFilter) ValidateTimeSequence(data []types.OHLCV) error {
	if len(data) <= 1 {
		return nil
	}

	for i := 1; i < len(data); i++ {
		if data[i].Timestamp.Before(data[i-1].Timestamp) {
			return fmt.Errorf("data not in chronological order at index %d: %s comes after %s",
				i, data[i].Timestamp.Format("2006-01-02"), data[i-1].Timestamp.Format("2006-01-02"))
		}

		if data[i].Timestamp.Equal(data[i-1].Timestamp) {
			return fmt.Errorf("duplicate trading date at index %d: %s",
				i, data[i].Timestamp.Format("2006-01-02"))
		}
	}

	return nil
}

// SortByTimestamp sorts data by trading date (ascending). Returns a
// copy; the caller's slice is left untouched.
func (f *DefaultDataFilter) SortByTimestamp(data []types.OHLCV) []types.OHLCV {
	sorted := make([]types.OHLCV, len(data))
	copy(sorted, data)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted
}

// RemoveDuplicates removes duplicate trading dates, keeping the first occurrence
func (f *DefaultDataFilter) RemoveDuplicates(data []types.OHLCV) []types.OHLCV {
	if len(data) <= 1 {
		return data
	}

	var filtered []types.OHLCV
	seen := make(map[int64]bool)

	for _, bar := range data {
		key := bar.Timestamp.Unix()
		if !seen[key] {
			seen[key] = true
			filtered = append(filtered, bar)
		}
	}

	return filtered
}
