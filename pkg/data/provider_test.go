package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/pkg/types"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// TestDataManager_LoadSymbol tests the locate-load-clean-clip pipeline
func TestDataManager_LoadSymbol(t *testing.T) {
	dataRoot := t.TempDir()
	content := `date,open,high,low,close,volume
2024-01-05,102.0,104.0,101.0,103.0,1000
2024-01-02,100.0,102.0,99.0,101.0,1000
2024-01-03,101.0,103.0,100.0,102.0,1000
2024-01-03,101.0,103.0,100.0,102.0,1000
2024-01-10,105.0,107.0,104.0,106.0,1000
`
	require.NoError(t, os.WriteFile(filepath.Join(dataRoot, "QQQ.csv"), []byte(content), 0644))

	bars, err := NewDataManager().LoadSymbol(dataRoot, "QQQ", day(1), day(6))
	require.NoError(t, err)
	require.Len(t, bars, 3)

	// Sorted ascending, duplicate date dropped, Jan 10 clipped away
	assert.Equal(t, day(2), bars[0].Timestamp)
	assert.Equal(t, day(3), bars[1].Timestamp)
	assert.Equal(t, day(5), bars[2].Timestamp)
}

// TestDataManager_LoadSymbol_NoFile tests the missing-file error
func TestDataManager_LoadSymbol_NoFile(t *testing.T) {
	_, err := NewDataManager().LoadSymbol(t.TempDir(), "MISSING", day(1), day(31))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}

// TestDataManager_LoadSymbol_EmptyWindow tests a window past the data
func TestDataManager_LoadSymbol_EmptyWindow(t *testing.T) {
	dataRoot := t.TempDir()
	content := `date,open,high,low,close,volume
2024-01-02,100.0,102.0,99.0,101.0,1000
`
	require.NoError(t, os.WriteFile(filepath.Join(dataRoot, "QQQ.csv"), []byte(content), 0644))

	_, err := NewDataManager().LoadSymbol(dataRoot, "QQQ",
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}

// TestDefaultFileLocator_Fallbacks tests the candidate file names
func TestDefaultFileLocator_Fallbacks(t *testing.T) {
	dataRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataRoot, "aapl.csv"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataRoot, "MSFT_daily.csv"), []byte("x"), 0644))

	locator := NewDefaultFileLocator()

	assert.Equal(t, filepath.Join(dataRoot, "aapl.csv"), locator.FindDataFile(dataRoot, "AAPL"))
	assert.Equal(t, filepath.Join(dataRoot, "MSFT_daily.csv"), locator.FindDataFile(dataRoot, "MSFT"))
	assert.Equal(t, "", locator.FindDataFile(dataRoot, "GOOG"))
	assert.Equal(t, "", locator.FindDataFile(dataRoot, ""))
}

// TestDefaultDataFilter_FilterByDateRange tests inclusive window edges
func TestDefaultDataFilter_FilterByDateRange(t *testing.T) {
	filter := NewDefaultDataFilter()
	bars := []types.OHLCV{
		{Close: 1, Timestamp: day(1)},
		{Close: 2, Timestamp: day(2)},
		{Close: 3, Timestamp: day(3)},
		{Close: 4, Timestamp: day(4)},
	}

	out := filter.FilterByDateRange(bars, day(2), day(3))
	require.Len(t, out, 2)
	assert.Equal(t, 2.0, out[0].Close)
	assert.Equal(t, 3.0, out[1].Close)
}

// TestMemoryCache_CopyOnGet tests that cached bars cannot be mutated
// through the returned slice
func TestMemoryCache_CopyOnGet(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("QQQ", []types.OHLCV{{Close: 100, Timestamp: day(2)}})

	got, ok := cache.Get("QQQ")
	require.True(t, ok)
	got[0].Close = 0

	again, ok := cache.Get("QQQ")
	require.True(t, ok)
	assert.Equal(t, 100.0, again[0].Close)
	assert.Equal(t, 1, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}
