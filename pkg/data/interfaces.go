package data

import (
	"time"

	"github.com/quantlab/equity-backtest/pkg/types"
)

// DataProvider interface for loading historical data from various sources
type DataProvider interface {
	// LoadData loads historical data from the specified source
	LoadData(source string) ([]types.OHLCV, error)

	// ValidateData validates the integrity of the loaded data
	ValidateData(data []types.OHLCV) error

	// GetName returns the name of the data provider
	GetName() string
}

// DataCache interface for caching loaded data
type DataCache interface {
	// Get retrieves data from cache if available
	Get(key string) ([]types.OHLCV, bool)

	// Set stores data in cache
	Set(key string, data []types.OHLCV)

	// Clear removes all cached data
	Clear()

	// Size returns the number of cached entries
	Size() int
}

// DataFilter interface for filtering and transforming data
type DataFilter interface {
	// FilterByDateRange filters data to a specific date range (inclusive)
	FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV

	// ValidateTimeSequence ensures data is in chronological order with
	// no duplicate trading dates
	ValidateTimeSequence(data []types.OHLCV) error
}

// FileLocator interface for finding data files
type FileLocator interface {
	// FindDataFile attempts to locate the daily data file for a symbol
	FindDataFile(dataRoot, symbol string) string
}

// CSVColumnMapping defines the column positions for different CSV layouts
type CSVColumnMapping struct {
	SymbolCol    int // -1 when the layout carries no symbol column
	DateCol      int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// Predefined CSV layouts for daily equity files
var (
	// DefaultCSVFormat: date,open,high,low,close,volume
	DefaultCSVFormat = CSVColumnMapping{
		SymbolCol:  -1,
		DateCol:    0,
		OpenCol:    1,
		HighCol:    2,
		LowCol:     3,
		CloseCol:   4,
		VolumeCol:  5,
		MinColumns: 6,
		DateFormat: "2006-01-02",
	}

	// AdjustedCSVFormat: date,open,high,low,close,adj_close,volume
	AdjustedCSVFormat = CSVColumnMapping{
		SymbolCol:  -1,
		DateCol:    0,
		OpenCol:    1,
		HighCol:    2,
		LowCol:     3,
		CloseCol:   4,
		VolumeCol:  6,
		MinColumns: 7,
		DateFormat: "2006-01-02",
	}

	// SymbolPrefixedCSVFormat: symbol,date,open,high,low,close,adj_close,volume
	SymbolPrefixedCSVFormat = CSVColumnMapping{
		SymbolCol:  0,
		DateCol:    1,
		OpenCol:    2,
		HighCol:    3,
		LowCol:     4,
		CloseCol:   5,
		VolumeCol:  7,
		MinColumns: 8,
		DateFormat: "2006-01-02",
	}
)
