package data

import (
	"fmt"
	"time"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// DataManager combines all data operations in a convenient interface.
// It hands the core a clean price table: located on disk, parsed,
// sorted ascending, deduplicated and clipped to the analysis window.
type DataManager struct {
	provider DataProvider
	filter   *DefaultDataFilter
	locator  FileLocator
}

// NewDataManager creates a new data manager with default components
func NewDataManager() *DataManager {
	return &DataManager{
		provider: NewCachedProvider(NewCSVProvider()),
		filter:   NewDefaultDataFilter(),
		locator:  NewDefaultFileLocator(),
	}
}

// NewDataManagerWithProvider creates a data manager with a custom provider
func NewDataManagerWithProvider(provider DataProvider) *DataManager {
	return &DataManager{
		provider: provider,
		filter:   NewDefaultDataFilter(),
		locator:  NewDefaultFileLocator(),
	}
}

// LoadSymbol loads the daily bars for a symbol and restricts them to
// the analysis window
func (dm *DataManager) LoadSymbol(dataRoot, symbol string, start, end time.Time) ([]types.OHLCV, error) {
	path := dm.locator.FindDataFile(dataRoot, symbol)
	if path == "" {
		return nil, apperrors.NewMissingDataError("data", "load_symbol",
			fmt.Sprintf("no data file for symbol %s under %s", symbol, dataRoot))
	}

	bars, err := dm.provider.LoadData(path)
	if err != nil {
		return nil, err
	}

	bars = dm.filter.SortByTimestamp(bars)
	bars = dm.filter.RemoveDuplicates(bars)

	if err := dm.filter.ValidateTimeSequence(bars); err != nil {
		return nil, apperrors.NewDataError("data", "load_symbol", err)
	}

	bars = dm.filter.FilterByDateRange(bars, start, end)
	if len(bars) == 0 {
		return nil, apperrors.NewMissingDataError("data", "load_symbol",
			fmt.Sprintf("symbol %s has no bars inside the analysis window", symbol))
	}

	return bars, nil
}

// FindDataFile locates data files - convenience function matching the provider interface
func (dm *DataManager) FindDataFile(dataRoot, symbol string) string {
	return dm.locator.FindDataFile(dataRoot, symbol)
}
