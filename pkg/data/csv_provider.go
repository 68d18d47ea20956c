package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// CSVProvider implements DataProvider for daily equity CSV files
type CSVProvider struct {
	format     CSVColumnMapping
	autoDetect bool
}

// NewCSVProvider creates a new CSV data provider that detects the
// column layout from the header row
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format:     DefaultCSVFormat,
		autoDetect: true,
	}
}

// NewCSVProviderWithFormat creates a new CSV data provider with a fixed format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads historical daily bars from a CSV file
func (p *CSVProvider) LoadData(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewMissingDataError("data", "load_csv",
				fmt.Sprintf("data file not found: %s", source))
		}
		return nil, apperrors.NewDataError("data", "load_csv", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewDataError("data", "load_csv", err)
	}

	format := p.format
	if p.autoDetect {
		if detected, ok := DetectCSVFormat(header); ok {
			format = detected
		}
	}

	var data []types.OHLCV

	lineNum := 1 // header already consumed
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, apperrors.NewDataError("data", "load_csv",
				fmt.Errorf("error reading CSV at line %d: %w", lineNum, err))
		}
		lineNum++

		if len(record) < format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping",
				lineNum, format.MinColumns, len(record))
			continue
		}

		date, err := time.Parse(format.DateFormat, record[format.DateCol])
		if err != nil {
			log.Printf("⚠️ Invalid date '%s' at line %d, skipping: %v", record[format.DateCol], lineNum, err)
			continue
		}

		open, err := strconv.ParseFloat(record[format.OpenCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid open price '%s' at line %d, skipping: %v", record[format.OpenCol], lineNum, err)
			continue
		}

		high, err := strconv.ParseFloat(record[format.HighCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid high price '%s' at line %d, skipping: %v", record[format.HighCol], lineNum, err)
			continue
		}

		low, err := strconv.ParseFloat(record[format.LowCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid low price '%s' at line %d, skipping: %v", record[format.LowCol], lineNum, err)
			continue
		}

		closePrice, err := strconv.ParseFloat(record[format.CloseCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid close price '%s' at line %d, skipping: %v", record[format.CloseCol], lineNum, err)
			continue
		}

		volume, err := strconv.ParseFloat(record[format.VolumeCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid volume '%s' at line %d, skipping: %v", record[format.VolumeCol], lineNum, err)
			continue
		}

		if open <= 0 || high <= 0 || low <= 0 || closePrice <= 0 {
			log.Printf("⚠️ Invalid price data (negative or zero) at line %d, skipping", lineNum)
			continue
		}

		data = append(data, types.OHLCV{
			Timestamp: date.UTC(),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Volume:    volume,
		})
	}

	if len(data) == 0 {
		return nil, apperrors.NewMissingDataError("data", "load_csv",
			fmt.Sprintf("no usable rows in %s", source))
	}

	return data, nil
}

// DetectCSVFormat matches a header row against the known daily layouts.
// Returns false when the header is unrecognized, in which case the
// caller falls back to its configured format.
func DetectCSVFormat(header []string) (CSVColumnMapping, bool) {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	switch {
	case len(cols) >= 8 && cols[0] == "symbol" && cols[1] == "date":
		return SymbolPrefixedCSVFormat, true
	case len(cols) >= 7 && cols[0] == "date" && cols[5] == "adj_close":
		return AdjustedCSVFormat, true
	case len(cols) >= 6 && cols[0] == "date":
		return DefaultCSVFormat, true
	}
	return CSVColumnMapping{}, false
}

// ValidateData validates the integrity of loaded data
func (p *CSVProvider) ValidateData(data []types.OHLCV) error {
	if len(data) == 0 {
		return apperrors.NewMissingDataError("data", "validate", "no data provided")
	}

	for i, bar := range data {
		if bar.Open <= 0 || bar.High <= 0 || bar.Low <= 0 || bar.Close <= 0 {
			return fmt.Errorf("invalid price data at index %d: prices must be positive", i)
		}

		if bar.High < bar.Low {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) cannot be less than low (%.4f)",
				i, bar.High, bar.Low)
		}

		if i > 0 && !bar.Timestamp.After(data[i-1].Timestamp) {
			return fmt.Errorf("invalid date sequence at index %d: trading dates must be strictly increasing", i)
		}
	}

	return nil
}
