package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/quantlab/equity-backtest/pkg/orchestrator"
)

// strategyJSON is the serialized form of one strategy evaluation.
// SharpeRatio is a pointer so an undefined ratio serializes as null
// instead of a misleading number.
type strategyJSON struct {
	Name                 string   `json:"name"`
	FinalEquity          float64  `json:"final_equity"`
	TotalReturn          float64  `json:"total_return"`
	MaxDrawdown          float64  `json:"max_drawdown"`
	AnnualizedVolatility float64  `json:"annualized_volatility"`
	SharpeRatio          *float64 `json:"sharpe_ratio"`
	Error                string   `json:"error,omitempty"`
}

type dcaJSON struct {
	TotalCost   float64 `json:"total_cost"`
	FinalValue  float64 `json:"final_value"`
	Profit      float64 `json:"profit"`
	ROI         float64 `json:"roi"`
	TotalShares float64 `json:"total_shares"`
	Months      int     `json:"months"`
}

type runReportJSON struct {
	Symbol     string         `json:"symbol"`
	Strategies []strategyJSON `json:"strategies"`
	DCA        *dcaJSON       `json:"dca,omitempty"`
	DCAError   string         `json:"dca_error,omitempty"`
}

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// FormatRunReport formats a run report as indented JSON bytes
func (f *DefaultJSONFormatter) FormatRunReport(report *orchestrator.RunReport) ([]byte, error) {
	out := runReportJSON{Symbol: report.Symbol}

	for _, s := range report.Strategies {
		entry := strategyJSON{Name: s.Name}
		if s.Err != nil {
			entry.Error = s.Err.Error()
		} else if s.Summary != nil {
			entry.FinalEquity = s.Summary.FinalEquity
			entry.TotalReturn = s.Summary.TotalReturn
			entry.MaxDrawdown = s.Summary.MaxDrawdown
			entry.AnnualizedVolatility = s.Summary.AnnualizedVolatility
			if s.Summary.SharpeDefined {
				sharpe := s.Summary.SharpeRatio
				entry.SharpeRatio = &sharpe
			}
		}
		out.Strategies = append(out.Strategies, entry)
	}

	if report.DCAErr != nil {
		out.DCAError = report.DCAErr.Error()
	} else if report.DCA != nil {
		out.DCA = &dcaJSON{
			TotalCost:   report.DCA.TotalCost,
			FinalValue:  report.DCA.FinalValue,
			Profit:      report.DCA.Profit,
			ROI:         report.DCA.ROI,
			TotalShares: report.DCA.TotalShares,
			Months:      report.DCA.Months,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

// WriteSummaryJSON writes the run summary to a JSON file
func (f *DefaultJSONFormatter) WriteSummaryJSON(report *orchestrator.RunReport, path string) error {
	data, err := f.FormatRunReport(report)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// WriteSummaryJSON is a package-level convenience function
func WriteSummaryJSON(report *orchestrator.RunReport, path string) error {
	return NewDefaultJSONFormatter().WriteSummaryJSON(report, path)
}
