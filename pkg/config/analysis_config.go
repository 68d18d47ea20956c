package config

import (
	"time"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// DateLayout is the ISO date format used across config files and CLI flags.
const DateLayout = "2006-01-02"

// BreadthConfig holds the parameters of the basket "risk-on" filter
type BreadthConfig struct {
	Symbols []string `json:"symbols"`
	Window  int      `json:"window"`
	Quorum  int      `json:"quorum"`
}

// DCAPlanConfig holds the parameters of the dollar-cost-averaging plan
type DCAPlanConfig struct {
	MonthlyAmount float64 `json:"monthly_amount"`
}

// AnalysisConfig is the full configuration surface of one backtest run.
// Every policy knob the core uses flows through here; nothing is
// hardcoded inside the strategy or metrics code.
type AnalysisConfig struct {
	Symbol         string        `json:"symbol"`
	DataRoot       string        `json:"data_root"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	InitialCapital float64       `json:"initial_capital"`
	RiskFreeRate   float64       `json:"risk_free_rate"`
	TrendWindow    int           `json:"trend_window"`
	Breadth        BreadthConfig `json:"breadth"`
	DCA            DCAPlanConfig `json:"dca"`
}

// NewDefaultAnalysisConfig returns the stock QQQ-vs-FAANG setup
func NewDefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Symbol:         "QQQ",
		DataRoot:       "data",
		StartDate:      "2015-01-01",
		EndDate:        "2025-01-01",
		InitialCapital: 100_000,
		RiskFreeRate:   0,
		TrendWindow:    50,
		Breadth: BreadthConfig{
			Symbols: []string{"AAPL", "AMZN", "GOOG", "META", "MSFT"},
			Window:  200,
			Quorum:  3,
		},
		DCA: DCAPlanConfig{
			MonthlyAmount: 1000,
		},
	}
}

// Window parses the configured analysis date range
func (c *AnalysisConfig) Window() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewConfigurationError("config", "window",
			"start_date is not a valid ISO date: "+c.StartDate)
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewConfigurationError("config", "window",
			"end_date is not a valid ISO date: "+c.EndDate)
	}
	return start.UTC(), end.UTC(), nil
}
