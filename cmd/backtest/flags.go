package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/quantlab/equity-backtest/pkg/config"
)

// BacktestFlags holds all command line flags for the backtest command
type BacktestFlags struct {
	// Configuration
	ConfigFile *string
	Symbol     *string
	DataRoot   *string

	// Analysis window
	StartDate *string
	EndDate   *string

	// Account settings
	InitialCapital *float64
	RiskFreeRate   *float64

	// Strategy parameters
	TrendWindow    *int
	BreadthSymbols *string
	BreadthWindow  *int
	BreadthQuorum  *int
	MonthlyAmount  *float64

	// Output options
	OutputDir   *string
	ConsoleOnly *bool
	EnvFile     *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewBacktestFlags creates and registers all command line flags
func NewBacktestFlags() *BacktestFlags {
	defaults := config.NewDefaultAnalysisConfig()

	return &BacktestFlags{
		ConfigFile: flag.String("config", "", "Path to analysis configuration file (or bare name under configs/)"),
		Symbol:     flag.String("symbol", defaults.Symbol, "Primary ticker symbol"),
		DataRoot:   flag.String("data-root", defaults.DataRoot, "Directory holding <SYMBOL>.csv daily files"),

		StartDate: flag.String("start", defaults.StartDate, "Analysis window start (YYYY-MM-DD)"),
		EndDate:   flag.String("end", defaults.EndDate, "Analysis window end (YYYY-MM-DD)"),

		InitialCapital: flag.Float64("capital", defaults.InitialCapital, "Initial capital for equity curves"),
		RiskFreeRate:   flag.Float64("risk-free", defaults.RiskFreeRate, "Yearly risk-free rate for the Sharpe ratio"),

		TrendWindow:    flag.Int("trend-window", defaults.TrendWindow, "Moving-average window of the trend filter (days)"),
		BreadthSymbols: flag.String("breadth-symbols", strings.Join(defaults.Breadth.Symbols, ","), "Comma-separated basket for the risk-on filter"),
		BreadthWindow:  flag.Int("breadth-window", defaults.Breadth.Window, "Moving-average window of the breadth filter (days)"),
		BreadthQuorum:  flag.Int("breadth-quorum", defaults.Breadth.Quorum, "Basket members that must be above their MA for risk-on"),
		MonthlyAmount:  flag.Float64("monthly-amount", defaults.DCA.MonthlyAmount, "Monthly DCA contribution"),

		OutputDir:   flag.String("output", "", "Output directory (default results/<SYMBOL>_daily)"),
		ConsoleOnly: flag.Bool("console-only", false, "Skip file reports, console output only"),
		EnvFile:     flag.String("env", ".env", "Environment file to load"),

		ShowVersion: flag.Bool("version", false, "Show version and exit"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}
}

// ApplyOverrides copies explicitly set flags over the loaded
// configuration. Flags left at their registered default do not clobber
// config-file values.
func (f *BacktestFlags) ApplyOverrides(cfg *config.AnalysisConfig) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "symbol":
			cfg.Symbol = *f.Symbol
		case "data-root":
			cfg.DataRoot = *f.DataRoot
		case "start":
			cfg.StartDate = *f.StartDate
		case "end":
			cfg.EndDate = *f.EndDate
		case "capital":
			cfg.InitialCapital = *f.InitialCapital
		case "risk-free":
			cfg.RiskFreeRate = *f.RiskFreeRate
		case "trend-window":
			cfg.TrendWindow = *f.TrendWindow
		case "breadth-symbols":
			cfg.Breadth.Symbols = splitSymbols(*f.BreadthSymbols)
		case "breadth-window":
			cfg.Breadth.Window = *f.BreadthWindow
		case "breadth-quorum":
			cfg.Breadth.Quorum = *f.BreadthQuorum
		case "monthly-amount":
			cfg.DCA.MonthlyAmount = *f.MonthlyAmount
		}
	})
}

// splitSymbols parses a comma-separated symbol list
func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		sym := strings.ToUpper(strings.TrimSpace(part))
		if sym != "" {
			out = append(out, sym)
		}
	}
	return out
}

// PrintUsageExamples prints common invocations
func PrintUsageExamples() {
	fmt.Println("EXAMPLES:")
	fmt.Println("  backtest -symbol QQQ -start 2015-01-01 -end 2025-01-01")
	fmt.Println("  backtest -config qqq_faang")
	fmt.Println("  backtest -symbol QQQ -trend-window 50 -breadth-quorum 3 -console-only")
	fmt.Println("  backtest -symbol SPY -monthly-amount 500 -output results/spy")
	fmt.Println()
}
