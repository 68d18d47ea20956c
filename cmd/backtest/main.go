package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/quantlab/equity-backtest/internal/logger"
	"github.com/quantlab/equity-backtest/pkg/config"
	"github.com/quantlab/equity-backtest/pkg/orchestrator"
	"github.com/quantlab/equity-backtest/pkg/reporting"
)

const (
	AppName    = "Equity Backtest"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewBacktestFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	printHeader()

	loadEnvironment(*flags.EnvFile)

	cfg, err := loadConfiguration(flags)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	runLog, err := logger.NewLogger(cfg.Symbol)
	if err != nil {
		log.Printf("⚠️  Could not open run log (%v), continuing without it", err)
	} else {
		defer runLog.Close()
	}

	console := reporting.NewDefaultConsoleReporter()
	console.PrintConfig(cfg)

	orch := orchestrator.NewOrchestrator()
	report, err := orch.Run(cfg)
	if err != nil {
		if runLog != nil {
			runLog.LogError("run", err)
		}
		log.Fatalf("❌ Backtest run failed: %v", err)
	}

	logOutcomes(runLog, report)
	console.OutputRunReport(report)

	if !*flags.ConsoleOnly {
		if err := writeFileReports(flags, cfg, report); err != nil {
			log.Fatalf("❌ Failed to write reports: %v", err)
		}
	}

	if n := report.Failed(); n > 0 {
		log.Printf("⚠️  %d evaluation(s) failed, see output above", n)
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Daily Equity Strategy Backtesting\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintUsageExamples()
	flag.PrintDefaults()

	fmt.Printf("\nFor more information, see the README.\n")
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

// loadConfiguration assembles the run config: defaults, then config
// file, then environment, then explicit flags.
func loadConfiguration(flags *BacktestFlags) (*config.AnalysisConfig, error) {
	manager := config.NewAnalysisConfigManager()

	cfg, err := manager.LoadConfig(*flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	if root := os.Getenv("EQUITY_DATA_ROOT"); root != "" {
		cfg.DataRoot = root
	}

	flags.ApplyOverrides(cfg)

	if err := manager.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func logOutcomes(runLog *logger.Logger, report *orchestrator.RunReport) {
	if runLog == nil {
		return
	}

	for _, s := range report.Strategies {
		if s.Err != nil {
			runLog.Strategy(s.Name, "failed: %v", s.Err)
			continue
		}
		runLog.Strategy(s.Name, "final equity $%.2f, total return %.2f%%, max drawdown %.2f%%",
			s.Summary.FinalEquity, s.Summary.TotalReturn*100, s.Summary.MaxDrawdown*100)
	}

	if report.DCAErr != nil {
		runLog.LogError("dca", report.DCAErr)
	} else if report.DCA != nil {
		runLog.Info("DCA: %d months, cost $%.2f, final value $%.2f, ROI %.2f%%",
			report.DCA.Months, report.DCA.TotalCost, report.DCA.FinalValue, report.DCA.ROI*100)
	}
}

func writeFileReports(flags *BacktestFlags, cfg *config.AnalysisConfig, report *orchestrator.RunReport) error {
	outDir := *flags.OutputDir
	if outDir == "" {
		outDir = reporting.DefaultOutputDir(cfg.Symbol)
	}

	csvReporter := reporting.NewDefaultCSVReporter()
	if err := csvReporter.WriteEquityCurves(report, outDir); err != nil {
		return err
	}

	if err := reporting.WriteSummaryJSON(report, filepath.Join(outDir, "summary.json")); err != nil {
		return err
	}

	if err := reporting.WriteRunReportXLSX(report, filepath.Join(outDir, "report.xlsx")); err != nil {
		return err
	}

	log.Printf("📁 Reports written to %s", outDir)
	return nil
}
