package reporting

// Package reporting turns run reports into console, CSV, JSON and Excel output.

import (
	"github.com/quantlab/equity-backtest/pkg/config"
	"github.com/quantlab/equity-backtest/pkg/orchestrator"
)

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputRunReport(report *orchestrator.RunReport)
	PrintConfig(cfg *config.AnalysisConfig)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteEquityCurves(report *orchestrator.RunReport, dir string) error
	WriteSummaryJSON(report *orchestrator.RunReport, path string) error
	WriteRunReportXLSX(report *orchestrator.RunReport, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(symbol string) string
	EnsureDirectoryExists(path string) error
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole   bool
	EnableFiles     bool
	OutputDirectory string
}
