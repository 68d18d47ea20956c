package reporting

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantlab/equity-backtest/pkg/config"
	"github.com/quantlab/equity-backtest/pkg/orchestrator"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputRunReport prints the strategy comparison and DCA tables
func (r *DefaultConsoleReporter) OutputRunReport(report *orchestrator.RunReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("📊 STRATEGY COMPARISON — %s", report.Symbol))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Strategy", "Final Equity", "Total Return", "Max Drawdown", "Volatility (ann.)", "Sharpe"})

	for _, s := range report.Strategies {
		if s.Err != nil {
			t.AppendRow(table.Row{s.Name, "—", "—", "—", "—", "—"})
			continue
		}
		sum := s.Summary
		t.AppendRow(table.Row{
			s.Name,
			fmt.Sprintf("$%.2f", sum.FinalEquity),
			fmt.Sprintf("%.2f%%", sum.TotalReturn*100),
			fmt.Sprintf("%.2f%%", sum.MaxDrawdown*100),
			fmt.Sprintf("%.2f%%", sum.AnnualizedVolatility*100),
			formatSharpe(sum.SharpeRatio, sum.SharpeDefined),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMin: 28},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()

	for _, s := range report.Strategies {
		if s.Err != nil {
			fmt.Printf("❌ %s: %v\n", s.Name, s.Err)
		}
	}
	fmt.Println()

	r.outputDCA(report)
}

// outputDCA prints the dollar-cost-averaging summary
func (r *DefaultConsoleReporter) outputDCA(report *orchestrator.RunReport) {
	if report.DCAErr != nil {
		fmt.Printf("❌ DCA plan: %v\n\n", report.DCAErr)
		return
	}
	if report.DCA == nil {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("💰 DCA PLAN")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Contribution Months", report.DCA.Months},
		{"Total Cost", fmt.Sprintf("$%.2f", report.DCA.TotalCost)},
		{"Total Shares", fmt.Sprintf("%.4f", report.DCA.TotalShares)},
		{"Final Value", fmt.Sprintf("$%.2f", report.DCA.FinalValue)},
		{"Profit", fmt.Sprintf("$%.2f", report.DCA.Profit)},
		{"ROI", fmt.Sprintf("%.2f%%", report.DCA.ROI*100)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMin: 20},
		{Number: 2, Align: text.AlignRight, WidthMin: 16},
	})

	t.Render()
	fmt.Println()
}

// PrintConfig prints the run configuration
func (r *DefaultConsoleReporter) PrintConfig(cfg *config.AnalysisConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("RUN CONFIGURATION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Symbol", cfg.Symbol},
		{"📅 Window", fmt.Sprintf("%s → %s", cfg.StartDate, cfg.EndDate)},
		{"💰 Initial Capital", fmt.Sprintf("$%.2f", cfg.InitialCapital)},
		{"🏦 Risk-Free Rate", fmt.Sprintf("%.2f%%", cfg.RiskFreeRate*100)},
		{"📈 Trend Window", fmt.Sprintf("%d days", cfg.TrendWindow)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"🧺 Breadth Basket", strings.Join(cfg.Breadth.Symbols, ", ")},
		{"🧺 Breadth Window", fmt.Sprintf("%d days", cfg.Breadth.Window)},
		{"🧺 Breadth Quorum", fmt.Sprintf("%d of %d", cfg.Breadth.Quorum, len(cfg.Breadth.Symbols))},
		{"💵 DCA Monthly Amount", fmt.Sprintf("$%.2f", cfg.DCA.MonthlyAmount)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 22, Align: text.AlignLeft},
		{Number: 2, WidthMin: 32, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

func formatSharpe(value float64, defined bool) string {
	if !defined {
		return "undefined"
	}
	return fmt.Sprintf("%.3f", value)
}

// OutputConsole is a package-level convenience function
func OutputConsole(report *orchestrator.RunReport) {
	NewDefaultConsoleReporter().OutputRunReport(report)
}
