package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/quantlab/equity-backtest/pkg/orchestrator"
)

// ExcelStyles holds the workbook formatting styles
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
	BaseStyle     int
	DateStyle     int
}

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteRunReportXLSX writes the full run report into one workbook: a
// summary sheet plus one equity-curve sheet per evaluated strategy
func (r *DefaultExcelReporter) WriteRunReportXLSX(report *orchestrator.RunReport, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	fx.SetSheetName(fx.GetSheetName(0), summarySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, report, styles); err != nil {
		return err
	}

	for _, s := range report.Strategies {
		if s.Err != nil || len(s.EquityCurve) == 0 {
			continue
		}
		sheet := truncateSheetName("Equity " + s.Name)
		if _, err := fx.NewSheet(sheet); err != nil {
			return err
		}
		if err := r.writeEquitySheet(fx, sheet, s, styles); err != nil {
			return err
		}
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates the workbook styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 177, // $#,##0.00
		Font:   &excelize.Font{Size: 10, Family: "Calibri"},
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 10, // 0.00%
		Font:   &excelize.Font{Size: 10, Family: "Calibri"},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Family: "Calibri"},
	})
	if err != nil {
		return styles, err
	}

	styles.DateStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 14, // m/d/yyyy
		Font:   &excelize.Font{Size: 10, Family: "Calibri"},
	})
	return styles, err
}

// writeSummarySheet writes the per-strategy statistics and the DCA block
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, report *orchestrator.RunReport, styles ExcelStyles) error {
	headers := []string{"Strategy", "Final Equity", "Total Return", "Max Drawdown", "Volatility (ann.)", "Sharpe", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	row := 2
	for _, s := range report.Strategies {
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		fx.SetCellValue(sheet, nameCell, s.Name)
		fx.SetCellStyle(sheet, nameCell, nameCell, styles.BaseStyle)

		if s.Err != nil {
			errCell, _ := excelize.CoordinatesToCellName(7, row)
			fx.SetCellValue(sheet, errCell, s.Err.Error())
			fx.SetCellStyle(sheet, errCell, errCell, styles.BaseStyle)
			row++
			continue
		}

		sum := s.Summary
		values := []struct {
			col   int
			value interface{}
			style int
		}{
			{2, sum.FinalEquity, styles.CurrencyStyle},
			{3, sum.TotalReturn, styles.PercentStyle},
			{4, sum.MaxDrawdown, styles.PercentStyle},
			{5, sum.AnnualizedVolatility, styles.PercentStyle},
		}
		for _, v := range values {
			cell, _ := excelize.CoordinatesToCellName(v.col, row)
			fx.SetCellValue(sheet, cell, v.value)
			fx.SetCellStyle(sheet, cell, cell, v.style)
		}

		sharpeCell, _ := excelize.CoordinatesToCellName(6, row)
		if sum.SharpeDefined {
			fx.SetCellValue(sheet, sharpeCell, sum.SharpeRatio)
		} else {
			fx.SetCellValue(sheet, sharpeCell, "undefined")
		}
		fx.SetCellStyle(sheet, sharpeCell, sharpeCell, styles.BaseStyle)
		row++
	}

	// DCA block below the strategies
	row++
	titleCell, _ := excelize.CoordinatesToCellName(1, row)
	fx.SetCellValue(sheet, titleCell, "DCA Plan")
	fx.SetCellStyle(sheet, titleCell, titleCell, styles.HeaderStyle)
	row++

	if report.DCAErr != nil {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		fx.SetCellValue(sheet, cell, report.DCAErr.Error())
		fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
		return nil
	}
	if report.DCA == nil {
		return nil
	}

	dcaRows := []struct {
		label string
		value interface{}
		style int
	}{
		{"Contribution Months", report.DCA.Months, styles.BaseStyle},
		{"Total Cost", report.DCA.TotalCost, styles.CurrencyStyle},
		{"Total Shares", report.DCA.TotalShares, styles.BaseStyle},
		{"Final Value", report.DCA.FinalValue, styles.CurrencyStyle},
		{"Profit", report.DCA.Profit, styles.CurrencyStyle},
		{"ROI", report.DCA.ROI, styles.PercentStyle},
	}
	for _, dr := range dcaRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		fx.SetCellValue(sheet, labelCell, dr.label)
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.BaseStyle)
		fx.SetCellValue(sheet, valueCell, dr.value)
		fx.SetCellStyle(sheet, valueCell, valueCell, dr.style)
		row++
	}

	fx.SetColWidth(sheet, "A", "A", 30)
	fx.SetColWidth(sheet, "B", "G", 16)
	return nil
}

// writeEquitySheet writes one strategy's daily equity curve
func (r *DefaultExcelReporter) writeEquitySheet(fx *excelize.File, sheet string, s orchestrator.StrategyReport, styles ExcelStyles) error {
	for i, h := range []string{"Date", "Equity"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, p := range s.EquityCurve {
		dateCell, _ := excelize.CoordinatesToCellName(1, i+2)
		equityCell, _ := excelize.CoordinatesToCellName(2, i+2)
		fx.SetCellValue(sheet, dateCell, p.Timestamp)
		fx.SetCellStyle(sheet, dateCell, dateCell, styles.DateStyle)
		fx.SetCellValue(sheet, equityCell, p.Equity)
		fx.SetCellStyle(sheet, equityCell, equityCell, styles.CurrencyStyle)
	}

	fx.SetColWidth(sheet, "A", "B", 14)
	return nil
}

// truncateSheetName keeps sheet names inside Excel's 31-character limit
func truncateSheetName(name string) string {
	if len(name) <= 31 {
		return name
	}
	return name[:31]
}

// WriteRunReportXLSX is a package-level convenience function
func WriteRunReportXLSX(report *orchestrator.RunReport, path string) error {
	return NewDefaultExcelReporter().WriteRunReportXLSX(report, path)
}
