package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quantlab/equity-backtest/internal/backtest"
	"github.com/quantlab/equity-backtest/pkg/orchestrator"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteEquityCurves writes one equity-curve CSV per successfully
// evaluated strategy into dir
func (r *DefaultCSVReporter) WriteEquityCurves(report *orchestrator.RunReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, s := range report.Strategies {
		if s.Err != nil || len(s.EquityCurve) == 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("equity_%s.csv", slugify(s.Name)))
		if err := WriteEquityCurveCSV(s.EquityCurve, path); err != nil {
			return err
		}
	}

	return nil
}

// WriteEquityCurveCSV writes a single equity curve as date,equity rows
func WriteEquityCurveCSV(curve []backtest.EquityPoint, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "equity"}); err != nil {
		return err
	}

	for _, p := range curve {
		if err := w.Write([]string{
			p.Timestamp.Format("2006-01-02"),
			strconv.FormatFloat(p.Equity, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}

	return nil
}

// slugify converts a strategy name into a file-name friendly token
func slugify(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
