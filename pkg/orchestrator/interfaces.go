package orchestrator

import (
	"github.com/quantlab/equity-backtest/internal/backtest"
	"github.com/quantlab/equity-backtest/pkg/config"
)

// Orchestrator coordinates one full analysis run
type Orchestrator interface {
	// Run evaluates every configured strategy plus the DCA plan against
	// the loaded price tables
	Run(cfg *config.AnalysisConfig) (*RunReport, error)
}

// Strategy names used in reports
const (
	StrategyBuyAndHold = "Buy & Hold"
	StrategyMomentum   = "MA Momentum"
	StrategyComposite  = "MA Momentum + Risk-On Filter"
)

// StrategyReport carries the outcome of one strategy evaluation. Err is
// set when the evaluation failed; a failed strategy never aborts its
// siblings.
type StrategyReport struct {
	Name        string
	Summary     *backtest.PerformanceSummary
	EquityCurve []backtest.EquityPoint
	Err         error
}

// RunReport aggregates the outcomes of one analysis run
type RunReport struct {
	Symbol     string
	Strategies []StrategyReport
	DCA        *backtest.DCAResult
	DCAErr     error
}

// Failed reports how many evaluations (strategies plus DCA) ended in error
func (r *RunReport) Failed() int {
	n := 0
	for _, s := range r.Strategies {
		if s.Err != nil {
			n++
		}
	}
	if r.DCAErr != nil {
		n++
	}
	return n
}
