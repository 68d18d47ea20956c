package orchestrator

import (
	"fmt"
	"log"

	"github.com/quantlab/equity-backtest/internal/backtest"
	"github.com/quantlab/equity-backtest/internal/indicators"
	"github.com/quantlab/equity-backtest/internal/signal"
	"github.com/quantlab/equity-backtest/pkg/config"
	datamanager "github.com/quantlab/equity-backtest/pkg/data"
	"github.com/quantlab/equity-backtest/pkg/types"
)

// DefaultOrchestrator implements the Orchestrator interface
type DefaultOrchestrator struct {
	data *datamanager.DataManager
}

// NewOrchestrator creates a new orchestrator with default components
func NewOrchestrator() Orchestrator {
	return &DefaultOrchestrator{
		data: datamanager.NewDataManager(),
	}
}

// NewOrchestratorWithDataManager creates an orchestrator with a custom data manager
func NewOrchestratorWithDataManager(dm *datamanager.DataManager) Orchestrator {
	return &DefaultOrchestrator{
		data: dm,
	}
}

// Run loads the primary price table once, then evaluates each strategy
// and the DCA plan against it. A failure inside one evaluation is
// recorded on its report entry and the remaining evaluations continue.
func (o *DefaultOrchestrator) Run(cfg *config.AnalysisConfig) (*RunReport, error) {
	start, end, err := cfg.Window()
	if err != nil {
		return nil, err
	}

	log.Printf("🚀 Starting backtest run for %s (%s → %s)", cfg.Symbol, cfg.StartDate, cfg.EndDate)

	bars, err := o.data.LoadSymbol(cfg.DataRoot, cfg.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("primary price table unavailable: %w", err)
	}
	log.Printf("📊 %s: %d trading days loaded", cfg.Symbol, len(bars))

	dates := types.Dates(bars)
	returns := indicators.DailyReturns(types.Closes(bars))

	report := &RunReport{Symbol: cfg.Symbol}

	evaluations := []struct {
		name  string
		build func() (signal.Signal, error)
	}{
		{StrategyBuyAndHold, func() (signal.Signal, error) {
			return backtest.BuyAndHold(dates), nil
		}},
		{StrategyMomentum, func() (signal.Signal, error) {
			return signal.MACrossover(bars, cfg.TrendWindow), nil
		}},
		{StrategyComposite, func() (signal.Signal, error) {
			trend := signal.MACrossover(bars, cfg.TrendWindow)
			riskOn, err := o.breadthSignal(cfg, bars)
			if err != nil {
				return signal.Signal{}, err
			}
			return signal.And(trend, riskOn), nil
		}},
	}

	for _, eval := range evaluations {
		entry := StrategyReport{Name: eval.name}

		positions, err := eval.build()
		if err == nil {
			var strategyReturns []float64
			strategyReturns, err = backtest.StrategyReturns(returns, positions)
			if err == nil {
				entry.Summary, entry.EquityCurve, err = backtest.Summarize(
					dates, strategyReturns, cfg.InitialCapital, cfg.RiskFreeRate)
			}
		}

		if err != nil {
			log.Printf("❌ %s evaluation failed: %v", eval.name, err)
			entry.Err = err
		}
		report.Strategies = append(report.Strategies, entry)
	}

	report.DCA, report.DCAErr = backtest.EvaluateDCA(bars, cfg.DCA.MonthlyAmount)
	if report.DCAErr != nil {
		log.Printf("❌ DCA evaluation failed: %v", report.DCAErr)
	}

	return report, nil
}

// breadthSignal loads the basket tables and builds the risk-on vote on
// the primary date index. A basket symbol that cannot be loaded fails
// this signal only; the caller records the error on the composite
// strategy and moves on.
func (o *DefaultOrchestrator) breadthSignal(cfg *config.AnalysisConfig, primary []types.OHLCV) (signal.Signal, error) {
	start, end, err := cfg.Window()
	if err != nil {
		return signal.Signal{}, err
	}

	basket := make([][]types.OHLCV, 0, len(cfg.Breadth.Symbols))
	for _, sym := range cfg.Breadth.Symbols {
		bars, err := o.data.LoadSymbol(cfg.DataRoot, sym, start, end)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("basket symbol %s: %w", sym, err)
		}
		basket = append(basket, bars)
	}

	return signal.Breadth(types.Dates(primary), basket, cfg.Breadth.Window, cfg.Breadth.Quorum), nil
}
