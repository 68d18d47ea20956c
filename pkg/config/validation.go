package config

import (
	"fmt"
	"strings"

	apperrors "github.com/quantlab/equity-backtest/internal/errors"
)

// Validate checks a fully assembled configuration before a run starts
func (m *AnalysisConfigManager) Validate(cfg *AnalysisConfig) error {
	if strings.TrimSpace(cfg.Symbol) == "" {
		return apperrors.NewConfigurationError("config", "validate", "symbol is required")
	}
	if strings.TrimSpace(cfg.DataRoot) == "" {
		return apperrors.NewConfigurationError("config", "validate", "data_root is required")
	}

	start, end, err := cfg.Window()
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return apperrors.NewConfigurationError("config", "validate",
			fmt.Sprintf("start_date %s must be before end_date %s", cfg.StartDate, cfg.EndDate))
	}

	if cfg.InitialCapital <= 0 {
		return apperrors.NewConfigurationError("config", "validate", "initial_capital must be positive")
	}
	if cfg.RiskFreeRate < 0 {
		return apperrors.NewConfigurationError("config", "validate", "risk_free_rate cannot be negative")
	}
	if cfg.TrendWindow <= 0 {
		return apperrors.NewConfigurationError("config", "validate", "trend_window must be positive")
	}

	if cfg.Breadth.Window <= 0 {
		return apperrors.NewConfigurationError("config", "validate", "breadth.window must be positive")
	}
	if len(cfg.Breadth.Symbols) == 0 {
		return apperrors.NewConfigurationError("config", "validate", "breadth.symbols cannot be empty")
	}
	if cfg.Breadth.Quorum < 1 || cfg.Breadth.Quorum > len(cfg.Breadth.Symbols) {
		return apperrors.NewConfigurationError("config", "validate",
			fmt.Sprintf("breadth.quorum must be between 1 and %d", len(cfg.Breadth.Symbols)))
	}

	if cfg.DCA.MonthlyAmount <= 0 {
		return apperrors.NewConfigurationError("config", "validate", "dca.monthly_amount must be positive")
	}

	return nil
}
