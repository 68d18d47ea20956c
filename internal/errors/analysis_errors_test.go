package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalysisError_SentinelMatching tests errors.Is against the
// category sentinels through wrapping
func TestAnalysisError_SentinelMatching(t *testing.T) {
	err := NewMissingDataError("data", "load_csv", "file not found")
	assert.ErrorIs(t, err, ErrMissingData)
	assert.NotErrorIs(t, err, ErrInsufficientHistory)

	wrapped := fmt.Errorf("primary price table unavailable: %w", err)
	assert.ErrorIs(t, wrapped, ErrMissingData)

	var analysisErr *AnalysisError
	require.ErrorAs(t, wrapped, &analysisErr)
	assert.Equal(t, ErrorCategoryMissingData, analysisErr.Category)
}

// TestAnalysisError_IsFatal tests the fatal-vs-local category split
func TestAnalysisError_IsFatal(t *testing.T) {
	assert.True(t, NewConfigurationError("config", "validate", "bad").IsFatal())
	assert.True(t, NewDataError("data", "load", errors.New("corrupt")).IsFatal())

	assert.False(t, NewMissingDataError("data", "load", "gone").IsFatal())
	assert.False(t, NewInsufficientHistoryError("backtest", "sharpe", "short").IsFatal())
	assert.False(t, NewDegenerateVarianceError("backtest", "sharpe").IsFatal())
}

// TestAnalysisError_ErrorString tests the formatted message
func TestAnalysisError_ErrorString(t *testing.T) {
	err := NewInsufficientHistoryError("indicators", "sma", "window larger than series")

	msg := err.Error()
	assert.Contains(t, msg, "INSUFFICIENT_HISTORY")
	assert.Contains(t, msg, "indicators")
	assert.Contains(t, msg, "window larger than series")
}

// TestWrapError_NilPassthrough tests that wrapping nil stays nil
func TestWrapError_NilPassthrough(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryData, "data", "load"))
}
