// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     menu
// Description: Message types for calculation commands
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package menu

import (
	"github.com/msto63/mFIN/internal/dispatch"
)

// Message types for tea.Cmd operations

// calculatedMsg is sent when an invoked calculation finishes
type calculatedMsg struct {
	spec   dispatch.CalculationSpec
	result dispatch.Result
	err    error
}
