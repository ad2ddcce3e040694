// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     dispatch
// Description: Structured missing-field error
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package dispatch

import (
	"errors"
	"fmt"

	"github.com/msto63/mFIN/internal/catalog"
)

// MissingFieldsError reports the required fields absent at invocation
type MissingFieldsError struct {
	Calculation string
	Missing     []catalog.Field
}

// Error implements error
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s cannot be calculated, missing: %s", e.Calculation, catalog.NameList(e.Missing))
}

// MissingNames returns the display names of the missing fields
func (e *MissingFieldsError) MissingNames() []string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.Name()
	}
	return names
}

// AsMissingFields extracts a *MissingFieldsError from err's chain
func AsMissingFields(err error) (*MissingFieldsError, bool) {
	var mf *MissingFieldsError
	if errors.As(err, &mf) {
		return mf, true
	}
	return nil, false
}
