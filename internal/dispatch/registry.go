// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     dispatch
// Description: Ordered calculation registry with describe and invoke
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package dispatch

import (
	"sync"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/foundation/utils/stringx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/inputs"
)

// Options configures a registry
type Options struct {
	Logger *mfinlog.Logger
}

// Registry holds calculation specs in registration order. It is built once
// at startup and read concurrently afterwards.
type Registry struct {
	specs  []CalculationSpec
	index  map[string]int
	logger *mfinlog.Logger
	mutex  sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mfinlog.Discard()
	}
	return &Registry{
		index:  make(map[string]int),
		logger: opts.Logger.WithField("component", "dispatch"),
	}
}

// Register appends a calculation. Names must be unique; specs without a name
// or compute function, or with invalid or repeated fields, are rejected.
func (r *Registry) Register(spec CalculationSpec) error {
	if stringx.IsBlank(spec.Name) {
		return malformed("calculation name cannot be empty", spec.Name)
	}
	if spec.Compute == nil {
		return malformed("calculation has no compute function", spec.Name)
	}
	seen := make(map[catalog.Field]bool, len(spec.Requires))
	for _, f := range spec.Requires {
		if !f.Valid() {
			return malformed("calculation requires an unknown field", spec.Name)
		}
		if seen[f] {
			return malformed("calculation requires "+f.Name()+" twice", spec.Name)
		}
		seen[f] = true
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.index[spec.Name]; exists {
		return mfinerror.Newf("calculation %q already registered", spec.Name).
			WithCode(mfinerror.CodeDuplicateEntry).
			WithDetail("calculation", spec.Name)
	}

	spec.Requires = append([]catalog.Field(nil), spec.Requires...)
	r.index[spec.Name] = len(r.specs)
	r.specs = append(r.specs, spec)

	r.logger.Debug("calculation registered", mfinlog.Fields{
		"calculation": spec.Name,
		"requires":    len(spec.Requires),
	})
	return nil
}

func malformed(message, name string) error {
	return mfinerror.New(message).
		WithCode(mfinerror.CodeMalformedRegistry).
		WithDetail("calculation", name)
}

// Get returns the spec registered under name
func (r *Registry) Get(name string) (CalculationSpec, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return CalculationSpec{}, false
	}
	return r.specs[i], true
}

// Names returns the calculation names in registration order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of registered calculations
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.specs)
}

// snapshot returns the specs for a read-only scan
func (r *Registry) snapshot() []CalculationSpec {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.specs[:len(r.specs):len(r.specs)]
}

// Describe returns the requirements of a calculation with each field's
// display kind
func (r *Registry) Describe(name string) (Description, error) {
	spec, ok := r.Get(name)
	if !ok {
		return Description{}, notFound(name)
	}

	d := Description{
		Name:     spec.Name,
		Title:    stringx.FirstNonBlank(spec.Title, spec.Name),
		Requires: make([]FieldDescription, len(spec.Requires)),
		Result:   spec.Result,
	}
	for i, f := range spec.Requires {
		d.Requires[i] = FieldDescription{Field: f, Name: f.Name(), Kind: f.Kind()}
	}
	return d, nil
}

// Invoke checks the requirements of a calculation against in and runs it on
// a copy of in. Missing fields yield a *MissingFieldsError in the chain;
// compute failures keep their code. in is never modified.
func (r *Registry) Invoke(name string, in *inputs.Set) (Result, error) {
	spec, ok := r.Get(name)
	if !ok {
		return Result{}, notFound(name)
	}

	if v := Validate(in, spec.Requires); !v.Computable {
		mf := &MissingFieldsError{Calculation: spec.Name, Missing: v.Missing}
		return Result{}, mfinerror.Wrap(mf, "dispatch").
			WithCode(mfinerror.CodeMissingField).
			WithDetail("calculation", spec.Name).
			WithDetail("missing", mf.MissingNames())
	}

	timer := r.logger.StartTimer("invoke").WithField("calculation", spec.Name)
	result, err := spec.Compute(in.Clone())
	if err != nil {
		timer.WithField("success", false).WithField("error", err.Error()).Stop()
		wrapped := mfinerror.Wrap(err, spec.Name).WithOperation("dispatch.Invoke")
		if wrapped.Code() == mfinerror.CodeUnknown {
			wrapped = wrapped.WithCode(mfinerror.CodeCalculation)
		}
		return Result{}, wrapped
	}
	timer.Stop()
	return result, nil
}

func notFound(name string) error {
	return mfinerror.Newf("calculation %q not found", name).
		WithCode(mfinerror.CodeNotFound).
		WithDetail("calculation", name)
}
