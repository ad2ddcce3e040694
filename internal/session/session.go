// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     session
// Description: One caller's accumulated inputs and the dispatcher surface
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package session owns the input set of one caller and exposes the
// dispatcher operations over it: listing computable calculations, ranking
// the closest ones, describing and invoking a calculation.
//
// A session is used by one caller at a time. The registry it dispatches to
// is read-only and may be shared between sessions.
package session

import (
	"strings"

	"github.com/google/uuid"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	mfinlog "github.com/msto63/mFIN/foundation/core/log"
	"github.com/msto63/mFIN/foundation/utils/stringx"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/dispatch"
	"github.com/msto63/mFIN/internal/inputs"
)

// DefaultSuggestionLimit is the number of names offered for a typo
const DefaultSuggestionLimit = 3

// Options configures a session
type Options struct {
	Registry *dispatch.Registry
	Logger   *mfinlog.Logger
	// SuggestionLimit caps "did you mean" suggestions
	SuggestionLimit int
}

// Session holds one caller's inputs
type Session struct {
	id       string
	registry *dispatch.Registry
	inputs   *inputs.Set
	logger   *mfinlog.Logger
	limit    int
}

// New creates a session with an empty input set
func New(opts Options) (*Session, error) {
	if opts.Registry == nil {
		return nil, mfinerror.New("session needs a registry").
			WithCode(mfinerror.CodeInvalidInput).
			WithOperation("session.New")
	}
	if opts.Logger == nil {
		opts.Logger = mfinlog.Discard()
	}
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = DefaultSuggestionLimit
	}

	id := uuid.New().String()
	s := &Session{
		id:       id,
		registry: opts.Registry,
		inputs:   inputs.NewSet(),
		logger:   opts.Logger.WithName("session").WithCorrelationID(id),
		limit:    opts.SuggestionLimit,
	}
	s.logger.Debug("session started", mfinlog.Int("calculations", opts.Registry.Len()))
	return s, nil
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// Registry returns the registry the session dispatches to
func (s *Session) Registry() *dispatch.Registry {
	return s.registry
}

// Inputs returns a copy of the current inputs
func (s *Session) Inputs() *inputs.Set {
	return s.inputs.Clone()
}

// Put stores a value. A rejected value leaves the inputs unchanged.
func (s *Session) Put(f catalog.Field, v inputs.Value) error {
	if err := s.inputs.Put(f, v); err != nil {
		s.logger.Debug("input rejected", mfinlog.String("field", f.Name()), mfinlog.Err(err))
		return err
	}
	s.logger.Debug("input stored", mfinlog.String("field", f.Name()), mfinlog.String("value", v.String()))
	return nil
}

// Enter parses text typed for the named field and stores it
func (s *Session) Enter(name, text string) error {
	f, err := inputs.ResolveField(name)
	if err != nil {
		return err
	}
	v, err := inputs.ParseEntry(f, text)
	if err != nil {
		return err
	}
	return s.Put(f, v)
}

// Assign stores a "Field Name=value" assignment
func (s *Session) Assign(assignment string) error {
	f, v, err := inputs.ParseAssignment(assignment)
	if err != nil {
		return err
	}
	return s.Put(f, v)
}

// Merge stores every value of other, stopping at the first rejected one
func (s *Session) Merge(other *inputs.Set) error {
	return s.inputs.Merge(other)
}

// Forget removes a field's value
func (s *Session) Forget(f catalog.Field) {
	s.inputs.Delete(f)
}

// Reset discards all inputs
func (s *Session) Reset() {
	s.inputs = inputs.NewSet()
	s.logger.Debug("inputs cleared")
}

// ListComputable returns the calculations whose requirements are all met,
// in registry order
func (s *Session) ListComputable() []string {
	return s.registry.Resolve(s.inputs)
}

// RankClosest returns the calculations closest to computable
func (s *Session) RankClosest() ([]dispatch.Match, error) {
	matches, err := s.registry.RankClosest(s.inputs)
	if err != nil {
		s.logger.LogError(err)
		return nil, err
	}
	return matches, nil
}

// Describe lists the fields a calculation needs and its result kind
func (s *Session) Describe(name string) (dispatch.Description, error) {
	spec, err := s.lookup(name)
	if err != nil {
		return dispatch.Description{}, err
	}
	return s.registry.Describe(spec.Name)
}

// Invoke runs a calculation on a copy of the current inputs. The inputs
// are left as they were whatever the outcome.
func (s *Session) Invoke(name string) (dispatch.Result, error) {
	spec, err := s.lookup(name)
	if err != nil {
		return dispatch.Result{}, err
	}

	result, err := s.registry.Invoke(spec.Name, s.inputs)
	if err != nil {
		if mf, ok := dispatch.AsMissingFields(err); ok {
			s.logger.Debug("calculation not computable",
				mfinlog.String("calculation", spec.Name),
				mfinlog.Strings("missing", mf.MissingNames()))
		} else {
			s.logger.WarnWithErr("calculation failed", err, mfinlog.String("calculation", spec.Name))
		}
		return dispatch.Result{}, err
	}
	s.logger.Info("calculation completed", mfinlog.String("calculation", spec.Name))
	return result, nil
}

// Spec returns the registered calculation for name, matched without regard
// to case
func (s *Session) Spec(name string) (dispatch.CalculationSpec, error) {
	return s.lookup(name)
}

func (s *Session) lookup(name string) (dispatch.CalculationSpec, error) {
	name = strings.TrimSpace(name)
	if spec, ok := s.registry.Get(name); ok {
		return spec, nil
	}
	names := s.registry.Names()
	for _, n := range names {
		if strings.EqualFold(n, name) {
			spec, _ := s.registry.Get(n)
			return spec, nil
		}
	}

	suggestions := stringx.FindSimilar(name, names, s.limit)
	return dispatch.CalculationSpec{}, mfinerror.New(stringx.FormatSuggestion("calculation", name, suggestions)).
		WithCode(mfinerror.CodeNotFound).
		WithDetail("calculation", name).
		WithDetail("suggestions", suggestions)
}
