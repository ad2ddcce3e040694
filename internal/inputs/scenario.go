// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     inputs
// Description: YAML scenario files that pre-fill an input set
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package inputs

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/internal/catalog"
)

// LoadScenario reads a scenario file:
//
//	inputs:
//	  Present Value: 1000
//	  Interest Rate: 0.05      # fractions, or "5%"
//	  Periods: 10
//	  Compound Method: Monthly
//	  Cashflow: [-1000, 300, 400, 500]
//
// Fields are stored in document order.
func LoadScenario(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mfinerror.Wrap(err, "failed to read scenario").
			WithCode(mfinerror.CodeFileError).
			WithDetail("path", path)
	}
	set, err := ParseScenario(data)
	if err != nil {
		return nil, mfinerror.Wrap(err, "invalid scenario "+path)
	}
	return set, nil
}

// ParseScenario parses scenario YAML
func ParseScenario(data []byte) (*Set, error) {
	var doc struct {
		Inputs yaml.Node `yaml:"inputs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, mfinerror.Wrap(err, "failed to parse scenario").
			WithCode(mfinerror.CodeInvalidInput)
	}

	set := NewSet()
	node := &doc.Inputs
	if node.Kind == 0 {
		return set, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, mfinerror.New("scenario 'inputs' must be a mapping").
			WithCode(mfinerror.CodeInvalidInput)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, valNode := node.Content[i], node.Content[i+1]
		f, err := ResolveField(key.Value)
		if err != nil {
			return nil, err
		}
		v, err := scenarioValue(f, valNode)
		if err != nil {
			return nil, err
		}
		if err := set.Put(f, v); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func scenarioValue(f catalog.Field, node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		if f.Kind() != catalog.KindList {
			return Value{}, entryError(f, "", "a single value is expected, not a list")
		}
		list := make([]float64, len(node.Content))
		for i, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return Value{}, entryError(f, "", fmt.Sprintf("entry %d is not a number", i+1))
			}
			x, err := parseListEntry(item.Value)
			if err != nil {
				return Value{}, entryError(f, item.Value, fmt.Sprintf("entry %d is not a number", i+1))
			}
			list[i] = x
		}
		return List(list...), nil

	case yaml.ScalarNode:
		s := node.Value
		if f.Kind() == catalog.KindPercentage && !strings.HasSuffix(s, "%") {
			// Plain numbers in scenario files are already fractions
			x, err := parseNumber(s)
			if err != nil {
				return Value{}, entryError(f, s, "not a percentage")
			}
			return Number(x), nil
		}
		return ParseEntry(f, s)

	default:
		return Value{}, entryError(f, "", "unsupported value")
	}
}
