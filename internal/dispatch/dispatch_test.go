package dispatch

import (
	"errors"
	"reflect"
	"testing"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/internal/catalog"
	"github.com/msto63/mFIN/internal/inputs"
)

// Stand-ins for four arbitrary required fields
var (
	fieldA = catalog.PresentValue
	fieldB = catalog.InterestRate
	fieldC = catalog.Periods
	fieldD = catalog.Budget
)

func constant(v float64) ComputeFunc {
	return func(*inputs.Set) (Result, error) { return Scalar(v), nil }
}

func newTestRegistry(t *testing.T, specs ...CalculationSpec) *Registry {
	t.Helper()
	r := NewRegistry(Options{})
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			t.Fatalf("Register(%q) error = %v", s.Name, err)
		}
	}
	return r
}

func setOf(t *testing.T, values map[catalog.Field]float64, order ...catalog.Field) *inputs.Set {
	t.Helper()
	s := inputs.NewSet()
	for _, f := range order {
		if err := s.Put(f, inputs.Number(values[f])); err != nil {
			t.Fatalf("Put(%v) error = %v", f, err)
		}
	}
	return s
}

func futureValueRegistry(t *testing.T) *Registry {
	return newTestRegistry(t, CalculationSpec{
		Name:     "Future Value",
		Requires: []catalog.Field{fieldA, fieldB, fieldC, fieldD},
		Compute:  constant(1),
	})
}

func TestValidate(t *testing.T) {
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldC: 3}, fieldA, fieldC)

	tests := []struct {
		name     string
		requires []catalog.Field
		want     ValidationResult
	}{
		{"empty requirements", nil, ValidationResult{Computable: true}},
		{"all present", []catalog.Field{fieldC, fieldA}, ValidationResult{Computable: true}},
		{"missing in requirement order", []catalog.Field{fieldD, fieldA, fieldB},
			ValidationResult{Computable: false, Missing: []catalog.Field{fieldD, fieldB}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(in, tt.requires)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := Validate(nil, []catalog.Field{fieldA}); got.Computable {
		t.Error("nil input set must not satisfy requirements")
	}
	if in.Len() != 2 {
		t.Error("Validate mutated its input")
	}
}

// universe is small enough to enumerate every subset as an input set
var universe = []catalog.Field{fieldA, fieldB, fieldC, fieldD, catalog.Yield, catalog.FaceValue}

func allSubsets(t *testing.T) []*inputs.Set {
	t.Helper()
	var sets []*inputs.Set
	for mask := 0; mask < 1<<len(universe); mask++ {
		s := inputs.NewSet()
		for i, f := range universe {
			if mask&(1<<i) != 0 {
				if err := s.Put(f, inputs.Number(float64(i+1))); err != nil {
					t.Fatal(err)
				}
			}
		}
		sets = append(sets, s)
	}
	return sets
}

func propertyRegistry(t *testing.T) *Registry {
	return newTestRegistry(t,
		CalculationSpec{Name: "one", Requires: []catalog.Field{fieldA}, Compute: constant(1)},
		CalculationSpec{Name: "two", Requires: []catalog.Field{fieldB, fieldC}, Compute: constant(2)},
		CalculationSpec{Name: "three", Requires: []catalog.Field{fieldA, catalog.Yield, catalog.FaceValue}, Compute: constant(3)},
		CalculationSpec{Name: "four", Requires: []catalog.Field{fieldD, fieldC, fieldB, fieldA}, Compute: constant(4)},
		CalculationSpec{Name: "five", Requires: []catalog.Field{catalog.FaceValue, fieldD}, Compute: constant(5)},
	)
}

func TestValidatorMatchesMembership(t *testing.T) {
	r := propertyRegistry(t)
	for _, in := range allSubsets(t) {
		for _, name := range r.Names() {
			spec, _ := r.Get(name)
			all := true
			for _, f := range spec.Requires {
				all = all && in.Has(f)
			}
			if got := Validate(in, spec.Requires).Computable; got != all {
				t.Fatalf("Validate(%v, %s) = %v, want %v", in.Fields(), name, got, all)
			}
		}
	}
}

func TestResolveIsOrderedSubset(t *testing.T) {
	r := propertyRegistry(t)
	order := make(map[string]int)
	for i, n := range r.Names() {
		order[n] = i
	}

	for _, in := range allSubsets(t) {
		got := r.Resolve(in)
		last := -1
		for _, name := range got {
			i, ok := order[name]
			if !ok {
				t.Fatalf("Resolve returned unknown name %q", name)
			}
			if i <= last {
				t.Fatalf("Resolve(%v) = %v is not in registry order", in.Fields(), got)
			}
			last = i
			spec, _ := r.Get(name)
			if !Validate(in, spec.Requires).Computable {
				t.Fatalf("Resolve returned %q which is not computable", name)
			}
		}
		if again := r.Resolve(in); !reflect.DeepEqual(got, again) {
			t.Fatalf("Resolve is not idempotent: %v then %v", got, again)
		}
	}
}

func TestRankClosestProperties(t *testing.T) {
	r := propertyRegistry(t)
	for _, in := range allSubsets(t) {
		if len(r.Resolve(in)) != 0 {
			continue
		}
		matches, err := r.RankClosest(in)
		if err != nil {
			t.Fatalf("RankClosest() error = %v", err)
		}
		if len(matches) == 0 {
			t.Fatalf("RankClosest(%v) is empty", in.Fields())
		}

		best := matches[0].Fraction
		if best >= 1 {
			t.Fatalf("RankClosest(%v) fraction = %v, want < 1", in.Fields(), best)
		}
		for _, m := range matches {
			if m.Fraction != best {
				t.Fatalf("RankClosest(%v) mixes fractions %v and %v", in.Fields(), best, m.Fraction)
			}
		}

		// No calculation outside the result may score higher or equal
		for _, name := range r.Names() {
			spec, _ := r.Get(name)
			v := Validate(in, spec.Requires)
			f := float64(len(spec.Requires)-len(v.Missing)) / float64(len(spec.Requires))
			if f > best {
				t.Fatalf("%s scores %v above the reported maximum %v", name, f, best)
			}
			if f == best && !containsMatch(matches, name) {
				t.Fatalf("%s ties the maximum but is not reported", name)
			}
		}

		again, _ := r.RankClosest(in)
		if !reflect.DeepEqual(matches, again) {
			t.Fatalf("RankClosest is not idempotent")
		}
	}
}

func containsMatch(ms []Match, name string) bool {
	for _, m := range ms {
		if m.Name == name {
			return true
		}
	}
	return false
}

func TestResolveFullInputs(t *testing.T) {
	r := futureValueRegistry(t)
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldB: 2, fieldC: 3, fieldD: 4},
		fieldA, fieldB, fieldC, fieldD)

	if got := r.Resolve(in); !reflect.DeepEqual(got, []string{"Future Value"}) {
		t.Errorf("Resolve() = %v, want [Future Value]", got)
	}
}

func TestResolvePartialInputs(t *testing.T) {
	r := futureValueRegistry(t)
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldB: 2}, fieldA, fieldB)

	if got := r.Resolve(in); len(got) != 0 || got == nil {
		t.Errorf("Resolve() = %#v, want empty slice", got)
	}

	matches, err := r.RankClosest(in)
	if err != nil {
		t.Fatalf("RankClosest() error = %v", err)
	}
	want := []Match{{Name: "Future Value", Fraction: 0.5, Missing: []catalog.Field{fieldC, fieldD}}}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("RankClosest() = %+v, want %+v", matches, want)
	}
}

func TestRankClosestTie(t *testing.T) {
	r := newTestRegistry(t,
		CalculationSpec{Name: "first", Requires: []catalog.Field{fieldA, fieldB}, Compute: constant(1)},
		CalculationSpec{Name: "second", Requires: []catalog.Field{fieldC, fieldD}, Compute: constant(2)},
	)
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldD: 4}, fieldA, fieldD)

	matches, err := r.RankClosest(in)
	if err != nil {
		t.Fatalf("RankClosest() error = %v", err)
	}
	if len(matches) != 2 || matches[0].Name != "first" || matches[1].Name != "second" {
		t.Fatalf("RankClosest() = %+v, want first and second", matches)
	}
	for _, m := range matches {
		if m.Fraction != 0.5 {
			t.Errorf("%s fraction = %v, want 0.5", m.Name, m.Fraction)
		}
	}
}

func TestRankClosestResetsTiesOnImprovement(t *testing.T) {
	r := newTestRegistry(t,
		CalculationSpec{Name: "low-a", Requires: []catalog.Field{fieldA, fieldB, fieldC, fieldD}, Compute: constant(1)},
		CalculationSpec{Name: "low-b", Requires: []catalog.Field{fieldA, catalog.Yield, catalog.FaceValue, fieldD}, Compute: constant(1)},
		CalculationSpec{Name: "high", Requires: []catalog.Field{fieldA, fieldB, catalog.Yield}, Compute: constant(1)},
		CalculationSpec{Name: "none", Requires: []catalog.Field{catalog.Coupons}, Compute: constant(1)},
		CalculationSpec{Name: "high-again", Requires: []catalog.Field{fieldA, catalog.FaceValue, fieldB}, Compute: constant(1)},
	)
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldB: 2}, fieldA, fieldB)

	matches, err := r.RankClosest(in)
	if err != nil {
		t.Fatalf("RankClosest() error = %v", err)
	}
	var names []string
	for _, m := range matches {
		names = append(names, m.Name)
	}
	if !reflect.DeepEqual(names, []string{"high", "high-again"}) {
		t.Errorf("RankClosest() names = %v, want [high high-again]", names)
	}
}

func TestRankClosestMalformedRegistry(t *testing.T) {
	r := newTestRegistry(t,
		CalculationSpec{Name: "ok", Requires: []catalog.Field{fieldA}, Compute: constant(1)},
		CalculationSpec{Name: "constant", Compute: constant(2)},
	)

	// The zero-requirement spec is always computable
	if got := r.Resolve(inputs.NewSet()); !reflect.DeepEqual(got, []string{"constant"}) {
		t.Errorf("Resolve() = %v, want [constant]", got)
	}

	_, err := r.RankClosest(inputs.NewSet())
	if !mfinerror.HasCode(err, mfinerror.CodeMalformedRegistry) {
		t.Fatalf("RankClosest() error = %v, want MALFORMED_REGISTRY", err)
	}
	if mfinerror.GetSeverity(err) != mfinerror.SeverityCritical {
		t.Errorf("severity = %v, want critical", mfinerror.GetSeverity(err))
	}

	_, err = NewRegistry(Options{}).RankClosest(inputs.NewSet())
	if !mfinerror.HasCode(err, mfinerror.CodeMalformedRegistry) {
		t.Errorf("empty registry error = %v", err)
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name string
		spec CalculationSpec
		code mfinerror.Code
	}{
		{"blank name", CalculationSpec{Name: "  ", Compute: constant(1)}, mfinerror.CodeMalformedRegistry},
		{"no compute", CalculationSpec{Name: "x"}, mfinerror.CodeMalformedRegistry},
		{"invalid field", CalculationSpec{Name: "x", Requires: []catalog.Field{0}, Compute: constant(1)}, mfinerror.CodeMalformedRegistry},
		{"repeated field", CalculationSpec{Name: "x", Requires: []catalog.Field{fieldA, fieldA}, Compute: constant(1)}, mfinerror.CodeMalformedRegistry},
		{"duplicate", CalculationSpec{Name: "Future Value", Requires: []catalog.Field{fieldA}, Compute: constant(1)}, mfinerror.CodeDuplicateEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := futureValueRegistry(t)
			err := r.Register(tt.spec)
			if !mfinerror.HasCode(err, tt.code) {
				t.Errorf("Register() error = %v, want %s", err, tt.code)
			}
			if r.Len() != 1 {
				t.Errorf("rejected spec was stored")
			}
		})
	}
}

func TestRegisterCopiesRequirements(t *testing.T) {
	requires := []catalog.Field{fieldA, fieldB}
	r := newTestRegistry(t, CalculationSpec{Name: "x", Requires: requires, Compute: constant(1)})
	requires[0] = fieldD

	spec, _ := r.Get("x")
	if spec.Requires[0] != fieldA {
		t.Errorf("registry shares the caller's requirement slice")
	}
}

func TestDescribe(t *testing.T) {
	r := newTestRegistry(t, CalculationSpec{
		Name:     "Nominal Rate",
		Requires: []catalog.Field{catalog.EffectiveRate, catalog.CompoundMethod},
		Result:   catalog.KindPercentage,
		Compute:  constant(0.05),
	})

	d, err := r.Describe("Nominal Rate")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	want := Description{
		Name:  "Nominal Rate",
		Title: "Nominal Rate",
		Requires: []FieldDescription{
			{Field: catalog.EffectiveRate, Name: "Effective Rate", Kind: catalog.KindPercentage},
			{Field: catalog.CompoundMethod, Name: "Compound Method", Kind: catalog.KindEnumerated},
		},
		Result: catalog.KindPercentage,
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("Describe() = %+v, want %+v", d, want)
	}

	if _, err := r.Describe("Nothing"); !mfinerror.HasCode(err, mfinerror.CodeNotFound) {
		t.Errorf("Describe(unknown) error = %v", err)
	}
}

func TestInvoke(t *testing.T) {
	var seen *inputs.Set
	r := newTestRegistry(t,
		CalculationSpec{
			Name:     "sum",
			Requires: []catalog.Field{fieldA, fieldB},
			Compute: func(in *inputs.Set) (Result, error) {
				seen = in
				rd := inputs.NewReader(in)
				v := rd.Number(fieldA) + rd.Number(fieldB)
				in.Delete(fieldA)
				return Scalar(v), rd.Err()
			},
		},
		CalculationSpec{
			Name:     "fails",
			Requires: []catalog.Field{fieldA},
			Compute: func(*inputs.Set) (Result, error) {
				return Result{}, errors.New("boom")
			},
		},
	)
	in := setOf(t, map[catalog.Field]float64{fieldA: 1, fieldB: 0.25}, fieldA, fieldB)

	res, err := r.Invoke("sum", in)
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if res.Value != 1.25 {
		t.Errorf("Invoke() = %v, want 1.25", res.Value)
	}
	if seen == in || !in.Has(fieldA) {
		t.Error("compute must receive a copy of the inputs")
	}

	_, err = r.Invoke("fails", in)
	if !mfinerror.HasCode(err, mfinerror.CodeCalculation) {
		t.Errorf("Invoke(fails) error = %v", err)
	}

	_, err = r.Invoke("nothing", in)
	if !mfinerror.HasCode(err, mfinerror.CodeNotFound) {
		t.Errorf("Invoke(unknown) error = %v", err)
	}
}

func TestInvokeMissingFields(t *testing.T) {
	r := futureValueRegistry(t)
	in := setOf(t, map[catalog.Field]float64{fieldB: 2}, fieldB)

	_, err := r.Invoke("Future Value", in)
	if !mfinerror.HasCode(err, mfinerror.CodeMissingField) {
		t.Fatalf("Invoke() error = %v, want MISSING_FIELD", err)
	}
	mf, ok := AsMissingFields(err)
	if !ok {
		t.Fatal("error chain has no *MissingFieldsError")
	}
	if !reflect.DeepEqual(mf.Missing, []catalog.Field{fieldA, fieldC, fieldD}) {
		t.Errorf("Missing = %v", mf.Missing)
	}
	if got := mf.MissingNames(); !reflect.DeepEqual(got, []string{"Present Value", "Periods", "Budget"}) {
		t.Errorf("MissingNames() = %v", got)
	}
	if in.Len() != 1 {
		t.Error("failed invocation changed the inputs")
	}
}

func TestInvokeKeepsCodedErrors(t *testing.T) {
	infeasible := errors.New("no feasible allocation")
	r := newTestRegistry(t, CalculationSpec{
		Name:     "optimise",
		Requires: []catalog.Field{fieldA},
		Compute: func(*inputs.Set) (Result, error) {
			return Result{}, mfinerror.Wrap(infeasible, "solver").WithCode(mfinerror.CodeSolverInfeasible)
		},
	})
	in := setOf(t, map[catalog.Field]float64{fieldA: 1}, fieldA)

	_, err := r.Invoke("optimise", in)
	if !mfinerror.HasCode(err, mfinerror.CodeSolverInfeasible) {
		t.Errorf("code = %s, want SOLVER_INFEASIBLE", mfinerror.GetCode(err))
	}
	if !errors.Is(err, infeasible) {
		t.Error("sentinel lost in wrapping")
	}
}

func TestResultHelpers(t *testing.T) {
	base := Scalar(100).WithNote("in Present Value")
	withDetail := base.WithDetail("New Price", 95, catalog.KindCurrency)

	if len(base.Details) != 0 {
		t.Error("WithDetail modified the receiver")
	}
	if len(withDetail.Details) != 1 || withDetail.Note != "in Present Value" {
		t.Errorf("WithDetail() = %+v", withDetail)
	}
	if base.IsAllocation() || !(Result{Allocation: []float64{}}).IsAllocation() {
		t.Error("IsAllocation() mismatch")
	}
}
