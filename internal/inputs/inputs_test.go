package inputs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	mfinerror "github.com/msto63/mFIN/foundation/core/error"
	"github.com/msto63/mFIN/internal/catalog"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	s := NewSet()
	mustPut(t, s, catalog.Periods, Number(10))
	mustPut(t, s, catalog.PresentValue, Number(1000))
	mustPut(t, s, catalog.CompoundMethod, Choice("Annual"))
	mustPut(t, s, catalog.Periods, Number(12))

	want := []catalog.Field{catalog.Periods, catalog.PresentValue, catalog.CompoundMethod}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if v, _ := s.Get(catalog.Periods); !v.Equal(Number(12)) {
		t.Errorf("Get(Periods) = %v, want 12", v)
	}

	s.Delete(catalog.PresentValue)
	s.Delete(catalog.Budget)
	want = []catalog.Field{catalog.Periods, catalog.CompoundMethod}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() after Delete = %v, want %v", got, want)
	}
	if s.Len() != 2 || s.Has(catalog.PresentValue) {
		t.Errorf("Len() = %d, Has(PresentValue) = %v", s.Len(), s.Has(catalog.PresentValue))
	}
}

func TestPutRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field catalog.Field
		value Value
		code  mfinerror.Code
	}{
		{"list for number", catalog.Budget, List(1, 2), mfinerror.CodeInvalidValue},
		{"number for list", catalog.Cashflow, Number(3), mfinerror.CodeInvalidValue},
		{"number for choice", catalog.CompoundMethod, Number(1), mfinerror.CodeInvalidValue},
		{"unknown choice", catalog.CompoundMethod, Choice("Weekly"), mfinerror.CodeInvalidValue},
		{"negative periods", catalog.Periods, Number(-1), mfinerror.CodeInvalidValue},
		{"empty list", catalog.SpotRateList, List(), mfinerror.CodeInvalidValue},
		{"invalid field", catalog.Field(0), Number(1), mfinerror.CodeUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			err := s.Put(tt.field, tt.value)
			if !mfinerror.HasCode(err, tt.code) {
				t.Fatalf("Put() error = %v, want code %s", err, tt.code)
			}
			if s.Len() != 0 {
				t.Errorf("rejected value was stored")
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSet()
	mustPut(t, s, catalog.Cashflow, List(-100, 60, 60))
	c := s.Clone()
	mustPut(t, c, catalog.Budget, Number(5))
	c.Delete(catalog.Cashflow)

	if !s.Has(catalog.Cashflow) || s.Has(catalog.Budget) {
		t.Errorf("mutating the clone changed the original: %v", s.Fields())
	}

	var nilSet *Set
	if nilSet.Clone().Len() != 0 || nilSet.Has(catalog.Budget) {
		t.Error("nil set must behave as empty")
	}
}

func TestListValuesAreCopied(t *testing.T) {
	src := []float64{1, 2, 3}
	v := List(src...)
	src[0] = 99
	got, _ := v.List()
	if got[0] != 1 {
		t.Errorf("List() shares caller storage")
	}
	got[1] = 42
	again, _ := v.List()
	if again[1] != 2 {
		t.Errorf("List() exposes internal storage")
	}
}

func TestReader(t *testing.T) {
	s := NewSet()
	mustPut(t, s, catalog.PresentValue, Number(1000))
	mustPut(t, s, catalog.Periods, Number(2.5))
	mustPut(t, s, catalog.CompoundMethod, Choice("Quarterly"))
	mustPut(t, s, catalog.Cashflow, List(1, 2))

	r := NewReader(s)
	if got := r.Number(catalog.PresentValue); got != 1000 {
		t.Errorf("Number() = %v", got)
	}
	if m := r.Method(); m.PerYear != 4 {
		t.Errorf("Method() = %+v", m)
	}
	if got := r.List(catalog.Cashflow); !reflect.DeepEqual(got, []float64{1, 2}) {
		t.Errorf("List() = %v", got)
	}
	if got := r.Optional(catalog.CustomFrequency, 7); got != 7 {
		t.Errorf("Optional() = %v", got)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v", r.Err())
	}

	r.Count(catalog.Periods)
	if !mfinerror.HasCode(r.Err(), mfinerror.CodeInvalidInput) {
		t.Errorf("Count(2.5) error = %v", r.Err())
	}

	r = NewReader(s)
	r.Number(catalog.Budget)
	first := r.Err()
	r.List(catalog.PresentValue)
	if r.Err() != first || !mfinerror.HasCode(first, mfinerror.CodeMissingField) {
		t.Errorf("Reader must keep the first error, got %v", r.Err())
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		field   catalog.Field
		text    string
		want    Value
		wantErr bool
	}{
		{"grouped number", catalog.PresentValue, "1,250,000", Number(1250000), false},
		{"dollar", catalog.Budget, "$500", Number(500), false},
		{"percent", catalog.InterestRate, "5", Number(0.05), false},
		{"percent sign", catalog.Yield, "2.5%", Number(0.025), false},
		{"list", catalog.Cashflow, "-1000, 300 400;500", List(-1000, 300, 400, 500), false},
		{"bracketed list", catalog.BondYieldList, "[0.005, 0.01]", List(0.005, 0.01), false},
		{"percent list", catalog.SpotRateList, "7%, 8%", List(0.07, 0.08), false},
		{"method name", catalog.CompoundMethod, "monthly", Choice("Monthly"), false},
		{"method number", catalog.CompoundMethod, "5", Choice("Continuous"), false},
		{"custom number", catalog.CompoundMethod, "0", Choice("Custom"), false},
		{"empty", catalog.Periods, "  ", Value{}, true},
		{"garbage", catalog.Periods, "ten", Value{}, true},
		{"bad list entry", catalog.Cashflow, "1, x", Value{}, true},
		{"bad method", catalog.CompoundMethod, "9", Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.field, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !mfinerror.HasCode(err, mfinerror.CodeInvalidValue) {
					t.Errorf("ParseEntry() code = %s", mfinerror.GetCode(err))
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseEntry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	f, v, err := ParseAssignment("interest rate=6")
	if err != nil || f != catalog.InterestRate || !v.Equal(Number(0.06)) {
		t.Errorf("ParseAssignment() = %v, %v, %v", f, v, err)
	}

	if _, _, err := ParseAssignment("Budget"); !mfinerror.HasCode(err, mfinerror.CodeInvalidInput) {
		t.Errorf("missing '=' error = %v", err)
	}

	_, _, err = ParseAssignment("Intrest Rate=5")
	if !mfinerror.HasCode(err, mfinerror.CodeUnknownField) {
		t.Fatalf("unknown field error = %v", err)
	}
	var e *mfinerror.Error
	if !asError(err, &e) {
		t.Fatal("expected *Error")
	}
	suggestions, _ := e.Detail("suggestions")
	if s, ok := suggestions.([]string); !ok || len(s) == 0 || s[0] != "Interest Rate" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestParseScenario(t *testing.T) {
	data := []byte(`
inputs:
  Periods: 10
  present value: "1,000"
  Interest Rate: 0.05
  Yield: 4%
  Compound Method: Monthly
  Cashflow: [-1000, 300, 400, 500]
  Spot Rate List: 7%, 8%
`)
	s, err := ParseScenario(data)
	if err != nil {
		t.Fatalf("ParseScenario() error = %v", err)
	}

	want := []catalog.Field{
		catalog.Periods, catalog.PresentValue, catalog.InterestRate, catalog.Yield,
		catalog.CompoundMethod, catalog.Cashflow, catalog.SpotRateList,
	}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	checks := map[catalog.Field]Value{
		catalog.PresentValue:   Number(1000),
		catalog.InterestRate:   Number(0.05),
		catalog.Yield:          Number(0.04),
		catalog.CompoundMethod: Choice("Monthly"),
		catalog.Cashflow:       List(-1000, 300, 400, 500),
		catalog.SpotRateList:   List(0.07, 0.08),
	}
	for f, want := range checks {
		if got, _ := s.Get(f); !got.Equal(want) {
			t.Errorf("%v = %v, want %v", f, got, want)
		}
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code mfinerror.Code
	}{
		{"unknown field", "inputs:\n  Dividend: 3\n", mfinerror.CodeUnknownField},
		{"list for number", "inputs:\n  Budget: [1, 2]\n", mfinerror.CodeInvalidValue},
		{"invalid value", "inputs:\n  Periods: -4\n", mfinerror.CodeInvalidValue},
		{"not a mapping", "inputs: [1, 2]\n", mfinerror.CodeInvalidInput},
		{"broken yaml", "inputs: [", mfinerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			if !mfinerror.HasCode(err, tt.code) {
				t.Errorf("ParseScenario() error = %v, want %s", err, tt.code)
			}
		})
	}

	s, err := ParseScenario([]byte("name: empty\n"))
	if err != nil || s.Len() != 0 {
		t.Errorf("scenario without inputs = %v, %v", s, err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loan.yaml")
	content := "inputs:\n  Nominal Principal: 100000\n  Periods: 30\n  Interest Rate: 6%\n  Compound Method: Monthly\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	if !mfinerror.HasCode(err, mfinerror.CodeFileError) {
		t.Errorf("missing file error = %v", err)
	}
}

func mustPut(t *testing.T, s *Set, f catalog.Field, v Value) {
	t.Helper()
	if err := s.Put(f, v); err != nil {
		t.Fatalf("Put(%v) error = %v", f, err)
	}
}

func asError(err error, target **mfinerror.Error) bool {
	e, ok := err.(*mfinerror.Error)
	if ok {
		*target = e
	}
	return ok
}
