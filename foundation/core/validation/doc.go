// Package validation provides composable validators for input values.
//
// Validators return a ValidationResult instead of an error so that several
// problems can be collected and reported together. A ValidatorChain runs
// validators in order and stamps its name on every error it produces:
//
//	chain := validation.NewValidatorChain("Periods").
//		AddFunc(validation.Finite()).
//		AddFunc(validation.Min(0))
//	if err := chain.Validate(-3.0).ToError(); err != nil {
//		// Periods: must be at least 0
//	}
package validation
