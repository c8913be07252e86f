// Package validator provides small declarative validation rules.
//
// Each helper returns a Rule: a Check function plus translation-friendly error
// metadata. Apply evaluates a list of rules and aggregates every failure into
// ValidationErrors, which implements error and matches ErrValidation through
// errors.Is.
//
//	err := validator.Apply(
//	    validator.Required("id", def.ID),
//	    validator.Slug("id", def.ID),
//	    validator.ValidHexColor("header.bg", def.Header.BG),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    details := verrs.Fields() // map[field][]message
//	}
//
// Rules hold no global state and are safe for concurrent use.
package validator
