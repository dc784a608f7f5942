// Package validator provides a declarative, composable rule engine for form
// validation.
//
// Each validation function constructs a Rule value pairing a boolean Check
// with field-scoped error metadata. Rules are evaluated with Apply, which
// aggregates every failure into a ValidationErrors slice implementing the
// error interface, so a full-form pass reports all failing fields
// together rather than stopping at the first.
//
//	err := validator.Apply(
//	    validator.RequiredString("fullName", name),
//	    validator.MaxLenString("fullName", name, 100),
//	    validator.LiteralTrue("consent", consent, "consent is required"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // field-keyed messages via verrs.Get / verrs.Fields
//	}
//
// Non-required rules pass on empty input, keeping "missing" and "malformed"
// independently reported: a field that is both required and pattern-checked
// yields exactly one error when empty and one when malformed.
//
// The package is stateless and all rules are pure; expensive checks
// (network lookups, storage) belong outside and can be adapted into a Rule
// where needed.
package validator
