// Package validation provides struct tag validation built on the validator
// library. Failures surface as the taxonomy's INVALID_INPUT error, so the
// rendering boundary handles them like any other structured failure.
//
//	type Config struct {
//	    Name string `validate:"required"`
//	}
//	err := validation.Validate(cfg)
package validation
