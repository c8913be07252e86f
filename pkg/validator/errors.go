package validator

import "errors"

// ErrValidation matches any ValidationErrors via errors.Is.
var ErrValidation = errors.New("validation failed")
