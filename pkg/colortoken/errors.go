package colortoken

import "errors"

// ErrInvalidPurpose is returned by ParsePurpose for unknown picker purposes.
var ErrInvalidPurpose = errors.New("colortoken: invalid picker purpose")
