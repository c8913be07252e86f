package hexcolor

import "errors"

// ErrInvalidHex is returned when a string is not a "#RRGGBB" or "#RRGGBBAA" colour.
var ErrInvalidHex = errors.New("hexcolor: invalid hex colour")
