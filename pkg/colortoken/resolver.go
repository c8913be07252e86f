package colortoken

import (
	"math"

	"github.com/dmitrymomot/mailtheme/pkg/hexcolor"
)

// Warning describes why a reference did not resolve the way it was written.
// It is diagnostic only: resolution always produces a usable colour.
type Warning string

const (
	WarnNone             Warning = ""
	WarnUnset            Warning = "unset"
	WarnUnknownToken     Warning = "unknown_token"
	WarnMalformedHex     Warning = "malformed_hex"
	WarnInvalidOpacity   Warning = "invalid_opacity"
	WarnUnsupportedInput Warning = "unsupported_input"
)

// Resolution is the outcome of resolving a Ref.
type Resolution struct {
	Hex     string  `json:"hex"`
	Warning Warning `json:"warning,omitempty"`
}

// Resolve turns a reference into a concrete uppercase hex colour.
// The result is always "#RRGGBB", or "#RRGGBBAA" when opacity below 1 applies.
func Resolve(r Ref) Resolution {
	res := resolveBase(r)

	o, ok := r.Opacity()
	if !ok {
		return res
	}
	if math.IsNaN(o) || o < 0 || o > 1 {
		if res.Warning == WarnNone {
			res.Warning = WarnInvalidOpacity
		}
		if math.IsNaN(o) {
			return res
		}
	}
	res.Hex = hexcolor.WithOpacity(hexcolor.Strip(res.Hex), o)
	return res
}

func resolveBase(r Ref) Resolution {
	switch r.kind {
	case KindUnset:
		return Resolution{Hex: defaultHex(), Warning: WarnUnset}
	case KindRawHex, KindCustom:
		if hex, ok := hexcolor.Normalize(r.value); ok {
			return Resolution{Hex: hex}
		}
		return Resolution{Hex: defaultHex(), Warning: WarnMalformedHex}
	case KindToken:
		if t, ok := Lookup(r.value); ok {
			return Resolution{Hex: t.Hex}
		}
		return Resolution{Hex: defaultHex(), Warning: WarnUnknownToken}
	default:
		return Resolution{Hex: defaultHex(), Warning: WarnUnsupportedInput}
	}
}

// ResolveToHex resolves any colour input (see Parse) to a hex string.
// It never panics and is idempotent: feeding its output back in returns the
// same string.
func ResolveToHex(v any) string {
	return Resolve(Parse(v)).Hex
}

// ColorValueToHex resolves a persisted ColorValue, including partially filled ones.
func ColorValueToHex(cv ColorValue) string {
	return Resolve(fromColorValue(cv)).Hex
}
