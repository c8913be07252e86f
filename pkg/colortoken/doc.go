// Package colortoken holds the colour token registry used by email blocks and
// the resolver that turns any stored colour reference into a concrete hex
// string.
//
// # Registry
//
// The registry is a static, ordered table of tokens (white, black, brand,
// neutral and semantic shades). It is built at package initialisation and
// never mutated, so it is safe for concurrent use without locking. Each token
// carries TextSafe and BackgroundSafe flags used to filter the swatch picker.
//
// # Resolution
//
// Block documents have stored colours in several shapes over time: a raw
// "#RRGGBB" string, a token id, a {id, hex, opacity} object, or nothing. Parse
// normalises all of them into a Ref, and Resolve maps a Ref to a hex string:
//
//	colortoken.ResolveToHex("brand-600")                                 // "#004EEB"
//	colortoken.ResolveToHex("#123abc")                                   // "#123ABC"
//	colortoken.ColorValueToHex(colortoken.ColorValue{ID: "custom", Hex: "#123abc"}) // "#123ABC"
//	colortoken.ResolveToHex(nil)                                         // "#667085"
//
// Resolution is total. Unknown tokens, malformed hex strings and unsupported
// input shapes all degrade to the DefaultTokenID colour; Resolve reports the
// reason through Resolution.Warning for callers that want to log it.
//
// # Opacity
//
// An opacity below 1 is encoded as an 8-digit "#RRGGBBAA" string on every
// code path; rgba() is never produced.
//
// # Picker groups
//
// GetColorGroups returns "Most Used" (always exactly white and black), then
// "Brand", "Grays" and "Semantic" filtered by purpose. Pinned tokens never
// appear twice.
package colortoken
