// Package hexcolor implements the small amount of colour arithmetic needed by
// email themes: validation and normalisation of CSS hex strings, opacity
// encoding, lightening and WCAG contrast checks.
//
// All functions work on strings because that is what ends up interpolated into
// inline style attributes. The canonical form produced by the package is an
// uppercase "#RRGGBB" string, or "#RRGGBBAA" when an alpha channel is present.
//
// # Usage
//
//	import "github.com/dmitrymomot/mailtheme/pkg/hexcolor"
//
//	hex, ok := hexcolor.Normalize("#004eeb")     // "#004EEB", true
//	faded := hexcolor.WithOpacity(hex, 0.5)       // "#004EEB80"
//	tint := hexcolor.Lighten(hex, 0.6)            // blended towards white
//	ratio := hexcolor.Contrast(hex, hexcolor.White)
//
// # Opacity
//
// Opacity is always encoded as an 8-digit hex string. The alpha byte is
// round(opacity*255). Values are clamped to [0,1] and an opacity of 1 (or NaN)
// leaves the colour in its 6-digit form.
//
// Parsing and blending are delegated to github.com/lucasb-eyer/go-colorful.
package hexcolor
