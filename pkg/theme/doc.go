// Package theme provides the email theme catalog and the functions that turn
// a theme, a zone and a swap flag into concrete block colours.
//
// A theme defines three zones (header, body, footer). Each zone has a required
// bg/fg pair and optional extended shades (bg50…bg300, fg200, textDark,
// textLight, primary600) used by specific blocks.
//
// # Catalog
//
// Builtin returns the static catalog shipped with the package. Applications
// may overlay extra themes once at startup with LoadCatalogFile; a Catalog is
// never mutated afterwards, so lookups need no locking.
//
//	cat, err := theme.LoadCatalogFile(theme.Builtin(), "themes.yaml")
//	def := cat.GetThemeByID("kore-default") // nil when unknown
//
// # Application
//
// ApplyThemeToBlock produces the {backgroundColor, titleColor,
// descriptionColor, ctaColor} bundle that is merged into block props,
// overwriting custom colours. GetSwappedColors implements the softer swap used
// by content blocks, substituting the bg200/fg200 shades when present. The two
// are not interchangeable.
//
// # Fallbacks
//
// Lookups never panic. Unknown themes or zones produce nil (or an empty
// palette) and the caller keeps its own colours. Zone.Shade resolves a missing
// extended shade through a fixed priority list ending in a computed tint.
package theme
