package theme

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/mailtheme/pkg/hexcolor"
)

// PaletteToken is one swatch of the "Theme Colors" picker section.
type PaletteToken struct {
	ID       string `json:"id"`
	Hex      string `json:"hex"`
	Name     string `json:"name"`
	Field    Field  `json:"field"`
	TextSafe bool   `json:"textSafe"`
}

var fieldLabels = map[Field]string{
	FieldBG:         "Background",
	FieldFG:         "Foreground",
	FieldBG50:       "Background 50",
	FieldBG100:      "Background 100",
	FieldBG200:      "Background 200",
	FieldBG300:      "Background 300",
	FieldFG200:      "Foreground 200",
	FieldTextDark:   "Text Dark",
	FieldTextLight:  "Text Light",
	FieldPrimary600: "Primary 600",
}

// GetThemeTokenPalette returns the swatches defined by a theme zone: bg, fg and
// every extended shade that is present, deduplicated by hex value
// (case-insensitive), first occurrence wins. Absent shades are not synthesised.
// Unknown themes yield an empty slice.
func (c *Catalog) GetThemeTokenPalette(id string, zone ZoneName) []PaletteToken {
	z, ok := c.zone(id, zone)
	if !ok {
		return []PaletteToken{}
	}

	// a Caser is stateful, so one per call
	zoneLabel := cases.Title(language.English).String(string(zone))
	seen := make(map[string]struct{}, len(Fields))
	out := make([]PaletteToken, 0, len(Fields))
	for _, f := range Fields {
		hex := z.Get(f)
		if hex == "" {
			continue
		}
		key := strings.ToUpper(hex)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, PaletteToken{
			ID:       fmt.Sprintf("theme-%s-%s", zone, f),
			Hex:      key,
			Name:     zoneLabel + " " + fieldLabels[f],
			Field:    f,
			TextSafe: hexcolor.IsTextSafe(key),
		})
	}
	return out
}

// GetThemeTokenPalette returns a built-in theme zone's swatches.
func GetThemeTokenPalette(id string, zone ZoneName) []PaletteToken {
	return Builtin().GetThemeTokenPalette(id, zone)
}
