package theme

import "github.com/dmitrymomot/mailtheme/pkg/hexcolor"

// Field names a colour slot of a Zone. Values match the persisted field names.
type Field string

const (
	FieldBG         Field = "bg"
	FieldFG         Field = "fg"
	FieldBG50       Field = "bg50"
	FieldBG100      Field = "bg100"
	FieldBG200      Field = "bg200"
	FieldBG300      Field = "bg300"
	FieldFG200      Field = "fg200"
	FieldTextDark   Field = "textDark"
	FieldTextLight  Field = "textLight"
	FieldPrimary600 Field = "primary600"
)

// Fields lists all zone slots in palette order.
var Fields = []Field{
	FieldBG, FieldFG,
	FieldBG50, FieldBG100, FieldBG200, FieldBG300,
	FieldFG200, FieldTextDark, FieldTextLight, FieldPrimary600,
}

const (
	defaultTextDark  = "#101828"
	defaultTextLight = "#FFFFFF"
)

// Get returns the raw value stored in a slot; empty when absent.
func (z Zone) Get(f Field) string {
	switch f {
	case FieldBG:
		return z.BG
	case FieldFG:
		return z.FG
	case FieldBG50:
		return z.BG50
	case FieldBG100:
		return z.BG100
	case FieldBG200:
		return z.BG200
	case FieldBG300:
		return z.BG300
	case FieldFG200:
		return z.FG200
	case FieldTextDark:
		return z.TextDark
	case FieldTextLight:
		return z.TextLight
	case FieldPrimary600:
		return z.Primary600
	}
	return ""
}

// Shade returns a slot's value, falling back through the nearest defined shade
// when it is absent:
//
//	bg50       -> lighten(bg, 0.90)
//	bg100      -> bg50 -> lighten(bg, 0.80)
//	bg200      -> bg100 -> bg50 -> lighten(bg, 0.60)
//	bg300      -> bg200 -> lighten(bg, 0.40)
//	fg200      -> lighten(fg, 0.60)
//	textDark   -> #101828
//	textLight  -> #FFFFFF
//	primary600 -> fg
func (z Zone) Shade(f Field) string {
	if v := z.Get(f); v != "" {
		return v
	}
	switch f {
	case FieldBG50:
		return hexcolor.Lighten(z.BG, 0.90)
	case FieldBG100:
		return first(z.BG50, hexcolor.Lighten(z.BG, 0.80))
	case FieldBG200:
		return first(z.BG100, z.BG50, hexcolor.Lighten(z.BG, 0.60))
	case FieldBG300:
		return first(z.BG200, hexcolor.Lighten(z.BG, 0.40))
	case FieldFG200:
		return hexcolor.Lighten(z.FG, 0.60)
	case FieldTextDark:
		return defaultTextDark
	case FieldTextLight:
		return defaultTextLight
	case FieldPrimary600:
		return z.FG
	}
	return ""
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
