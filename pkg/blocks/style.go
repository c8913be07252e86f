package blocks

import (
	"github.com/dmitrymomot/mailtheme/pkg/colortoken"
	"github.com/dmitrymomot/mailtheme/pkg/hexcolor"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

// Style holds the concrete inline colours and spacing a block renders with.
type Style struct {
	Background  string `json:"background"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	CTAText     string `json:"ctaText"`
	Rule        string `json:"rule"`
	Padding     int    `json:"padding"`
}

const (
	defaultPadding     = 24
	defaultBackground  = "#FFFFFF"
	defaultTitle       = "#101828"
	defaultDescription = "#475467"
	defaultCTA         = "#004EEB"
	defaultRule        = "#EAECF0"
)

// Style derives the block's render colours. An active, known theme wins over
// the props' own colours; otherwise each colour ref is resolved, with unset
// refs taking the block defaults.
func (p Props) Style(cat *theme.Catalog) Style {
	s := Style{
		Background:  resolveOr(p.BackgroundColor, defaultBackground),
		Title:       resolveOr(p.TitleColor, defaultTitle),
		Description: resolveOr(p.DescriptionColor, defaultDescription),
		CTA:         resolveOr(p.CTAColor, defaultCTA),
		Rule:        resolveOr(p.TitleColor, defaultRule),
		Padding:     p.Padding,
	}
	if s.Padding <= 0 {
		s.Padding = defaultPadding
	}

	if cat != nil && p.ThemeID != "" {
		applyTheme(&s, p, cat)
	}

	s.CTAText = readableOn(s.CTA)
	return s
}

func applyTheme(s *Style, p Props, cat *theme.Catalog) {
	def := cat.GetThemeByID(p.ThemeID)
	if def == nil {
		return
	}
	if z, ok := def.Zone(p.Zone()); ok {
		s.Rule = z.Shade(theme.FieldBG300)
		if p.Swapped {
			s.Rule = z.Shade(theme.FieldFG200)
		}
	}

	if p.Kind.softSwap() {
		c := cat.GetSwappedColors(p.ThemeID, p.Zone(), p.Swapped)
		if c == nil {
			return
		}
		s.Background, s.Title, s.Description, s.CTA = c.BG, c.FG, c.FG, c.FG
		return
	}

	c := cat.ApplyThemeToBlock(p.ThemeID, p.Swapped, p.Zone())
	if c == nil {
		return
	}
	s.Background = c.BackgroundColor
	s.Title = c.TitleColor
	s.Description = c.DescriptionColor
	s.CTA = c.CTAColor
}

func resolveOr(r colortoken.Ref, fallback string) string {
	if r.IsUnset() {
		return fallback
	}
	return colortoken.Resolve(r).Hex
}

// readableOn picks white or black text, whichever contrasts more with bg.
func readableOn(bg string) string {
	base := hexcolor.Strip(bg)
	if hexcolor.Contrast(base, hexcolor.White) >= hexcolor.Contrast(base, hexcolor.Black) {
		return hexcolor.White
	}
	return hexcolor.Black
}
