package blocks

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/mailtheme/pkg/colortoken"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

// Kind is the type of an email block.
type Kind string

const (
	KindHeader  Kind = "header"
	KindFooter  Kind = "footer"
	KindText    Kind = "text"
	KindButton  Kind = "button"
	KindDivider Kind = "divider"
	KindSpacer  Kind = "spacer"
)

var Kinds = []Kind{KindHeader, KindFooter, KindText, KindButton, KindDivider, KindSpacer}

// defaultZone is the theme zone a block reads when its props name none.
func (k Kind) defaultZone() theme.ZoneName {
	switch k {
	case KindHeader:
		return theme.ZoneHeader
	case KindFooter:
		return theme.ZoneFooter
	default:
		return theme.ZoneBody
	}
}

// softSwap reports whether the block swaps through the intermediate 200 shades
// instead of a direct bg/fg exchange.
func (k Kind) softSwap() bool {
	return k == KindText || k == KindDivider
}

// CTA is a call-to-action link.
type CTA struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Props is the editable state of one block, shared by the properties panel and
// the renderers. Colour fields accept every stored shape (see colortoken.Parse).
type Props struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	ThemeID   string         `json:"themeId,omitempty"`
	ThemeZone theme.ZoneName `json:"themeZone,omitempty"`
	Swapped   bool           `json:"swapped,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	CTA         *CTA   `json:"cta,omitempty"`

	BackgroundColor  colortoken.Ref `json:"backgroundColor"`
	TitleColor       colortoken.Ref `json:"titleColor"`
	DescriptionColor colortoken.Ref `json:"descriptionColor"`
	CTAColor         colortoken.Ref `json:"ctaColor"`

	Padding int `json:"padding,omitempty"`
	Height  int `json:"height,omitempty"`
}

// New returns empty props of the given kind with a fresh id.
func New(kind Kind) Props {
	return Props{ID: uuid.NewString(), Kind: kind}
}

// Zone returns the theme zone the block reads.
func (p Props) Zone() theme.ZoneName {
	if p.ThemeZone != "" {
		return p.ThemeZone
	}
	return p.Kind.defaultZone()
}

// ApplyTheme merges theme colours into the props, overwriting any custom
// colours. A nil bundle (unknown theme) leaves the props untouched.
func (p *Props) ApplyTheme(c *theme.BlockColors) {
	if c == nil {
		return
	}
	p.BackgroundColor = colortoken.Custom(c.BackgroundColor)
	p.TitleColor = colortoken.Custom(c.TitleColor)
	p.DescriptionColor = colortoken.Custom(c.DescriptionColor)
	p.CTAColor = colortoken.Custom(c.CTAColor)
}

// SelectTheme records the theme choice and merges its colours, the way the
// panel does when a theme swatch is clicked. It reports whether the theme
// resolved; on false the props keep their previous colours.
func (p *Props) SelectTheme(cat *theme.Catalog, themeID string, swapped bool) bool {
	c := cat.ApplyThemeToBlock(themeID, swapped, p.Zone())
	if c == nil {
		return false
	}
	p.ThemeID = themeID
	p.Swapped = swapped
	p.ApplyTheme(c)
	return true
}
