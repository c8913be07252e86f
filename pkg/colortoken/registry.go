package colortoken

// GroupName classifies a token for picker grouping only.
type GroupName string

const (
	GroupCommon   GroupName = "common"
	GroupBrand    GroupName = "brand"
	GroupNeutral  GroupName = "neutral"
	GroupSemantic GroupName = "semantic"
)

// Token is one registered colour.
type Token struct {
	ID             string    `json:"id"`
	Hex            string    `json:"hex"`
	TextSafe       bool      `json:"text_safe"`
	BackgroundSafe bool      `json:"background_safe"`
	Group          GroupName `json:"group"`
}

const (
	// DefaultTokenID is the neutral mid-gray every unresolvable reference falls back to.
	DefaultTokenID = "neutral-500"

	// CustomID marks a ColorValue that carries its own hex instead of a token id.
	CustomID = "custom"

	WhiteID = "white"
	BlackID = "black"
)

type entry struct {
	Token
	name  string
	short string
}

// registry is the ordered, read-only token table. Order is the picker order.
var registry = []entry{
	{Token{WhiteID, "#FFFFFF", true, true, GroupCommon}, "White", "White"},
	{Token{BlackID, "#000000", true, true, GroupCommon}, "Black", "Black"},

	{Token{"brand-50", "#EFF4FF", false, true, GroupBrand}, "Brand 50", "50"},
	{Token{"brand-100", "#D1E0FF", false, true, GroupBrand}, "Brand 100", "100"},
	{Token{"brand-200", "#B2CCFF", false, true, GroupBrand}, "Brand 200", "200"},
	{Token{"brand-300", "#84ADFF", false, true, GroupBrand}, "Brand 300", "300"},
	{Token{"brand-400", "#528BFF", false, true, GroupBrand}, "Brand 400", "400"},
	{Token{"brand-500", "#2970FF", true, true, GroupBrand}, "Brand 500", "500"},
	{Token{"brand-600", "#004EEB", true, true, GroupBrand}, "Brand 600", "600"},
	{Token{"brand-700", "#0040C1", true, true, GroupBrand}, "Brand 700", "700"},
	{Token{"brand-800", "#00359E", true, true, GroupBrand}, "Brand 800", "800"},
	{Token{"brand-900", "#002266", true, true, GroupBrand}, "Brand 900", "900"},

	{Token{"neutral-25", "#FCFCFD", false, true, GroupNeutral}, "Gray 25", "25"},
	{Token{"neutral-50", "#F9FAFB", false, true, GroupNeutral}, "Gray 50", "50"},
	{Token{"neutral-100", "#F2F4F7", false, true, GroupNeutral}, "Gray 100", "100"},
	{Token{"neutral-200", "#EAECF0", false, true, GroupNeutral}, "Gray 200", "200"},
	{Token{"neutral-300", "#D0D5DD", false, true, GroupNeutral}, "Gray 300", "300"},
	{Token{"neutral-400", "#98A2B3", true, true, GroupNeutral}, "Gray 400", "400"},
	{Token{"neutral-500", "#667085", true, true, GroupNeutral}, "Gray 500", "500"},
	{Token{"neutral-600", "#475467", true, true, GroupNeutral}, "Gray 600", "600"},
	{Token{"neutral-700", "#344054", true, true, GroupNeutral}, "Gray 700", "700"},
	{Token{"neutral-800", "#1D2939", true, false, GroupNeutral}, "Gray 800", "800"},
	{Token{"neutral-900", "#101828", true, false, GroupNeutral}, "Gray 900", "900"},

	{Token{"success-50", "#ECFDF3", false, true, GroupSemantic}, "Success 50", "Success"},
	{Token{"success-600", "#039855", true, true, GroupSemantic}, "Success 600", "Success"},
	{Token{"warning-50", "#FFFAEB", false, true, GroupSemantic}, "Warning 50", "Warning"},
	{Token{"warning-600", "#DC6803", true, true, GroupSemantic}, "Warning 600", "Warning"},
	{Token{"error-50", "#FEF3F2", false, true, GroupSemantic}, "Error 50", "Error"},
	{Token{"error-600", "#D92D20", true, true, GroupSemantic}, "Error 600", "Error"},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, e := range registry {
		if _, dup := m[e.ID]; dup {
			panic("colortoken: duplicate token id " + e.ID)
		}
		m[e.ID] = i
	}
	return m
}()

// Lookup returns the token registered under id.
func Lookup(id string) (Token, bool) {
	i, ok := byID[id]
	if !ok {
		return Token{}, false
	}
	return registry[i].Token, true
}

// Tokens returns a copy of the registry in picker order.
func Tokens() []Token {
	out := make([]Token, len(registry))
	for i, e := range registry {
		out[i] = e.Token
	}
	return out
}

// DisplayName returns the human label for a token id, or the id itself when
// no label is registered.
func DisplayName(id string) string {
	if i, ok := byID[id]; ok {
		return registry[i].name
	}
	return id
}

// ShortName returns the compact swatch label for a token id, or the id itself
// when no label is registered.
func ShortName(id string) string {
	if i, ok := byID[id]; ok {
		return registry[i].short
	}
	return id
}

func defaultHex() string {
	return registry[byID[DefaultTokenID]].Hex
}
