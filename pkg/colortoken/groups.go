package colortoken

import "fmt"

// Purpose selects which safety flag filters the picker groups.
type Purpose string

const (
	PurposeText       Purpose = "text"
	PurposeBackground Purpose = "background"
	PurposeAll        Purpose = "all"
)

// ParsePurpose validates a purpose coming from a request. Empty means PurposeAll.
func ParsePurpose(s string) (Purpose, error) {
	switch Purpose(s) {
	case "", PurposeAll:
		return PurposeAll, nil
	case PurposeText, PurposeBackground:
		return Purpose(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPurpose, s)
}

// Group is one section of the swatch picker.
type Group struct {
	Name   string  `json:"name"`
	Tokens []Token `json:"tokens"`
}

const (
	GroupMostUsed      = "Most Used"
	GroupLabelBrand    = "Brand"
	GroupLabelGrays    = "Grays"
	GroupLabelSemantic = "Semantic"
)

// mostUsed is fixed at white and black and is never filtered.
var mostUsed = []string{WhiteID, BlackID}

var pickerSections = []struct {
	label string
	group GroupName
}{
	{GroupLabelBrand, GroupBrand},
	{GroupLabelGrays, GroupNeutral},
	{GroupLabelSemantic, GroupSemantic},
}

// GetColorGroups returns picker groups in fixed order: Most Used, Brand, Grays,
// Semantic. Most Used always holds exactly white and black, and no token in it
// appears in any other group. Other groups are filtered by the purpose's safety
// flag and omitted when empty.
func GetColorGroups(purpose Purpose) []Group {
	pinned := make(map[string]struct{}, len(mostUsed))
	top := Group{Name: GroupMostUsed, Tokens: make([]Token, 0, len(mostUsed))}
	for _, id := range mostUsed {
		t, _ := Lookup(id)
		top.Tokens = append(top.Tokens, t)
		pinned[id] = struct{}{}
	}

	groups := []Group{top}
	for _, sec := range pickerSections {
		g := Group{Name: sec.label}
		for _, e := range registry {
			if e.Group != sec.group {
				continue
			}
			if _, ok := pinned[e.ID]; ok {
				continue
			}
			if !allowed(e.Token, purpose) {
				continue
			}
			g.Tokens = append(g.Tokens, e.Token)
		}
		if len(g.Tokens) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func allowed(t Token, p Purpose) bool {
	switch p {
	case PurposeText:
		return t.TextSafe
	case PurposeBackground:
		return t.BackgroundSafe
	default:
		return true
	}
}
