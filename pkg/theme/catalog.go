package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrymomot/mailtheme/pkg/validator"
)

// Catalog is an immutable set of theme definitions. All methods are safe for
// concurrent use because nothing is mutated after NewCatalog returns.
type Catalog struct {
	themes []Definition
	byID   map[string]int
}

// NewCatalog validates the definitions and builds a catalog. Hex values are
// normalised to uppercase; order is preserved.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		themes: make([]Definition, 0, len(defs)),
		byID:   make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if err := validateDefinition(d); err != nil {
			return nil, errors.Join(ErrInvalidDefinition, fmt.Errorf("theme %q: %w", d.ID, err))
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTheme, d.ID)
		}
		c.byID[d.ID] = len(c.themes)
		c.themes = append(c.themes, canonical(d))
	}
	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on invalid definitions.
func MustNewCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Extend returns a new catalog holding c's themes followed by defs.
// Redefining an existing id is an error.
func (c *Catalog) Extend(defs ...Definition) (*Catalog, error) {
	all := make([]Definition, 0, len(c.themes)+len(defs))
	all = append(all, c.themes...)
	all = append(all, defs...)
	return NewCatalog(all...)
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// GetThemeByID returns a copy of the theme, or nil for an empty or unknown id.
func (c *Catalog) GetThemeByID(id string) *Definition {
	if c == nil || id == "" {
		return nil
	}
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	d := c.themes[i]
	return &d
}

// GetThemeColors returns a zone's bg/fg pair, or nil when the theme or zone is unknown.
func (c *Catalog) GetThemeColors(id string, zone ZoneName) *Colors {
	z, ok := c.zone(id, zone)
	if !ok {
		return nil
	}
	return &Colors{BG: z.BG, FG: z.FG}
}

// Themes returns all themes in catalog order.
func (c *Catalog) Themes() []Definition {
	out := make([]Definition, len(c.themes))
	copy(out, c.themes)
	return out
}

// CategoryGroup is one picker section.
type CategoryGroup struct {
	Category Category     `json:"category"`
	Themes   []Definition `json:"themes"`
}

// Grouped returns themes grouped by category in the fixed order
// brand, neutral, colorful. Empty categories are omitted.
func (c *Catalog) Grouped() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(Categories))
	for _, cat := range Categories {
		g := CategoryGroup{Category: cat}
		for _, d := range c.themes {
			if d.Category == cat {
				g.Themes = append(g.Themes, d)
			}
		}
		if len(g.Themes) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func (c *Catalog) zone(id string, name ZoneName) (Zone, bool) {
	d := c.GetThemeByID(id)
	if d == nil {
		return Zone{}, false
	}
	return d.Zone(name)
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the process-wide catalog of built-in themes.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		builtinCatalog = MustNewCatalog(builtinThemes...)
	})
	return builtinCatalog
}

func validateDefinition(d Definition) error {
	var verrs validator.ValidationErrors
	if err := validator.Apply(
		validator.Required("id", d.ID),
		validator.Slug("id", d.ID),
		validator.Required("name", d.Name),
		validator.MaxLen("name", d.Name, 64),
		validator.InList("category", d.Category, Categories),
	); err != nil {
		verrs = append(verrs, validator.ExtractValidationErrors(err)...)
	}
	for _, name := range Zones {
		z, _ := d.Zone(name)
		if zerrs := validator.ExtractValidationErrors(validateZone(z)); zerrs != nil {
			verrs = append(verrs, zerrs.Prefix(string(name))...)
		}
	}
	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

func validateZone(z Zone) error {
	rules := []validator.Rule{
		validator.ValidHexColor(string(FieldBG), z.BG),
		validator.ValidHexColor(string(FieldFG), z.FG),
	}
	for _, f := range Fields[2:] {
		rules = append(rules, validator.OptionalHexColor(string(f), z.Get(f)))
	}
	return validator.Apply(rules...)
}

func canonical(d Definition) Definition {
	d.Header = canonicalZone(d.Header)
	d.Body = canonicalZone(d.Body)
	d.Footer = canonicalZone(d.Footer)
	return d
}

func canonicalZone(z Zone) Zone {
	return Zone{
		BG:         strings.ToUpper(z.BG),
		FG:         strings.ToUpper(z.FG),
		BG50:       strings.ToUpper(z.BG50),
		BG100:      strings.ToUpper(z.BG100),
		BG200:      strings.ToUpper(z.BG200),
		BG300:      strings.ToUpper(z.BG300),
		FG200:      strings.ToUpper(z.FG200),
		TextDark:   strings.ToUpper(z.TextDark),
		TextLight:  strings.ToUpper(z.TextLight),
		Primary600: strings.ToUpper(z.Primary600),
	}
}

// GetThemeByID looks a theme up in the built-in catalog.
func GetThemeByID(id string) *Definition {
	return Builtin().GetThemeByID(id)
}

// GetThemeColors returns a built-in theme zone's bg/fg pair, or nil.
func GetThemeColors(id string, zone ZoneName) *Colors {
	return Builtin().GetThemeColors(id, zone)
}
