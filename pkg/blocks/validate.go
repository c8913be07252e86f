package blocks

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mailtheme/pkg/theme"
	"github.com/dmitrymomot/mailtheme/pkg/validator"
)

const maxPadding = 96

// Validate checks the structural fields of a block. Colours are never
// validated here: a broken colour reference renders with a fallback instead.
func (p Props) Validate() error {
	rules := []validator.Rule{
		validator.InList("kind", p.Kind, Kinds),
		{
			Check: func() bool { return p.Padding >= 0 && p.Padding <= maxPadding },
			Error: validator.ValidationError{
				Field:          "padding",
				Message:        fmt.Sprintf("must be between 0 and %d", maxPadding),
				TranslationKey: "validation.range",
			},
		},
	}
	if p.ThemeZone != "" {
		rules = append(rules, validator.InList("themeZone", p.ThemeZone, theme.Zones))
	}
	if p.Kind == KindButton {
		rules = append(rules, validator.Required("cta.url", ctaURL(p.CTA)))
	}
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidBlock, err)
	}
	return nil
}

// Validate checks every block, prefixing field names with the block index.
func (d Document) Validate() error {
	var verrs validator.ValidationErrors
	for i, b := range d.Blocks {
		if errs := validator.ExtractValidationErrors(b.Validate()); errs != nil {
			verrs = append(verrs, errs.Prefix(fmt.Sprintf("blocks[%d]", i))...)
		}
	}
	if len(verrs) > 0 {
		return errors.Join(ErrInvalidBlock, verrs)
	}
	return nil
}

func ctaURL(c *CTA) string {
	if c == nil {
		return ""
	}
	return c.URL
}
