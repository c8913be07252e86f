package validator

import (
	"regexp"

	"github.com/dmitrymomot/mailtheme/pkg/hexcolor"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidHexColor validates a required "#RRGGBB" colour.
func ValidHexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexcolor.IsValid(value)
		},
		Error: hexColorError(field),
	}
}

// OptionalHexColor accepts an empty string or a valid "#RRGGBB" colour.
func OptionalHexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || hexcolor.IsValid(value)
		},
		Error: hexColorError(field),
	}
}

func hexColorError(field string) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           "must be a hex colour in #RRGGBB form",
		TranslationKey:    "validation.hex_color",
		TranslationValues: map[string]any{"field": field},
	}
}
