package theme

import "errors"

var (
	ErrInvalidZone       = errors.New("theme: invalid zone")
	ErrInvalidDefinition = errors.New("theme: invalid definition")
	ErrDuplicateTheme    = errors.New("theme: duplicate theme id")
	ErrParsingCatalog    = errors.New("theme: failed to parse catalog file")
)
