package preview

import "errors"

var (
	ErrThemeNotFound = errors.New("preview: theme not found")
	ErrInvalidZone   = errors.New("preview: invalid zone")
)
