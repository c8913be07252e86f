package theme

import "fmt"

// Category groups themes in the picker.
type Category string

const (
	CategoryBrand    Category = "brand"
	CategoryNeutral  Category = "neutral"
	CategoryColorful Category = "colorful"
)

// Categories lists every category in picker order.
var Categories = []Category{CategoryBrand, CategoryNeutral, CategoryColorful}

// ZoneName identifies one of the three areas of an email.
type ZoneName string

const (
	ZoneHeader ZoneName = "header"
	ZoneBody   ZoneName = "body"
	ZoneFooter ZoneName = "footer"
)

var Zones = []ZoneName{ZoneHeader, ZoneBody, ZoneFooter}

// ParseZone validates a zone name coming from a request.
func ParseZone(s string) (ZoneName, error) {
	switch z := ZoneName(s); z {
	case ZoneHeader, ZoneBody, ZoneFooter:
		return z, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidZone, s)
}

// Zone is a background/foreground pair plus optional extended shades.
// BG and FG are always set on catalogued themes; an empty extended shade
// means "absent" and is resolved through Shade.
type Zone struct {
	BG         string `json:"bg" yaml:"bg"`
	FG         string `json:"fg" yaml:"fg"`
	BG50       string `json:"bg50,omitempty" yaml:"bg50,omitempty"`
	BG100      string `json:"bg100,omitempty" yaml:"bg100,omitempty"`
	BG200      string `json:"bg200,omitempty" yaml:"bg200,omitempty"`
	BG300      string `json:"bg300,omitempty" yaml:"bg300,omitempty"`
	FG200      string `json:"fg200,omitempty" yaml:"fg200,omitempty"`
	TextDark   string `json:"textDark,omitempty" yaml:"textDark,omitempty"`
	TextLight  string `json:"textLight,omitempty" yaml:"textLight,omitempty"`
	Primary600 string `json:"primary600,omitempty" yaml:"primary600,omitempty"`
}

// Definition is one named theme.
type Definition struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Header   Zone     `json:"header" yaml:"header"`
	Body     Zone     `json:"body" yaml:"body"`
	Footer   Zone     `json:"footer" yaml:"footer"`
}

// Zone returns the zone with the given name. Unknown names yield ok=false.
func (d Definition) Zone(name ZoneName) (Zone, bool) {
	switch name {
	case ZoneHeader:
		return d.Header, true
	case ZoneBody:
		return d.Body, true
	case ZoneFooter:
		return d.Footer, true
	}
	return Zone{}, false
}

// Colors is a resolved background/foreground pair.
type Colors struct {
	BG string `json:"bg"`
	FG string `json:"fg"`
}
