package colortoken

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ColorValue is the structured colour reference persisted on a block.
// ID is a registered token id or CustomID; Hex is only meaningful for CustomID.
type ColorValue struct {
	ID      string   `json:"id"`
	Hex     string   `json:"hex,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// Kind tags the shape a colour reference arrived in.
type Kind uint8

const (
	KindUnset Kind = iota
	KindRawHex
	KindToken
	KindCustom
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindRawHex:
		return "raw_hex"
	case KindToken:
		return "token"
	case KindCustom:
		return "custom"
	default:
		return "invalid"
	}
}

// Ref is the canonical form of every accepted colour input: a legacy raw hex
// string, a token reference, a custom hex, or nothing at all. Block data is
// normalised into a Ref on entry so the rest of the code never branches on shape.
// The zero value is an unset reference.
type Ref struct {
	kind    Kind
	value   string
	opacity *float64
}

// Unset returns an empty reference.
func Unset() Ref { return Ref{} }

// RawHex references a bare "#RRGGBB" string as stored by older documents.
func RawHex(hex string) Ref { return Ref{kind: KindRawHex, value: hex} }

// TokenRef references a registered token.
func TokenRef(id string) Ref { return Ref{kind: KindToken, value: id} }

// Custom references an arbitrary hex colour chosen in the picker.
func Custom(hex string) Ref { return Ref{kind: KindCustom, value: hex} }

// WithOpacity returns a copy of r carrying the given alpha.
func (r Ref) WithOpacity(opacity float64) Ref {
	r.opacity = &opacity
	return r
}

func (r Ref) Kind() Kind { return r.kind }

func (r Ref) Value() string { return r.value }

func (r Ref) IsUnset() bool { return r.kind == KindUnset }

// Opacity returns the attached alpha, if any.
func (r Ref) Opacity() (float64, bool) {
	if r.opacity == nil {
		return 0, false
	}
	return *r.opacity, true
}

func (r Ref) String() string {
	s := r.kind.String()
	if r.value != "" {
		s += ":" + r.value
	}
	if r.opacity != nil {
		s += fmt.Sprintf("@%g", *r.opacity)
	}
	return s
}

// Parse converts any colour input into a Ref. It is total: shapes it does not
// understand produce a KindInvalid reference instead of an error.
//
// Accepted inputs: nil, string, Ref, *Ref, ColorValue, *ColorValue,
// map[string]any (decoded JSON), json.RawMessage and []byte.
func Parse(v any) Ref {
	switch val := v.(type) {
	case nil:
		return Unset()
	case Ref:
		return val
	case *Ref:
		if val == nil {
			return Unset()
		}
		return *val
	case string:
		return fromString(val)
	case ColorValue:
		return fromColorValue(val)
	case *ColorValue:
		if val == nil {
			return Unset()
		}
		return fromColorValue(*val)
	case map[string]any:
		return fromMap(val)
	case json.RawMessage:
		return fromJSON(val)
	case []byte:
		return fromJSON(val)
	default:
		return Ref{kind: KindInvalid, value: fmt.Sprintf("%T", v)}
	}
}

func fromString(s string) Ref {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Unset()
	case strings.HasPrefix(s, "#"):
		return RawHex(s)
	case s == CustomID:
		// a bare "custom" carries no hex to use
		return Custom("")
	default:
		return TokenRef(s)
	}
}

func fromColorValue(cv ColorValue) Ref {
	id := strings.TrimSpace(cv.ID)
	var r Ref
	switch {
	case id == CustomID:
		r = Custom(strings.TrimSpace(cv.Hex))
	case id != "":
		r = TokenRef(id)
	case strings.TrimSpace(cv.Hex) != "":
		r = Custom(strings.TrimSpace(cv.Hex))
	default:
		return Unset()
	}
	if cv.Opacity != nil {
		r = r.WithOpacity(*cv.Opacity)
	}
	return r
}

func fromMap(m map[string]any) Ref {
	var cv ColorValue
	if id, ok := m["id"].(string); ok {
		cv.ID = id
	} else if m["id"] != nil {
		return Ref{kind: KindInvalid, value: fmt.Sprintf("id:%T", m["id"])}
	}
	if hex, ok := m["hex"].(string); ok {
		cv.Hex = hex
	}
	if o, ok := toFloat(m["opacity"]); ok {
		cv.Opacity = &o
	}
	return fromColorValue(cv)
}

func fromJSON(data []byte) Ref {
	var r Ref
	_ = r.UnmarshalJSON(data)
	return r
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// UnmarshalJSON accepts a JSON string, a ColorValue object or null.
// Malformed payloads never fail decoding of the surrounding document; they
// become a KindInvalid reference that resolves to the default colour.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*r = Unset()
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*r = Ref{kind: KindInvalid, value: "string"}
			return nil
		}
		*r = fromString(s)
	case data[0] == '{':
		var cv ColorValue
		if err := json.Unmarshal(data, &cv); err != nil {
			*r = Ref{kind: KindInvalid, value: "object"}
			return nil
		}
		*r = fromColorValue(cv)
	default:
		*r = Ref{kind: KindInvalid, value: "json"}
	}
	return nil
}

// MarshalJSON writes raw hex references back as plain strings, keeping legacy
// documents in their original shape; token and custom references are written
// as ColorValue objects.
func (r Ref) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case KindRawHex:
		if r.opacity == nil {
			return json.Marshal(r.value)
		}
		return json.Marshal(ColorValue{ID: CustomID, Hex: r.value, Opacity: r.safeOpacity()})
	case KindToken:
		return json.Marshal(ColorValue{ID: r.value, Opacity: r.safeOpacity()})
	case KindCustom:
		return json.Marshal(ColorValue{ID: CustomID, Hex: r.value, Opacity: r.safeOpacity()})
	default:
		return []byte("null"), nil
	}
}

// safeOpacity drops NaN and infinities, which encoding/json refuses to encode.
func (r Ref) safeOpacity() *float64 {
	if r.opacity == nil || math.IsNaN(*r.opacity) || math.IsInf(*r.opacity, 0) {
		return nil
	}
	return r.opacity
}
