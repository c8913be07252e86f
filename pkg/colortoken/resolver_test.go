package colortoken_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtheme/pkg/colortoken"
	"github.com/dmitrymomot/mailtheme/pkg/hexcolor"
)

const defaultHex = "#667085"

func ptr(f float64) *float64 { return &f }

func TestResolveToHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: defaultHex},
		{name: "empty string", input: "", want: defaultHex},
		{name: "raw hex lowercase", input: "#123abc", want: "#123ABC"},
		{name: "raw hex with alpha", input: "#ffffff80", want: "#FFFFFF80"},
		{name: "malformed raw hex", input: "#12", want: defaultHex},
		{name: "token id", input: "brand-600", want: "#004EEB"},
		{name: "unknown token id", input: "brand-9000", want: defaultHex},
		{name: "bare custom sentinel", input: "custom", want: defaultHex},
		{name: "custom value", input: colortoken.ColorValue{ID: "custom", Hex: "#123abc"}, want: "#123ABC"},
		{name: "custom without hex", input: colortoken.ColorValue{ID: "custom"}, want: defaultHex},
		{name: "custom with garbage hex", input: colortoken.ColorValue{ID: "custom", Hex: "blue"}, want: defaultHex},
		{name: "token value", input: colortoken.ColorValue{ID: "white"}, want: "#FFFFFF"},
		{name: "token value pointer", input: &colortoken.ColorValue{ID: "black"}, want: "#000000"},
		{name: "nil value pointer", input: (*colortoken.ColorValue)(nil), want: defaultHex},
		{name: "empty value", input: colortoken.ColorValue{}, want: defaultHex},
		{name: "hex without id", input: colortoken.ColorValue{Hex: "#abcdef"}, want: "#ABCDEF"},
		{name: "white at half opacity", input: colortoken.ColorValue{ID: "white", Opacity: ptr(0.5)}, want: "#FFFFFF80"},
		{name: "full opacity keeps six digits", input: colortoken.ColorValue{ID: "white", Opacity: ptr(1)}, want: "#FFFFFF"},
		{name: "opacity above one", input: colortoken.ColorValue{ID: "white", Opacity: ptr(4)}, want: "#FFFFFF"},
		{name: "negative opacity", input: colortoken.ColorValue{ID: "white", Opacity: ptr(-1)}, want: "#FFFFFF00"},
		{name: "NaN opacity", input: colortoken.ColorValue{ID: "white", Opacity: ptr(math.NaN())}, want: "#FFFFFF"},
		{name: "map from json", input: map[string]any{"id": "custom", "hex": "#00ff00", "opacity": 0.25}, want: "#00FF0040"},
		{name: "map with wrong id type", input: map[string]any{"id": 42}, want: defaultHex},
		{name: "map with wrong opacity type", input: map[string]any{"id": "black", "opacity": "half"}, want: "#000000"},
		{name: "raw json string", input: json.RawMessage(`"brand-600"`), want: "#004EEB"},
		{name: "raw json object", input: []byte(`{"id":"white","opacity":0.5}`), want: "#FFFFFF80"},
		{name: "raw json garbage", input: []byte(`{{{`), want: defaultHex},
		{name: "integer", input: 42, want: defaultHex},
		{name: "slice", input: []string{"white"}, want: defaultHex},
		{name: "ref", input: colortoken.TokenRef("black").WithOpacity(0.5), want: "#00000080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, colortoken.ResolveToHex(tt.input))
		})
	}
}

func TestResolveToHex_Totality(t *testing.T) {
	t.Parallel()

	inputs := []any{
		nil, "", " ", "#", "#zzzzzz", "custom", "white", "#FFF", "#00000000",
		0, 3.14, true, struct{}{}, map[string]any{}, map[string]any{"hex": 1},
		[]byte(nil), json.RawMessage(`null`), json.RawMessage(`12`),
		colortoken.ColorValue{ID: "  "}, colortoken.ColorValue{ID: "custom", Hex: "#1234567"},
		colortoken.ColorValue{ID: "brand-600", Opacity: ptr(math.Inf(1))},
		colortoken.ColorValue{ID: "brand-600", Opacity: ptr(math.Inf(-1))},
		(*colortoken.Ref)(nil), colortoken.Ref{},
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := colortoken.ResolveToHex(in)
			assert.True(t, hexcolor.IsValidWithAlpha(got), "input %#v produced %q", in, got)
		})
	}
}

func TestResolveToHex_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{
		nil, "#123abc", "brand-600", "unknown",
		colortoken.ColorValue{ID: "white", Opacity: ptr(0.5)},
		colortoken.ColorValue{ID: "custom", Hex: "#AbCdEf"},
	}
	for _, in := range inputs {
		once := colortoken.ResolveToHex(in)
		assert.Equal(t, once, colortoken.ResolveToHex(once), "input %#v", in)
	}
}

func TestColorValueToHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#123ABC", colortoken.ColorValueToHex(colortoken.ColorValue{ID: "custom", Hex: "#123abc"}))
	assert.Equal(t, "#FFFFFF80", colortoken.ColorValueToHex(colortoken.ColorValue{ID: "white", Opacity: ptr(0.5)}))
	assert.Equal(t, defaultHex, colortoken.ColorValueToHex(colortoken.ColorValue{ID: "nope"}))

	partial := []colortoken.ColorValue{
		{},
		{ID: "custom"},
		{Hex: "#abcdef"},
		{ID: "white", Opacity: ptr(math.NaN())},
		{ID: "white", Opacity: ptr(math.Inf(-1))},
		{ID: "black", Opacity: ptr(-3)},
		{ID: "nope", Opacity: ptr(0.5)},
	}
	for _, cv := range partial {
		got := colortoken.ColorValueToHex(cv)
		assert.True(t, hexcolor.IsValidWithAlpha(got), "value %#v gave %q", cv, got)
		assert.Equal(t, got, colortoken.ResolveToHex(got), "value %#v", cv)
	}
	assert.Equal(t, defaultHex, colortoken.ColorValueToHex(colortoken.ColorValue{ID: "custom"}))
	assert.Equal(t, "#ABCDEF", colortoken.ColorValueToHex(colortoken.ColorValue{Hex: "#abcdef"}))
}

func TestResolve_Warnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  colortoken.Ref
		want colortoken.Warning
	}{
		{name: "resolved", ref: colortoken.TokenRef("white"), want: colortoken.WarnNone},
		{name: "unset", ref: colortoken.Unset(), want: colortoken.WarnUnset},
		{name: "unknown token", ref: colortoken.TokenRef("nope"), want: colortoken.WarnUnknownToken},
		{name: "malformed raw hex", ref: colortoken.RawHex("#12"), want: colortoken.WarnMalformedHex},
		{name: "malformed custom", ref: colortoken.Custom(""), want: colortoken.WarnMalformedHex},
		{name: "bad opacity", ref: colortoken.TokenRef("white").WithOpacity(7), want: colortoken.WarnInvalidOpacity},
		{name: "first warning wins", ref: colortoken.TokenRef("nope").WithOpacity(7), want: colortoken.WarnUnknownToken},
		{name: "unsupported", ref: colortoken.Parse(12), want: colortoken.WarnUnsupportedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := colortoken.Resolve(tt.ref)
			assert.Equal(t, tt.want, res.Warning)
			assert.True(t, hexcolor.IsValidWithAlpha(res.Hex))
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, colortoken.KindUnset, colortoken.Parse(nil).Kind())
	assert.Equal(t, colortoken.KindRawHex, colortoken.Parse("#fff000").Kind())
	assert.Equal(t, colortoken.KindToken, colortoken.Parse("white").Kind())
	assert.Equal(t, colortoken.KindCustom, colortoken.Parse(colortoken.ColorValue{ID: "custom", Hex: "#fff000"}).Kind())
	assert.Equal(t, colortoken.KindInvalid, colortoken.Parse(1.5).Kind())

	o, ok := colortoken.Parse(colortoken.ColorValue{ID: "white", Opacity: ptr(0.3)}).Opacity()
	require.True(t, ok)
	assert.InDelta(t, 0.3, o, 1e-9)
}

func TestRef_JSON(t *testing.T) {
	t.Parallel()

	type doc struct {
		Color colortoken.Ref `json:"color"`
	}

	tests := []struct {
		name    string
		in      string
		kind    colortoken.Kind
		hex     string
		encoded string
	}{
		{name: "legacy string", in: `{"color":"#abcdef"}`, kind: colortoken.KindRawHex, hex: "#ABCDEF", encoded: `{"color":"#abcdef"}`},
		{name: "token string", in: `{"color":"brand-600"}`, kind: colortoken.KindToken, hex: "#004EEB", encoded: `{"color":{"id":"brand-600"}}`},
		{name: "object", in: `{"color":{"id":"white","opacity":0.5}}`, kind: colortoken.KindToken, hex: "#FFFFFF80", encoded: `{"color":{"id":"white","opacity":0.5}}`},
		{name: "custom object", in: `{"color":{"id":"custom","hex":"#123abc"}}`, kind: colortoken.KindCustom, hex: "#123ABC", encoded: `{"color":{"id":"custom","hex":"#123abc"}}`},
		{name: "null", in: `{"color":null}`, kind: colortoken.KindUnset, hex: defaultHex, encoded: `{"color":null}`},
		{name: "missing", in: `{}`, kind: colortoken.KindUnset, hex: defaultHex, encoded: `{"color":null}`},
		{name: "number", in: `{"color":12}`, kind: colortoken.KindInvalid, hex: defaultHex, encoded: `{"color":null}`},
		{name: "wrong object field type", in: `{"color":{"id":12}}`, kind: colortoken.KindInvalid, hex: defaultHex, encoded: `{"color":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d doc
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.kind, d.Color.Kind())
			assert.Equal(t, tt.hex, colortoken.ResolveToHex(d.Color))

			out, err := json.Marshal(d)
			require.NoError(t, err)
			assert.JSONEq(t, tt.encoded, string(out))
		})
	}
}
