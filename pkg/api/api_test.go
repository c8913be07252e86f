package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtheme/pkg/api"
	"github.com/dmitrymomot/mailtheme/pkg/email"
	"github.com/dmitrymomot/mailtheme/pkg/logger"
	"github.com/dmitrymomot/mailtheme/pkg/ratelimiter"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, r))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func newRouter(opts ...api.Option) http.Handler {
	return api.New(theme.Builtin(), opts...).Routes()
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec, _ := do(t, newRouter(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
}

func TestColors(t *testing.T) {
	t.Parallel()
	h := newRouter()

	t.Run("tokens", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/colors/tokens", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tokens []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &tokens))
		require.NotEmpty(t, tokens)
		assert.Equal(t, "white", tokens[0]["id"])
		assert.Equal(t, "#FFFFFF", tokens[0]["hex"])
		assert.Contains(t, tokens[0], "name")
		assert.Contains(t, tokens[0], "text_safe")
		assert.Equal(t, "neutral-500", env.Meta["default_token"])
	})

	t.Run("groups", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/colors/groups?purpose=text", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var groups []struct {
			Name   string `json:"name"`
			Tokens []struct {
				ID string `json:"id"`
			} `json:"tokens"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &groups))
		require.NotEmpty(t, groups)
		assert.Equal(t, "Most Used", groups[0].Name)
		require.Len(t, groups[0].Tokens, 2)
		assert.Equal(t, "white", groups[0].Tokens[0].ID)
		assert.Equal(t, "black", groups[0].Tokens[1].ID)
	})

	t.Run("groups bad purpose", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/colors/groups?purpose=border", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})
}

func TestResolveColor(t *testing.T) {
	t.Parallel()
	h := newRouter()

	tests := []struct {
		name        string
		body        string
		wantHex     string
		wantWarning string
	}{
		{"token", `{"value": {"id": "brand-600"}}`, "#004EEB", ""},
		{"raw hex", `{"value": "#abcdef"}`, "#ABCDEF", ""},
		{"token with opacity", `{"value": {"id": "white", "opacity": 0.5}}`, "#FFFFFF80", ""},
		{"custom", `{"value": {"id": "custom", "hex": "#123456"}}`, "#123456", ""},
		{"null", `{"value": null}`, "#667085", "unset"},
		{"missing", `{}`, "#667085", "unset"},
		{"unknown token", `{"value": {"id": "nope"}}`, "#667085", "unknown_token"},
		{"number", `{"value": 42}`, "#667085", "unsupported_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodPost, "/colors/resolve", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var res struct {
				Hex     string `json:"hex"`
				Warning string `json:"warning"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &res))
			assert.Equal(t, tt.wantHex, res.Hex)
			assert.Equal(t, tt.wantWarning, res.Warning)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/colors/resolve", `{"value":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
	})
}

func TestThemes(t *testing.T) {
	t.Parallel()
	h := newRouter()

	t.Run("list grouped", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/themes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var groups []struct {
			Category string `json:"category"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &groups))
		require.NotEmpty(t, groups)
		assert.Equal(t, "brand", groups[0].Category)
		assert.EqualValues(t, theme.Builtin().Len(), env.Meta["count"])
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/themes/kore-default", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var def theme.Definition
		require.NoError(t, json.Unmarshal(env.Data, &def))
		assert.Equal(t, "kore-default", def.ID)
		assert.Equal(t, "#004EEB", def.Header.BG)
	})

	t.Run("unknown theme", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{
			"/themes/missing",
			"/themes/missing/zones/header",
			"/themes/missing/zones/header/palette",
			"/themes/missing/zones/header/preview",
		} {
			rec, env := do(t, h, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
			require.NotNil(t, env.Error, path)
			assert.Equal(t, "not_found", env.Error.Code)
		}
	})

	t.Run("zone colours", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/themes/kore-default/zones/header", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bg":"#004EEB","fg":"#FFFFFF"}`, string(env.Data))
	})

	t.Run("bad zone", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodGet, "/themes/kore-default/zones/sidebar", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("palette", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/themes/kore-default/zones/header/palette", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var palette []struct {
			ID  string `json:"id"`
			Hex string `json:"hex"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &palette))
		require.NotEmpty(t, palette)
		seen := map[string]bool{}
		for _, p := range palette {
			assert.False(t, seen[p.Hex], "duplicate hex %s", p.Hex)
			seen[p.Hex] = true
		}
	})

	t.Run("swapped", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/themes/kore-default/zones/header/swapped?swapped=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bg":"#B2CCFF","fg":"#00359E"}`, string(env.Data))

		rec, _ = do(t, h, http.MethodGet, "/themes/kore-default/zones/header/swapped?swapped=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("apply", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/themes/kore-default/apply", map[string]any{"zone": "header", "swapped": true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"backgroundColor": "#FFFFFF",
			"titleColor": "#004EEB",
			"descriptionColor": "#004EEB",
			"ctaColor": "#004EEB"
		}`, string(env.Data))

		rec, _ = do(t, h, http.MethodPost, "/themes/missing/apply", map[string]any{"zone": "header"})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec, _ = do(t, h, http.MethodPost, "/themes/kore-default/apply", map[string]any{"zone": "aside"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("preview", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodGet, "/themes/kore-default/zones/header/preview", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "background-color:#004EEB")
	})
}

func sampleDoc() map[string]any {
	return map[string]any{
		"title": "Welcome",
		"blocks": []map[string]any{
			{"id": "h", "kind": "header", "themeId": "kore-default", "title": "Hi"},
			{"id": "t", "kind": "text", "content": "<p>Body</p>", "backgroundColor": "#fafafa"},
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	h := newRouter()

	rec, _ := do(t, h, http.MethodPost, "/render", sampleDoc())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Welcome</title>")
	assert.Contains(t, rec.Body.String(), "background-color:#FAFAFA")

	rec, env := do(t, h, http.MethodPost, "/render", map[string]any{
		"blocks": []map[string]any{{"kind": "carousel"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Contains(t, env.Error.Details, "blocks[0].kind")
}

func TestTestEmail(t *testing.T) {
	t.Parallel()

	t.Run("disabled without sender", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, newRouter(), http.MethodPost, "/test-email", sampleDoc())
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "email_disabled", env.Error.Code)
	})

	t.Run("sends rendered document", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "qa@example.com" &&
				p.Subject == "Welcome" &&
				p.Tag == "template-test" &&
				strings.Contains(p.BodyHTML, "<title>Welcome</title>")
		})).Return(nil).Once()

		body := sampleDoc()
		body["send_to"] = "qa@example.com"
		rec, env := do(t, newRouter(api.WithSender(sender)), http.MethodPost, "/test-email", body)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"send_to":"qa@example.com","subject":"Welcome","blocks":2}`, string(env.Data))
		sender.AssertExpectations(t)
	})

	t.Run("invalid params", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Return(email.SendEmailParams{}.Validate()).Once()

		rec, env := do(t, newRouter(api.WithSender(sender)), http.MethodPost, "/test-email", sampleDoc())
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "send_to")
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Return(errors.Join(email.ErrFailedToSendEmail, errors.New("smtp down"))).Once()

		body := sampleDoc()
		body["send_to"] = "qa@example.com"
		rec, env := do(t, newRouter(api.WithSender(sender)), http.MethodPost, "/test-email", body)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "email_failed", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "smtp down")
	})
}

func TestTestEmail_RateLimited(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.New(ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)
	t.Cleanup(limiter.Close)

	sender := &mockSender{}
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Once()
	h := newRouter(api.WithSender(sender), api.WithTestEmailLimiter(limiter))

	body := sampleDoc()
	body["send_to"] = "qa@example.com"

	rec, _ := do(t, h, http.MethodPost, "/test-email", body)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec, env := do(t, h, http.MethodPost, "/test-email", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "rate_limited", env.Error.Code)
	sender.AssertExpectations(t)

	rec, _ = do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "other routes are not limited")
}

func TestNotFoundRoute(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newRouter(), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(api.RequestIDExtractor),
	)
	h := newRouter(api.WithLogger(log))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(api.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(api.RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, "http request", entry["msg"])

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(api.RequestIDHeader, "bad id with spaces")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "bad id with spaces", rec.Header().Get(api.RequestIDHeader))
	assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := api.RequestIDExtractor(context.Background())
	assert.False(t, ok)
	assert.Empty(t, api.RequestIDFromContext(context.Background()))
}
