package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailtheme/pkg/email"
	"github.com/dmitrymomot/mailtheme/pkg/httpserver"
	"github.com/dmitrymomot/mailtheme/pkg/logger"
	"github.com/dmitrymomot/mailtheme/pkg/preview"
	"github.com/dmitrymomot/mailtheme/pkg/ratelimiter"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

// Handler serves the editor's colour and theme endpoints.
type Handler struct {
	catalog  *theme.Catalog
	previews *preview.Renderer
	sender   email.EmailSender
	limiter  *ratelimiter.Limiter
	log      *slog.Logger
	timeout  time.Duration
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithPreviews shares a preview renderer (and its cache) with the handler.
func WithPreviews(r *preview.Renderer) Option {
	return func(h *Handler) { h.previews = r }
}

// WithSender enables POST /test-email.
func WithSender(s email.EmailSender) Option {
	return func(h *Handler) { h.sender = s }
}

// WithTestEmailLimiter throttles POST /test-email per client IP.
func WithTestEmailLimiter(l *ratelimiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

// WithTimeout bounds request handling time. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// New creates a Handler over the catalog. A nil catalog means the built-in one.
func New(cat *theme.Catalog, opts ...Option) *Handler {
	if cat == nil {
		cat = theme.Builtin()
	}
	h := &Handler{catalog: cat, log: logger.Nop(), timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(h)
	}
	if h.previews == nil {
		h.previews = preview.NewRenderer(cat)
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Routes returns the router with all middleware applied.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	if h.timeout > 0 {
		r.Use(middleware.Timeout(h.timeout))
	}

	r.Get("/health", httpserver.HealthCheckHandler(h.log, h.ready))

	r.Route("/colors", func(r chi.Router) {
		r.Get("/tokens", h.listTokens)
		r.Get("/groups", h.colorGroups)
		r.Post("/resolve", h.resolveColor)
	})

	r.Route("/themes", func(r chi.Router) {
		r.Get("/", h.listThemes)
		r.Route("/{themeID}", func(r chi.Router) {
			r.Get("/", h.getTheme)
			r.Post("/apply", h.applyTheme)
			r.Route("/zones/{zone}", func(r chi.Router) {
				r.Get("/", h.zoneColors)
				r.Get("/palette", h.zonePalette)
				r.Get("/swapped", h.swappedColors)
				r.Get("/preview", h.zonePreview)
			})
		})
	})

	r.Post("/render", h.render)
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, ratelimiter.ClientIP, http.HandlerFunc(h.rateLimited)))
		}
		r.Post("/test-email", h.testEmail)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, notFound("route", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"})
	})
	return r
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, HTTPError{
		Status:  http.StatusTooManyRequests,
		Code:    "rate_limited",
		Message: "too many test emails, try again later",
	})
}

func (h *Handler) ready(context.Context) error {
	if h.catalog.Len() == 0 {
		return errors.New("theme catalog is empty")
	}
	return nil
}
