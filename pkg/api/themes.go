package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailtheme/pkg/logger"
	"github.com/dmitrymomot/mailtheme/pkg/preview"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	respondMeta(w, h.catalog.Grouped(), map[string]any{"count": h.catalog.Len()})
}

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	def, err := h.themeFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, def)
}

func (h *Handler) zoneColors(w http.ResponseWriter, r *http.Request) {
	def, zone, err := h.themeZoneFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, h.catalog.GetThemeColors(def.ID, zone))
}

func (h *Handler) zonePalette(w http.ResponseWriter, r *http.Request) {
	def, zone, err := h.themeZoneFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	palette := h.catalog.GetThemeTokenPalette(def.ID, zone)
	respondMeta(w, palette, map[string]any{"count": len(palette)})
}

func (h *Handler) swappedColors(w http.ResponseWriter, r *http.Request) {
	def, zone, err := h.themeZoneFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	swapped, err := boolQuery(r, "swapped")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, h.catalog.GetSwappedColors(def.ID, zone, swapped))
}

type applyRequest struct {
	Zone    theme.ZoneName `json:"zone"`
	Swapped bool           `json:"swapped"`
}

func (h *Handler) applyTheme(w http.ResponseWriter, r *http.Request) {
	def, err := h.themeFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	zone, err := theme.ParseZone(string(req.Zone))
	if err != nil {
		h.respondError(w, r, badRequest("zone must be header, body or footer", err))
		return
	}

	colors := h.catalog.ApplyThemeToBlock(def.ID, req.Swapped, zone)
	h.log.DebugContext(r.Context(), "theme applied",
		logger.ThemeID(def.ID),
		logger.Zone(string(zone)),
	)
	respond(w, http.StatusOK, colors)
}

func (h *Handler) zonePreview(w http.ResponseWriter, r *http.Request) {
	def, zone, err := h.themeZoneFromPath(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	swapped, err := boolQuery(r, "swapped")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	html, err := h.previews.Render(r.Context(), preview.Key{ThemeID: def.ID, Zone: zone, Swapped: swapped})
	switch {
	case errors.Is(err, preview.ErrThemeNotFound):
		h.respondError(w, r, notFound("theme", err))
	case errors.Is(err, preview.ErrInvalidZone):
		h.respondError(w, r, badRequest("zone must be header, body or footer", err))
	case err != nil:
		h.respondError(w, r, err)
	default:
		respondHTML(w, html)
	}
}

func (h *Handler) themeFromPath(r *http.Request) (*theme.Definition, error) {
	id := chi.URLParam(r, "themeID")
	def := h.catalog.GetThemeByID(id)
	if def == nil {
		return nil, notFound("theme", nil)
	}
	return def, nil
}

func (h *Handler) themeZoneFromPath(r *http.Request) (*theme.Definition, theme.ZoneName, error) {
	def, err := h.themeFromPath(r)
	if err != nil {
		return nil, "", err
	}
	zone, err := theme.ParseZone(chi.URLParam(r, "zone"))
	if err != nil {
		return nil, "", badRequest("zone must be header, body or footer", err)
	}
	return def, zone, nil
}

// boolQuery reads an optional boolean query parameter; absent means false.
func boolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest(name+" must be a boolean", err)
	}
	return v, nil
}
