package api

import (
	"net/http"

	"github.com/dmitrymomot/mailtheme/pkg/colortoken"
	"github.com/dmitrymomot/mailtheme/pkg/logger"
)

type tokenView struct {
	colortoken.Token
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

func (h *Handler) listTokens(w http.ResponseWriter, r *http.Request) {
	tokens := colortoken.Tokens()
	out := make([]tokenView, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tokenView{
			Token:     t,
			Name:      colortoken.DisplayName(t.ID),
			ShortName: colortoken.ShortName(t.ID),
		})
	}
	respondMeta(w, out, map[string]any{
		"count":         len(out),
		"default_token": colortoken.DefaultTokenID,
	})
}

func (h *Handler) colorGroups(w http.ResponseWriter, r *http.Request) {
	purpose, err := colortoken.ParsePurpose(r.URL.Query().Get("purpose"))
	if err != nil {
		h.respondError(w, r, badRequest("purpose must be text, background or all", err))
		return
	}
	respondMeta(w, colortoken.GetColorGroups(purpose), map[string]any{"purpose": purpose})
}

type resolveRequest struct {
	Value colortoken.Ref `json:"value"`
}

func (h *Handler) resolveColor(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	res := colortoken.Resolve(req.Value)
	if res.Warning != colortoken.WarnNone {
		h.log.DebugContext(r.Context(), "colour resolved with fallback",
			logger.Warning(string(res.Warning)),
		)
	}
	respond(w, http.StatusOK, res)
}
