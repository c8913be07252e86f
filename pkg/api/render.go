package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/mailtheme/pkg/blocks"
	"github.com/dmitrymomot/mailtheme/pkg/email"
)

func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	var doc blocks.Document
	if err := decodeJSON(w, r, &doc); err != nil {
		h.respondError(w, r, err)
		return
	}
	html, err := blocks.Render(r.Context(), doc, h.catalog)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondHTML(w, html)
}

type testEmailRequest struct {
	SendTo  string `json:"send_to"`
	Subject string `json:"subject"`
	blocks.Document
}

type testEmailResponse struct {
	SendTo  string `json:"send_to"`
	Subject string `json:"subject"`
	Blocks  int    `json:"blocks"`
}

const testEmailTag = "template-test"

func (h *Handler) testEmail(w http.ResponseWriter, r *http.Request) {
	if h.sender == nil {
		h.respondError(w, r, HTTPError{
			Status:  http.StatusServiceUnavailable,
			Code:    "email_disabled",
			Message: "test email sending is not configured",
			Err:     ErrEmailDisabled,
		})
		return
	}

	var req testEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.Subject == "" {
		req.Subject = req.Title
	}

	html, err := blocks.Render(r.Context(), req.Document, h.catalog)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	err = h.sender.SendEmail(r.Context(), email.SendEmailParams{
		SendTo:   req.SendTo,
		Subject:  req.Subject,
		BodyHTML: html,
		Tag:      testEmailTag,
	})
	if err != nil && !errors.Is(err, email.ErrInvalidParams) {
		err = HTTPError{Status: http.StatusBadGateway, Code: "email_failed", Message: "failed to send test email", Err: err}
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusAccepted, testEmailResponse{
		SendTo:  req.SendTo,
		Subject: req.Subject,
		Blocks:  len(req.Blocks),
	})
}
