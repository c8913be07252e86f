package blocks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

// Document is a complete email: an ordered list of blocks.
type Document struct {
	Title     string  `json:"title"`
	Preheader string  `json:"preheader,omitempty"`
	Blocks    []Props `json:"blocks"`
}

const (
	contentWidth  = 600
	canvasColor   = "#F2F4F7"
	fontStack     = "Arial, Helvetica, sans-serif"
	dividerHeight = 1
)

// contentPolicy is safe for concurrent use once built.
var contentPolicy = bluemonday.UGCPolicy()

// Email renders a full table-based HTML email.
func Email(doc Document, cat *theme.Catalog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title></head>`, templ.EscapeString(doc.Title))
		ew.printf(`<body style="margin:0;padding:0;background-color:%s;">`, canvasColor)
		if doc.Preheader != "" {
			ew.printf(`<div style="display:none;max-height:0;overflow:hidden;">%s</div>`,
				templ.EscapeString(doc.Preheader))
		}
		ew.printf(`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color:%s;"><tr><td align="center">`, canvasColor)
		ew.printf(`<table role="presentation" width="%d" cellpadding="0" cellspacing="0" border="0" style="width:%dpx;max-width:100%%;">`, contentWidth, contentWidth)
		if ew.err != nil {
			return ew.err
		}
		for _, b := range doc.Blocks {
			if err := Block(b, cat).Render(ctx, w); err != nil {
				return err
			}
		}
		ew.printf(`</table></td></tr></table></body></html>`)
		return ew.err
	})
}

// Block renders one block as a table row with inline styles.
func Block(p Props, cat *theme.Catalog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := p.Style(cat)
		ew := &errWriter{w: w}
		ew.printf(`<tr><td data-block-id="%s" style="background-color:%s;padding:%dpx;font-family:%s;">`,
			templ.EscapeString(p.ID), s.Background, s.Padding, fontStack)

		switch p.Kind {
		case KindHeader:
			ew.heading(p.Title, s.Title, 28)
			ew.paragraph(p.Description, s.Description)
		case KindFooter:
			ew.paragraph(p.Description, s.Description)
			ew.printf(`<div style="color:%s;font-size:12px;line-height:18px;">%s</div>`,
				s.Description, contentPolicy.Sanitize(p.Content))
		case KindText:
			ew.heading(p.Title, s.Title, 20)
			ew.printf(`<div style="color:%s;font-size:16px;line-height:24px;">%s</div>`,
				s.Description, contentPolicy.Sanitize(p.Content))
		case KindButton:
			ew.button(p.CTA, s)
		case KindDivider:
			ew.printf(`<div style="border-top:%dpx solid %s;font-size:0;line-height:0;">&nbsp;</div>`,
				dividerHeight, s.Rule)
		case KindSpacer:
			ew.printf(`<div style="height:%dpx;font-size:0;line-height:0;">&nbsp;</div>`, max(p.Height, 0))
		default:
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidBlock, p.Kind)
		}

		ew.printf(`</td></tr>`)
		return ew.err
	})
}

// RenderHTML renders a component to a string.
func RenderHTML(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render validates and renders a document to HTML.
func Render(ctx context.Context, doc Document, cat *theme.Catalog) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	return RenderHTML(ctx, Email(doc, cat))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) heading(text, color string, size int) {
	if text == "" {
		return
	}
	ew.printf(`<h1 style="margin:0 0 8px;color:%s;font-size:%dpx;line-height:1.3;">%s</h1>`,
		color, size, templ.EscapeString(text))
}

func (ew *errWriter) paragraph(text, color string) {
	if text == "" {
		return
	}
	ew.printf(`<p style="margin:0;color:%s;font-size:14px;line-height:20px;">%s</p>`,
		color, templ.EscapeString(text))
}

func (ew *errWriter) button(cta *CTA, s Style) {
	if cta == nil {
		return
	}
	href := string(templ.URL(cta.URL))
	ew.printf(`<table role="presentation" cellpadding="0" cellspacing="0" border="0"><tr>`+
		`<td style="background-color:%s;border-radius:6px;">`+
		`<a href="%s" style="display:inline-block;padding:12px 20px;color:%s;font-size:16px;font-weight:bold;text-decoration:none;">%s</a>`+
		`</td></tr></table>`,
		s.CTA, templ.EscapeString(href), s.CTAText, templ.EscapeString(cta.Label))
}
