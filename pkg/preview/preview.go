package preview

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/mailtheme/pkg/blocks"
	"github.com/dmitrymomot/mailtheme/pkg/theme"
)

// DefaultCacheSize covers every built-in theme, zone and swap state.
const DefaultCacheSize = 256

// Key identifies one cached preview.
type Key struct {
	ThemeID string
	Zone    theme.ZoneName
	Swapped bool
}

// Renderer renders and caches theme zone previews. Safe for concurrent use.
type Renderer struct {
	catalog *theme.Catalog
	cache   *lru
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCacheSize sets the maximum number of cached previews.
// Non-positive sizes are ignored.
func WithCacheSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.cache = newLRU(size)
		}
	}
}

// NewRenderer creates a preview renderer over the catalog.
func NewRenderer(cat *theme.Catalog, opts ...Option) *Renderer {
	r := &Renderer{catalog: cat}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = newLRU(DefaultCacheSize)
	}
	return r
}

// Render returns the HTML swatch for a theme zone.
func (r *Renderer) Render(ctx context.Context, key Key) (string, error) {
	if _, err := theme.ParseZone(string(key.Zone)); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidZone, key.Zone)
	}
	if r.catalog.GetThemeByID(key.ThemeID) == nil {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, key.ThemeID)
	}

	if html, ok := r.cache.get(key); ok {
		return html, nil
	}

	html, err := blocks.RenderHTML(ctx, blocks.Block(sample(key), r.catalog))
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	r.cache.put(key, html)
	return html, nil
}

// Cached reports how many previews are held in the cache.
func (r *Renderer) Cached() int {
	return r.cache.len()
}

func sample(key Key) blocks.Props {
	p := blocks.Props{
		ID:        fmt.Sprintf("preview-%s-%s", key.ThemeID, key.Zone),
		ThemeID:   key.ThemeID,
		ThemeZone: key.Zone,
		Swapped:   key.Swapped,
		Padding:   12,
	}
	switch key.Zone {
	case theme.ZoneHeader:
		p.Kind = blocks.KindHeader
		p.Title = "Aa"
		p.Description = "Header"
	case theme.ZoneFooter:
		p.Kind = blocks.KindFooter
		p.Description = "Footer"
	default:
		p.Kind = blocks.KindButton
		p.CTA = &blocks.CTA{Label: "Button", URL: "#"}
	}
	return p
}
