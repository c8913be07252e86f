// Package blocks models the editable blocks of an email and renders them to
// table-based HTML with inline styles.
//
// Props is the single source of truth for a block and is shared between the
// properties panel and the renderers. Colours are stored as colortoken.Ref so
// documents written by older editor versions (raw hex strings) decode next to
// newer token references. Props.Style derives the concrete colours: an active
// theme wins, otherwise the block's own references are resolved.
//
// Rich-text content is sanitised with bluemonday before it is written out;
// all other text is HTML-escaped.
//
//	doc := blocks.Document{Title: "Welcome", Blocks: []blocks.Props{header, body}}
//	html, err := blocks.Render(ctx, doc, theme.Builtin())
package blocks
