// Package preview renders small HTML swatches of a theme zone for the theme
// picker.
//
// Previews are cached in a bounded LRU keyed by theme, zone and swap state.
// The theme catalog never changes after startup, so cached entries never go
// stale and the cache only bounds memory.
package preview
