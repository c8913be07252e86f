package theme

// BlockColors is the colour bundle a themed block renders with. Field names
// match the block props they overwrite.
type BlockColors struct {
	BackgroundColor  string `json:"backgroundColor"`
	TitleColor       string `json:"titleColor"`
	DescriptionColor string `json:"descriptionColor"`
	CTAColor         string `json:"ctaColor"`
}

// ApplyThemeToBlock resolves the colours a block in the given zone renders
// with. When swapped is true bg and fg are exchanged as-is. The CTA colour is
// the zone's primary600 shade, or the resolved foreground when absent.
//
// It returns nil for an unknown theme or zone; callers keep the block's own
// colours in that case.
func (c *Catalog) ApplyThemeToBlock(id string, swapped bool, zone ZoneName) *BlockColors {
	z, ok := c.zone(id, zone)
	if !ok {
		return nil
	}

	bg, fg := z.BG, z.FG
	if swapped {
		bg, fg = fg, bg
	}

	cta := z.Primary600
	if cta == "" {
		cta = fg
	}

	return &BlockColors{
		BackgroundColor:  bg,
		TitleColor:       fg,
		DescriptionColor: fg,
		CTAColor:         cta,
	}
}

// GetSwappedColors implements the soft swap used by content blocks. When
// swapped it returns {bg200 ?? fg, fg200 ?? bg}; otherwise the zone's {bg, fg}
// unchanged. ApplyThemeToBlock, by contrast, always does a direct exchange.
func (c *Catalog) GetSwappedColors(id string, zone ZoneName, swapped bool) *Colors {
	z, ok := c.zone(id, zone)
	if !ok {
		return nil
	}
	if !swapped {
		return &Colors{BG: z.BG, FG: z.FG}
	}
	return &Colors{
		BG: first(z.BG200, z.FG),
		FG: first(z.FG200, z.BG),
	}
}

// ApplyThemeToBlock applies a built-in theme; see Catalog.ApplyThemeToBlock.
func ApplyThemeToBlock(id string, swapped bool, zone ZoneName) *BlockColors {
	return Builtin().ApplyThemeToBlock(id, swapped, zone)
}

// GetSwappedColors soft-swaps a built-in theme zone; see Catalog.GetSwappedColors.
func GetSwappedColors(id string, zone ZoneName, swapped bool) *Colors {
	return Builtin().GetSwappedColors(id, zone, swapped)
}
