package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/termpong/internal/config"
)

// Theme is the configured palette resolved into tcell styles. Invalid
// hex strings fall back to the matching default palette entry, so a
// bad remote palette can never break rendering.
type Theme struct {
	Background tcell.Style
	Ball       tcell.Style
	Paddle1    tcell.Style
	Paddle2    tcell.Style
	Text       tcell.Style
	Accent     tcell.Style
	Dim        tcell.Style
}

// NewTheme resolves a palette. The center-line style is derived by
// blending the text color halfway toward the background.
func NewTheme(p config.Palette) Theme {
	def := config.DefaultPalette()

	bg := parseHex(p.Background, def.Background)
	text := parseHex(p.Text, def.Text)
	dim := text.BlendLab(bg, 0.6)

	base := tcell.StyleDefault.Background(toTcell(bg))
	return Theme{
		Background: base,
		Ball:       base.Foreground(toTcell(parseHex(p.Ball, def.Ball))),
		Paddle1:    base.Foreground(toTcell(parseHex(p.Paddle1, def.Paddle1))),
		Paddle2:    base.Foreground(toTcell(parseHex(p.Paddle2, def.Paddle2))),
		Text:       base.Foreground(toTcell(text)),
		Accent:     base.Foreground(toTcell(parseHex(p.Accent, def.Accent))).Bold(true),
		Dim:        base.Foreground(toTcell(dim)),
	}
}

func parseHex(hex, fallback string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, err = colorful.Hex(fallback)
		if err != nil {
			return colorful.Color{R: 1, G: 1, B: 1}
		}
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
