// Package export writes render output to files: SVG snapshots of the
// terminal canvas and gonum/plot PNG charts of the operating curves.
package export

import (
	"fmt"
	"strings"
)

// Grid is the canvas surface seen by the SVG exporter. Implemented by
// viz.Canvas; kept as an interface so export does not import the TUI.
type Grid interface {
	Size() (w, h int)
	Rune(col, row int) rune
}

// Braille dot-to-bit mapping, mirrored from the canvas rasterizer.
var dotBits = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// GridToSVG converts a braille canvas into an SVG dot field. Overlay
// glyphs (pole labels) become SVG text elements.
func GridToSVG(g Grid, scale float64) string {
	if g == nil {
		return ""
	}
	w, h := g.Size()
	width := float64(w) * scale * 2
	height := float64(h) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff88">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r := g.Rune(col, row)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			if r < 0x2800 || r > 0x28FF {
				// Overlay glyph: emit as text.
				if r != 0 && r != ' ' {
					sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" fill="#ffffff">%c</text>
`, baseX, baseY+scale*3, scale*4, r))
				}
				continue
			}
			pattern := int(r - 0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
