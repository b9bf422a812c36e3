package viz

import "strings"

// Braille patterns pack a 2x4 dot grid into one rune (offset 0x2800):
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal pixel surface: Width x Height character cells,
// each holding either a braille pattern or an overlay glyph (used for
// the N/S pole labels). Pixel coordinates run over (Width*2, Height*4).
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the pixel at (x, y) in sub-pixel coordinates. Cells
// holding an overlay glyph are left alone so labels stay readable.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.cells[row][col] < 0x2800 || c.cells[row][col] > 0x28FF {
		return
	}
	c.cells[row][col] |= pixelMap[y%4][x%2]
}

// SetRune places a text glyph at a pixel position, replacing whatever
// braille dots the cell held.
func (c *Canvas) SetRune(x, y int, r rune) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] = r
}

// Clear resets every cell to the empty braille pattern.
func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
}

// DrawLine rasterizes a segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rune reports the cell glyph at character coordinates. Used by the
// SVG exporter.
func (c *Canvas) Rune(col, row int) rune {
	return c.cells[row][col]
}

// Size reports the cell dimensions. Satisfies export.Grid.
func (c *Canvas) Size() (int, int) {
	return c.Width, c.Height
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
