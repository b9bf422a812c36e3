package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/dcmlab/internal/curves"
	"github.com/san-kum/dcmlab/internal/machine"
)

type fakeGrid struct {
	w, h  int
	cells map[[2]int]rune
}

func (g fakeGrid) Size() (int, int) { return g.w, g.h }
func (g fakeGrid) Rune(col, row int) rune {
	if r, ok := g.cells[[2]int{col, row}]; ok {
		return r
	}
	return 0x2800
}

func TestGridToSVG(t *testing.T) {
	g := fakeGrid{w: 4, h: 2, cells: map[[2]int]rune{
		{0, 0}: 0x2800 | 0x01, // one dot
		{2, 1}: 'N',           // overlay glyph
	}}

	svg := GridToSVG(g, 4)
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Fatal("missing xml header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected a dot circle")
	}
	if !strings.Contains(svg, ">N</text>") {
		t.Error("expected the overlay glyph as text")
	}
	if GridToSVG(nil, 4) != "" {
		t.Error("nil grid should render empty")
	}
}

func TestGridToSVGEmpty(t *testing.T) {
	g := fakeGrid{w: 2, h: 2}
	svg := GridToSVG(g, 4)
	if strings.Contains(svg, "<circle") {
		t.Error("empty canvas should emit no dots")
	}
}

func TestSaveCurvePNG(t *testing.T) {
	s := machine.NewState()
	c := curves.SpeedSweep(s, 50)

	path := filepath.Join(t.TempDir(), "emf_speed.png")
	if err := SaveCurvePNG(c, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("png file is empty")
	}
}

func TestSaveCurvePNGInvalid(t *testing.T) {
	if err := SaveCurvePNG(curves.Curve{}, "x.png"); err == nil {
		t.Error("expected error for empty curve")
	}
}
