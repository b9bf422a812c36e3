package export

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/dcmlab/internal/curves"
)

// SaveCurvePNG renders one analytic curve as a PNG: the sweep line
// plus a scatter marker at the operating point.
func SaveCurvePNG(c curves.Curve, filename string) error {
	if len(c.X) == 0 || len(c.X) != len(c.Y) {
		return fmt.Errorf("export: curve data invalid")
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	stylePlot(p)

	pts := make(plotter.XYs, len(c.X))
	for i := range c.X {
		pts[i].X = c.X[i]
		pts[i].Y = c.Y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.5)
	p.Add(line)

	marker, err := plotter.NewScatter(plotter.XYs{{X: c.MarkerX, Y: c.MarkerY}})
	if err != nil {
		return err
	}
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: c.MarkerX, Y: c.MarkerY}},
		Labels: []string{c.Annotation},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return savePNG(p, 8.0, 6.0, filename)
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.X.Padding = vg.Points(10)
	p.Y.Padding = vg.Points(10)
	p.X.Tick.Marker = limitedTicker(8, "%.1f")
	p.Y.Tick.Marker = limitedTicker(8, "%.1f")
}

// limitedTicker keeps axis labels readable regardless of range.
func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func savePNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export: cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("export: cannot write png: %w", err)
	}
	return nil
}
