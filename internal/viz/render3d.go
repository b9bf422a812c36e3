package viz

import (
	"math"
	"sort"

	"github.com/san-kum/dcmlab/internal/geometry"
)

// Camera projects machine coordinates onto the canvas with a simple
// perspective transform and painter's-algorithm depth ordering.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64

	// FollowTheta rotates the azimuth in lockstep with the armature,
	// matching the original view behavior of the machine demo.
	FollowTheta bool
}

// NewCamera starts slightly above the rotation plane so poles and
// commutator are both visible.
func NewCamera() *Camera {
	return &Camera{Distance: 1.2, Near: 0.01, RotX: -1.1, Zoom: 2.2}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// rotate applies the view rotation, including the theta-follow azimuth.
func (c *Camera) rotate(p geometry.Vec3, theta float64) geometry.Vec3 {
	rz := c.RotZ
	if c.FollowTheta {
		rz += theta
	}
	cz, sz := math.Cos(rz), math.Sin(rz)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project converts a machine point to sub-pixel canvas coordinates.
// Returns screen x, y, depth, and whether the point is in front of the
// near plane.
func (c *Camera) Project(p geometry.Vec3, theta float64, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p, theta).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	pScale := minDim * 1.4
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, true
}

type projected struct {
	x1, y1, x2, y2 int
	depth          float64
	label          rune
}

// Render draws a frame onto the canvas, back to front. Labels paint
// last so pole markings stay on top of the wireframe.
func Render(c *Canvas, f *geometry.Frame, cam *Camera, theta float64) {
	if c == nil || f == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4

	segs := make([]projected, 0, len(f.Lines)+3*len(f.Arrows))
	add := func(a, b geometry.Vec3) {
		x1, y1, d1, v1 := cam.Project(a, theta, sw, sh)
		x2, y2, d2, v2 := cam.Project(b, theta, sw, sh)
		if v1 || v2 {
			segs = append(segs, projected{x1, y1, x2, y2, (d1 + d2) / 2, 0})
		}
	}

	for _, l := range f.Lines {
		add(l.A, l.B)
	}
	for _, a := range f.Arrows {
		add(a.From, a.To)
		for _, h := range arrowHead(a) {
			add(h[0], h[1])
		}
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].depth < segs[j].depth })
	for _, s := range segs {
		c.DrawLine(s.x1, s.y1, s.x2, s.y2)
	}

	for _, l := range f.Labels {
		x, y, _, ok := cam.Project(l.Pos, theta, sw, sh)
		if ok && len(l.Text) > 0 {
			c.SetRune(x, y, rune(l.Text[0]))
		}
	}
}

// arrowHead returns the two barb segments for an arrow, built in the
// plane of the shaft direction.
func arrowHead(a geometry.Arrow) [2][2]geometry.Vec3 {
	dir := a.To.Sub(a.From).Normalize()
	// Any perpendicular works for the barbs; prefer the rotation plane.
	perp := geometry.Vec3{X: -dir.Y, Y: dir.X, Z: 0}
	if perp.Length() == 0 {
		perp = geometry.Vec3{X: 1, Y: 0, Z: 0}
	}
	perp = perp.Normalize()

	size := a.To.Sub(a.From).Length() * 0.3
	back := a.To.Sub(dir.Scale(size))
	left := back.Add(perp.Scale(size * 0.5))
	right := back.Sub(perp.Scale(size * 0.5))
	return [2][2]geometry.Vec3{{a.To, left}, {a.To, right}}
}
