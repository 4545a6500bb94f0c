package viz

import (
	"math"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/trajectory"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera projects phase-space points onto the 2D canvas with simple
// perspective and per-axis rotation.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 4.0, RotX: -0.4, RotY: 0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a normalized point to dot coordinates on a canvas of the
// given dot dimensions. The second return value is false when the point
// sits behind the camera.
func (c *Camera) Project(p Vec3, dotW, dotH int) (int, int, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := float64(dotH)
	if float64(dotW) < minDim {
		minDim = float64(dotW)
	}
	scale := minDim / 2.4
	x := int(rot.X*persp*scale) + dotW/2
	y := int(-rot.Y*persp*scale) + dotH/2
	return x, y, true
}

// Normalize maps a trajectory into the unit cube centered at the origin so
// every attractor fills the view regardless of its natural extent.
func Normalize(traj trajectory.Trajectory) []Vec3 {
	min, max := traj.Bounds()
	center := min.Add(max).Scale(0.5)
	span := 0.0
	for i := 0; i < 3; i++ {
		if s := max[i] - min[i]; s > span {
			span = s
		}
	}
	if span == 0 {
		span = 1
	}

	pts := make([]Vec3, 0, len(traj))
	for _, s := range traj {
		if !s.IsFinite() {
			continue
		}
		d := s.Sub(center).Scale(1 / span)
		pts = append(pts, Vec3{d[0], d[1], d[2]})
	}
	return pts
}

// NormalizePoint maps a single state with precomputed bounds, for
// incremental rendering in the live view.
func NormalizePoint(s, min, max dynamo.State) Vec3 {
	center := min.Add(max).Scale(0.5)
	span := 0.0
	for i := 0; i < 3; i++ {
		if sp := max[i] - min[i]; sp > span {
			span = sp
		}
	}
	if span == 0 {
		span = 1
	}
	d := s.Sub(center).Scale(1 / span)
	return Vec3{d[0], d[1], d[2]}
}

// RenderTrajectory draws a normalized polyline onto the canvas, splitting
// it wherever a segment leaves the view.
func RenderTrajectory(c *Canvas, pts []Vec3, cam *Camera) {
	dotW, dotH := c.Width*2, c.Height*4
	prevOK := false
	var px, py int
	for _, p := range pts {
		x, y, ok := cam.Project(p, dotW, dotH)
		if ok && prevOK {
			c.DrawLine(px, py, x, y)
		} else if ok {
			c.Set(x, y)
		}
		px, py, prevOK = x, y, ok
	}
}

// RenderAxes draws short axis hints from the origin.
func RenderAxes(c *Canvas, cam *Camera, length float64) {
	dotW, dotH := c.Width*2, c.Height*4
	origin := Vec3{}
	for _, tip := range []Vec3{{length, 0, 0}, {0, length, 0}, {0, 0, length}} {
		x0, y0, ok0 := cam.Project(origin, dotW, dotH)
		x1, y1, ok1 := cam.Project(tip, dotW, dotH)
		if ok0 && ok1 {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
}
