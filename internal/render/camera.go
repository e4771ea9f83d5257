package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera projects world coordinates onto the image plane with a fixed
// elevation/azimuth view, orthographic. Extent is the half-width of the
// world cube mapped onto the image; it stays fixed across frames so the
// animation does not jitter as the surface deforms.
type Camera struct {
	Elev   float64 // degrees above the xy-plane
	Azim   float64 // degrees around the z-axis
	Extent float64
}

// NewCamera returns the default view: elev 20, azim 45, extent 1.2.
func NewCamera() Camera {
	return Camera{Elev: 20, Azim: 45, Extent: 1.2}
}

// View rotates a world point into camera space: x right, z up, y depth
// (larger y is closer to the viewer).
func (c Camera) View(p r3.Vec) r3.Vec {
	az := c.Azim * math.Pi / 180
	el := c.Elev * math.Pi / 180

	// Spin around z by the azimuth, then tilt around x by the elevation.
	x := p.X*math.Cos(az) + p.Y*math.Sin(az)
	y := -p.X*math.Sin(az) + p.Y*math.Cos(az)
	z := p.Z

	return r3.Vec{
		X: x,
		Y: y*math.Cos(el) + z*math.Sin(el),
		Z: -y*math.Sin(el) + z*math.Cos(el),
	}
}

// Project converts camera-space coordinates to pixel coordinates on a
// w-by-h image, preserving aspect ratio. Image y grows downward.
func (c Camera) Project(v r3.Vec, w, h int) (float64, float64) {
	scale := float64(min(w, h)) / (2 * c.Extent * 1.1)
	px := float64(w)/2 + v.X*scale
	py := float64(h)/2 - v.Z*scale
	return px, py
}
