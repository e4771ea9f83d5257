package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/meshviz/internal/mesh"
)

// paintedTriangle is one projected, colored triangle queued for drawing.
type paintedTriangle struct {
	px, py [3]float64
	depth  float64
	fill   color.RGBA
}

// Rasterize draws a mirrored frame as a colored surface. Each triangle is
// keyed by the mean z of its vertices, normalized over the frame's point
// z-range, and triangles are painted back to front.
func Rasterize(f mesh.Frame, cam Camera, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white background
	}

	zmin, zmax := zRange(f.Points)

	view := make([]r3.Vec, len(f.Points))
	for i, p := range f.Points {
		view[i] = cam.View(r3.Vec{X: p[0], Y: p[1], Z: p[2]})
	}

	queue := make([]paintedTriangle, 0, len(f.Triangles))
	for _, tri := range f.Triangles {
		var pt paintedTriangle

		key := 0.0
		for i, idx := range tri {
			key += f.Points[idx][2]
			pt.px[i], pt.py[i] = cam.Project(view[idx], w, h)
			pt.depth += view[idx].Y
		}
		key /= 3
		pt.depth /= 3

		t := 0.0
		if zmax > zmin {
			t = (key - zmin) / (zmax - zmin)
		}
		pt.fill = Colormap(t)
		queue = append(queue, pt)
	}

	// Painter's algorithm: depth grows toward the viewer, so draw the
	// smallest depth first.
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].depth < queue[j].depth })

	for _, pt := range queue {
		fillTriangle(img, pt.px, pt.py, pt.fill)
	}
	return img
}

func zRange(points []mesh.Point) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	zmin, zmax := points[0][2], points[0][2]
	for _, p := range points[1:] {
		zmin = math.Min(zmin, p[2])
		zmax = math.Max(zmax, p[2])
	}
	return zmin, zmax
}

// fillTriangle scan-fills one triangle using edge functions over its
// bounding box.
func fillTriangle(img *image.RGBA, px, py [3]float64, fill color.RGBA) {
	bounds := img.Bounds()

	x0 := clamp(int(math.Floor(min3(px[0], px[1], px[2]))), bounds.Min.X, bounds.Max.X-1)
	x1 := clamp(int(math.Ceil(max3(px[0], px[1], px[2]))), bounds.Min.X, bounds.Max.X-1)
	y0 := clamp(int(math.Floor(min3(py[0], py[1], py[2]))), bounds.Min.Y, bounds.Max.Y-1)
	y1 := clamp(int(math.Ceil(max3(py[0], py[1], py[2]))), bounds.Min.Y, bounds.Max.Y-1)

	area := edge(px[0], py[0], px[1], py[1], px[2], py[2])
	if area == 0 {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			w0 := edge(px[1], py[1], px[2], py[2], cx, cy)
			w1 := edge(px[2], py[2], px[0], py[0], cx, cy)
			w2 := edge(px[0], py[0], px[1], py[1], cx, cy)

			inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
			if inside {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

// edge is the signed doubled area of the triangle (a, b, p); its sign says
// which side of ab the point p lies on.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
