package render

import (
	"fmt"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/meshviz/internal/index"
	"github.com/san-kum/meshviz/internal/mesh"
	"github.com/san-kum/meshviz/internal/store"
)

func fixture(n int) (*store.Mem, []index.Timestep) {
	s := store.NewMem()
	steps := make([]index.Timestep, n)
	for i := 0; i < n; i++ {
		geo := fmt.Sprintf("/geo_%d", i)
		topo := fmt.Sprintf("/topo_%d", i)
		s.PointSets[geo] = []mesh.Point{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}
		s.TriangleSets[topo] = []mesh.Triangle{{0, 1, 2}}
		steps[i] = index.Timestep{Time: float64(i) * 0.1, GeometryRef: geo, TopologyRef: topo}
	}
	return s, steps
}

func TestColormap(t *testing.T) {
	low := Colormap(0)
	high := Colormap(1)

	if low != diverging[0] {
		t.Errorf("Colormap(0) = %v, want %v", low, diverging[0])
	}
	if high != diverging[len(diverging)-1] {
		t.Errorf("Colormap(1) = %v, want %v", high, diverging[len(diverging)-1])
	}

	// Out-of-range values clamp.
	if Colormap(-2) != low || Colormap(3) != high {
		t.Error("out-of-range values should clamp to endpoints")
	}

	// Low end is blue-dominant, high end red-dominant.
	if low.B <= low.R {
		t.Errorf("low end not blue: %v", low)
	}
	if high.R <= high.B {
		t.Errorf("high end not red: %v", high)
	}
}

func TestCamera_Deterministic(t *testing.T) {
	cam := NewCamera()
	p := r3.Vec{X: 0.3, Y: -0.7, Z: 0.2}

	a := cam.View(p)
	b := cam.View(p)
	if a != b {
		t.Error("View is not deterministic")
	}

	ax, ay := cam.Project(a, 640, 480)
	bx, by := cam.Project(b, 640, 480)
	if ax != bx || ay != by {
		t.Error("Project is not deterministic")
	}
}

func TestCamera_OriginCenters(t *testing.T) {
	cam := NewCamera()
	x, y := cam.Project(cam.View(r3.Vec{}), 640, 480)
	if x != 320 || y != 240 {
		t.Errorf("origin projects to (%g, %g), want image center (320, 240)", x, y)
	}
}

func TestRasterize_PaintsSurface(t *testing.T) {
	s, _ := fixture(1)
	points, _ := s.Points("/geo_0")
	triangles, _ := s.Triangles("/topo_0")
	full, err := mesh.MirrorOctants(points, triangles)
	if err != nil {
		t.Fatal(err)
	}

	img := Rasterize(full, NewCamera(), 200, 150)

	painted := 0
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("rasterized frame is entirely background")
	}
}

func TestRasterize_DegenerateZRange(t *testing.T) {
	flat := mesh.Frame{
		Points:    []mesh.Point{{0.5, 0, 0}, {0, 0.5, 0}, {-0.5, 0, 0}},
		Triangles: []mesh.Triangle{{0, 1, 2}},
	}
	// All z equal: normalization must not divide by zero.
	img := Rasterize(flat, NewCamera(), 100, 100)
	if img == nil {
		t.Fatal("nil image")
	}
}

func TestFrames(t *testing.T) {
	s, steps := fixture(10)
	dir := t.TempDir()
	framesDir := filepath.Join(dir, "frames")
	animPath := filepath.Join(dir, "anim.gif")

	summary, err := Frames(s, steps, Options{
		Dir:       framesDir,
		Animation: animPath,
		MaxFrames: 3,
		Width:     120,
		Height:    90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// n=10, cap=3 selects indices 0, 3, 6, 9.
	if summary.Frames != 4 {
		t.Errorf("rendered %d frames, want 4", summary.Frames)
	}
	for i := 0; i < 4; i++ {
		path := filepath.Join(framesDir, fmt.Sprintf("frame_%04d.png", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing frame file %s", path)
		}
	}

	file, err := os.Open(animPath)
	if err != nil {
		t.Fatalf("animation not written: %v", err)
	}
	defer file.Close()

	anim, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("animation is not a valid GIF: %v", err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("animation has %d frames, want 4", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("animation LoopCount = %d, want 0 (loop forever)", anim.LoopCount)
	}
}

func TestFrames_NoAnimation(t *testing.T) {
	s, steps := fixture(2)
	framesDir := filepath.Join(t.TempDir(), "frames")

	summary, err := Frames(s, steps, Options{Dir: framesDir, MaxFrames: 2, Width: 80, Height: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Animation != "" {
		t.Errorf("summary reports animation %q, want none", summary.Animation)
	}
}

func TestFrames_EmptySequence(t *testing.T) {
	s := store.NewMem()
	_, err := Frames(s, nil, Options{Dir: t.TempDir(), MaxFrames: 30})
	if err == nil {
		t.Error("expected error for empty timestep sequence")
	}
}
