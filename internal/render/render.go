// Package render rasterizes mirrored timesteps into a sequence of PNG
// frames with a fixed camera, and optionally assembles the sequence into a
// looping GIF animation.
package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/san-kum/meshviz/internal/index"
	"github.com/san-kum/meshviz/internal/pipeline"
)

// Options configure a frame-rendering run.
type Options struct {
	// Dir receives frame_0000.png, frame_0001.png, ...
	Dir string
	// Animation is the optional looping GIF path; empty disables assembly.
	Animation string
	// MaxFrames caps the strided timestep selection.
	MaxFrames int
	// Width and Height of each frame in pixels.
	Width, Height int
	// Delay between animation frames in 100ths of a second.
	Delay int
	// Camera overrides the default fixed view when non-zero.
	Camera Camera
}

// Summary reports what a completed render produced.
type Summary struct {
	Frames    int
	TimeRange [2]float64
	Dir       string
	Animation string
}

const (
	defaultWidth  = 960
	defaultHeight = 720
	defaultDelay  = 20 // 0.2s per frame
)

// Frames renders every selected timestep to a numbered PNG under opts.Dir
// and, when opts.Animation is set, assembles the rendered sequence into a
// looping GIF. A failure while encoding the animation is reported as a
// warning: the frames already on disk are the primary artifact and stand.
func Frames(store pipeline.ArrayStore, steps []index.Timestep, opts Options) (*Summary, error) {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Delay <= 0 {
		opts.Delay = defaultDelay
	}
	if opts.Camera == (Camera{}) {
		opts.Camera = NewCamera()
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("render: creating frames directory: %w", err)
	}

	total, err := pipeline.Count(len(steps), opts.MaxFrames)
	if err != nil {
		return nil, err
	}

	var animFrames []*image.Paletted
	rendered := 0

	err = pipeline.Each(store, steps, opts.MaxFrames, func(f pipeline.Frame) error {
		img := Rasterize(f.Mesh, opts.Camera, opts.Width, opts.Height)

		path := filepath.Join(opts.Dir, fmt.Sprintf("frame_%04d.png", f.Index))
		if err := writePNG(path, img); err != nil {
			return err
		}

		if opts.Animation != "" {
			animFrames = append(animFrames, quantize(img))
		}

		rendered++
		fmt.Printf("  frame %d/%d: t = %.2fs (%d pts, %d tris)\n",
			f.Index+1, total, f.Time, len(f.Mesh.Points), len(f.Mesh.Triangles))
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Frames:    rendered,
		TimeRange: [2]float64{steps[0].Time, steps[len(steps)-1].Time},
		Dir:       opts.Dir,
	}

	if opts.Animation != "" {
		if err := writeGIF(opts.Animation, animFrames, opts.Delay); err != nil {
			fmt.Printf("warning: animation not written: %v\n", err)
		} else {
			summary.Animation = opts.Animation
		}
	}
	return summary, nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}
	return nil
}

// quantize reduces a rendered frame to the Plan9 palette with dithering for
// GIF storage.
func quantize(img *image.RGBA) *image.Paletted {
	pal := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
	return pal
}
