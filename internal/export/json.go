// Package export serializes selected, mirrored timesteps into the single
// JSON document consumed by the web viewer.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/meshviz/internal/index"
	"github.com/san-kum/meshviz/internal/mesh"
	"github.com/san-kum/meshviz/internal/pipeline"
)

// Timestep is one exported snapshot. Index is the position within the
// selected subset, not the original sequence; Time is rounded to three
// decimal places.
type Timestep struct {
	Index     int             `json:"index"`
	Time      float64         `json:"time"`
	Points    []mesh.Point    `json:"points"`
	Triangles []mesh.Triangle `json:"triangles"`
}

// Metadata summarizes the export for the viewer.
type Metadata struct {
	TotalTimesteps    int        `json:"total_timesteps"`
	ExportedTimesteps int        `json:"exported_timesteps"`
	TimeRange         [2]float64 `json:"time_range"`
}

// Document is the top-level JSON object.
type Document struct {
	Timesteps []Timestep `json:"timesteps"`
	Metadata  Metadata   `json:"metadata"`
}

// Options configure a JSON export.
type Options struct {
	// Path of the output document.
	Path string
	// MaxTimesteps caps the strided selection (the final timestep may be
	// appended on top).
	MaxTimesteps int
}

// Summary reports what a completed export produced.
type Summary struct {
	Total     int
	Exported  int
	TimeRange [2]float64
	Path      string
	Bytes     int64
}

// JSON builds the export document over the selected timesteps and writes it
// to opts.Path in a single pass. The document is built fully before the
// output file is created, so a failed run leaves no truncated JSON behind.
func JSON(store pipeline.ArrayStore, steps []index.Timestep, opts Options) (*Summary, error) {
	selected, err := pipeline.Count(len(steps), opts.MaxTimesteps)
	if err != nil {
		return nil, err
	}
	doc := Document{Timesteps: make([]Timestep, 0, selected)}

	err = pipeline.Each(store, steps, opts.MaxTimesteps, func(f pipeline.Frame) error {
		doc.Timesteps = append(doc.Timesteps, Timestep{
			Index:     f.Index,
			Time:      round3(f.Time),
			Points:    f.Mesh.Points,
			Triangles: f.Mesh.Triangles,
		})
		fmt.Printf("  %d/%d: t=%.2fs (%d pts)\n", f.Index+1, selected, f.Time, len(f.Mesh.Points))
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc.Metadata = Metadata{
		TotalTimesteps:    len(steps),
		ExportedTimesteps: len(doc.Timesteps),
		TimeRange:         [2]float64{steps[0].Time, steps[len(steps)-1].Time},
	}

	file, err := os.Create(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("export: creating %s: %w", opts.Path, err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(doc); err != nil {
		return nil, fmt.Errorf("export: writing %s: %w", opts.Path, err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return &Summary{
		Total:     doc.Metadata.TotalTimesteps,
		Exported:  doc.Metadata.ExportedTimesteps,
		TimeRange: doc.Metadata.TimeRange,
		Path:      opts.Path,
		Bytes:     info.Size(),
	}, nil
}

func round3(t float64) float64 {
	return math.Round(t*1000) / 1000
}
