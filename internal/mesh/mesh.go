package mesh

import "fmt"

// Point is one vertex position. It marshals to JSON as [x, y, z].
type Point [3]float64

// Triangle holds three 0-based indices into a point array. It marshals to
// JSON as [i, j, k].
type Triangle [3]int

// Frame is the geometry and connectivity of a single snapshot, either one
// octant as loaded from the array store or the full mirrored surface.
type Frame struct {
	Points    []Point
	Triangles []Triangle
}

// octantSigns enumerates the eight sign reflections in a fixed order.
// Downstream consumers cache by flat array position, so this order must
// never change.
var octantSigns = [8][3]float64{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

// Validate checks that every triangle index falls inside the point array.
func (f Frame) Validate() error {
	n := len(f.Points)
	for ti, tri := range f.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: triangle %d references point %d of %d", ErrInvalidTopology, ti, idx, n)
			}
		}
	}
	return nil
}

// MirrorOctants reconstructs the full closed surface from one eighth-sphere.
// The result has exactly 8x the points and 8x the triangles of the input.
// Triangle indices are offset by the cumulative point count of the octants
// emitted before them; octants reached through an odd number of reflections
// have vertices 1 and 2 swapped to keep normals pointing outward.
func MirrorOctants(points []Point, triangles []Triangle) (Frame, error) {
	src := Frame{Points: points, Triangles: triangles}
	if err := src.Validate(); err != nil {
		return Frame{}, err
	}

	out := Frame{
		Points:    make([]Point, 0, 8*len(points)),
		Triangles: make([]Triangle, 0, 8*len(triangles)),
	}

	for _, s := range octantSigns {
		offset := len(out.Points)
		for _, p := range points {
			out.Points = append(out.Points, Point{p[0] * s[0], p[1] * s[1], p[2] * s[2]})
		}

		// Only the product of the three signs matters for winding.
		flip := s[0]*s[1]*s[2] < 0
		for _, t := range triangles {
			if flip {
				out.Triangles = append(out.Triangles, Triangle{t[0] + offset, t[2] + offset, t[1] + offset})
			} else {
				out.Triangles = append(out.Triangles, Triangle{t[0] + offset, t[1] + offset, t[2] + offset})
			}
		}
	}

	return out, nil
}
