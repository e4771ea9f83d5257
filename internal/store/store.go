// Package store provides keyed access to the binary arrays of a simulation
// result: Nx3 float64 vertex positions and Mx3 integer triangle indices,
// addressed by the dataset references found in the metadata document.
package store

import (
	"errors"
	"fmt"

	"gonum.org/v1/hdf5"

	"github.com/san-kum/meshviz/internal/mesh"
)

// Domain errors for array access.
var (
	// ErrBadShape indicates a dataset whose dimensions are not Nx3.
	ErrBadShape = errors.New("store: dataset is not an Nx3 array")

	// ErrUnknownRef indicates a reference that resolves to no dataset.
	ErrUnknownRef = errors.New("store: unknown dataset reference")
)

// HDF5 reads arrays out of an HDF5 results file. It is opened once per run
// and must be closed when the run completes.
type HDF5 struct {
	file *hdf5.File
}

// OpenHDF5 opens the results file at path read-only.
func OpenHDF5(path string) (*HDF5, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	return &HDF5{file: f}, nil
}

// Close releases the underlying file handle.
func (s *HDF5) Close() error {
	return s.file.Close()
}

// Points reads the Nx3 float dataset at ref.
func (s *HDF5) Points(ref string) ([]mesh.Point, error) {
	dset, rows, err := s.open(ref)
	if err != nil {
		return nil, err
	}
	defer dset.Close()

	dtype, err := dset.Datatype()
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", ref, err)
	}
	defer dtype.Close()

	flat := make([]float64, 3*rows)
	switch dtype.Size() {
	case 8:
		if err := dset.Read(&flat); err != nil {
			return nil, fmt.Errorf("store: reading %s: %w", ref, err)
		}
	case 4:
		buf := make([]float32, 3*rows)
		if err := dset.Read(&buf); err != nil {
			return nil, fmt.Errorf("store: reading %s: %w", ref, err)
		}
		for i, v := range buf {
			flat[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("store: %s: unsupported geometry element size %d", ref, dtype.Size())
	}

	points := make([]mesh.Point, rows)
	for i := range points {
		points[i] = mesh.Point{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return points, nil
}

// Triangles reads the Mx3 integer dataset at ref.
func (s *HDF5) Triangles(ref string) ([]mesh.Triangle, error) {
	dset, rows, err := s.open(ref)
	if err != nil {
		return nil, err
	}
	defer dset.Close()

	dtype, err := dset.Datatype()
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", ref, err)
	}
	defer dtype.Close()

	flat := make([]int, 3*rows)
	switch dtype.Size() {
	case 8:
		buf := make([]int64, 3*rows)
		if err := dset.Read(&buf); err != nil {
			return nil, fmt.Errorf("store: reading %s: %w", ref, err)
		}
		for i, v := range buf {
			flat[i] = int(v)
		}
	case 4:
		buf := make([]int32, 3*rows)
		if err := dset.Read(&buf); err != nil {
			return nil, fmt.Errorf("store: reading %s: %w", ref, err)
		}
		for i, v := range buf {
			flat[i] = int(v)
		}
	default:
		return nil, fmt.Errorf("store: %s: unsupported topology element size %d", ref, dtype.Size())
	}

	triangles := make([]mesh.Triangle, rows)
	for i := range triangles {
		triangles[i] = mesh.Triangle{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return triangles, nil
}

// open looks up ref and verifies it is a 2D Nx3 dataset, returning the open
// dataset and its row count.
func (s *HDF5) open(ref string) (*hdf5.Dataset, int, error) {
	dset, err := s.file.OpenDataset(ref)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrUnknownRef, ref, err)
	}

	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		dset.Close()
		return nil, 0, fmt.Errorf("store: %s: %w", ref, err)
	}
	if len(dims) != 2 || dims[1] != 3 {
		dset.Close()
		return nil, 0, fmt.Errorf("%w: %s has dimensions %v", ErrBadShape, ref, dims)
	}
	return dset, int(dims[0]), nil
}
