// Package index reads the XDMF metadata document that accompanies a
// simulation result and flattens it into an ordered list of timestep
// records. Each record carries the snapshot time and the array-store
// references for that snapshot's geometry and topology datasets.
package index

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Domain errors for index parsing.
var (
	// ErrEmptyIndex indicates the document parsed but contained no timesteps.
	ErrEmptyIndex = errors.New("index: no timesteps found in metadata document")

	// ErrBadRecord indicates a timestep grid missing a required field.
	ErrBadRecord = errors.New("index: timestep record missing required field")
)

// Timestep is one snapshot's metadata: its simulation time and the
// references resolving to its geometry (Nx3 float) and topology (Mx3 int)
// arrays inside the array store.
type Timestep struct {
	Time        float64
	GeometryRef string
	TopologyRef string
}

// xdmfGrid mirrors the nested Grid structure of an XDMF document. Temporal
// collections nest one Grid per timestep inside a collection Grid, so the
// type recurses.
type xdmfGrid struct {
	Name     string     `xml:"Name,attr"`
	Time     *xdmfTime  `xml:"Time"`
	Geometry *xdmfData  `xml:"Geometry"`
	Topology *xdmfData  `xml:"Topology"`
	Grids    []xdmfGrid `xml:"Grid"`
}

type xdmfTime struct {
	Value float64 `xml:"Value,attr"`
}

type xdmfData struct {
	DataItem string `xml:"DataItem"`
}

type xdmfDoc struct {
	Domains []struct {
		Grids []xdmfGrid `xml:"Grid"`
	} `xml:"Domain"`
}

// Read parses the metadata document at path and returns its timestep
// records in document order (increasing time). A document yielding zero
// records, or a mesh grid missing its time, geometry, or topology, is a
// fatal input error.
func Read(path string) ([]Timestep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("index: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an XDMF document from raw bytes. See Read.
func Parse(data []byte) ([]Timestep, error) {
	var doc xdmfDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("index: parsing metadata document: %w", err)
	}

	var steps []Timestep
	for _, dom := range doc.Domains {
		for _, g := range dom.Grids {
			if err := collect(g, &steps); err != nil {
				return nil, err
			}
		}
	}

	if len(steps) == 0 {
		return nil, ErrEmptyIndex
	}
	return steps, nil
}

// collect walks the grid tree depth-first, appending one record per grid
// named "mesh".
func collect(g xdmfGrid, steps *[]Timestep) error {
	if g.Name == "mesh" {
		ts, err := record(g, len(*steps))
		if err != nil {
			return err
		}
		*steps = append(*steps, ts)
	}
	for _, child := range g.Grids {
		if err := collect(child, steps); err != nil {
			return err
		}
	}
	return nil
}

func record(g xdmfGrid, pos int) (Timestep, error) {
	if g.Time == nil {
		return Timestep{}, fmt.Errorf("%w: grid %d has no Time element", ErrBadRecord, pos)
	}
	geom, err := dataRef(g.Geometry, "Geometry", pos)
	if err != nil {
		return Timestep{}, err
	}
	topo, err := dataRef(g.Topology, "Topology", pos)
	if err != nil {
		return Timestep{}, err
	}
	return Timestep{Time: g.Time.Value, GeometryRef: geom, TopologyRef: topo}, nil
}

// dataRef extracts the in-store dataset path from a DataItem of the form
// "results.h5:/Mesh/mesh/geometry".
func dataRef(d *xdmfData, kind string, pos int) (string, error) {
	if d == nil || strings.TrimSpace(d.DataItem) == "" {
		return "", fmt.Errorf("%w: grid %d has no %s DataItem", ErrBadRecord, pos, kind)
	}
	text := strings.TrimSpace(d.DataItem)
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("%w: grid %d %s DataItem %q has no dataset path", ErrBadRecord, pos, kind, text)
	}
	return parts[1], nil
}
