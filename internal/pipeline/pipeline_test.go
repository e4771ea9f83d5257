package pipeline

import (
	"errors"
	"fmt"
	"testing"

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

func TestEach_Sequential(t *testing.T) {
	s, steps := fixture(10)

	var got []Frame
	err := Each(s, steps, 3, func(f Frame) error {
		got = append(got, Frame{Index: f.Index, Source: f.Source, Time: f.Time})
		if len(f.Mesh.Points) != 32 || len(f.Mesh.Triangles) != 8 {
			t.Errorf("frame %d: mirrored sizes %d/%d, want 32/8", f.Index, len(f.Mesh.Points), len(f.Mesh.Triangles))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// n=10, cap=3: stride 3 selects 0, 3, 6, 9.
	wantSources := []int{0, 3, 6, 9}
	if len(got) != len(wantSources) {
		t.Fatalf("got %d frames, want %d", len(got), len(wantSources))
	}
	for i, f := range got {
		if f.Index != i {
			t.Errorf("frame %d has subset index %d", i, f.Index)
		}
		if f.Source != wantSources[i] {
			t.Errorf("frame %d source = %d, want %d", i, f.Source, wantSources[i])
		}
	}
}

func TestEach_NoTimesteps(t *testing.T) {
	s := store.NewMem()
	err := Each(s, nil, 30, func(Frame) error { return nil })
	if !errors.Is(err, mesh.ErrNoTimesteps) {
		t.Errorf("expected ErrNoTimesteps, got %v", err)
	}
}

func TestEach_StoreErrorAborts(t *testing.T) {
	s, steps := fixture(5)
	delete(s.PointSets, "/geo_2")

	calls := 0
	err := Each(s, steps, 5, func(Frame) error {
		calls++
		return nil
	})
	if !errors.Is(err, store.ErrUnknownRef) {
		t.Fatalf("expected ErrUnknownRef, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 frames before abort, got %d", calls)
	}
}

func TestEach_InvalidTopologyAborts(t *testing.T) {
	s, steps := fixture(3)
	s.TriangleSets["/topo_1"] = []mesh.Triangle{{0, 1, 99}}

	err := Each(s, steps, 3, func(Frame) error { return nil })
	if !errors.Is(err, mesh.ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology, got %v", err)
	}
}

func TestEach_ConsumerErrorAborts(t *testing.T) {
	s, steps := fixture(4)
	sentinel := errors.New("consumer failed")

	err := Each(s, steps, 4, func(f Frame) error {
		if f.Index == 1 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected consumer error to propagate, got %v", err)
	}
}

func TestCount(t *testing.T) {
	n, err := Count(100, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 100 {
		t.Errorf("Count(100, 60) = %d, want 100", n)
	}

	if _, err := Count(0, 60); !errors.Is(err, mesh.ErrNoTimesteps) {
		t.Errorf("expected ErrNoTimesteps, got %v", err)
	}
}
