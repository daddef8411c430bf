package hexasphere

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/multierr"
)

// Pipeline stage names used in warnings.
const (
	stageNeighbors = "tile graph"
	stageCorners   = "corner resolution"
)

// Warning records one skipped triangle contribution: a triangle that
// referenced a vertex outside the mesh during the named stage.
type Warning struct {
	Stage    string
	Triangle int
	Vertex   int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: triangle %d references vertex %d", w.Stage, w.Triangle, w.Vertex)
}

// Report collects the non-fatal anomalies of one generation run. A
// well-formed mesh produces an empty report; data-integrity problems in
// individual triangles are recorded here and their contribution skipped
// rather than aborting the run.
type Report struct {
	Warnings []Warning
}

func (r *Report) add(stage string, triangle, vertex int) {
	r.Warnings = append(r.Warnings, Warning{Stage: stage, Triangle: triangle, Vertex: vertex})
}

// Clean reports whether the run finished without warnings.
func (r *Report) Clean() bool {
	return len(r.Warnings) == 0
}

// Err folds every warning into a single error value, or returns nil for
// a clean run.
func (r *Report) Err() error {
	var err error
	for _, w := range r.Warnings {
		err = multierr.Append(err, fmt.Errorf("%s: triangle %d vertex %d: %w",
			w.Stage, w.Triangle, w.Vertex, ErrVertexIndex))
	}
	return err
}

// Stats summarizes one generation run.
type Stats struct {
	Vertices   int
	Triangles  int
	Tiles      int
	Pentagons  int
	Hexagons   int
	Corners    int
	Degenerate int // tiles with fewer than three resolved corners
	Terrain    map[TerrainCategory]int
}

func buildStats(verts []mgl64.Vec3, tris []Triangle, tiles []*Tile, cornerCount int) Stats {
	s := Stats{
		Vertices:  len(verts),
		Triangles: len(tris),
		Tiles:     len(tiles),
		Corners:   cornerCount,
		Terrain:   make(map[TerrainCategory]int),
	}

	for _, t := range tiles {
		if t.Pentagon {
			s.Pentagons++
		} else {
			s.Hexagons++
		}
		if len(t.Corners) < 3 {
			s.Degenerate++
		}
		s.Terrain[t.Terrain]++
	}

	return s
}
