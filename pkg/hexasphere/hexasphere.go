package hexasphere

import (
	"errors"
	"fmt"
)

// MaxSubdivisions caps the subdivision level. Level 6 already produces
// 40962 tiles; beyond that memory and generation time grow fourfold per
// level for no practical gain.
const MaxSubdivisions = 6

// Generation errors.
var (
	ErrMalformedBase       = errors.New("malformed base icosahedron data")
	ErrSubdivisionRange    = errors.New("subdivision level out of range")
	ErrNonPositiveRadius   = errors.New("sphere radius must be positive")
	ErrNegativeHeightScale = errors.New("height scale must not be negative")
	ErrUnknownTerrainMode  = errors.New("unknown terrain mode")
	ErrVertexIndex         = errors.New("vertex index out of range")
)

// Params controls one generation run.
type Params struct {
	Seed         int64       // drives all procedural assignment
	Radius       float64     // sphere radius in world units
	Subdivisions int         // icosahedron subdivision level, 0 to MaxSubdivisions
	HeightScale  float64     // world units per height level step
	Terrain      TerrainMode // height assignment strategy
	Workers      int         // worker pool size; 0 or 1 runs single-threaded
}

// DefaultParams returns parameters for a medium-sized world: 2562 tiles
// on a radius-30 sphere.
func DefaultParams() Params {
	return Params{
		Seed:         1,
		Radius:       30,
		Subdivisions: 4,
		HeightScale:  0.5,
		Terrain:      TerrainUniform,
		Workers:      0,
	}
}

func (p Params) validate() error {
	if p.Subdivisions < 0 || p.Subdivisions > MaxSubdivisions {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrSubdivisionRange, p.Subdivisions, MaxSubdivisions)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrNonPositiveRadius, p.Radius)
	}
	if p.HeightScale < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeHeightScale, p.HeightScale)
	}
	if !p.Terrain.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTerrainMode, p.Terrain)
	}
	return nil
}

// Hexasphere is the result of one generation run: every tile of the
// tessellated sphere indexed by id, plus the run's report and
// statistics. Results are complete when Generate returns and are not
// mutated afterwards; rebuilding with new parameters is a fresh
// Generate call that shares nothing with previous runs.
type Hexasphere struct {
	Params Params
	Tiles  []*Tile // index equals tile id
	Report Report
	Stats  Stats
}

// Generate runs the full pipeline: icosahedron subdivision, sphere
// projection, tile graph construction, terrain assignment and corner
// resolution. Configuration and base-data problems fail the run;
// per-triangle integrity problems are recorded in the report and the
// affected contribution skipped.
func Generate(p Params) (*Hexasphere, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	baseVerts, indices := baseIcosahedron()
	tris, err := trianglesFromIndices(indices, len(baseVerts))
	if err != nil {
		return nil, err
	}

	verts, tris := subdivide(baseVerts, tris, p.Subdivisions)
	projectToSphere(verts, p.Radius)

	h := &Hexasphere{Params: p}
	h.Tiles = buildTiles(verts, tris, &h.Report)
	assignTerrain(h.Tiles, p)
	cornerCount := resolveCorners(h.Tiles, verts, tris, p, &h.Report)

	h.Stats = buildStats(verts, tris, h.Tiles, cornerCount)
	return h, nil
}

// Tile returns the tile with the given id, or nil when out of range.
func (h *Hexasphere) Tile(id int) *Tile {
	if id < 0 || id >= len(h.Tiles) {
		return nil
	}
	return h.Tiles[id]
}
