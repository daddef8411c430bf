// Package hexasphere builds spherical tile worlds from a subdivided
// icosahedron: twelve pentagonal and N hexagonal tiles covering the
// sphere, each with procedural terrain, an adjacency graph and an
// ordered boundary polygon ready for rendering.
package hexasphere

import "github.com/go-gl/mathgl/mgl64"

// Triangle is one face of the (subdivided) icosahedron mesh, an ordered
// triple of vertex indices. Triangles are never mutated once subdivision
// completes; later stages only read them to derive tiles, neighbors and
// corners.
type Triangle [3]int

// outOfRange reports the first vertex index outside [0, n), if any.
func (t Triangle) outOfRange(n int) (int, bool) {
	for _, v := range t {
		if v < 0 || v >= n {
			return v, true
		}
	}
	return 0, false
}

// Tile is one cell of the tessellated sphere, centered on a mesh vertex
// (tile id equals vertex index). Exactly twelve tiles are pentagons: the
// ones centered on original icosahedron vertices, ids 0-11.
type Tile struct {
	ID          int
	Center      mgl64.Vec3 // on the sphere surface
	Pentagon    bool
	HeightLevel int             // discrete elevation in [MinHeightLevel, MaxHeightLevel]
	Terrain     TerrainCategory // derived from HeightLevel
	Neighbors   []int           // adjacent tile ids, ascending
	Corners     []mgl64.Vec3    // boundary polygon, ordered around the tile normal
}

// MeshVertex is one renderable vertex of a tile surface. Positions are
// relative to the tile's height-displaced center so the rendering side
// can place each tile independently.
type MeshVertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// TileMesh is the fan-triangulated surface of one tile.
type TileMesh struct {
	TileID   int
	Vertices []MeshVertex
	Indices  []uint32
}
