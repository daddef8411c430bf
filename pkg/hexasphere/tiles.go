package hexasphere

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// buildTiles creates one tile per mesh vertex and derives the adjacency
// graph from triangle edges: every triangle makes its three vertices
// mutual neighbors. A triangle referencing a vertex outside the mesh is
// recorded as a data-integrity warning and contributes no edges; the
// rest of the pass continues.
func buildTiles(verts []mgl64.Vec3, tris []Triangle, report *Report) []*Tile {
	tiles := make([]*Tile, len(verts))
	for i, v := range verts {
		tiles[i] = &Tile{
			ID:       i,
			Center:   v,
			Pentagon: i < baseVertexCount,
		}
	}

	adjacency := make([]map[int]struct{}, len(verts))
	for i := range adjacency {
		adjacency[i] = make(map[int]struct{}, 6)
	}

	for ti, tri := range tris {
		if v, bad := tri.outOfRange(len(verts)); bad {
			report.add(stageNeighbors, ti, v)
			continue
		}
		for i, a := range tri {
			for j, b := range tri {
				if i != j {
					adjacency[a][b] = struct{}{}
				}
			}
		}
	}

	// Ascending neighbor order keeps the graph reproducible; adjacency
	// sets iterate randomly.
	for i, set := range adjacency {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		tiles[i].Neighbors = ids
	}

	return tiles
}
