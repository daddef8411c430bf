package hexasphere

import (
	"sync"

	"github.com/alitto/pond/v2"
)

// BuildTileMesh fan-triangulates one tile: a center vertex surrounded
// by the tile's ordered corners, every position relative to the
// height-displaced center. All vertices share the tile's outward normal
// for faceted shading, and texture coordinates project the surface onto
// the tangent plane with the center at (0.5, 0.5). A tile with fewer
// than three corners yields an empty mesh.
func BuildTileMesh(tile *Tile, heightScale float64) *TileMesh {
	mesh := &TileMesh{TileID: tile.ID}
	if len(tile.Corners) < 3 {
		return mesh
	}

	normal := tile.Center.Normalize()
	center := tile.Center.Add(normal.Mul(float64(tile.HeightLevel) * heightScale))
	right, up := tangentBasis(normal)

	n := [3]float32{float32(normal[0]), float32(normal[1]), float32(normal[2])}

	mesh.Vertices = make([]MeshVertex, 0, len(tile.Corners)+1)
	mesh.Vertices = append(mesh.Vertices, MeshVertex{
		Normal:   n,
		TexCoord: [2]float32{0.5, 0.5},
	})

	for _, corner := range tile.Corners {
		d := corner.Sub(center)
		mesh.Vertices = append(mesh.Vertices, MeshVertex{
			Position: [3]float32{float32(d[0]), float32(d[1]), float32(d[2])},
			Normal:   n,
			TexCoord: [2]float32{
				float32(d.Dot(right)/2 + 0.5),
				float32(d.Dot(up)/2 + 0.5),
			},
		})
	}

	count := len(tile.Corners)
	mesh.Indices = make([]uint32, 0, count*3)
	for i := 0; i < count; i++ {
		next := (i + 1) % count
		mesh.Indices = append(mesh.Indices, 0, uint32(i+1), uint32(next+1))
	}

	return mesh
}

// BuildMesh builds the renderable surface of one tile using the run's
// height scale.
func (h *Hexasphere) BuildMesh(tile *Tile) *TileMesh {
	return BuildTileMesh(tile, h.Params.HeightScale)
}

const (
	// minParallelTiles is the world size below which meshing stays
	// sequential.
	minParallelTiles = 512
	meshShardSize    = 256
)

// BuildAllMeshes builds every tile's surface, indexed by tile id. With
// Workers > 1 and a large enough world, tiles are meshed concurrently
// in id-range shards; each shard writes a disjoint slice range, and the
// result is identical to the sequential path.
func (h *Hexasphere) BuildAllMeshes() []*TileMesh {
	meshes := make([]*TileMesh, len(h.Tiles))

	if h.Params.Workers > 1 && len(h.Tiles) >= minParallelTiles {
		pool := pond.NewPool(h.Params.Workers)
		defer pool.StopAndWait()

		var wg sync.WaitGroup
		for start := 0; start < len(h.Tiles); start += meshShardSize {
			end := start + meshShardSize
			if end > len(h.Tiles) {
				end = len(h.Tiles)
			}
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				for i := start; i < end; i++ {
					meshes[i] = h.BuildMesh(h.Tiles[i])
				}
			})
		}

		wg.Wait()
		return meshes
	}

	for i, tile := range h.Tiles {
		meshes[i] = h.BuildMesh(tile)
	}
	return meshes
}
