package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samirm/terrainGen/pkg/hexasphere"
)

// WriteOBJ writes every tile surface as a Wavefront OBJ object. Each
// tile becomes one named object with absolute vertex positions, shared
// per-tile normal and tangent-plane texture coordinates, so the file
// drops into any OBJ viewer. Tiles without a boundary polygon are
// skipped.
func WriteOBJ(w io.Writer, h *hexasphere.Hexasphere) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# hexasphere world: %d tiles, seed %d, radius %g\n",
		len(h.Tiles), h.Params.Seed, h.Params.Radius)

	vertOffset := 1 // OBJ indices are 1-based
	normals := 0

	for _, tile := range h.Tiles {
		mesh := h.BuildMesh(tile)
		if len(mesh.Indices) == 0 {
			continue
		}

		normal := tile.Center.Normalize()
		center := tile.Center.Add(normal.Mul(float64(tile.HeightLevel) * h.Params.HeightScale))

		fmt.Fprintf(bw, "o tile_%d\n", tile.ID)

		for _, v := range mesh.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n",
				center[0]+float64(v.Position[0]),
				center[1]+float64(v.Position[1]),
				center[2]+float64(v.Position[2]))
		}
		for _, v := range mesh.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
		}

		// One normal per tile: every vertex of the fan shares it.
		fmt.Fprintf(bw, "vn %g %g %g\n", normal[0], normal[1], normal[2])
		normals++

		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			a := vertOffset + int(mesh.Indices[i])
			b := vertOffset + int(mesh.Indices[i+1])
			c := vertOffset + int(mesh.Indices[i+2])
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
				a, a, normals, b, b, normals, c, c, normals)
		}

		vertOffset += len(mesh.Vertices)
	}

	return bw.Flush()
}
