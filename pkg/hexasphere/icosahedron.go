package hexasphere

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// baseVertexCount is the number of vertices of the unsubdivided
// icosahedron. Tiles centered on these vertices are the pentagons.
const baseVertexCount = 12

// baseIcosahedron returns the canonical 12-vertex, 20-face icosahedron
// built from three orthogonal golden-ratio rectangles. Faces are a flat
// index list, three entries per face, wound counter-clockwise seen from
// outside.
func baseIcosahedron() ([]mgl64.Vec3, []int) {
	t := (1 + math.Sqrt(5)) / 2

	verts := []mgl64.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}

	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return verts, faces
}

// trianglesFromIndices converts a flat face index list into triangles,
// validating the mesh shape. A violation here is fatal: every later
// stage assumes a closed triangle mesh and cannot recover from a
// malformed base.
func trianglesFromIndices(indices []int, vertexCount int) ([]Triangle, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: face index count %d is not a multiple of 3",
			ErrMalformedBase, len(indices))
	}

	tris := make([]Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		tri := Triangle{indices[i], indices[i+1], indices[i+2]}
		if v, bad := tri.outOfRange(vertexCount); bad {
			return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d",
				ErrMalformedBase, i/3, v, vertexCount)
		}
		tris = append(tris, tri)
	}

	return tris, nil
}
