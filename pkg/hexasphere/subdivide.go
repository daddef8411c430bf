package hexasphere

import "github.com/go-gl/mathgl/mgl64"

// midpointCache deduplicates edge midpoints during one subdivision
// round. Keys are endpoint index pairs canonicalized as (min, max), so
// the midpoint of an edge shared by two triangles is created exactly
// once. Vertex indices shift meaning between rounds; the cache must not
// outlive the round that filled it.
type midpointCache struct {
	verts []mgl64.Vec3
	index map[[2]int]int
}

func newMidpointCache(verts []mgl64.Vec3) *midpointCache {
	return &midpointCache{verts: verts, index: make(map[[2]int]int)}
}

// midpoint returns the vertex index of the midpoint of edge (a, b),
// creating the vertex on first use.
func (c *midpointCache) midpoint(a, b int) int {
	key := [2]int{a, b}
	if b < a {
		key = [2]int{b, a}
	}
	if idx, ok := c.index[key]; ok {
		return idx
	}

	idx := len(c.verts)
	c.verts = append(c.verts, c.verts[a].Add(c.verts[b]).Mul(0.5))
	c.index[key] = idx
	return idx
}

// subdivide splits every triangle into four, level times, preserving
// winding. Midpoints are shared through the cache, so vertex counts
// follow the closed-form icosphere series (12, 42, 162, ...) instead of
// growing with duplicates.
func subdivide(verts []mgl64.Vec3, tris []Triangle, level int) ([]mgl64.Vec3, []Triangle) {
	for round := 0; round < level; round++ {
		cache := newMidpointCache(verts)
		next := make([]Triangle, 0, len(tris)*4)

		for _, tri := range tris {
			v1, v2, v3 := tri[0], tri[1], tri[2]
			a := cache.midpoint(v1, v2)
			b := cache.midpoint(v2, v3)
			c := cache.midpoint(v3, v1)

			next = append(next,
				Triangle{v1, a, c},
				Triangle{v2, b, a},
				Triangle{v3, c, b},
				Triangle{a, b, c},
			)
		}

		verts = cache.verts
		tris = next
	}

	return verts, tris
}

// projectToSphere normalizes every vertex direction and scales it to
// the given radius, in place. Midpoints created during subdivision sit
// inside the sphere until this runs.
func projectToSphere(verts []mgl64.Vec3, radius float64) {
	for i := range verts {
		verts[i] = verts[i].Normalize().Mul(radius)
	}
}
