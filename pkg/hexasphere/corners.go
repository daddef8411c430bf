package hexasphere

import (
	"math"
	"sort"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// cornerKey identifies the point where exactly three tiles meet: the
// ids of the owning tiles, sorted ascending. Keying corners by owner
// set instead of by triangle index collapses every re-derivation of the
// same physical corner onto a single entry.
type cornerKey [3]int

func newCornerKey(a, b, c int) cornerKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return cornerKey{a, b, c}
}

func (k cornerKey) less(o cornerKey) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

// resolveCorners finds every point where three tiles meet, applies
// height displacement, and assembles each tile's ordered boundary
// polygon. It returns the number of unique corners. Heights must be
// assigned before this runs: displacement depends on the owners'
// minimum height.
func resolveCorners(tiles []*Tile, verts []mgl64.Vec3, tris []Triangle, p Params, report *Report) int {
	corners := rawCorners(verts, tris, p, report)

	// Displace each corner along its own direction by the minimum owner
	// height. The minimum keeps a corner from floating above its lowest
	// tile, so boundaries terrace instead of tearing.
	for key, pos := range corners {
		minLevel := tiles[key[0]].HeightLevel
		for _, id := range key[1:] {
			if lvl := tiles[id].HeightLevel; lvl < minLevel {
				minLevel = lvl
			}
		}
		offset := pos.Normalize().Mul(float64(minLevel) * p.HeightScale)
		corners[key] = pos.Add(offset)
	}

	assignCorners(tiles, corners)
	return len(corners)
}

// minParallelTriangles is the mesh size below which the worker pool
// costs more than it saves.
const minParallelTriangles = 320

// rawCorners computes the sphere-projected centroid of every triangle,
// deduplicated by corner key. With Workers > 1 and a large enough mesh
// the triangle list is sharded by index range into per-shard caches and
// merged in shard order, which yields output identical to the
// sequential pass.
func rawCorners(verts []mgl64.Vec3, tris []Triangle, p Params, report *Report) map[cornerKey]mgl64.Vec3 {
	if p.Workers > 1 && len(tris) >= minParallelTriangles {
		return rawCornersParallel(verts, tris, p.Workers, p.Radius, report)
	}

	corners := make(map[cornerKey]mgl64.Vec3, len(tris))
	rawCornerRange(verts, tris, 0, len(tris), p.Radius, corners, report)
	return corners
}

// rawCornerRange processes tris[start:end] into the given cache,
// recording a warning for any triangle referencing a missing vertex and
// skipping its contribution.
func rawCornerRange(verts []mgl64.Vec3, tris []Triangle, start, end int, radius float64, corners map[cornerKey]mgl64.Vec3, report *Report) {
	for i := start; i < end; i++ {
		tri := tris[i]
		if v, bad := tri.outOfRange(len(verts)); bad {
			report.add(stageCorners, i, v)
			continue
		}
		centroid := verts[tri[0]].Add(verts[tri[1]]).Add(verts[tri[2]]).Mul(1.0 / 3.0)
		corners[newCornerKey(tri[0], tri[1], tri[2])] = centroid.Normalize().Mul(radius)
	}
}

type cornerShard struct {
	start, end int
	corners    map[cornerKey]mgl64.Vec3
	report     Report
}

func rawCornersParallel(verts []mgl64.Vec3, tris []Triangle, workers int, radius float64, report *Report) map[cornerKey]mgl64.Vec3 {
	shardSize := (len(tris) + workers - 1) / workers
	shards := make([]*cornerShard, 0, workers)
	for start := 0; start < len(tris); start += shardSize {
		end := start + shardSize
		if end > len(tris) {
			end = len(tris)
		}
		shards = append(shards, &cornerShard{
			start:   start,
			end:     end,
			corners: make(map[cornerKey]mgl64.Vec3, end-start),
		})
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for _, s := range shards {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			rawCornerRange(verts, tris, s.start, s.end, radius, s.corners, &s.report)
		})
	}
	wg.Wait()

	// Merge in shard order. A key present in two shards carries the
	// same position in both, so order only decides warning sequence.
	corners := make(map[cornerKey]mgl64.Vec3, len(tris))
	for _, s := range shards {
		for k, v := range s.corners {
			corners[k] = v
		}
		report.Warnings = append(report.Warnings, s.report.Warnings...)
	}
	return corners
}

// assignCorners hands every resolved corner to its three owner tiles
// and orders each tile's collection into a closed polygon loop. A tile
// with fewer than three corners cannot form a polygon; it keeps its
// corners in canonical key order and consumers decide what to do with
// it.
func assignCorners(tiles []*Tile, corners map[cornerKey]mgl64.Vec3) {
	perTile := make([][]cornerKey, len(tiles))
	for key := range corners {
		for _, id := range key {
			perTile[id] = append(perTile[id], key)
		}
	}

	for _, tile := range tiles {
		keys := perTile[tile.ID]
		if len(keys) == 0 {
			continue
		}

		// Map iteration filled perTile in random order; restore
		// canonical key order first so equal-angle ties resolve the
		// same way in every run.
		sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

		positions := make([]mgl64.Vec3, len(keys))
		for i, k := range keys {
			positions[i] = corners[k]
		}

		if len(keys) < 3 {
			tile.Corners = positions
			continue
		}

		tile.Corners = orderAroundNormal(tile.Center, positions)
	}
}

// orderAroundNormal sorts boundary points by signed angle around the
// outward normal at center, giving every tile polygon a consistent
// winding. The sort is stable so exactly equal angles keep their
// incoming order.
func orderAroundNormal(center mgl64.Vec3, points []mgl64.Vec3) []mgl64.Vec3 {
	normal := center.Normalize()
	right, up := tangentBasis(normal)

	angles := make([]float64, len(points))
	for i, p := range points {
		d := p.Sub(center)
		angles[i] = math.Atan2(d.Dot(up), d.Dot(right))
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return angles[order[i]] < angles[order[j]] })

	sorted := make([]mgl64.Vec3, len(points))
	for i, idx := range order {
		sorted[i] = points[idx]
	}
	return sorted
}

var (
	worldUp      = mgl64.Vec3{0, 1, 0}
	worldForward = mgl64.Vec3{0, 0, 1}
)

const tangentEpsilon = 1e-6

// tangentBasis builds right/up tangent vectors perpendicular to the
// given unit normal. The reference direction is world up projected onto
// the tangent plane; at the poles, where the normal runs parallel to
// world up and the projection vanishes, world forward is projected
// instead. Corner ordering and texture projection share this basis so
// windings and UVs agree.
func tangentBasis(normal mgl64.Vec3) (right, up mgl64.Vec3) {
	ref := worldUp
	if math.Abs(normal.Dot(worldUp)) > 1-tangentEpsilon {
		ref = worldForward
	}
	right = ref.Sub(normal.Mul(ref.Dot(normal))).Normalize()
	up = normal.Cross(right)
	return right, up
}
