package hexasphere

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Height levels span seven discrete steps from ocean trench to mountain
// peak.
const (
	MinHeightLevel = -3
	MaxHeightLevel = 3
)

// TerrainCategory classifies a tile by its height level.
type TerrainCategory uint8

// Terrain categories, ordered from lowest to highest elevation.
const (
	TerrainTrench TerrainCategory = iota
	TerrainDeepWater
	TerrainCoast
	TerrainGrass
	TerrainHill
	TerrainMountain
	TerrainPeak
)

// String returns a human-readable category name.
func (c TerrainCategory) String() string {
	switch c {
	case TerrainTrench:
		return "Trench"
	case TerrainDeepWater:
		return "Deep Water"
	case TerrainCoast:
		return "Coast"
	case TerrainGrass:
		return "Grass"
	case TerrainHill:
		return "Hill"
	case TerrainMountain:
		return "Mountain"
	case TerrainPeak:
		return "Peak"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// IsWater reports whether the category lies below sea level.
func (c TerrainCategory) IsWater() bool {
	return c == TerrainTrench || c == TerrainDeepWater || c == TerrainCoast
}

// CategoryForHeight maps a height level to its terrain category. The
// mapping is total: levels outside the documented range fall back to
// grass rather than failing.
func CategoryForHeight(level int) TerrainCategory {
	switch level {
	case -3:
		return TerrainTrench
	case -2:
		return TerrainDeepWater
	case -1:
		return TerrainCoast
	case 0:
		return TerrainGrass
	case 1:
		return TerrainHill
	case 2:
		return TerrainMountain
	case 3:
		return TerrainPeak
	default:
		return TerrainGrass
	}
}

// TerrainMode selects the height assignment strategy.
type TerrainMode string

const (
	// TerrainUniform draws one independent height level per tile from a
	// seeded source, visiting tiles in ascending id order. The draw
	// order is contractual: a seed always reproduces the same world.
	TerrainUniform TerrainMode = "uniform"

	// TerrainSimplex samples seeded multi-octave OpenSimplex noise at
	// each tile's unit-sphere position, so neighboring tiles get
	// correlated heights and features wrap seamlessly around the
	// sphere.
	TerrainSimplex TerrainMode = "simplex"
)

func (m TerrainMode) valid() bool {
	return m == TerrainUniform || m == TerrainSimplex
}

// assignTerrain gives every tile a height level and its derived
// category. Both modes are deterministic for a given seed.
func assignTerrain(tiles []*Tile, p Params) {
	switch p.Terrain {
	case TerrainSimplex:
		assignSimplex(tiles, p.Seed, p.Radius)
	default:
		assignUniform(tiles, p.Seed)
	}
}

func assignUniform(tiles []*Tile, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	span := MaxHeightLevel - MinHeightLevel + 1
	for _, t := range tiles {
		t.HeightLevel = MinHeightLevel + rng.Intn(span)
		t.Terrain = CategoryForHeight(t.HeightLevel)
	}
}

// Simplex sampling parameters, tuned for continent-scale features at
// the default subdivision levels.
const (
	simplexOctaves     = 3
	simplexFrequency   = 1.6
	simplexPersistence = 0.5
)

func assignSimplex(tiles []*Tile, seed int64, radius float64) {
	noise := opensimplex.NewNormalized(seed)
	span := float64(MaxHeightLevel - MinHeightLevel + 1)
	for _, t := range tiles {
		u := t.Center.Mul(1 / radius)
		n := octaveNoise3(noise, u, simplexOctaves, simplexFrequency, simplexPersistence)
		level := MinHeightLevel + int(n*span)
		if level > MaxHeightLevel {
			level = MaxHeightLevel
		}
		t.HeightLevel = level
		t.Terrain = CategoryForHeight(t.HeightLevel)
	}
}

// octaveNoise3 layers noise at doubling frequencies with amplitudes
// shrinking by persistence per octave, normalized back to [0, 1].
func octaveNoise3(noise opensimplex.Noise, p mgl64.Vec3, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(p[0]*frequency, p[1]*frequency, p[2]*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxAmplitude
}
