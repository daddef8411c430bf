package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samirm/terrainGen/pkg/hexasphere"
)

// HXW format errors.
var (
	ErrInvalidHXWMagic       = errors.New("invalid HXW magic: expected 'HXWD'")
	ErrUnsupportedHXWVersion = errors.New("unsupported HXW version")
	ErrTruncatedHXWData      = errors.New("truncated HXW data")
)

// hxwMagic starts every HXW file.
const hxwMagic = "HXWD"

// Sanity limits for parsed counts. Real worlds stay far below these;
// anything above means corrupt data, not a big world.
const (
	maxHXWTiles   = 1 << 20
	maxHXWPerTile = 32
)

// HXWVersion represents the HXW file version.
type HXWVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v HXWVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// World is the decoded contents of an HXW file: the generation
// parameters and every tile in id order. It is a snapshot for tooling
// and inspection; regenerating a live world goes through
// hexasphere.Generate with the stored parameters.
type World struct {
	Version      HXWVersion
	Seed         int64
	Radius       float64
	Subdivisions int
	HeightScale  float64
	Terrain      hexasphere.TerrainMode
	Tiles        []*hexasphere.Tile
}

// Pentagons returns the number of pentagonal tiles.
func (w *World) Pentagons() int {
	n := 0
	for _, t := range w.Tiles {
		if t.Pentagon {
			n++
		}
	}
	return n
}

// CountByTerrain returns the number of tiles per terrain category.
func (w *World) CountByTerrain() map[hexasphere.TerrainCategory]int {
	counts := make(map[hexasphere.TerrainCategory]int)
	for _, t := range w.Tiles {
		counts[t.Terrain]++
	}
	return counts
}

// WriteHXW encodes a generated world as an HXW snapshot. Tiles are
// written in id order; the reader restores ids from position.
func WriteHXW(w io.Writer, h *hexasphere.Hexasphere) error {
	buf := new(bytes.Buffer)

	buf.WriteString(hxwMagic)
	buf.WriteByte(1) // major
	buf.WriteByte(0) // minor

	binary.Write(buf, binary.LittleEndian, h.Params.Seed)
	binary.Write(buf, binary.LittleEndian, h.Params.Radius)
	binary.Write(buf, binary.LittleEndian, int32(h.Params.Subdivisions))
	binary.Write(buf, binary.LittleEndian, h.Params.HeightScale)
	buf.WriteByte(terrainModeByte(h.Params.Terrain))
	binary.Write(buf, binary.LittleEndian, uint32(len(h.Tiles)))

	for _, tile := range h.Tiles {
		binary.Write(buf, binary.LittleEndian, [3]float64(tile.Center))
		binary.Write(buf, binary.LittleEndian, int8(tile.HeightLevel))
		buf.WriteByte(uint8(tile.Terrain))
		if tile.Pentagon {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}

		binary.Write(buf, binary.LittleEndian, uint16(len(tile.Neighbors)))
		for _, id := range tile.Neighbors {
			binary.Write(buf, binary.LittleEndian, uint32(id))
		}

		binary.Write(buf, binary.LittleEndian, uint16(len(tile.Corners)))
		for _, c := range tile.Corners {
			binary.Write(buf, binary.LittleEndian, [3]float64(c))
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteHXWFile writes a world to the given path.
func WriteHXWFile(path string, h *hexasphere.Hexasphere) error {
	var buf bytes.Buffer
	if err := WriteHXW(&buf, h); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ParseHXW parses an HXW snapshot from raw bytes.
func ParseHXW(data []byte) (*World, error) {
	if len(data) < 6 {
		return nil, ErrTruncatedHXWData
	}

	if string(data[0:4]) != hxwMagic {
		return nil, ErrInvalidHXWMagic
	}

	version := HXWVersion{
		Major: data[4],
		Minor: data[5],
	}
	if version.Major != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHXWVersion, version)
	}

	r := bytes.NewReader(data[6:])

	world := &World{Version: version}

	if err := binary.Read(r, binary.LittleEndian, &world.Seed); err != nil {
		return nil, fmt.Errorf("%w: reading seed", ErrTruncatedHXWData)
	}
	if err := binary.Read(r, binary.LittleEndian, &world.Radius); err != nil {
		return nil, fmt.Errorf("%w: reading radius", ErrTruncatedHXWData)
	}
	var subdivisions int32
	if err := binary.Read(r, binary.LittleEndian, &subdivisions); err != nil {
		return nil, fmt.Errorf("%w: reading subdivisions", ErrTruncatedHXWData)
	}
	world.Subdivisions = int(subdivisions)
	if err := binary.Read(r, binary.LittleEndian, &world.HeightScale); err != nil {
		return nil, fmt.Errorf("%w: reading height scale", ErrTruncatedHXWData)
	}
	var mode uint8
	if err := binary.Read(r, binary.LittleEndian, &mode); err != nil {
		return nil, fmt.Errorf("%w: reading terrain mode", ErrTruncatedHXWData)
	}
	world.Terrain = terrainModeFromByte(mode)

	var tileCount uint32
	if err := binary.Read(r, binary.LittleEndian, &tileCount); err != nil {
		return nil, fmt.Errorf("%w: reading tile count", ErrTruncatedHXWData)
	}
	if tileCount > maxHXWTiles {
		return nil, fmt.Errorf("invalid HXW tile count: %d", tileCount)
	}

	world.Tiles = make([]*hexasphere.Tile, tileCount)
	for i := uint32(0); i < tileCount; i++ {
		tile, err := parseHXWTile(r, int(i))
		if err != nil {
			return nil, fmt.Errorf("parsing tile %d: %w", i, err)
		}
		world.Tiles[i] = tile
	}

	return world, nil
}

// ParseHXWFile parses an HXW file from disk.
func ParseHXWFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading HXW file: %w", err)
	}
	return ParseHXW(data)
}

func parseHXWTile(r *bytes.Reader, id int) (*hexasphere.Tile, error) {
	tile := &hexasphere.Tile{ID: id}

	var center [3]float64
	if err := binary.Read(r, binary.LittleEndian, &center); err != nil {
		return nil, fmt.Errorf("%w: reading center", ErrTruncatedHXWData)
	}
	tile.Center = center

	var level int8
	if err := binary.Read(r, binary.LittleEndian, &level); err != nil {
		return nil, fmt.Errorf("%w: reading height level", ErrTruncatedHXWData)
	}
	tile.HeightLevel = int(level)

	var category, pentagon uint8
	if err := binary.Read(r, binary.LittleEndian, &category); err != nil {
		return nil, fmt.Errorf("%w: reading terrain category", ErrTruncatedHXWData)
	}
	tile.Terrain = hexasphere.TerrainCategory(category)
	if err := binary.Read(r, binary.LittleEndian, &pentagon); err != nil {
		return nil, fmt.Errorf("%w: reading pentagon flag", ErrTruncatedHXWData)
	}
	tile.Pentagon = pentagon != 0

	var neighborCount uint16
	if err := binary.Read(r, binary.LittleEndian, &neighborCount); err != nil {
		return nil, fmt.Errorf("%w: reading neighbor count", ErrTruncatedHXWData)
	}
	if neighborCount > maxHXWPerTile {
		return nil, fmt.Errorf("invalid neighbor count: %d", neighborCount)
	}
	tile.Neighbors = make([]int, neighborCount)
	for i := range tile.Neighbors {
		var neighbor uint32
		if err := binary.Read(r, binary.LittleEndian, &neighbor); err != nil {
			return nil, fmt.Errorf("%w: reading neighbor %d", ErrTruncatedHXWData, i)
		}
		tile.Neighbors[i] = int(neighbor)
	}

	var cornerCount uint16
	if err := binary.Read(r, binary.LittleEndian, &cornerCount); err != nil {
		return nil, fmt.Errorf("%w: reading corner count", ErrTruncatedHXWData)
	}
	if cornerCount > maxHXWPerTile {
		return nil, fmt.Errorf("invalid corner count: %d", cornerCount)
	}
	tile.Corners = make([]mgl64.Vec3, cornerCount)
	for i := range tile.Corners {
		var c [3]float64
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return nil, fmt.Errorf("%w: reading corner %d", ErrTruncatedHXWData, i)
		}
		tile.Corners[i] = c
	}

	return tile, nil
}

func terrainModeByte(m hexasphere.TerrainMode) uint8 {
	if m == hexasphere.TerrainSimplex {
		return 1
	}
	return 0
}

func terrainModeFromByte(b uint8) hexasphere.TerrainMode {
	if b == 1 {
		return hexasphere.TerrainSimplex
	}
	return hexasphere.TerrainUniform
}
