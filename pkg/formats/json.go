package formats

import (
	"encoding/json"
	"io"

	"github.com/samirm/terrainGen/pkg/hexasphere"
)

// jsonWorld mirrors the tile collection for web and tooling consumers.
type jsonWorld struct {
	Seed         int64      `json:"seed"`
	Radius       float64    `json:"radius"`
	Subdivisions int        `json:"subdivisions"`
	HeightScale  float64    `json:"height_scale"`
	Terrain      string     `json:"terrain"`
	Tiles        []jsonTile `json:"tiles"`
}

type jsonTile struct {
	ID          int          `json:"id"`
	Center      [3]float64   `json:"center"`
	Pentagon    bool         `json:"pentagon"`
	HeightLevel int          `json:"height_level"`
	Terrain     string       `json:"terrain"`
	Neighbors   []int        `json:"neighbor_ids"`
	Corners     [][3]float64 `json:"corners"`
}

// WriteJSON writes the world as indented JSON, tiles in id order.
func WriteJSON(w io.Writer, h *hexasphere.Hexasphere) error {
	doc := jsonWorld{
		Seed:         h.Params.Seed,
		Radius:       h.Params.Radius,
		Subdivisions: h.Params.Subdivisions,
		HeightScale:  h.Params.HeightScale,
		Terrain:      string(h.Params.Terrain),
		Tiles:        make([]jsonTile, 0, len(h.Tiles)),
	}

	for _, tile := range h.Tiles {
		jt := jsonTile{
			ID:          tile.ID,
			Center:      tile.Center,
			Pentagon:    tile.Pentagon,
			HeightLevel: tile.HeightLevel,
			Terrain:     tile.Terrain.String(),
			Neighbors:   tile.Neighbors,
			Corners:     make([][3]float64, len(tile.Corners)),
		}
		for i, c := range tile.Corners {
			jt.Corners[i] = c
		}
		doc.Tiles = append(doc.Tiles, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
