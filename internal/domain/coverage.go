package domain

import (
	"time"

	"github.com/tile-explorer/internal/tiles"
)

// TileFeature - полигон тайла для отрисовки на карте
type TileFeature struct {
	Coordinates tiles.Polygon `json:"coordinates"`
	Label       string        `json:"label"`
}

// NewTileFeature builds the map feature of one tile.
func NewTileFeature(t tiles.TileCoord) TileFeature {
	return TileFeature{
		Coordinates: tiles.TilePolygon(t),
		Label:       t.String(),
	}
}

// MaxBlock - наибольший полностью посещённый квадрат
type MaxBlock struct {
	Square  tiles.Polygon   `json:"sq"`
	Side    int             `json:"l"`
	TopLeft tiles.TileCoord `json:"top_left"`
}

// Coverage is the document rendered by the map page.
type Coverage struct {
	Rides       []RideSummary   `json:"rides"`
	Tiles       []TileFeature   `json:"tiles"`
	Cluster     []TileFeature   `json:"cluster"`
	MaxBlock    MaxBlock        `json:"maxblock"`
	Seed        tiles.TileCoord `json:"seed"`
	SeedVisits  int             `json:"seed_visits"`
	WindowSize  int             `json:"window_size"`
	SkippedRide []int64         `json:"skipped_rides,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}
