// Package tiles implements the coverage geometry over a fixed zoom slippy-map
// grid: projecting GPS points to tiles, recovering tiles skipped between
// samples, aggregating rides, and searching for the largest fully visited
// square and the surrounded cluster around it.
//
// Tile formulas follow https://wiki.openstreetmap.org/wiki/Slippy_map_tilenames.
// Behaviour at the poles and across the antimeridian is undefined.
package tiles

import (
	"fmt"
	"math"
)

const (
	// Zoom - уровень зума сетки
	Zoom = 14
	// GridSize - количество тайлов по одной оси (2^Zoom)
	GridSize = 1 << Zoom
)

// GeoPoint - географическая точка в градусах
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TileCoord - координаты тайла на уровне Zoom. Comparable, used as a map key.
type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the "x-y" label used by the map front-end.
func (t TileCoord) String() string {
	return fmt.Sprintf("%d-%d", t.X, t.Y)
}

// Neighbors returns the west, east, south and north neighbours.
func (t TileCoord) Neighbors() [4]TileCoord {
	return [4]TileCoord{
		{X: t.X - 1, Y: t.Y},
		{X: t.X + 1, Y: t.Y},
		{X: t.X, Y: t.Y + 1},
		{X: t.X, Y: t.Y - 1},
	}
}

// Offset returns the tile dx columns and dy rows away.
func (t TileCoord) Offset(dx, dy int) TileCoord {
	return TileCoord{X: t.X + dx, Y: t.Y + dy}
}

// Project возвращает тайл, содержащий точку (lat, lng)
func Project(lat, lng float64) TileCoord {
	return TileCoord{X: lngToX(lng), Y: latToY(lat)}
}

// ProjectPoint is Project for a GeoPoint.
func ProjectPoint(p GeoPoint) TileCoord {
	return Project(p.Lat, p.Lng)
}

func lngToX(lng float64) int {
	return int(math.Floor((lng + 180) / 360 * GridSize))
}

func latToY(lat float64) int {
	rad := lat * math.Pi / 180
	return int(math.Floor((1 - math.Asinh(math.Tan(rad))/math.Pi) / 2 * GridSize))
}

// TileLng возвращает долготу левой границы столбца x
func TileLng(x int) float64 {
	return float64(x)/GridSize*360 - 180
}

// TileLat возвращает широту верхней границы строки y
func TileLat(y int) float64 {
	return math.Atan(math.Sinh(math.Pi*(1-2*float64(y)/GridSize))) * 180 / math.Pi
}

// TileBounds holds the edges of a tile in degrees. Latitude decreases as y
// grows, so Top > Bottom.
type TileBounds struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Bounds returns the geographic bounds of the tile.
func (t TileCoord) Bounds() TileBounds {
	return TileBounds{
		Top:    TileLat(t.Y),
		Bottom: TileLat(t.Y + 1),
		Left:   TileLng(t.X),
		Right:  TileLng(t.X + 1),
	}
}

func (b TileBounds) TopLeft() GeoPoint     { return GeoPoint{Lat: b.Top, Lng: b.Left} }
func (b TileBounds) TopRight() GeoPoint    { return GeoPoint{Lat: b.Top, Lng: b.Right} }
func (b TileBounds) BottomLeft() GeoPoint  { return GeoPoint{Lat: b.Bottom, Lng: b.Left} }
func (b TileBounds) BottomRight() GeoPoint { return GeoPoint{Lat: b.Bottom, Lng: b.Right} }

// Contains reports whether p lies inside the bounds, edges included.
func (b TileBounds) Contains(p GeoPoint) bool {
	return p.Lat <= b.Top && p.Lat >= b.Bottom && p.Lng >= b.Left && p.Lng <= b.Right
}
