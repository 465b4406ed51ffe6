package tiles

// LatLng is a [lat, lng] pair, the order the map front-end expects.
type LatLng [2]float64

// Polygon is a closed-by-convention ring of four corners:
// [top,left], [top,right], [bottom,right], [bottom,left].
type Polygon [4]LatLng

// TilePolygon returns the outline of a single tile.
func TilePolygon(t TileCoord) Polygon {
	return BlockPolygon(t, 1)
}

// BlockPolygon returns the outline of the side×side square whose top-left
// tile is topLeft.
func BlockPolygon(topLeft TileCoord, side int) Polygon {
	top, bottom := TileLat(topLeft.Y), TileLat(topLeft.Y+side)
	left, right := TileLng(topLeft.X), TileLng(topLeft.X+side)
	return Polygon{
		{top, left},
		{top, right},
		{bottom, right},
		{bottom, left},
	}
}
