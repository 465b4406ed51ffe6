package usecase_test

import (
	"github.com/tile-explorer/internal/pkg/polyline"
	"github.com/tile-explorer/internal/tiles"
)

// tileCenter returns the geographic centre of a tile.
func tileCenter(x, y int) tiles.GeoPoint {
	return tiles.GeoPoint{
		Lat: (tiles.TileLat(y) + tiles.TileLat(y+1)) / 2,
		Lng: (tiles.TileLng(x) + tiles.TileLng(x+1)) / 2,
	}
}

// serpentine encodes a route through every tile centre of the side×side
// square at (x0, y0), row by row, changing direction on each row so that
// consecutive points are always orthogonal neighbours.
func serpentine(x0, y0, side int) string {
	var route []tiles.GeoPoint
	for dy := 0; dy < side; dy++ {
		for i := 0; i < side; i++ {
			dx := i
			if dy%2 == 1 {
				dx = side - 1 - i
			}
			route = append(route, tileCenter(x0+dx, y0+dy))
		}
	}
	return polyline.Encode(route)
}
