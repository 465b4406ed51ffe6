// Package polyline converts encoded route strings (precision 5) into
// geographic points and back.
package polyline

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"

	"github.com/tile-explorer/internal/tiles"
)

var ErrInvalidPolyline = errors.New("invalid encoded polyline")

// Decode returns the points of an encoded route. An empty string is an
// empty route.
func Decode(encoded string) ([]tiles.GeoPoint, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolyline, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidPolyline, len(rest))
	}

	points := make([]tiles.GeoPoint, len(coords))
	for i, c := range coords {
		if c[0] < -90 || c[0] > 90 || c[1] < -180 || c[1] > 180 {
			return nil, fmt.Errorf("%w: point %d out of range (%f, %f)", ErrInvalidPolyline, i, c[0], c[1])
		}
		points[i] = tiles.GeoPoint{Lat: c[0], Lng: c[1]}
	}
	return points, nil
}

// Encode is the inverse of Decode.
func Encode(points []tiles.GeoPoint) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lng}
	}
	return string(polyline.EncodeCoords(coords))
}
