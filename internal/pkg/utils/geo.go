package utils

import (
	"math"

	"github.com/tile-explorer/internal/tiles"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RouteLength возвращает длину маршрута в метрах
func RouteLength(route []tiles.GeoPoint) float64 {
	var km float64
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		km += HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
	}
	return km * 1000
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateTile проверяет, что тайл лежит в сетке
func ValidateTile(x, y int) bool {
	return x >= 0 && x < tiles.GridSize && y >= 0 && y < tiles.GridSize
}
