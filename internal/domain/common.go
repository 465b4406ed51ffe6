package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLng float64 `json:"min_lng" db:"min_lng"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLng float64 `json:"max_lng" db:"max_lng"`
}

// Statistics представляет общую статистику по поездкам
type Statistics struct {
	Rides       RideStats `json:"rides"`
	LastUpdated time.Time `json:"last_updated"`
	DataVersion string    `json:"data_version"`
}

// RideStats агрегаты по всем сохранённым поездкам
type RideStats struct {
	TotalRides      int        `json:"total_rides" db:"total_rides"`
	TotalDistance   float64    `json:"total_distance_m" db:"total_distance"`
	TotalMovingTime int64      `json:"total_moving_time_s" db:"total_moving_time"`
	TotalElevation  float64    `json:"total_elevation_m" db:"total_elevation"`
	LongestRide     float64    `json:"longest_ride_m" db:"longest_ride"`
	FastestMaxSpeed float64    `json:"fastest_max_speed" db:"fastest_max_speed"`
	FirstRideAt     *time.Time `json:"first_ride_at,omitempty" db:"first_ride_at"`
	LastRideAt      *time.Time `json:"last_ride_at,omitempty" db:"last_ride_at"`
}
