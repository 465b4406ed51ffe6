package errors

import "net/http"

var (
	ErrNoRides = New(
		"NO_RIDES",
		"No rides recorded yet",
		http.StatusNotFound,
	)

	ErrRideNotFound = New(
		"RIDE_NOT_FOUND",
		"Ride not found",
		http.StatusNotFound,
	)

	ErrInvalidWindowSize = New(
		"INVALID_WINDOW_SIZE",
		"Window size must be a positive even number",
		http.StatusBadRequest,
	)

	ErrInvalidPolyline = New(
		"INVALID_POLYLINE",
		"Invalid encoded polyline",
		http.StatusBadRequest,
	)

	ErrInvalidTileCoordinates = New(
		"INVALID_TILE_COORDINATES",
		"Invalid tile coordinates",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrUpstreamError = New(
		"UPSTREAM_ERROR",
		"Activity provider request failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
