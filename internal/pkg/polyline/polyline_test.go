package polyline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tile-explorer/internal/pkg/polyline"
	"github.com/tile-explorer/internal/tiles"
)

func TestDecode_KnownRoute(t *testing.T) {
	points, err := polyline.Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 1e-6)
	assert.InDelta(t, -120.2, points[0].Lng, 1e-6)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-6)
	assert.InDelta(t, -120.95, points[1].Lng, 1e-6)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-6)
	assert.InDelta(t, -126.453, points[2].Lng, 1e-6)
}

func TestDecode_Empty(t *testing.T) {
	points, err := polyline.Decode("")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := polyline.Decode("_p~iF~ps|U_")
	assert.ErrorIs(t, err, polyline.ErrInvalidPolyline)
}

func TestEncode_RoundTrip(t *testing.T) {
	route := []tiles.GeoPoint{
		{Lat: 52.515, Lng: 13.42},
		{Lat: 52.505, Lng: 13.428},
		{Lat: 52.49912, Lng: 13.43201},
	}

	points, err := polyline.Decode(polyline.Encode(route))
	require.NoError(t, err)
	require.Len(t, points, len(route))
	for i := range route {
		assert.InDelta(t, route[i].Lat, points[i].Lat, 1e-5)
		assert.InDelta(t, route[i].Lng, points[i].Lng, 1e-5)
	}
}
