package usecase

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/tiles"
)

// Feature kinds in the coverage collection
const (
	FeatureKindTile     = "tile"
	FeatureKindCluster  = "cluster"
	FeatureKindMaxBlock = "maxblock"
)

// GetGeoJSON возвращает покрытие как GeoJSON FeatureCollection
func (uc *CoverageUseCase) GetGeoJSON(ctx context.Context, window int) (*geojson.FeatureCollection, error) {
	coverage, _, err := uc.GetCoverage(ctx, window)
	if err != nil {
		return nil, err
	}
	return CoverageToGeoJSON(coverage), nil
}

// CoverageToGeoJSON converts a coverage document to GeoJSON; rings are
// closed and use [lng, lat] order.
func CoverageToGeoJSON(c *domain.Coverage) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, t := range c.Tiles {
		f := geojson.NewFeature(polygonGeometry(t.Coordinates))
		f.Properties["kind"] = FeatureKindTile
		f.Properties["label"] = t.Label
		fc.Append(f)
	}

	for _, t := range c.Cluster {
		f := geojson.NewFeature(polygonGeometry(t.Coordinates))
		f.Properties["kind"] = FeatureKindCluster
		f.Properties["label"] = t.Label
		fc.Append(f)
	}

	if c.MaxBlock.Side > 0 {
		f := geojson.NewFeature(polygonGeometry(c.MaxBlock.Square))
		f.Properties["kind"] = FeatureKindMaxBlock
		f.Properties["side"] = c.MaxBlock.Side
		f.Properties["label"] = c.MaxBlock.TopLeft.String()
		fc.Append(f)
	}

	return fc
}

func polygonGeometry(p tiles.Polygon) orb.Polygon {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, corner := range p {
		ring = append(ring, orb.Point{corner[1], corner[0]})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
