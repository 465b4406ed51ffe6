package tiles_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tile-explorer/internal/tiles"
)

func TestGrowCluster(t *testing.T) {
	t.Run("5x5 grid from the centre", func(t *testing.T) {
		cluster := tiles.GrowCluster(square(0, 0, 5), tiles.TileCoord{X: 2, Y: 2})

		// every tile of the inner 3x3 has all four neighbours in the grid
		assert.ElementsMatch(t, []tiles.TileCoord{
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
		}, cluster.Sorted())
	})

	t.Run("plus shape", func(t *testing.T) {
		visited := square(0, 0, 5)
		for _, corner := range []tiles.TileCoord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}} {
			delete(visited, corner)
		}
		delete(visited, tiles.TileCoord{X: 1, Y: 0})

		cluster := tiles.GrowCluster(visited, tiles.TileCoord{X: 2, Y: 2})

		assert.ElementsMatch(t, []tiles.TileCoord{
			{X: 2, Y: 1}, {X: 3, Y: 1},
			{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2},
			{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
		}, cluster.Sorted())
	})

	t.Run("start on the border", func(t *testing.T) {
		cluster := tiles.GrowCluster(square(0, 0, 5), tiles.TileCoord{X: 0, Y: 0})
		assert.Equal(t, []tiles.TileCoord{{X: 0, Y: 0}}, cluster.Sorted())
	})

	t.Run("empty visited set", func(t *testing.T) {
		cluster := tiles.GrowCluster(tiles.NewTileSet(), tiles.TileCoord{X: 7, Y: 7})
		assert.Equal(t, []tiles.TileCoord{{X: 7, Y: 7}}, cluster.Sorted())
	})
}

func TestGrowCluster_OnlyInteriorTiles(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		visited := make(tiles.TileSet)
		for y := 0; y < 20; y++ {
			for x := 0; x < 20; x++ {
				if r.Float64() < 0.8 {
					visited.Add(tiles.TileCoord{X: x, Y: y})
				}
			}
		}
		start := tiles.TileCoord{X: 10, Y: 10}

		cluster := tiles.GrowCluster(visited, start)

		assert.True(t, cluster.Has(start))
		for tile := range cluster {
			if tile == start {
				continue
			}
			assert.True(t, tiles.IsInterior(visited, tile), "%s is not interior", tile)
		}
	}
}
