package tiles

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned for a search window that is not a positive
// even number of tiles.
var ErrInvalidWindow = errors.New("tiles: window size must be positive and even")

// Block is an axis-aligned square of visited tiles.
type Block struct {
	TopLeft TileCoord `json:"top_left"`
	Side    int       `json:"side"`
}

// Center returns the middle tile of the block.
func (b Block) Center() TileCoord {
	return b.TopLeft.Offset(b.Side/2, b.Side/2)
}

// Contains reports whether t lies inside the block.
func (b Block) Contains(t TileCoord) bool {
	return t.X >= b.TopLeft.X && t.X < b.TopLeft.X+b.Side &&
		t.Y >= b.TopLeft.Y && t.Y < b.TopLeft.Y+b.Side
}

// ValidateWindow checks a search window size.
func ValidateWindow(windowSize int) error {
	if windowSize <= 0 || windowSize%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindow, windowSize)
	}
	return nil
}

// FindMaxBlock searches the windowSize×windowSize window centred on seed,
// spanning [seed-w, seed+w) on both axes with w = windowSize/2, for the
// largest square whose every tile is visited. Visited tiles outside the
// window are never considered.
//
// The matrix is scanned from the bottom-right corner, so among equally sized
// squares the bottom-right-most one is returned. An empty window yields a
// zero side anchored at the window origin.
func FindMaxBlock(visited TileSet, seed TileCoord, windowSize int) (Block, error) {
	if err := ValidateWindow(windowSize); err != nil {
		return Block{}, err
	}

	w := windowSize / 2
	origin := seed.Offset(-w, -w)
	n := windowSize

	sizes := make([][]int, n)
	for i := range sizes {
		sizes[i] = make([]int, n)
	}

	best := Block{TopLeft: origin}
	for i := n - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			tile := origin.Offset(j, i)
			if !visited.Has(tile) {
				continue
			}
			if i < n-1 && j < n-1 {
				sizes[i][j] = 1 + min(sizes[i][j+1], sizes[i+1][j], sizes[i+1][j+1])
			} else {
				sizes[i][j] = 1
			}
			if sizes[i][j] > best.Side {
				best = Block{TopLeft: tile, Side: sizes[i][j]}
			}
		}
	}

	return best, nil
}
