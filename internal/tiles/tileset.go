package tiles

import "sort"

// TileSet - множество уникальных тайлов
type TileSet map[TileCoord]struct{}

// NewTileSet builds a set from the given tiles.
func NewTileSet(ts ...TileCoord) TileSet {
	s := make(TileSet, len(ts))
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

func (s TileSet) Add(t TileCoord) {
	s[t] = struct{}{}
}

func (s TileSet) Has(t TileCoord) bool {
	_, ok := s[t]
	return ok
}

func (s TileSet) Len() int {
	return len(s)
}

// Union adds every tile of o to s.
func (s TileSet) Union(o TileSet) {
	for t := range o {
		s.Add(t)
	}
}

// Sorted returns the tiles ordered by row, then column.
func (s TileSet) Sorted() []TileCoord {
	out := make([]TileCoord, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
