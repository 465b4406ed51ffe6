package tiles

// Trace is the ordered list of tile occurrences along one ride, duplicates
// included. Occurrence counts feed the seed tile selection.
type Trace []TileCoord

// Set collapses the trace into a set of distinct tiles.
func (tr Trace) Set() TileSet {
	s := make(TileSet, len(tr))
	for _, t := range tr {
		s.Add(t)
	}
	return s
}

// ExtractTrace walks the route and records the tile of every point. When two
// consecutive points land in diagonally adjacent tiles, the orthogonal
// neighbours of the first tile that the segment passes through (enters and
// exits, i.e. crosses exactly two edges) are recorded as well.
//
// Only single-hop diagonal gaps are recovered; a hop skipping several tiles
// leaves them out.
func ExtractTrace(route []GeoPoint) Trace {
	if len(route) == 0 {
		return nil
	}

	trace := make(Trace, 0, len(route))
	prev := ProjectPoint(route[0])
	trace = append(trace, prev)

	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		cur := ProjectPoint(b)
		trace = append(trace, cur)

		if abs(prev.X-cur.X) == 1 && abs(prev.Y-cur.Y) == 1 {
			trace = append(trace, bridgingTiles(prev, NewSegment(a, b))...)
		}
		prev = cur
	}

	return trace
}

// ExtractTiles returns the distinct tiles crossed by the route.
func ExtractTiles(route []GeoPoint) TileSet {
	return ExtractTrace(route).Set()
}

func bridgingTiles(from TileCoord, seg Segment) []TileCoord {
	var out []TileCoord
	for _, n := range from.Neighbors() {
		if seg.CrossedEdges(n) == 2 {
			out = append(out, n)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
