package tiles

// IsInterior reports whether all four orthogonal neighbours of t are visited.
func IsInterior(visited TileSet, t TileCoord) bool {
	for _, n := range t.Neighbors() {
		if !visited.Has(n) {
			return false
		}
	}
	return true
}

// GrowCluster runs a breadth-first search from start over interior tiles.
// start is always part of the result, interior or not.
func GrowCluster(visited TileSet, start TileCoord) TileSet {
	seen := NewTileSet(start)
	queue := []TileCoord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if seen.Has(n) || !IsInterior(visited, n) {
				continue
			}
			seen.Add(n)
			queue = append(queue, n)
		}
	}

	return seen
}
