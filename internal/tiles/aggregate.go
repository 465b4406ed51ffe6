package tiles

import "errors"

// ErrNoRides is returned when there is nothing to aggregate. No seed exists
// in that case and the block and cluster searches must not run.
var ErrNoRides = errors.New("tiles: no rides to aggregate")

// Aggregation is the union of all ride traces plus the most visited tile.
type Aggregation struct {
	Seed      TileCoord
	Frequency int
	Visited   TileSet
}

// Aggregate merges the traces into one visited set and picks the seed: the
// tile with the highest occurrence count over all traces, duplicates within a
// trace included. Among tiles with the same count, the one that first
// appeared in the traces wins.
func Aggregate(traces []Trace) (Aggregation, error) {
	visited := make(TileSet)
	counts := make(map[TileCoord]int)
	var order []TileCoord

	for _, tr := range traces {
		for _, t := range tr {
			if _, seen := counts[t]; !seen {
				order = append(order, t)
			}
			counts[t]++
			visited.Add(t)
		}
	}

	if len(order) == 0 {
		return Aggregation{Visited: visited}, ErrNoRides
	}

	agg := Aggregation{Visited: visited}
	for _, t := range order {
		if counts[t] > agg.Frequency {
			agg.Seed = t
			agg.Frequency = counts[t]
		}
	}

	return agg, nil
}
