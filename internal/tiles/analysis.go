package tiles

// Analysis is the full coverage result for a set of rides.
type Analysis struct {
	Aggregation
	Block   Block
	Cluster TileSet
}

// Analyze runs aggregation, the max block search around the seed and the
// cluster growth from the block centre. ErrNoRides is returned, with nothing
// else computed, when the traces hold no tiles.
func Analyze(traces []Trace, windowSize int) (*Analysis, error) {
	if err := ValidateWindow(windowSize); err != nil {
		return nil, err
	}

	agg, err := Aggregate(traces)
	if err != nil {
		return nil, err
	}

	block, err := FindMaxBlock(agg.Visited, agg.Seed, windowSize)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Aggregation: agg,
		Block:       block,
		Cluster:     GrowCluster(agg.Visited, block.Center()),
	}, nil
}
