package gridgraph

// RegionsBelow partitions every cell whose value is not wall into connected
// regions under gg.Conn. Wall cells belong to no region.
// Each region lists row-major cell indices in BFS order from its first cell
// in row-major scan; regions appear in the order of those first cells.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) RegionsBelow(wall int) [][]int {
	seen := make([]bool, gg.Len())
	var regions [][]int
	var nbuf []int

	for i0 := 0; i0 < gg.Len(); i0++ {
		if seen[i0] || gg.Value(i0) == wall {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			nbuf = gg.AppendNeighbors(nbuf[:0], queue[qi])
			for _, vi := range nbuf {
				if !seen[vi] && gg.Value(vi) != wall {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
