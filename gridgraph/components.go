package gridgraph

// Components finds all contiguous regions of free cells under
// 4-connectivity. Each component is a slice of cell indices in BFS order
// from its lowest-index cell; components are ordered by that first cell.
// Blocked cells belong to no component.
//
// Two free cells are connected by a path iff they share a component.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Components() [][]int {
	adj := Build(g)
	seen := make([]bool, g.Size())
	var comps [][]int
	var next []int

	for i0 := 0; i0 < g.Size(); i0++ {
		if g.occupancy[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			next = adj.AppendNeighbors(next[:0], queue[qi])
			for _, v := range next {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
