package network

// Visitation states for the topological DFS.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully processed
)

// topologicalOrder computes a topological ordering of node ids over the
// child adjacency, parents before children, via three-color DFS. A gray
// revisit is a back edge and yields ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func topologicalOrder(children [][]int) ([]int, error) {
	state := make([]int, len(children))
	order := make([]int, 0, len(children))

	var visit func(id int) error
	visit = func(id int) error {
		switch state[id] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}
		state[id] = gray
		for _, c := range children[id] {
			if err := visit(c); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for id := range children {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order so parents precede their descendants.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
