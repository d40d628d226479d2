package randomgraph

// ConnectedComponent returns the set of vertices reachable from vertex 0,
// as a vertex -> present map. Adapted to a plain synchronous breadth-first
// walk with no cancellation or hooks, since the engine never runs this
// concurrently with anything else.
func (g *Graph) ConnectedComponent() map[int]bool {
	n := g.matrix.Dimension()
	component := make(map[int]bool, n)
	if n == 0 {
		return component
	}

	queue := make([]int, 0, n)
	component[0] = true
	queue = append(queue, 0)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if !component[v] && g.matrix.IsConnected(cur, v) {
				component[v] = true
				queue = append(queue, v)
			}
		}
	}
	return component
}

// IsConnected reports whether every vertex is reachable from vertex 0.
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponent()) == g.matrix.Dimension()
}

// InverseComponent returns every vertex NOT present in component.
func (g *Graph) InverseComponent(component map[int]bool) []int {
	inverse := make([]int, 0, g.matrix.Dimension()-len(component))
	for v := 0; v < g.matrix.Dimension(); v++ {
		if !component[v] {
			inverse = append(inverse, v)
		}
	}
	return inverse
}
