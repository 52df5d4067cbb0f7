package graphutil

// AdjacencyGraph is satisfied by both Graph and SimpleGraph: anything that
// can list its nodes and a node's neighbours is traversable by BFS and
// ConnectedComponents, regardless of what (if anything) its edges carry.
type AdjacencyGraph[Node comparable] interface {
	Nodes() []Node
	NeighboursOf(Node) []Node
}

// BFSResult holds the outcome of a bounded breadth-first traversal.
type BFSResult[Node comparable] struct {
	Visited map[Node]bool
	Parent  map[Node]Node
	Stopped bool // true if the stop predicate terminated the traversal early
}

// BFS walks g breadth-first from source. stop, if non-nil, is evaluated on
// each visited node; returning true ends the traversal immediately. filter,
// if non-nil, is evaluated before a node is enqueued; returning false skips
// it (and everything only reachable through it).
func BFS[Node comparable](g AdjacencyGraph[Node], source Node, stop func(Node) bool, filter func(Node) bool) BFSResult[Node] {
	result := BFSResult[Node]{
		Visited: map[Node]bool{source: true},
		Parent:  map[Node]Node{},
	}
	queue := []Node{source}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if stop != nil && stop(n) {
			result.Stopped = true
			return result
		}
		for _, nbr := range g.NeighboursOf(n) {
			if result.Visited[nbr] {
				continue
			}
			if filter != nil && !filter(nbr) {
				continue
			}
			result.Visited[nbr] = true
			result.Parent[nbr] = n
			queue = append(queue, nbr)
		}
	}
	return result
}

// ConnectedComponents partitions g's nodes into connected components. If
// filter is non-nil, nodes for which it returns false are excluded from
// every component and from traversal through them.
func ConnectedComponents[Node comparable](g AdjacencyGraph[Node], filter func(Node) bool) [][]Node {
	visited := map[Node]bool{}
	var components [][]Node
	for _, n := range g.Nodes() {
		if visited[n] {
			continue
		}
		if filter != nil && !filter(n) {
			continue
		}
		res := BFS(g, n, nil, filter)
		members := make([]Node, 0, len(res.Visited))
		for m := range res.Visited {
			members = append(members, m)
			visited[m] = true
		}
		components = append(components, members)
	}
	return components
}
