package graphutil

// SimpleGraph is an undirected graph with node identity only — no edge
// payload, adjacency kept as plain sets. Grounded on the node-only graph
// variant of the molecular-graph toolset; unlike Graph it also supports
// removing a node.
type SimpleGraph[Node comparable] struct {
	adj map[Node]map[Node]struct{}
}

// NewSimple returns an empty simple graph.
func NewSimple[Node comparable]() *SimpleGraph[Node] {
	return &SimpleGraph[Node]{adj: make(map[Node]map[Node]struct{})}
}

// Size returns the number of nodes.
func (g *SimpleGraph[Node]) Size() int { return len(g.adj) }

// Contains reports whether n is currently a node (false after RemoveNode).
func (g *SimpleGraph[Node]) Contains(n Node) bool {
	_, ok := g.adj[n]
	return ok
}

// AddNode registers n with no edges if it is not already present.
func (g *SimpleGraph[Node]) AddNode(n Node) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[Node]struct{})
	}
}

// AddEdge connects u and v (both added as nodes if absent). Self-loops are
// refused.
func (g *SimpleGraph[Node]) AddEdge(u, v Node) bool {
	if u == v {
		return false
	}
	g.AddNode(u)
	g.AddNode(v)
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	return true
}

// RemoveNode deletes n and every edge incident to it.
func (g *SimpleGraph[Node]) RemoveNode(n Node) {
	nbrs, ok := g.adj[n]
	if !ok {
		return
	}
	for v := range nbrs {
		delete(g.adj[v], n)
	}
	delete(g.adj, n)
}

// Nodes returns a snapshot slice of every node.
func (g *SimpleGraph[Node]) Nodes() []Node {
	out := make([]Node, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	return out
}

// Neighbours returns the neighbour set of n, or nil if n is absent.
func (g *SimpleGraph[Node]) Neighbours(n Node) map[Node]struct{} {
	return g.adj[n]
}

// NeighboursOf returns a snapshot slice of n's neighbours.
func (g *SimpleGraph[Node]) NeighboursOf(n Node) []Node {
	nbrs := g.adj[n]
	out := make([]Node, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	return out
}
