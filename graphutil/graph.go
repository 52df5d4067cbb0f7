// Package graphutil provides small generic undirected-graph containers and
// the traversal algorithms that run over them, independent of what a node or
// an edge actually represents.
package graphutil

// Edge is one out-of-line edge record shared by both of its endpoints. The
// pointer identity is the edge's stable reference: once AddEdge returns a
// pointer, mutating the Data field through it is visible from either
// endpoint's adjacency lookup, and the pointer survives further insertions
// into the graph.
type Edge[Node comparable, Data any] struct {
	U, V Node
	Data Data
}

// Graph is an undirected graph whose edges carry a Data payload. Edges are
// stored once, out-of-line, and referenced by pointer from both endpoints'
// adjacency maps so that references stay stable across further additions.
type Graph[Node comparable, Data any] struct {
	nodes map[Node]struct{}
	adj   map[Node]map[Node]*Edge[Node, Data]
	edges []*Edge[Node, Data]
}

// New returns an empty graph.
func New[Node comparable, Data any]() *Graph[Node, Data] {
	return &Graph[Node, Data]{
		nodes: make(map[Node]struct{}),
		adj:   make(map[Node]map[Node]*Edge[Node, Data]),
	}
}

// Size returns the number of nodes.
func (g *Graph[Node, Data]) Size() int { return len(g.nodes) }

// EdgesSize returns the number of edges.
func (g *Graph[Node, Data]) EdgesSize() int { return len(g.edges) }

// Contains reports whether n is currently a node (false again after Clear).
func (g *Graph[Node, Data]) Contains(n Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// AddNode registers n with no edges if it is not already present.
func (g *Graph[Node, Data]) AddNode(n Node) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.adj[n] = make(map[Node]*Edge[Node, Data])
}

// Nodes returns a snapshot slice of every node.
func (g *Graph[Node, Data]) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Edges returns a snapshot slice of every edge, in insertion order.
func (g *Graph[Node, Data]) Edges() []*Edge[Node, Data] {
	out := make([]*Edge[Node, Data], len(g.edges))
	copy(out, g.edges)
	return out
}

// Adjacency returns the neighbour-to-edge map for n, or nil if n is absent.
func (g *Graph[Node, Data]) Adjacency(n Node) map[Node]*Edge[Node, Data] {
	return g.adj[n]
}

// NeighboursOf returns a snapshot slice of n's neighbours.
func (g *Graph[Node, Data]) NeighboursOf(n Node) []Node {
	nbrs := g.adj[n]
	out := make([]Node, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	return out
}

// EdgeFor returns the edge between u and v, if any.
func (g *Graph[Node, Data]) EdgeFor(u, v Node) (*Edge[Node, Data], bool) {
	nbrs, ok := g.adj[u]
	if !ok {
		return nil, false
	}
	e, ok := nbrs[v]
	return e, ok
}

// AddEdge creates the edge u-v with zero-valued Data if it does not already
// exist, and returns the existing or new edge. u and v are added as nodes if
// absent. Self-loops (u == v) are refused and AddEdge returns false.
func (g *Graph[Node, Data]) AddEdge(u, v Node) (*Edge[Node, Data], bool) {
	if u == v {
		return nil, false
	}
	g.AddNode(u)
	g.AddNode(v)
	if e, ok := g.adj[u][v]; ok {
		return e, true
	}
	e := &Edge[Node, Data]{U: u, V: v}
	g.adj[u][v] = e
	g.adj[v][u] = e
	g.edges = append(g.edges, e)
	return e, true
}

// ClearEdges removes every edge but keeps all nodes.
func (g *Graph[Node, Data]) ClearEdges() {
	for n := range g.adj {
		g.adj[n] = make(map[Node]*Edge[Node, Data])
	}
	g.edges = nil
}

// Clear removes every node and edge.
func (g *Graph[Node, Data]) Clear() {
	g.nodes = make(map[Node]struct{})
	g.adj = make(map[Node]map[Node]*Edge[Node, Data])
	g.edges = nil
}
