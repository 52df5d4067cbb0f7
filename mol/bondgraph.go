package mol

import "github.com/molpp-go/molpp/graphutil"

// Bond is the edge payload of the bond graph: bond order (0 = unknown, 1/2/3
// = single/double/triple), aromaticity, and the two guessed-provenance
// flags. A *Bond is shared by both endpoints of the edge it belongs to, so
// mutating a field through either endpoint's lookup is observed by the
// other.
type Bond struct {
	Order           int
	Aromatic        bool
	GuessedTopology bool
	GuessedOrder    bool
}

// BondGraph is an undirected graph over atom indices, built on top of the
// generic attributed graph of package graphutil: it contributes only the
// molecular-domain operations (bonded_closure, collect_edges) and the
// incomplete-topology flag, not its own adjacency bookkeeping.
type BondGraph struct {
	g                  *graphutil.Graph[int, *Bond]
	incompleteTopology bool
}

// NewBondGraph returns a bond graph with nodes 0..nAtoms-1 already present.
func NewBondGraph(nAtoms int) *BondGraph {
	g := graphutil.New[int, *Bond]()
	for i := 0; i < nAtoms; i++ {
		g.AddNode(i)
	}
	return &BondGraph{g: g}
}

// AddNodesUpTo ensures nodes 0..n-1 exist (used when the atom count grows).
func (bg *BondGraph) AddNodesUpTo(n int) {
	for i := 0; i < n; i++ {
		bg.g.AddNode(i)
	}
}

// SetIncompleteTopology marks that some bonds from the source file may be
// missing.
func (bg *BondGraph) SetIncompleteTopology(v bool) { bg.incompleteTopology = v }

// IncompleteTopology reports the flag set by SetIncompleteTopology.
func (bg *BondGraph) IncompleteTopology() bool { return bg.incompleteTopology }

// AddEdge refuses u == v; otherwise creates the bond u-v (with a fresh,
// zero-valued *Bond) or returns the existing one.
func (bg *BondGraph) AddEdge(u, v int32) (*Bond, bool) {
	e, ok := bg.g.AddEdge(int(u), int(v))
	if !ok {
		return nil, false
	}
	if e.Data == nil {
		e.Data = &Bond{}
	}
	return e.Data, true
}

// Edge returns the bond between u and v, if any.
func (bg *BondGraph) Edge(u, v int32) (*Bond, bool) {
	e, ok := bg.g.EdgeFor(int(u), int(v))
	if !ok {
		return nil, false
	}
	return e.Data, true
}

// Neighbours returns the sorted atom indices bonded to u.
func (bg *BondGraph) Neighbours(u int32) []int32 {
	raw := bg.g.NeighboursOf(int(u))
	out := make([]int32, len(raw))
	for i, n := range raw {
		out[i] = int32(n)
	}
	return sortedUniqueInPlace(out)
}

// BondedClosure returns the union of indices with the neighbours of each —
// the "one-hop bonded neighbourhood" semantic.
func (bg *BondGraph) BondedClosure(indices []int32) []int32 {
	out := append([]int32(nil), indices...)
	for _, a := range indices {
		out = append(out, bg.Neighbours(a)...)
	}
	return sortedUniqueInPlace(out)
}

// BondEdge is one deduplicated edge incident to a queried atom set.
type BondEdge struct {
	U, V int32
	Bond *Bond
}

// CollectEdges returns the deduplicated set of edges incident to any atom in
// indices.
func (bg *BondGraph) CollectEdges(indices []int32) []BondEdge {
	seen := make(map[[2]int32]struct{})
	var out []BondEdge
	for _, a := range indices {
		for _, b := range bg.Neighbours(a) {
			u, v := a, b
			if u > v {
				u, v = v, u
			}
			key := [2]int32{u, v}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			bond, _ := bg.Edge(u, v)
			out = append(out, BondEdge{U: u, V: v, Bond: bond})
		}
	}
	return out
}

// ClearEdges removes all edges but keeps nodes.
func (bg *BondGraph) ClearEdges() { bg.g.ClearEdges() }

// Fragments returns the connected components of the bond graph — distinct
// covalently-bonded molecules/ions in one store.
func (bg *BondGraph) Fragments() [][]int32 {
	comps := graphutil.ConnectedComponents[int](bg.g, nil)
	out := make([][]int32, len(comps))
	for i, c := range comps {
		atoms := make([]int32, len(c))
		for j, n := range c {
			atoms[j] = int32(n)
		}
		out[i] = sortedUniqueInPlace(atoms)
	}
	return out
}
