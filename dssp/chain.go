package dssp

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// segmentChains groups residue indices into contiguous chain segments using
// plain adjacency (residue i connected to i+1 iff no chain break between
// them). This is unweighted connectivity over a dense int64 id space, a
// better fit for gonum's graph/simple + graph/topo than the generic
// arbitrary-node bond graph used elsewhere in the store.
func segmentChains(records []record) [][]int32 {
	g := simple.NewUndirectedGraph()
	for i := range records {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 1; i < len(records); i++ {
		if !records[i].breakBefore {
			g.SetEdge(g.NewEdge(simple.Node(int64(i-1)), simple.Node(int64(i))))
		}
	}

	comps := topo.ConnectedComponents(g)
	out := make([][]int32, 0, len(comps))
	for _, c := range comps {
		seg := make([]int32, 0, len(c))
		for _, node := range c {
			seg = append(seg, int32(node.ID()))
		}
		sort.Slice(seg, func(a, b int) bool { return seg[a] < seg[b] })
		out = append(out, seg)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })
	return out
}
