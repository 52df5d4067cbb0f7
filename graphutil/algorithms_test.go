package graphutil

import (
	"sort"
	"testing"
)

func TestGraphAddEdgeNoSelfLoop(t *testing.T) {
	g := New[int, string]()
	if _, ok := g.AddEdge(1, 1); ok {
		t.Fatal("self-loop must be refused")
	}
	e, ok := g.AddEdge(1, 2)
	if !ok {
		t.Fatal("expected edge to be created")
	}
	e2, _ := g.AddEdge(1, 2)
	if e != e2 {
		t.Fatal("re-adding an existing edge must return the same pointer")
	}
	if g.EdgesSize() != 1 {
		t.Fatalf("expected 1 edge, got %d", g.EdgesSize())
	}
}

func TestGraphEdgeDataSharedByBothEndpoints(t *testing.T) {
	g := New[int, int]()
	e, _ := g.AddEdge(0, 1)
	e.Data = 42
	got, ok := g.EdgeFor(1, 0)
	if !ok || got.Data != 42 {
		t.Fatalf("expected shared edge data 42, got %+v ok=%v", got, ok)
	}
}

func TestSimpleGraphRemoveNode(t *testing.T) {
	g := NewSimple[int]()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.RemoveNode(1)
	if g.Contains(1) {
		t.Fatal("node 1 should have been removed")
	}
	if _, ok := g.Neighbours(0)[1]; ok {
		t.Fatal("edge 0-1 should be gone")
	}
	if _, ok := g.Neighbours(2)[1]; ok {
		t.Fatal("edge 1-2 should be gone")
	}
}

func TestConnectedComponents(t *testing.T) {
	g := NewSimple[int]()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddNode(5)
	g.AddEdge(10, 11)

	comps := ConnectedComponents[int](g, nil)
	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	if len(sizes) != 3 || sizes[0] != 1 || sizes[1] != 2 || sizes[2] != 3 {
		t.Fatalf("unexpected component sizes: %v", sizes)
	}
}

func TestBFSStopPredicate(t *testing.T) {
	g := NewSimple[int]()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	res := BFS[int](g, 0, func(n int) bool { return n == 2 }, nil)
	if !res.Stopped {
		t.Fatal("expected traversal to stop")
	}
	if res.Visited[3] {
		t.Fatal("node beyond the stop point should not be visited")
	}
}
