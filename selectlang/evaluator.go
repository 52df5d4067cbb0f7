package selectlang

import (
	"fmt"
	"sort"

	"github.com/molpp-go/molpp/mol"
)

// indexSet is anything that can be read as a sorted-unique slice at the
// moment a task consumes it.
type indexSet interface {
	Sorted() []int32
}

// fixedSet is an immutable indexSet — the top-level universe, or a mask
// passed straight through by Or/Not without modification.
type fixedSet []int32

func (f fixedSet) Sorted() []int32 { return []int32(f) }

// mutSet is a growable sorted-unique accumulator: the "selected" set every
// node writes into, and the "partial" set And allocates for its right
// child.
type mutSet struct{ vals []int32 }

func (s *mutSet) Sorted() []int32 { return s.vals }

func (s *mutSet) insert(v int32) {
	i := sort.Search(len(s.vals), func(i int) bool { return s.vals[i] >= v })
	if i < len(s.vals) && s.vals[i] == v {
		return
	}
	s.vals = append(s.vals, 0)
	copy(s.vals[i+1:], s.vals[i:])
	s.vals[i] = v
}

// task is one pending unit of work on the explicit evaluation stack: either
// evaluate a node against (mask, selected), or (when node is nil) run a
// scheduled combine step for a completed Not.
type task struct {
	node     *Node
	mask     indexSet
	selected *mutSet

	// combine-step only (node == nil): compute outerSelected = mask \ inverted.
	outerSelected *mutSet
	inverted      *mutSet
}

// Evaluate runs ast against store's atom universe (indices 0..N_Atom-1) and
// returns a sorted-unique set of matching atom indices. frame, if non-nil,
// must name a valid frame; the minimal grammar's predicates (resid, index)
// do not themselves depend on it, but an invalid frame is still rejected so
// later frame-dependent predicates can share this contract.
func Evaluate(ast *Node, store *mol.Store, frame *int32) ([]int32, error) {
	if frame != nil {
		if *frame < 0 || int(*frame) >= store.NumFrames() {
			return nil, &FrameError{Frame: *frame, NumFrames: store.NumFrames()}
		}
	}

	n, err := store.SizeOfKind(mol.KindAtom)
	if err != nil {
		return nil, err
	}
	universe := make([]int32, n)
	for i := range universe {
		universe[i] = int32(i)
	}

	top := &mutSet{}
	stack := []task{{node: ast, mask: fixedSet(universe), selected: top}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.node == nil {
			// Combine step for a completed Not: selected = mask \ inverted.
			inv := t.inverted.Sorted()
			for _, a := range t.mask.Sorted() {
				if !containsSorted32(inv, a) {
					t.outerSelected.insert(a)
				}
			}
			continue
		}

		switch t.node.Kind {
		case NodeAll:
			for _, a := range t.mask.Sorted() {
				t.selected.insert(a)
			}

		case NodeNumProp:
			if err := evalNumProp(t.node, store, t.mask.Sorted(), t.selected); err != nil {
				return nil, err
			}

		case NodeOr:
			stack = append(stack, task{node: t.node.Right, mask: t.mask, selected: t.selected})
			stack = append(stack, task{node: t.node.Left, mask: t.mask, selected: t.selected})

		case NodeAnd:
			partial := &mutSet{}
			stack = append(stack, task{node: t.node.Right, mask: partial, selected: t.selected})
			stack = append(stack, task{node: t.node.Left, mask: t.mask, selected: partial})

		case NodeNot:
			inverted := &mutSet{}
			stack = append(stack, task{outerSelected: t.selected, mask: t.mask, inverted: inverted})
			stack = append(stack, task{node: t.node.Left, mask: t.mask, selected: inverted})
		}
	}

	return top.Sorted(), nil
}

func evalNumProp(n *Node, store *mol.Store, mask []int32, selected *mutSet) error {
	for _, a := range mask {
		var v int32
		switch n.Prop {
		case PropIndex:
			v = a
		case PropResID:
			resid, err := mol.AggregateProperty[int32](mol.NewAtomAggregate(store, a), mol.PropResID)
			if err != nil {
				return err
			}
			v = resid
		}
		if numMatches(v, n.Numbers, n.Ranges) {
			selected.insert(a)
		}
	}
	return nil
}

func numMatches(v int32, numbers []int32, ranges []NumRange) bool {
	for _, n := range numbers {
		if v == n {
			return true
		}
	}
	for _, r := range ranges {
		if v >= r.Lo && v <= r.Hi {
			return true
		}
	}
	return false
}

func containsSorted32(s []int32, v int32) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	return i < len(s) && s[i] == v
}

// FrameError reports an out-of-range frame passed to Evaluate. A nil frame
// is accepted and never produces a FrameError.
type FrameError struct {
	Frame     int32
	NumFrames int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("selectlang: frame %d out of range [0,%d)", e.Frame, e.NumFrames)
}
