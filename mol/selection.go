package mol

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// Selection is a multi-entity cursor over a sorted-unique index set of one
// entity kind, an optional frame, and a store reference.
type Selection struct {
	kind  Kind
	idx   []int32 // sorted unique
	frame int32   // noFrame if unset
	store *Store
}

// NewSelection builds a selection from an explicit index list; duplicates
// are collapsed and the order is canonicalised.
func NewSelection(s *Store, k Kind, indices []int32) Selection {
	return Selection{kind: k, idx: sortedUniqueCopy(indices), frame: noFrame, store: s}
}

// AllOf returns a selection over every index of kind k currently sized in
// the store.
func AllOf(s *Store, k Kind) Selection {
	n, _ := s.SizeOfKind(k)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}
	return Selection{kind: k, idx: idx, frame: noFrame, store: s}
}

// Kind reports which entity kind this selection is over.
func (sel Selection) Kind() Kind { return sel.kind }

// Indices returns the sorted-unique index set, strictly ascending.
func (sel Selection) Indices() []int32 { return append([]int32(nil), sel.idx...) }

// Len is the number of entities in the selection.
func (sel Selection) Len() int { return len(sel.idx) }

// Contains is O(log n).
func (sel Selection) Contains(i int32) bool { return containsSorted(sel.idx, i) }

// WithFrame returns a copy pinned to frame f.
func (sel Selection) WithFrame(f int32) (Selection, error) {
	if f < 0 || int(f) >= sel.store.NumFrames() {
		return sel, newError(ErrBounds, "frame %d out of range [0,%d)", f, sel.store.NumFrames())
	}
	sel.frame = f
	return sel, nil
}

// WithoutFrame returns a copy with no frame set.
func (sel Selection) WithoutFrame() Selection {
	sel.frame = noFrame
	return sel
}

// Iter yields single-entity aggregates pinned to the selection's frame, in
// ascending index order.
func (sel Selection) Iter() iter.Seq[Aggregate] {
	return func(yield func(Aggregate) bool) {
		for _, i := range sel.idx {
			agg := Aggregate{kind: sel.kind, index: i, frame: sel.frame, store: sel.store}
			if !yield(agg) {
				return
			}
		}
	}
}

// atomIndices expands this selection to the atom-index set it covers.
func (sel Selection) atomIndices() []int32 {
	return sel.kind.expandToAtoms(sel.store, sel.idx)
}

// Coords returns the strided 3-D view of the current frame's Position
// column, indexed by this selection's atom-index expansion. Fails if no
// frame is pinned.
func (sel Selection) Coords() ([]r3.Vec, error) {
	if sel.frame == noFrame {
		return nil, newError(ErrBounds, "no frame pinned on this selection")
	}
	positions, err := sel.store.PositionsAt(int(sel.frame))
	if err != nil {
		return nil, err
	}
	atoms := sel.atomIndices()
	out := make([]r3.Vec, len(atoms))
	for i, a := range atoms {
		out[i] = positions[a]
	}
	return out, nil
}

// Bonded returns a new selection of the same kind whose index set is the
// one-hop bonded closure of this selection's atoms, projected back to this
// selection's kind. The frame is inherited.
func (sel Selection) Bonded() Selection {
	closure := sel.store.bonds.BondedClosure(sel.atomIndices())
	return Selection{kind: sel.kind, idx: sel.kind.projectAtoms(sel.store, closure), frame: sel.frame, store: sel.store}
}

// Bonds returns the deduplicated edge set incident to this selection's
// atoms.
func (sel Selection) Bonds() []BondEdge {
	return sel.store.bonds.CollectEdges(sel.atomIndices())
}

// AsAtoms produces an Atom selection covering the same atom-index set as
// this selection (the identity, if already Atom kind).
func (sel Selection) AsAtoms() Selection {
	return Selection{kind: KindAtom, idx: sel.atomIndices(), frame: sel.frame, store: sel.store}
}

// AsResidues produces a Residue selection via the canonical cross-projection
// rule: {residue_id[a] : a in the atom expansion, residue_id[a] >= 0}.
func (sel Selection) AsResidues() Selection {
	atoms := sel.atomIndices()
	idx := make([]int32, 0, len(atoms))
	for _, a := range atoms {
		if r := sel.store.residueIDOf(a); r >= 0 {
			idx = append(idx, r)
		}
	}
	return Selection{kind: KindResidue, idx: sortedUniqueInPlace(idx), frame: sel.frame, store: sel.store}
}
