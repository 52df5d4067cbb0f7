package mol

import "gonum.org/v1/gonum/spatial/r3"

// noFrame marks an aggregate or selection as "topology only, coordinates
// unavailable".
const noFrame = int32(-1)

// Aggregate is a single-entity cursor: an index plus an optional frame plus
// a store reference. Equality compares the full triple, so two Aggregate
// values are == iff they reference the same kind, index, frame and store.
type Aggregate struct {
	kind  Kind
	index int32
	frame int32
	store *Store
}

// NewAtomAggregate returns an Atom aggregate with no frame set.
func NewAtomAggregate(s *Store, index int32) Aggregate {
	return Aggregate{kind: KindAtom, index: index, frame: noFrame, store: s}
}

// NewResidueAggregate returns a Residue aggregate with no frame set.
func NewResidueAggregate(s *Store, index int32) Aggregate {
	return Aggregate{kind: KindResidue, index: index, frame: noFrame, store: s}
}

// Kind reports which entity kind this aggregate is over.
func (a Aggregate) Kind() Kind { return a.kind }

// Index is this aggregate's own index (within its kind's space).
func (a Aggregate) Index() int32 { return a.index }

// Frame returns the current frame and whether one is set.
func (a Aggregate) Frame() (int32, bool) {
	if a.frame == noFrame {
		return 0, false
	}
	return a.frame, true
}

// WithFrame returns a copy pinned to frame f. f outside [0, F) is a bounds
// error.
func (a Aggregate) WithFrame(f int32) (Aggregate, error) {
	if f < 0 || int(f) >= a.store.NumFrames() {
		return a, newError(ErrBounds, "frame %d out of range [0,%d)", f, a.store.NumFrames())
	}
	a.frame = f
	return a, nil
}

// WithoutFrame returns a copy with no frame set (legal: topology only).
func (a Aggregate) WithoutFrame() Aggregate {
	a.frame = noFrame
	return a
}

// atomIndices expands this aggregate to the atom indices it covers.
func (a Aggregate) atomIndices() []int32 {
	return a.kind.expandToAtoms(a.store, []int32{a.index})
}

// Coords returns the position of every atom this aggregate covers, in the
// pinned frame: a 1-element slice for an Atom, the residue's atom-set slice
// for a Residue. Fails with a frame error if no frame is pinned.
func (a Aggregate) Coords() ([]r3.Vec, error) {
	if a.frame == noFrame {
		return nil, newError(ErrBounds, "no frame pinned on this aggregate")
	}
	positions, err := a.store.PositionsAt(int(a.frame))
	if err != nil {
		return nil, err
	}
	atoms := a.atomIndices()
	out := make([]r3.Vec, len(atoms))
	for i, idx := range atoms {
		out[i] = positions[idx]
	}
	return out, nil
}

// Bonds returns the deduplicated edges incident to this aggregate's atoms.
func (a Aggregate) Bonds() []BondEdge {
	return a.store.bonds.CollectEdges(a.atomIndices())
}

// AggregateProperty reads property name for this aggregate at its own index
// (fails if the aggregate's kind does not match the property's kind, or the
// property is unregistered).
func AggregateProperty[T PropertyValue](a Aggregate, name string) (T, error) {
	var zero T
	col, err := PropertyAt[T](a.store.props, PropertyKey{Kind: a.kind, Name: name}, int(a.frame))
	if err != nil {
		return zero, err
	}
	if col == nil {
		return zero, newError(ErrBounds, "frame %d not available for property %s", a.frame, name)
	}
	if int(a.index) >= len(col) {
		return zero, newError(ErrBounds, "index %d out of range for property %s", a.index, name)
	}
	return col[a.index], nil
}

// SetAggregateProperty writes property name for this aggregate at its own
// index.
func SetAggregateProperty[T PropertyValue](a Aggregate, name string, v T) error {
	col, err := PropertyAt[T](a.store.props, PropertyKey{Kind: a.kind, Name: name}, int(a.frame))
	if err != nil {
		return err
	}
	if col == nil {
		return newError(ErrBounds, "frame %d not available for property %s", a.frame, name)
	}
	if int(a.index) >= len(col) {
		return newError(ErrBounds, "index %d out of range for property %s", a.index, name)
	}
	col[a.index] = v
	return nil
}
