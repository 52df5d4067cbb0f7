package mol

import "gonum.org/v1/gonum/spatial/r3"

// Store composes the property container and the bond graph, and owns the
// residue_id invariant: reassigning an atom's residue keeps both the atom's
// ResID-independent residue_id property and the residue's atom set
// consistent in one step. It is the sole owner of every property column and
// of the bond graph.
type Store struct {
	props     *PropertyContainer
	bonds     *BondGraph
	residueID []int32 // len == N_Atom; -1 = unassigned
}

// NewStore creates a store with nAtom atoms and Residue unregistered. No
// property is registered; callers add ResID and the other standard
// properties themselves.
func NewStore(nAtom int) *Store {
	s := &Store{
		props: NewPropertyContainer(),
		bonds: NewBondGraph(nAtom),
	}
	s.props.RegisterKind(KindAtom, nAtom)
	s.residueID = make([]int32, nAtom)
	for i := range s.residueID {
		s.residueID[i] = -1
	}
	return s
}

// RegisterResidues declares the Residue kind with the given size. Must be
// called before any Residue property or selection is used.
func (s *Store) RegisterResidues(n int) {
	s.props.RegisterKind(KindResidue, n)
}

// Properties exposes the underlying property container for generic
// AddProperty/PropertyAt calls.
func (s *Store) Properties() *PropertyContainer { return s.props }

// Bonds exposes the underlying bond graph.
func (s *Store) Bonds() *BondGraph { return s.bonds }

// SizeOfKind, ResizeKind, NumFrames, AddFrame, RemoveFrame delegate to the
// property container; atom resizes additionally grow the bond graph and the
// residue_id backing array.

func (s *Store) SizeOfKind(k Kind) (int, error) { return s.props.SizeOfKind(k) }

func (s *Store) ResizeKind(k Kind, n int) error {
	if err := s.props.ResizeKind(k, n); err != nil {
		return err
	}
	if k == KindAtom {
		if n > len(s.residueID) {
			grown := make([]int32, n)
			copy(grown, s.residueID)
			for i := len(s.residueID); i < n; i++ {
				grown[i] = -1
			}
			s.residueID = grown
		} else {
			s.residueID = s.residueID[:n]
		}
		s.bonds.AddNodesUpTo(n)
	}
	return nil
}

func (s *Store) NumFrames() int    { return s.props.NumFrames() }
func (s *Store) AddFrame() int     { return s.props.AddFrame() }
func (s *Store) RemoveFrame(f int) { s.props.RemoveFrame(f) }

// ResidueIDOf returns atom a's residue_id (-1 if unassigned).
func (s *Store) ResidueIDOf(a int32) int32 { return s.residueID[a] }

func (s *Store) residueIDOf(a int32) int32 { return s.residueID[a] }

// SetResidueID reassigns atom a from its old residue (if any) to residue r
// (or -1 to unassign), in one atomic step: the old residue's atom set no
// longer contains a, the new one does.
func (s *Store) SetResidueID(a int32, r int32) error {
	if a < 0 || int(a) >= len(s.residueID) {
		return newError(ErrBounds, "atom index %d out of range", a)
	}
	if r >= 0 {
		n, err := s.props.SizeOfKind(KindResidue)
		if err != nil {
			return err
		}
		if int(r) >= n {
			return newError(ErrBounds, "residue index %d out of range", r)
		}
	}
	s.residueID[a] = r
	return nil
}

// residueAtoms returns the sorted set of atoms whose residue_id equals r.
func (s *Store) residueAtoms(r int32) []int32 {
	var out []int32
	for a, rid := range s.residueID {
		if rid == r {
			out = append(out, int32(a))
		}
	}
	return out
}

// ResidueAtoms is the exported form of residueAtoms.
func (s *Store) ResidueAtoms(r int32) []int32 { return s.residueAtoms(r) }

// PositionsAt returns the Position column for the given frame.
func (s *Store) PositionsAt(frame int) ([]r3.Vec, error) {
	return PropertyAt[r3.Vec](s.props, PropertyKey{Kind: KindAtom, Name: PropPosition}, frame)
}
