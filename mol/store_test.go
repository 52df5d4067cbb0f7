package mol

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestFrameLifecycle(t *testing.T) {
	s := NewStore(10)
	if _, err := AddProperty[r3.Vec](s.props, PropertyKey{Kind: KindAtom, Name: PropPosition}, true, 10); err != nil {
		t.Fatal(err)
	}
	for f := 0; f < 5; f++ {
		idx := s.AddFrame()
		col, err := PropertyAt[r3.Vec](s.props, PropertyKey{Kind: KindAtom, Name: PropPosition}, idx)
		if err != nil {
			t.Fatal(err)
		}
		for i := range col {
			col[i] = r3.Vec{X: float64(f), Y: float64(f), Z: float64(f)}
		}
	}
	if s.NumFrames() != 5 {
		t.Fatalf("expected 5 frames, got %d", s.NumFrames())
	}

	s.RemoveFrame(2)
	if s.NumFrames() != 4 {
		t.Fatalf("expected 4 frames after removal, got %d", s.NumFrames())
	}
	wantMarkers := []float64{0, 1, 3, 4}
	for k, want := range wantMarkers {
		col, err := PropertyAt[r3.Vec](s.props, PropertyKey{Kind: KindAtom, Name: PropPosition}, k)
		if err != nil {
			t.Fatal(err)
		}
		if col[0].X != want {
			t.Fatalf("frame %d: expected marker %v, got %v", k, want, col[0].X)
		}
	}
}

func TestPropertySizeInvariant(t *testing.T) {
	s := NewStore(4)
	traj, err := AddProperty[float32](s.props, PropertyKey{Kind: KindAtom, Name: PropMass}, false, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(traj.columns[0]) != 4 {
		t.Fatalf("expected size 4, got %d", len(traj.columns[0]))
	}
	if err := s.ResizeKind(KindAtom, 6); err != nil {
		t.Fatal(err)
	}
	col, _ := PropertyAt[float32](s.props, PropertyKey{Kind: KindAtom, Name: PropMass}, 0)
	if len(col) != 6 {
		t.Fatalf("expected resized column of 6, got %d", len(col))
	}
}

func TestResidueIDInvariant(t *testing.T) {
	s := NewStore(6)
	s.RegisterResidues(3)
	assign := []int32{0, 0, 1, 1, 2, 2}
	for a, r := range assign {
		if err := s.SetResidueID(int32(a), r); err != nil {
			t.Fatal(err)
		}
	}
	for a, r := range assign {
		if got := s.ResidueIDOf(int32(a)); got != r {
			t.Fatalf("atom %d: expected residue_id %d, got %d", a, r, got)
		}
		if !containsSorted(sortedUniqueCopy(s.residueAtoms(r)), int32(a)) {
			t.Fatalf("atom %d missing from residue_atoms(%d)", a, r)
		}
	}

	// Reassign atom 2 from residue 1 to residue 0.
	if err := s.SetResidueID(2, 0); err != nil {
		t.Fatal(err)
	}
	if containsSorted(sortedUniqueCopy(s.residueAtoms(1)), 2) {
		t.Fatal("atom 2 should no longer be in residue 1's atom set")
	}
	if !containsSorted(sortedUniqueCopy(s.residueAtoms(0)), 2) {
		t.Fatal("atom 2 should now be in residue 0's atom set")
	}
	if s.ResidueIDOf(2) != 0 {
		t.Fatalf("expected residue_id 0, got %d", s.ResidueIDOf(2))
	}
}

// S2 Cross-projection.
func TestCrossProjection(t *testing.T) {
	s := NewStore(6)
	s.RegisterResidues(3)
	assign := []int32{0, 0, 1, 1, 2, 2}
	for a, r := range assign {
		if err := s.SetResidueID(int32(a), r); err != nil {
			t.Fatal(err)
		}
	}

	atoms := NewSelection(s, KindAtom, []int32{1, 3})
	residues := atoms.AsResidues()
	if got := residues.Indices(); !equalInt32(got, []int32{0, 1}) {
		t.Fatalf("AsResidues: expected {0,1}, got %v", got)
	}

	residueSel := NewSelection(s, KindResidue, []int32{0, 2})
	atomSel := residueSel.AsAtoms()
	if got := atomSel.Indices(); !equalInt32(got, []int32{0, 1, 4, 5}) {
		t.Fatalf("AsAtoms: expected {0,1,4,5}, got %v", got)
	}
}

func TestBondGraphNoSelfLoopOrMultiEdge(t *testing.T) {
	s := NewStore(4)
	if _, ok := s.bonds.AddEdge(1, 1); ok {
		t.Fatal("self-loop must be refused")
	}
	b1, ok := s.bonds.AddEdge(0, 1)
	if !ok {
		t.Fatal("expected edge creation")
	}
	b1.Order = 1
	b2, _ := s.bonds.AddEdge(1, 0)
	if b1 != b2 {
		t.Fatal("re-adding the same pair (either order) must return the same edge")
	}
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
