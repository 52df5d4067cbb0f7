package dssp

import (
	"testing"

	"github.com/molpp-go/molpp/mol"
	"gonum.org/v1/gonum/spatial/r3"
)

// buildAlphaHelixStore lays out n alanine residues as a straight, untwisted
// stack of identical N/CA/C/O backbones spaced 1.5 Å apart along z. Each O
// lies about 1.7 Å from the next residue's N, while the i -> i+4 O-N
// distance is about 4.1 Å.
func buildAlphaHelixStore(t *testing.T, n int) *mol.Store {
	t.Helper()
	atomsPerResidue := 4 // N, CA, C, O
	s := mol.NewStore(n * atomsPerResidue)
	s.RegisterResidues(n)

	if _, err := mol.AddProperty[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, false, n*atomsPerResidue); err != nil {
		t.Fatal(err)
	}
	names, err := mol.PropertyAt[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mol.AddProperty[string](s.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, false, n); err != nil {
		t.Fatal(err)
	}
	resNames, err := mol.PropertyAt[string](s.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mol.AddProperty[r3.Vec](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropPosition}, true, n*atomsPerResidue); err != nil {
		t.Fatal(err)
	}
	s.AddFrame()
	pos, err := s.PositionsAt(0)
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < n; r++ {
		resNames[r] = "ALA"
		base := float64(r) * 1.5
		nAtom := int32(r*atomsPerResidue + 0)
		caAtom := int32(r*atomsPerResidue + 1)
		cAtom := int32(r*atomsPerResidue + 2)
		oAtom := int32(r*atomsPerResidue + 3)

		names[nAtom], names[caAtom], names[cAtom], names[oAtom] = "N", "CA", "C", "O"
		pos[nAtom] = r3.Vec{X: 1.4, Y: 0, Z: base - 0.4}
		pos[caAtom] = r3.Vec{X: 1.5, Y: 0, Z: base}
		pos[cAtom] = r3.Vec{X: 1.3, Y: 0.9, Z: base + 0.4}
		pos[oAtom] = r3.Vec{X: 0.2, Y: 1.0, Z: base + 1.8}

		for a := int32(0); a < 4; a++ {
			if err := s.SetResidueID(int32(r)*4+a, int32(r)); err != nil {
				t.Fatal(err)
			}
		}
	}
	return s
}

func TestRunRejectsOutOfRangeFrame(t *testing.T) {
	s := buildAlphaHelixStore(t, 6)
	_, err := Run(s, 5, Options{})
	if err == nil {
		t.Fatal("expected a frame error")
	}
	if _, ok := err.(*FrameError); !ok {
		t.Fatalf("expected *FrameError, got %T", err)
	}
}

func TestRunIdempotent(t *testing.T) {
	s := buildAlphaHelixStore(t, 10)
	first, err := Run(s, 0, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(s, 0, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Residues) != len(second.Residues) {
		t.Fatalf("result length changed between runs: %d vs %d", len(first.Residues), len(second.Residues))
	}
	for i := range first.Residues {
		if first.Residues[i].State != second.Residues[i].State {
			t.Fatalf("residue %d state changed between runs: %v vs %v", i, first.Residues[i].State, second.Residues[i].State)
		}
	}
}

func TestMissingBackboneResidueIsUnknown(t *testing.T) {
	s := mol.NewStore(2)
	s.RegisterResidues(1)
	if _, err := mol.AddProperty[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, false, 2); err != nil {
		t.Fatal(err)
	}
	names, _ := mol.PropertyAt[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	names[0], names[1] = "CA", "C" // missing N and O
	if _, err := mol.AddProperty[r3.Vec](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropPosition}, true, 2); err != nil {
		t.Fatal(err)
	}
	s.AddFrame()
	if err := s.SetResidueID(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetResidueID(1, 0); err != nil {
		t.Fatal(err)
	}

	result, err := Run(s, 0, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Residues[0].State != Unknown {
		t.Fatalf("expected Unknown for a residue missing backbone atoms, got %v", result.Residues[0].State)
	}
}
