package guess

import (
	"testing"

	"github.com/molpp-go/molpp/mol"
	"gonum.org/v1/gonum/spatial/r3"
)

func buildResidueStore(t *testing.T, resName string, atomNames []string) *mol.Store {
	t.Helper()
	s := mol.NewStore(len(atomNames))
	s.RegisterResidues(1)

	if _, err := mol.AddProperty[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, false, len(atomNames)); err != nil {
		t.Fatal(err)
	}
	names, err := mol.PropertyAt[string](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	if err != nil {
		t.Fatal(err)
	}
	copy(names, atomNames)

	if _, err := mol.AddProperty[string](s.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, false, 1); err != nil {
		t.Fatal(err)
	}
	resNames, err := mol.PropertyAt[string](s.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, 0)
	if err != nil {
		t.Fatal(err)
	}
	resNames[0] = resName

	for a := range atomNames {
		if err := s.SetResidueID(int32(a), 0); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestResidueGuesserPhenylalanineAromaticRing(t *testing.T) {
	atomNames := []string{"CA", "CB", "CG", "CD1", "CD2", "CE1", "CE2", "CE3", "CZ"}
	s := buildResidueStore(t, "PHE", atomNames)

	if err := ResidueGuesser(s, 1); err != nil {
		t.Fatal(err)
	}

	idx := make(map[string]int32, len(atomNames))
	for i, n := range atomNames {
		idx[n] = int32(i)
	}

	bond, ok := s.Bonds().Edge(idx["CE3"], idx["CZ"])
	if !ok {
		t.Fatal("expected a CE3-CZ bond")
	}
	if bond.Order != 1 || !bond.Aromatic {
		t.Fatalf("expected CE3-CZ order 1 aromatic, got %+v", bond)
	}
	if !bond.GuessedTopology {
		t.Fatal("expected CE3-CZ to be flagged as guessed")
	}
}

func TestResidueGuesserGlutamineAmideDouble(t *testing.T) {
	atomNames := []string{"CA", "CB", "CG", "CD", "OE1", "NE2"}
	s := buildResidueStore(t, "GLN", atomNames)

	if err := ResidueGuesser(s, 1); err != nil {
		t.Fatal(err)
	}

	idx := make(map[string]int32, len(atomNames))
	for i, n := range atomNames {
		idx[n] = int32(i)
	}

	bond, ok := s.Bonds().Edge(idx["CD"], idx["OE1"])
	if !ok {
		t.Fatal("expected a CD-OE1 bond")
	}
	if bond.Order != 2 || bond.Aromatic {
		t.Fatalf("expected CD-OE1 order 2 non-aromatic, got %+v", bond)
	}
}

func TestResidueGuesserIdempotent(t *testing.T) {
	s := buildResidueStore(t, "GLN", []string{"CA", "CB", "CG", "CD", "OE1", "NE2"})
	if err := ResidueGuesser(s, 1); err != nil {
		t.Fatal(err)
	}
	before := len(s.Bonds().CollectEdges([]int32{0, 1, 2, 3, 4, 5}))
	if err := ResidueGuesser(s, 1); err != nil {
		t.Fatal(err)
	}
	after := len(s.Bonds().CollectEdges([]int32{0, 1, 2, 3, 4, 5}))
	if before != after {
		t.Fatalf("expected idempotent edge count, got %d then %d", before, after)
	}
}

func TestElementDistanceGuesserBondsCloseAtomsOnly(t *testing.T) {
	s := mol.NewStore(3)
	if _, err := mol.AddProperty[int32](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropAtomicNumber}, false, 3); err != nil {
		t.Fatal(err)
	}
	nums, err := mol.PropertyAt[int32](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropAtomicNumber}, 0)
	if err != nil {
		t.Fatal(err)
	}
	nums[0], nums[1], nums[2] = 6, 6, 6 // carbon

	if _, err := mol.AddProperty[r3.Vec](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropPosition}, true, 3); err != nil {
		t.Fatal(err)
	}
	s.AddFrame()
	pos, err := s.PositionsAt(0)
	if err != nil {
		t.Fatal(err)
	}
	pos[0] = r3.Vec{X: 0, Y: 0, Z: 0}
	pos[1] = r3.Vec{X: 1.5, Y: 0, Z: 0}  // within bonding distance of atom 0
	pos[2] = r3.Vec{X: 20, Y: 0, Z: 0} // far away

	if err := ElementDistanceGuesser(s, 0); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.Bonds().Edge(0, 1); !ok {
		t.Fatal("expected atoms 0 and 1 to be bonded")
	}
	if _, ok := s.Bonds().Edge(0, 2); ok {
		t.Fatal("did not expect atoms 0 and 2 to be bonded")
	}
}
