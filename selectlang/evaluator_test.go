package selectlang

import (
	"testing"

	"github.com/molpp-go/molpp/mol"
)

// buildS1Store creates 5 residues x 2 atoms with resid[r] = r.
func buildS1Store(t *testing.T) *mol.Store {
	t.Helper()
	s := mol.NewStore(10)
	s.RegisterResidues(5)
	if _, err := mol.AddProperty[int32](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropResID}, false, 10); err != nil {
		t.Fatal(err)
	}
	col, err := mol.PropertyAt[int32](s.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropResID}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for a := range col {
		col[a] = int32(a / 2)
		if err := s.SetResidueID(int32(a), int32(a/2)); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func evalQuery(t *testing.T, s *mol.Store, q string) []int32 {
	t.Helper()
	ast, err := Parse(q)
	if err != nil {
		t.Fatalf("parse %q: %v", q, err)
	}
	got, err := Evaluate(ast, s, nil)
	if err != nil {
		t.Fatalf("evaluate %q: %v", q, err)
	}
	return got
}

func TestS1PrecedenceAndEvaluation(t *testing.T) {
	s := buildS1Store(t)

	if got := evalQuery(t, s, "resid 1 or resid 2 and resid 3"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := evalQuery(t, s, "resid 1 or resid 2 or resid 3"); !equal(got, []int32{2, 3, 4, 5, 6, 7}) {
		t.Fatalf("expected {2,3,4,5,6,7}, got %v", got)
	}
	if got := evalQuery(t, s, "resid 1 and not (resid 2 or resid 3)"); !equal(got, []int32{2, 3}) {
		t.Fatalf("expected {2,3}, got %v", got)
	}
}

func TestNotIsUniverseMinusPredicate(t *testing.T) {
	s := buildS1Store(t)
	universe := evalQuery(t, s, "all")
	predicate := evalQuery(t, s, "resid 2")
	not := evalQuery(t, s, "not resid 2")

	diff := map[int32]bool{}
	for _, v := range universe {
		diff[v] = true
	}
	for _, v := range predicate {
		delete(diff, v)
	}
	if len(diff) != len(not) {
		t.Fatalf("expected universe\\predicate to have %d elements, not has %d", len(diff), len(not))
	}
	for _, v := range not {
		if !diff[v] {
			t.Fatalf("not-result contains %d which is not in universe\\predicate", v)
		}
	}
}

func TestIndexRangeAndList(t *testing.T) {
	s := buildS1Store(t)
	if got := evalQuery(t, s, "index 0:2 7"); !equal(got, []int32{0, 1, 2, 7}) {
		t.Fatalf("expected {0,1,2,7}, got %v", got)
	}
}

func TestParseErrorFormat(t *testing.T) {
	_, err := Parse("resid 1 and")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var pe *ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Column <= 0 {
		t.Fatalf("expected a positive 1-based column, got %d", pe.Column)
	}
}

func asParseError(err error, out **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*out = pe
	}
	return ok
}

func equal(a, b []int32) bool {
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
