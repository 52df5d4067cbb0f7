package spatial

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// S3 Spatial pairs.
func TestPairsS3(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}
	g := New(points, 1.0)

	wants := map[[2]int32]float64{
		{1, 0}: 1,
		{2, 0}: 1,
		{2, 1}: math.Sqrt2,
	}

	got := map[[2]int32]float64{}
	for p := range g.Pairs(1.5) {
		if p.I <= p.J {
			t.Fatalf("expected I > J, got I=%d J=%d", p.I, p.J)
		}
		got[[2]int32{p.I, p.J}] = math.Sqrt(p.D2)
	}

	if len(got) != len(wants) {
		t.Fatalf("expected %d pairs, got %d: %v", len(wants), len(got), got)
	}
	for k, wantD := range wants {
		d, ok := got[k]
		if !ok {
			t.Fatalf("missing expected pair %v", k)
		}
		if math.Abs(d-wantD) > 1e-9 {
			t.Fatalf("pair %v: expected distance %v, got %v", k, wantD, d)
		}
	}
}

func TestQueryIncludesSelf(t *testing.T) {
	points := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}}
	g := New(points, 1.0)

	found := map[int32]bool{}
	for j := range g.Query(0, 1.0) {
		found[j] = true
	}
	if !found[0] {
		t.Fatal("query must include the point itself")
	}
	if !found[1] {
		t.Fatal("query must include points within range")
	}
	if found[2] {
		t.Fatal("query must not include points out of range")
	}
}
