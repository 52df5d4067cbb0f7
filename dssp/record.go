package dssp

import (
	"math"

	"github.com/molpp-go/molpp/mol"
	"gonum.org/v1/gonum/spatial/r3"
)

// PropChainID is the residue-level string property DSSP reads for chain
// identity. It is not part of the standard property set — a reader or
// client registers it at runtime, same as any other domain-specific
// property.
const PropChainID = "ChainID"

const chainBreakDist = 2.5 // Å

// record is one residue's prepared backbone geometry, plus chain-bookkeeping
// state computed once up front.
type record struct {
	index       int32
	chainID     string
	proline     bool
	hasBackbone bool
	n, ca, c, o r3.Vec
	h           r3.Vec
	hasH        bool

	// breakBefore is true when this residue starts a new chain segment:
	// either it lacks a full backbone itself, it is the first residue, its
	// predecessor lacked a full backbone, N_i is far from the predecessor's
	// C, or the chain identifiers differ.
	breakBefore bool
}

// buildRecords locates backbone atoms N, Cα, C, O by name within each
// residue, flags proline residues, and reads the optional chain id. Residues
// missing any of the four backbone atoms are not amino-acid-like.
func buildRecords(store *mol.Store, frame int) ([]record, error) {
	nRes, err := store.SizeOfKind(mol.KindResidue)
	if err != nil {
		return nil, err
	}
	names, err := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	if err != nil {
		return nil, err
	}
	resNames, err := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, 0)
	if err != nil {
		return nil, err
	}
	chainIDs, _ := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: PropChainID}, 0)
	positions, err := store.PositionsAt(frame)
	if err != nil {
		return nil, err
	}

	records := make([]record, nRes)
	for r := 0; r < nRes; r++ {
		rec := &records[r]
		rec.index = int32(r)
		if resNames != nil {
			rec.proline = resNames[r] == "PRO"
		}
		if chainIDs != nil {
			rec.chainID = chainIDs[r]
		}

		var foundN, foundCA, foundC, foundO bool
		for _, a := range store.ResidueAtoms(int32(r)) {
			if names == nil || positions == nil {
				continue
			}
			switch names[a] {
			case "N":
				rec.n, foundN = positions[a], true
			case "CA":
				rec.ca, foundCA = positions[a], true
			case "C":
				rec.c, foundC = positions[a], true
			case "O":
				rec.o, foundO = positions[a], true
			}
		}
		rec.hasBackbone = foundN && foundCA && foundC && foundO
	}

	linkChain(records)
	return records, nil
}

// linkChain computes breakBefore and the idealised hydrogen position for
// every non-proline amino-acid residue, in one forward pass.
func linkChain(records []record) {
	for i := range records {
		rec := &records[i]
		if !rec.hasBackbone {
			rec.breakBefore = true
			continue
		}
		if i == 0 {
			rec.breakBefore = true
			continue
		}
		prev := &records[i-1]
		if !prev.hasBackbone {
			rec.breakBefore = true
			continue
		}
		if dist(rec.n, prev.c) > chainBreakDist || rec.chainID != prev.chainID {
			rec.breakBefore = true
			continue
		}
		if !rec.proline {
			dir := sub(prev.c, prev.o)
			if norm(dir) > 0 {
				rec.h = add(rec.n, normalize(dir))
				rec.hasH = true
			}
		}
	}
}

func dist(a, b r3.Vec) float64   { return norm(sub(a, b)) }
func sub(a, b r3.Vec) r3.Vec     { return r3.Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
func add(a, b r3.Vec) r3.Vec     { return r3.Vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }
func norm(v r3.Vec) float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func normalize(v r3.Vec) r3.Vec {
	n := norm(v)
	if n == 0 {
		return v
	}
	return r3.Vec{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// breakBetween reports whether any residue in (i, j] starts a new chain
// segment, meaning i and j are not part of one unbroken run.
func breakBetween(records []record, i, j int) bool {
	if i > j {
		i, j = j, i
	}
	for k := i + 1; k <= j; k++ {
		if records[k].breakBefore {
			return true
		}
	}
	return false
}

// kappa computes the Cα angle at residue i using i-2, i, i+2, or returns the
// 360° sentinel if that window is out of range or crosses a chain break —
// reproducing the original port's overloaded use of 360 as both "no valid
// angle" and "chain break" rather than inventing a cleaner sentinel.
func kappa(records []record, i int) float64 {
	if i-2 < 0 || i+2 >= len(records) {
		return 360
	}
	if breakBetween(records, i-2, i+2) {
		return 360
	}
	if !records[i-2].hasBackbone || !records[i].hasBackbone || !records[i+2].hasBackbone {
		return 360
	}
	return angleDeg(records[i-2].ca, records[i].ca, records[i+2].ca)
}

func angleDeg(a, b, c r3.Vec) float64 {
	u, v := sub(a, b), sub(c, b)
	nu, nv := norm(u), norm(v)
	if nu == 0 || nv == 0 {
		return 360
	}
	cosT := (u.X*v.X + u.Y*v.Y + u.Z*v.Z) / (nu * nv)
	if cosT > 1 {
		cosT = 1
	}
	if cosT < -1 {
		cosT = -1
	}
	return math.Acos(cosT) * 180 / math.Pi
}
