package guess

import (
	"github.com/molpp-go/molpp/mol"
	"github.com/molpp-go/molpp/spatial"
)

// tolerance added to the sum of covalent radii before squaring, matching the
// original guesser's slack allowance for bond-length noise in experimental
// structures.
const elementDistanceTolerance = 0.4

// minBondDist2 rejects near-coincident atoms (overlapping positions, usually
// alternate conformers) from being guessed as bonded.
const minBondDist2 = 0.16 // 0.4 Å

// ElementDistanceGuesser adds bonds between atoms whose inter-atomic
// distance falls within the sum of their elements' covalent radii plus
// tolerance, using atomic number and the atom's position at frame. Atoms
// lacking a known atomic number, or whose position is unavailable, are
// skipped. Idempotent: re-running over an unchanged store adds no new edges.
func ElementDistanceGuesser(store *mol.Store, frame int) error {
	n, err := store.SizeOfKind(mol.KindAtom)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	atomicNumbers, err := mol.PropertyAt[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropAtomicNumber}, 0)
	if err != nil {
		return err
	}
	if atomicNumbers == nil {
		return nil
	}

	positions, err := store.PositionsAt(frame)
	if err != nil {
		return err
	}
	if positions == nil {
		return nil
	}

	// Candidate pairs come from the spatial index with a fixed 3.0 Å cutoff,
	// also used as the grid cell size; pairs farther apart are never bonded,
	// even where the covalent-radius sum plus tolerance exceeds 3.0 Å.
	maxCutoff := 3.0
	grid := spatial.New(positions, maxCutoff)

	for pair := range grid.Pairs(maxCutoff) {
		i, j := pair.I, pair.J
		if pair.D2 < minBondDist2 {
			continue
		}
		zi, zj := atomicNumbers[i], atomicNumbers[j]
		ri, ok1 := covalentRadius(zi)
		rj, ok2 := covalentRadius(zj)
		if !ok1 || !ok2 {
			continue
		}
		cutoff := ri + rj + elementDistanceTolerance
		if pair.D2 > cutoff*cutoff {
			continue
		}
		bond, added := store.Bonds().AddEdge(i, j)
		if added {
			bond.GuessedTopology = true
			bond.Order = 1
			bond.GuessedOrder = true
		}
	}
	return nil
}
