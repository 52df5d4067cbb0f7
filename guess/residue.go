package guess

import "github.com/molpp-go/molpp/mol"

// ResidueGuesser adds bonds within each residue named in the built-in
// template table, matching template bonds by atom name within the residue.
// An atom name that doesn't resolve to exactly one atom in the residue is
// skipped (missing or duplicate atoms leave that bond unguessed rather than
// erroring the whole residue). An existing bond keeps its topology flag; its
// order is filled in only when it is <= 0, and a template aromatic flag is
// set on it. Re-running the guesser adds no new edges.
func ResidueGuesser(store *mol.Store, nResidues int) error {
	names, err := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	if err != nil {
		return err
	}
	if names == nil {
		return nil
	}
	resNames, err := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, 0)
	if err != nil {
		return err
	}
	if resNames == nil {
		return nil
	}

	for r := 0; r < nResidues; r++ {
		template, ok := residueTemplates[resNames[r]]
		if !ok {
			continue
		}
		atoms := store.ResidueAtoms(int32(r))
		byName := make(map[string]int32, len(atoms))
		ambiguous := make(map[string]bool)
		for _, a := range atoms {
			name := names[a]
			if _, seen := byName[name]; seen {
				ambiguous[name] = true
				continue
			}
			byName[name] = a
		}

		for _, tb := range template {
			if ambiguous[tb.A1] || ambiguous[tb.A2] {
				continue
			}
			u, ok1 := byName[tb.A1]
			v, ok2 := byName[tb.A2]
			if !ok1 || !ok2 {
				continue
			}
			bond, added := store.Bonds().AddEdge(u, v)
			if added {
				bond.GuessedTopology = true
			}
			if bond.Order <= 0 {
				bond.Order = tb.Order
				bond.GuessedOrder = true
			}
			if tb.Aromatic {
				bond.Aromatic = true
			}
		}
	}
	return nil
}
