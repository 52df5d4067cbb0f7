// Package guess implements the two bond guessers: a tabulated-residue
// guesser and an element-distance geometric guesser, both idempotent.
package guess

// covalentRadii is a short, immutable lookup of covalent radii (Å) by
// atomic number, supplemented from the original element-table reference
// data rather than left unspecified. Only the handful of elements that
// commonly appear in protein/ligand/metal-cofactor structures are listed;
// an atomic number outside this table is "unknown" for guessing purposes.
var covalentRadii = map[int32]float64{
	1:  0.31, // H
	6:  0.76, // C
	7:  0.71, // N
	8:  0.66, // O
	12: 1.41, // Mg
	15: 1.07, // P
	16: 1.05, // S
	17: 1.02, // Cl
	20: 1.76, // Ca
	26: 1.32, // Fe
	30: 1.22, // Zn
}

func covalentRadius(z int32) (float64, bool) {
	r, ok := covalentRadii[z]
	return r, ok
}

// TemplateBond is one tabulated bond between two named atoms within a
// residue template.
type TemplateBond struct {
	A1, A2   string
	Order    int
	Aromatic bool
}

// residueTemplates is a short built-in subset of the tabulated residue
// database: enough common amino-acid sidechain bonds to exercise the
// guesser end to end. A complete table is reader/data-file territory, out
// of the core's scope per its own non-goals.
var residueTemplates = map[string][]TemplateBond{
	"PHE": {
		{A1: "CA", A2: "CB", Order: 1},
		{A1: "CB", A2: "CG", Order: 1},
		{A1: "CG", A2: "CD1", Order: 1, Aromatic: true},
		{A1: "CG", A2: "CD2", Order: 2, Aromatic: true},
		{A1: "CD1", A2: "CE1", Order: 2, Aromatic: true},
		{A1: "CD2", A2: "CE2", Order: 1, Aromatic: true},
		{A1: "CE1", A2: "CZ", Order: 1, Aromatic: true},
		{A1: "CE2", A2: "CZ", Order: 2, Aromatic: true},
		{A1: "CE3", A2: "CZ", Order: 1, Aromatic: true},
	},
	"GLN": {
		{A1: "CA", A2: "CB", Order: 1},
		{A1: "CB", A2: "CG", Order: 1},
		{A1: "CG", A2: "CD", Order: 1},
		{A1: "CD", A2: "OE1", Order: 2},
		{A1: "CD", A2: "NE2", Order: 1},
	},
}

// ResidueTemplates exposes the built-in table for callers assembling a
// larger reader-supplied set.
func ResidueTemplates() map[string][]TemplateBond { return residueTemplates }
