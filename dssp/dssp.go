package dssp

import (
	"fmt"

	"github.com/molpp-go/molpp/mol"
)

// FrameError reports an out-of-range frame passed to Run.
type FrameError struct {
	Frame     int
	NumFrames int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("dssp: frame %d out of range [0,%d)", e.Frame, e.NumFrames)
}

// Result is the outcome of one Run: a classification per residue plus
// descriptive statistics over the classification.
type Result struct {
	Residues []Residue
	Summary  Summary
}

// Options configures optional deviations from the default classification.
type Options struct {
	// PreferPi lets a pi-helix (stride 5) overpaint an already-assigned
	// alpha-helix (stride 4) residue; off by default, matching the
	// original's conservative default.
	PreferPi bool
}

// Run classifies every residue in store at frame into one of the nine
// secondary-structure states. Deterministic and idempotent: running twice on
// an unchanged store produces identical results. Residues missing any of the
// four backbone atoms (N, Cα, C, O) are always Unknown.
func Run(store *mol.Store, frame int, opts Options) (Result, error) {
	if frame < 0 || frame >= store.NumFrames() {
		return Result{}, &FrameError{Frame: frame, NumFrames: store.NumFrames()}
	}

	records, err := buildRecords(store, frame)
	if err != nil {
		return Result{}, err
	}

	states := make([]State, len(records))
	for i, rec := range records {
		if rec.hasBackbone {
			states[i] = Loop
		} else {
			states[i] = Unknown
		}
	}

	hb := buildHBonds(records)
	bridges := findBridges(records, hb)
	ladders := buildLadders(bridges)
	sheets := buildSheets(ladders)
	applyBridgeStates(states, sheets)

	turnLookback := applyHelices(records, hb, states, opts.PreferPi)
	applyTurnsAndBends(records, states, turnLookback)

	residues := make([]Residue, len(records))
	for i, rec := range records {
		st := states[i]
		if !rec.hasBackbone {
			st = Unknown
		}
		residues[i] = Residue{
			Index:    rec.index,
			ChainID:  rec.chainID,
			Proline:  rec.proline,
			Backbone: rec.hasBackbone,
			State:    st,
		}
	}

	return Result{
		Residues: residues,
		Summary:  computeSummary(residues, records, ladders),
	}, nil
}
