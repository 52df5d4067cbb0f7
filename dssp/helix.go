package dssp

// helixFlag is the per-stride per-residue annotation accumulated before
// painting.
type helixFlag uint8

const (
	flagNone helixFlag = iota
	flagStart
	flagEnd
	flagStartEnd
	flagMiddle
)

// strideState maps a helix stride length to its painted state.
func strideState(n int) State {
	switch n {
	case 3:
		return Helix3
	case 5:
		return Helix5
	default:
		return Helix
	}
}

// applyHelices runs the stride-3/4/5 scan, painting states and collecting
// turn-lookback flags for residues that end up not painted.
func applyHelices(records []record, hb *hbonds, states []State, preferPi bool) []bool {
	n := len(records)
	turnLookback := make([]bool, n)

	for _, stride := range []int{3, 4, 5} {
		flags := make([]helixFlag, n)
		for i := 0; i+stride < n; i++ {
			if breakBetween(records, i, i+stride) {
				continue
			}
			if !hb.exists(i+stride, i) {
				continue
			}
			end := i + stride
			if flags[end] == flagEnd || flags[end] == flagStartEnd {
				flags[end] = flagStartEnd
			} else {
				flags[end] = flagEnd
			}
			if flags[i] == flagEnd || flags[i] == flagStartEnd {
				flags[i] = flagStartEnd
			} else {
				flags[i] = flagStart
			}
			for k := i + 1; k < end; k++ {
				if flags[k] == flagNone {
					flags[k] = flagMiddle
				}
				turnLookback[k] = true
			}
			turnLookback[i] = true
			turnLookback[end] = true
		}

		isStart := func(i int) bool { return flags[i] == flagStart || flags[i] == flagStartEnd }
		target := strideState(stride)
		for i := 0; i+1 < n; i++ {
			if !isStart(i) || !isStart(i+1) {
				continue
			}
			for k := i; k < i+stride && k < n; k++ {
				switch states[k] {
				case Bridge, Strand:
					// sheet structure always wins over helix painting.
				case Helix:
					if target == Helix5 && preferPi {
						states[k] = target
					}
				default:
					states[k] = target
				}
			}
		}
	}
	return turnLookback
}

// applyTurnsAndBends assigns Turn to still-Loop residues within a helix
// lookback window, and Bend to still-Loop residues with a bent Cα angle that
// weren't already marked Turn.
func applyTurnsAndBends(records []record, states []State, turnLookback []bool) {
	for i := range states {
		if states[i] != Loop {
			continue
		}
		if turnLookback[i] {
			states[i] = Turn
		}
	}
	for i := range states {
		if states[i] != Loop {
			continue
		}
		k := kappa(records, i)
		if k > 70 && k != 360 {
			states[i] = Bend
		}
	}
}
