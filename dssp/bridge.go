package dssp

// bridgeKind distinguishes the two bridge directions.
type bridgeKind uint8

const (
	parallel bridgeKind = iota
	antiparallel
)

// bridge is one residue-pair bridge: i and j are the "b" and "e" residues of
// the original mnemonic (a=i-1, b=i, c=i+1, d=j-1, e=j, f=j+1).
type bridge struct {
	i, j int
	kind bridgeKind
}

// findBridges scans all non-endpoint residue pairs separated by at least
// three residues for the parallel/antiparallel hydrogen-bond patterns.
func findBridges(records []record, hb *hbonds) []bridge {
	n := len(records)
	var out []bridge
	for i := 1; i < n-1; i++ {
		for j := i + 3; j < n-1; j++ {
			a, b, c := i-1, i, i+1
			d, e, f := j-1, j, j+1
			if breakBetween(records, a, f) {
				continue
			}
			if !records[a].hasBackbone || !records[b].hasBackbone || !records[c].hasBackbone ||
				!records[d].hasBackbone || !records[e].hasBackbone || !records[f].hasBackbone {
				continue
			}
			par := (hb.exists(c, e) && hb.exists(e, a)) || (hb.exists(f, b) && hb.exists(b, d))
			anti := (hb.exists(c, d) && hb.exists(f, a)) || (hb.exists(e, b) && hb.exists(b, e))
			if par {
				out = append(out, bridge{i: b, j: e, kind: parallel})
			}
			if anti {
				out = append(out, bridge{i: b, j: e, kind: antiparallel})
			}
		}
	}
	return out
}

// ladder is a maximal run of contiguous same-kind bridges.
type ladder struct {
	kind   bridgeKind
	iLo, iHi int
	jLo, jHi int
}

// buildLadders merges contiguous bridges — (i,j) followed by (i+1,j-1) for
// antiparallel, or (i+1,j+1) for parallel — into ladders.
func buildLadders(bridges []bridge) []ladder {
	used := make([]bool, len(bridges))
	byStart := make(map[[2]int]int, len(bridges))
	for idx, br := range bridges {
		byStart[[2]int{br.i, br.j}] = idx
	}

	var ladders []ladder
	for idx, br := range bridges {
		if used[idx] {
			continue
		}
		used[idx] = true
		l := ladder{kind: br.kind, iLo: br.i, iHi: br.i, jLo: br.j, jHi: br.j}
		cur := br
		for {
			var nextKey [2]int
			if cur.kind == antiparallel {
				nextKey = [2]int{cur.i + 1, cur.j - 1}
			} else {
				nextKey = [2]int{cur.i + 1, cur.j + 1}
			}
			nidx, ok := byStart[nextKey]
			if !ok || used[nidx] || bridges[nidx].kind != br.kind {
				break
			}
			used[nidx] = true
			cur = bridges[nidx]
			l.iHi = cur.i
			if cur.kind == antiparallel {
				l.jLo = cur.j
			} else {
				l.jHi = cur.j
			}
		}
		ladders = append(ladders, l)
	}
	return ladders
}

// ladderClose reports whether two ladders of the same kind are near enough
// to bulge-merge into one sheet.
func ladderClose(a, b ladder) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == parallel {
		dj := absInt(b.jLo - a.jHi)
		di := absInt(b.iLo - a.iHi)
		return (dj < 6 && di < 3) || dj < 3
	}
	dj := absInt(b.jLo - a.jHi)
	di := absInt(b.iLo - a.iHi)
	return (dj < 6 && di < 3) || dj < 3
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sheet groups ladders into maximal close-merge clusters.
type sheet struct{ ladders []ladder }

func buildSheets(ladders []ladder) []sheet {
	n := len(ladders)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ladderClose(ladders[i], ladders[j]) {
				union(i, j)
			}
		}
	}
	groups := make(map[int][]ladder)
	for i := 0; i < n; i++ {
		r := find(i)
		groups[r] = append(groups[r], ladders[i])
	}
	out := make([]sheet, 0, len(groups))
	for _, g := range groups {
		out = append(out, sheet{ladders: g})
	}
	return out
}

// applyBridgeStates marks Strand for residues in ladders of length >= 2
// (spanning more than one bridge step), Bridge for residues in single-bridge
// ladders, leaving everything else Loop.
func applyBridgeStates(states []State, sheets []sheet) {
	for _, sh := range sheets {
		for _, l := range sh.ladders {
			length := l.iHi - l.iLo + 1
			state := Bridge
			if length >= 2 {
				state = Strand
			}
			for i := l.iLo; i <= l.iHi; i++ {
				states[i] = state
			}
			lo, hi := l.jLo, l.jHi
			if lo > hi {
				lo, hi = hi, lo
			}
			for j := lo; j <= hi; j++ {
				states[j] = state
			}
		}
	}
}
