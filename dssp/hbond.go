package dssp

import "sort"

const (
	hbCoupling  = -27.888
	hbSaturated = -9.9
	hbMinDist   = 0.5
	hbThreshold = -0.5
	caCutoff    = 9.0
)

// hbPartner is one retained acceptor or donor partner with its energy.
type hbPartner struct {
	partner int
	energy  float64
}

// hbonds holds, per residue, the two strongest partners it donates to
// (its N-H to the partner's C=O) and the two strongest partners it accepts
// from (the partner's N-H to its own C=O).
type hbonds struct {
	donates [][]hbPartner // donates[i] = partners i's NH bonds to
	accepts [][]hbPartner // accepts[i] = partners whose NH bonds to i's C=O
}

// energy evaluates the CHARMM-style electrostatic approximation between
// donor residue d (N, H) and acceptor residue a (C, O).
func energy(records []record, d, a int) float64 {
	don, acc := &records[d], &records[a]
	if don.proline || !don.hasH || !don.hasBackbone || !acc.hasBackbone {
		return 0
	}
	rON := dist(acc.o, don.n)
	rCH := dist(acc.c, don.h)
	rCN := dist(acc.c, don.n)
	rOH := dist(acc.o, don.h)
	if rON < hbMinDist || rCH < hbMinDist || rCN < hbMinDist || rOH < hbMinDist {
		return hbSaturated
	}
	e := hbCoupling * (1/rON - 1/rCH + 1/rCN - 1/rOH)
	if e < hbSaturated {
		e = hbSaturated
	}
	return e
}

// buildHBonds evaluates every Cα-proximate residue pair in both donor
// directions and retains the two strongest partners per role per residue.
func buildHBonds(records []record) *hbonds {
	n := len(records)
	hb := &hbonds{donates: make([][]hbPartner, n), accepts: make([][]hbPartner, n)}

	considerPair := func(d, a int) {
		e := energy(records, d, a)
		if e >= hbThreshold {
			return
		}
		hb.donates[d] = insertPartner(hb.donates[d], hbPartner{partner: a, energy: e})
		hb.accepts[a] = insertPartner(hb.accepts[a], hbPartner{partner: d, energy: e})
	}

	for i := 0; i < n; i++ {
		if !records[i].hasBackbone {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !records[j].hasBackbone {
				continue
			}
			if dist(records[i].ca, records[j].ca) >= caCutoff {
				continue
			}
			considerPair(i, j)
			considerPair(j, i)
		}
	}
	return hb
}

func insertPartner(list []hbPartner, p hbPartner) []hbPartner {
	list = append(list, p)
	sort.Slice(list, func(a, b int) bool { return list[a].energy < list[b].energy })
	if len(list) > 2 {
		list = list[:2]
	}
	return list
}

// exists reports whether d donates a hydrogen bond to a (E < -0.5, retained
// among d's two strongest donated partners).
func (hb *hbonds) exists(d, a int) bool {
	for _, p := range hb.donates[d] {
		if p.partner == a {
			return true
		}
	}
	return false
}
