package dssp

import "gonum.org/v1/gonum/stat"

// Summary is descriptive statistics over one Run's results: per-state
// residue counts, the number of distinct chain segments, and the
// mean/stddev of retained ladder lengths (a proxy for sheet complexity).
type Summary struct {
	Counts        map[State]int
	NumChains     int
	LadderLenMean float64
	LadderLenStd  float64
}

// computeSummary mirrors the descriptive-statistics helpers used elsewhere
// in the stack: counts are plain tallies, ladder-length mean/stddev go
// through gonum/stat rather than a hand-rolled accumulator.
func computeSummary(results []Residue, records []record, ladders []ladder) Summary {
	counts := make(map[State]int, 9)
	for _, r := range results {
		counts[r.State]++
	}

	lengths := make([]float64, len(ladders))
	for i, l := range ladders {
		lengths[i] = float64(l.iHi - l.iLo + 1)
	}

	var mean, std float64
	if len(lengths) > 0 {
		mean, std = stat.MeanStdDev(lengths, nil)
	}

	return Summary{
		Counts:        counts,
		NumChains:     len(segmentChains(records)),
		LadderLenMean: mean,
		LadderLenStd:  std,
	}
}
