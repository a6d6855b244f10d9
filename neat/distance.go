package neat

import (
	"math"
	"sort"
)

// Distance computes the compatibility distance between two genomes from
// their shared, disjoint, and excess connection genes:
//
//	d = c1*W/matching + c2*D/N + c3*E/N
//
// where W is the summed |weight| difference over matching genes, D the
// count of disjoint genes inside the overlapping innovation range, E the
// count of genes left over once either list is exhausted, and
// N = max(len1, len2, 1). With zero matching genes the weight term
// contributes nothing rather than dividing by zero.
//
// The merge walk runs over innovation-sorted copies of the connection
// lists; the genomes' own connection order, which Activate depends on, is
// never disturbed.
func Distance(g1, g2 *Genome, cfg *Config) float64 {
	a := sortedByInnovation(g1.Connections)
	b := sortedByInnovation(g2.Connections)

	var (
		matching   int
		disjoint   int
		weightDiff float64
	)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Innovation == b[j].Innovation:
			weightDiff += math.Abs(a[i].Weight - b[j].Weight)
			matching++
			i++
			j++
		case a[i].Innovation < b[j].Innovation:
			disjoint++
			i++
		default:
			disjoint++
			j++
		}
	}
	excess := (len(a) - i) + (len(b) - j)

	n := float64(maxInt(len(a), len(b)))
	if n < 1 {
		n = 1
	}

	d := cfg.C2*float64(disjoint)/n + cfg.C3*float64(excess)/n
	if matching > 0 {
		d += cfg.C1 * weightDiff / float64(matching)
	}
	return d
}

// sortedByInnovation returns a new slice holding the same connection
// pointers in ascending innovation order. The input slice is left as-is.
func sortedByInnovation(conns []*ConnectionGene) []*ConnectionGene {
	sorted := make([]*ConnectionGene, len(conns))
	copy(sorted, conns)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Innovation < sorted[j].Innovation
	})
	return sorted
}
