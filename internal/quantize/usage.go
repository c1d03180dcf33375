package quantize

import (
	"sort"

	"github.com/threadtone/threadtone/internal/catalog"
)

// Thread consumption heuristics. One pixel approximates one stitch; each
// stitch consumes stitch length plus underlay and loop overhead.
const (
	metresPerStitch = 0.007 // 7mm of thread per stitch
	metresPerSkein  = 8.0
	pricePerSkein   = 1.50
)

// computeUsage aggregates per-pixel assignments into per-thread statistics.
// Palette entries matched to the same physical thread merge into one row.
// Coverage percentages sum to ~100 across the returned slice.
func computeUsage(indices []int, palette []catalog.Match, totalPixels int) []ThreadUsage {
	type key struct{ code, cat string }

	counts := make(map[key]*ThreadUsage)
	order := make([]key, 0, len(palette))
	for _, idx := range indices {
		thread := palette[idx].Thread
		k := key{thread.Code, thread.Catalog}
		u, ok := counts[k]
		if !ok {
			u = &ThreadUsage{Thread: thread}
			counts[k] = u
			order = append(order, k)
		}
		u.PixelCount++
	}

	usage := make([]ThreadUsage, 0, len(order))
	for _, k := range order {
		u := counts[k]
		u.Coverage = float64(u.PixelCount) / float64(totalPixels) * 100.0
		u.EstimatedLength = float64(u.PixelCount) * metresPerStitch
		u.EstimatedCost = u.EstimatedLength / metresPerSkein * pricePerSkein
		usage = append(usage, *u)
	}

	// Largest consumer first; stable so equal counts keep first-seen order.
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].PixelCount > usage[j].PixelCount
	})
	return usage
}
