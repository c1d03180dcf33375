package quantize

import (
	"gonum.org/v1/gonum/stat"

	"github.com/threadtone/threadtone/internal/catalog"
	"github.com/threadtone/threadtone/internal/colour"
)

// Scoring constants. A mean delta-E of worstMeanDeltaE or above scores 0
// colour accuracy; real designs land well below it.
const (
	worstMeanDeltaE   = 25.0
	maxQualitySamples = 5000
)

// Aspect weights for the overall score.
const (
	weightAccuracy   = 0.4
	weightDithering  = 0.2
	weightClustering = 0.2
	weightMatching   = 0.2
)

// computeQuality scores the run. Per-pixel error statistics are computed on
// a sample of the image; aggregate scores use gonum's stat helpers.
func computeQuality(pixels []colour.RGB, centroids []colour.Lab, dithered *colour.DitherResult, palette []catalog.Match, algorithm colour.DistanceAlgorithm) QualityMetrics {
	errors := sampleErrors(pixels, dithered.Indices, palette)

	meanErr := stat.Mean(errors, nil)
	stdErr := stat.StdDev(errors, nil)

	accuracy := scoreDown(meanErr, worstMeanDeltaE)

	// Well-diffused error is spread evenly: score the spread of per-pixel
	// errors, not their magnitude (accuracy already covers magnitude).
	dithering := scoreDown(stdErr, worstMeanDeltaE)

	clustering := clusteringScore(centroids)
	matching := matchScore(palette)

	overall := weightAccuracy*accuracy +
		weightDithering*dithering +
		weightClustering*clustering +
		weightMatching*matching

	return QualityMetrics{
		ColorAccuracy:      accuracy,
		DitheringQuality:   dithering,
		ClusteringQuality:  clustering,
		ThreadMatchQuality: matching,
		Overall:            clampScore(overall),
	}
}

// sampleErrors computes the CIEDE2000 error between sampled original pixels
// and the thread colour they ended up as.
func sampleErrors(pixels []colour.RGB, indices []int, palette []catalog.Match) []float64 {
	step := 1
	if len(pixels) > maxQualitySamples {
		step = len(pixels) / maxQualitySamples
	}

	threadLabs := make([]colour.Lab, len(palette))
	for i, m := range palette {
		threadLabs[i] = colour.RGBToLab(m.Thread.RGB)
	}

	errors := make([]float64, 0, maxQualitySamples+1)
	for i := 0; i < len(pixels); i += step {
		orig := colour.RGBToLab(pixels[i])
		errors = append(errors, colour.CIEDE2000(orig, threadLabs[indices[i]]))
	}
	return errors
}

// clusteringScore compares centroid separation to a well-spread baseline:
// centroids crowding each other indicate wasted palette slots.
func clusteringScore(centroids []colour.Lab) float64 {
	if len(centroids) < 2 {
		return 100
	}

	// Mean distance from each centroid to its nearest neighbour.
	nearest := make([]float64, 0, len(centroids))
	for i, a := range centroids {
		best := -1.0
		for j, b := range centroids {
			if i == j {
				continue
			}
			if d := colour.LabDistance(a, b); best < 0 || d < best {
				best = d
			}
		}
		nearest = append(nearest, best)
	}

	// 10 Lab units of separation is a clearly distinguishable palette.
	const goodSeparation = 10.0
	mean := stat.Mean(nearest, nil)
	return clampScore(mean / goodSeparation * 100.0)
}

// matchScore is the mean similarity of the centroid-to-thread matches.
func matchScore(palette []catalog.Match) float64 {
	if len(palette) == 0 {
		return 0
	}
	sims := make([]float64, len(palette))
	for i, m := range palette {
		sims[i] = m.Similarity
	}
	return clampScore(stat.Mean(sims, nil))
}

// scoreDown maps a value in [0, worst] onto a descending [100, 0] score.
func scoreDown(value, worst float64) float64 {
	if worst <= 0 {
		return 0
	}
	return clampScore((1.0 - value/worst) * 100.0)
}

func clampScore(v float64) float64 {
	if v != v || v < 0 { // NaN degrades to 0
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
