package colour

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Clusterer reduces pixel colours to a bounded set of representative Lab
// centroids using k-means with k-means++ seeding.
type Clusterer struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	algorithm     DistanceAlgorithm
	rng           *rand.Rand
}

// NewClusterer creates a Clusterer with default settings, an explicit
// random seed and the distance algorithm used during assignment.
func NewClusterer(algorithm DistanceAlgorithm, seed int64) *Clusterer {
	return &Clusterer{
		maxIterations: 50,
		convergence:   0.5,  // max centroid movement in Lab units
		maxSamples:    8000, // cap clustering input for large images
		algorithm:     algorithm,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// point pairs the Lab and RGB representations of one pixel so every
// distance algorithm can operate on its native representation.
type point struct {
	lab Lab
	rgb RGB
}

// metricFor returns the point distance function for an algorithm.
func metricFor(algorithm DistanceAlgorithm) func(point, point) float64 {
	switch algorithm {
	case AlgorithmWeightedRGB:
		return func(a, b point) float64 { return WeightedRGBDistance(a.rgb, b.rgb) }
	case AlgorithmCIEDE2000:
		return func(a, b point) float64 { return CIEDE2000(a.lab, b.lab) }
	default:
		return func(a, b point) float64 { return LabDistance(a.lab, b.lab) }
	}
}

// Cluster computes k representative centroids for the given pixels.
// Pixels are converted to Lab once up front; centroids are returned in Lab.
// The context is checked at least once per pass over the pixel set.
func (c *Clusterer) Cluster(ctx context.Context, pixels []RGB, k int) ([]Lab, error) {
	if len(pixels) == 0 {
		return nil, fmt.Errorf("pixel set cannot be empty")
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}

	points := c.samplePoints(pixels)

	// Collect distinct colours; if fewer exist than requested clusters,
	// every distinct colour becomes its own centroid.
	distinct := make([]point, 0, len(points))
	seen := make(map[RGB]bool, len(points))
	for _, p := range points {
		if !seen[p.rgb] {
			distinct = append(distinct, p)
			seen[p.rgb] = true
		}
	}
	if k >= len(distinct) {
		centroids := make([]Lab, len(distinct))
		for i, p := range distinct {
			centroids[i] = p.lab
		}
		return centroids, nil
	}

	dist := metricFor(c.algorithm)

	centroids, err := c.seedCentroids(ctx, distinct, k, dist)
	if err != nil {
		return nil, err
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < c.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("clustering interrupted: %w", err)
		}

		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids, dist)
		}

		next := c.recomputeCentroids(points, assignments, centroids, dist)

		// Converged once the most-travelled centroid barely moved.
		maxMovement := 0.0
		for i := range centroids {
			if m := LabDistance(centroids[i].lab, next[i].lab); m > maxMovement {
				maxMovement = m
			}
		}
		centroids = next
		if maxMovement < c.convergence {
			break
		}
	}

	out := make([]Lab, len(centroids))
	for i, ct := range centroids {
		out[i] = ct.lab
	}
	return out, nil
}

// samplePoints converts pixels to points, grid-sampling down to maxSamples
// for large inputs so iteration cost stays bounded.
func (c *Clusterer) samplePoints(pixels []RGB) []point {
	step := 1
	if len(pixels) > c.maxSamples {
		step = len(pixels) / c.maxSamples
	}

	points := make([]point, 0, min(len(pixels), c.maxSamples+1))
	for i := 0; i < len(pixels); i += step {
		points = append(points, point{lab: RGBToLab(pixels[i]), rgb: pixels[i]})
	}
	return points
}

// seedCentroids implements k-means++ seeding: the first centroid is chosen
// uniformly at random among distinct colours, each subsequent one with
// probability proportional to its squared distance from the nearest
// already-chosen centroid.
func (c *Clusterer) seedCentroids(ctx context.Context, distinct []point, k int, dist func(point, point) float64) ([]point, error) {
	centroids := make([]point, 0, k)
	centroids = append(centroids, distinct[c.rng.Intn(len(distinct))])

	weights := make([]float64, len(distinct))
	for len(centroids) < k {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("clustering interrupted: %w", err)
		}

		total := 0.0
		for i, p := range distinct {
			minDist := math.MaxFloat64
			for _, ct := range centroids {
				if d := dist(p, ct); d < minDist {
					minDist = d
				}
			}
			weights[i] = minDist * minDist
			total += weights[i]
		}

		if total == 0 {
			// Every remaining colour coincides with a centroid; k exceeds
			// the usable spread, stop seeding early.
			break
		}

		target := c.rng.Float64() * total
		cumulative := 0.0
		for i, w := range weights {
			cumulative += w
			if cumulative >= target {
				centroids = append(centroids, distinct[i])
				break
			}
		}
	}
	return centroids, nil
}

// recomputeCentroids averages each cluster's members in Lab space. A
// cluster that lost all members is reseeded at the point farthest from
// every existing centroid, which keeps k clusters alive without collapsing
// two of them onto the same colour.
func (c *Clusterer) recomputeCentroids(points []point, assignments []int, centroids []point, dist func(point, point) float64) []point {
	k := len(centroids)
	sums := make([]Lab, k)
	counts := make([]int, k)

	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].L += p.lab.L
		sums[cluster].A += p.lab.A
		sums[cluster].B += p.lab.B
		counts[cluster]++
	}

	next := make([]point, k)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			next[i] = farthestPoint(points, centroids, dist)
			continue
		}
		mean := Lab{
			L: sums[i].L / float64(counts[i]),
			A: sums[i].A / float64(counts[i]),
			B: sums[i].B / float64(counts[i]),
		}
		next[i] = point{lab: mean, rgb: LabToRGB(mean)}
	}
	return next
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p point, centroids []point, dist func(point, point) float64) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, ct := range centroids {
		if d := dist(p, ct); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// farthestPoint returns the point maximising the distance to its nearest
// centroid.
func farthestPoint(points []point, centroids []point, dist func(point, point) float64) point {
	best := points[0]
	bestDist := -1.0
	for _, p := range points {
		minDist := math.MaxFloat64
		for _, ct := range centroids {
			if d := dist(p, ct); d < minDist {
				minDist = d
			}
		}
		if minDist > bestDist {
			bestDist = minDist
			best = p
		}
	}
	return best
}
