package colour

import (
	"fmt"
	"math"
)

// DistanceAlgorithm selects the perceptual distance metric used for
// clustering and thread matching.
type DistanceAlgorithm string

const (
	// AlgorithmWeightedRGB uses luma-weighted Euclidean distance in RGB.
	// Cheap; used for initial and fallback matching.
	AlgorithmWeightedRGB DistanceAlgorithm = "euclidean"

	// AlgorithmLabEuclidean uses plain Euclidean distance in Lab space.
	AlgorithmLabEuclidean DistanceAlgorithm = "lab"

	// AlgorithmCIEDE2000 uses the full CIEDE2000 colour-difference formula.
	AlgorithmCIEDE2000 DistanceAlgorithm = "ciede2000"
)

// Maximum distances used to scale raw distances into similarity percentages.
const (
	// maxWeightedRGB is the weighted distance between black and white:
	// sqrt(0.299 + 0.587 + 0.114) * 255.
	maxWeightedRGB = 255.0

	// maxLabEuclidean is the empirical maximum Lab distance between two
	// colours reachable from 8-bit sRGB.
	maxLabEuclidean = 373.0

	// maxCIEDE2000 is a practical bound, not a theoretical maximum; the
	// formula rarely exceeds it for real colours. Calibratable.
	maxCIEDE2000 = 100.0
)

// Luma weights matching human luminance sensitivity (ITU-R BT.601).
const (
	lumaWeightR = 0.299
	lumaWeightG = 0.587
	lumaWeightB = 0.114
)

// ValidAlgorithms returns the list of recognised distance algorithms.
func ValidAlgorithms() []DistanceAlgorithm {
	return []DistanceAlgorithm{
		AlgorithmWeightedRGB,
		AlgorithmLabEuclidean,
		AlgorithmCIEDE2000,
	}
}

// IsValidAlgorithm checks if the given algorithm name is recognised.
func IsValidAlgorithm(alg DistanceAlgorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// MaxDistance returns the algorithm's distance bound used for similarity
// percentage conversion.
func (a DistanceAlgorithm) MaxDistance() float64 {
	switch a {
	case AlgorithmLabEuclidean:
		return maxLabEuclidean
	case AlgorithmCIEDE2000:
		return maxCIEDE2000
	default:
		return maxWeightedRGB
	}
}

// RGBDistance returns the algorithm's distance between two RGB colours.
func (a DistanceAlgorithm) RGBDistance(x, y RGB) float64 {
	switch a {
	case AlgorithmLabEuclidean:
		return LabDistance(RGBToLab(x), RGBToLab(y))
	case AlgorithmCIEDE2000:
		return CIEDE2000(RGBToLab(x), RGBToLab(y))
	default:
		return WeightedRGBDistance(x, y)
	}
}

// Similarity returns the algorithm's similarity percentage for two RGB
// colours: 100 for identical colours, falling towards 0 with distance.
func (a DistanceAlgorithm) Similarity(x, y RGB) float64 {
	return SimilarityPercent(a.RGBDistance(x, y), a.MaxDistance())
}

// WeightedRGBDistance calculates luma-weighted Euclidean distance in RGB.
func WeightedRGBDistance(x, y RGB) float64 {
	dr := float64(x.R) - float64(y.R)
	dg := float64(x.G) - float64(y.G)
	db := float64(x.B) - float64(y.B)
	return math.Sqrt(lumaWeightR*dr*dr + lumaWeightG*dg*dg + lumaWeightB*db*db)
}

// LabDistance calculates the Euclidean distance between two Lab colours.
func LabDistance(x, y Lab) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// CIEDE2000 calculates the CIE 2000 colour difference between two Lab
// colours, including the lightness, chroma and hue compensation terms and
// the R_T rotation term. Symmetric in its arguments and zero for identical
// inputs.
func CIEDE2000(x, y Lab) float64 {
	const pow25to7 = 6103515625.0 // 25^7

	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cBar := (c1 + c2) / 2.0

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1.0 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1p := (1.0 + g) * x.A
	a2p := (1.0 + g) * y.A
	c1p := math.Hypot(a1p, x.B)
	c2p := math.Hypot(a2p, y.B)

	h1p := hueAngle(x.B, a1p)
	h2p := hueAngle(y.B, a2p)

	dLp := y.L - x.L
	dCp := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp/2.0))

	lBarP := (x.L + y.L) / 2.0
	cBarP := (c1p + c2p) / 2.0

	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2.0
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2.0
	default:
		hBarP = (h1p + h2p - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hBarP-30)) +
		0.24*math.Cos(radians(2*hBarP)) +
		0.32*math.Cos(radians(3*hBarP+6)) -
		0.20*math.Cos(radians(4*hBarP-63))

	dTheta := 30.0 * math.Exp(-((hBarP-275)/25.0)*((hBarP-275)/25.0))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2.0 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	rt := -math.Sin(radians(2*dTheta)) * rc

	lDiff := lBarP - 50.0
	sl := 1.0 + (0.015*lDiff*lDiff)/math.Sqrt(20.0+lDiff*lDiff)
	sc := 1.0 + 0.045*cBarP
	sh := 1.0 + 0.015*cBarP*t

	termL := dLp / sl
	termC := dCp / sc
	termH := dHp / sh

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

// hueAngle returns atan2(b, aPrime) in degrees, normalised to [0, 360).
func hueAngle(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	deg := math.Atan2(b, aPrime) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// SimilarityPercent converts a raw distance to a similarity percentage:
// max(0, 1 - distance/maxDistance) * 100, clamped to [0, 100]. A
// non-positive maxDistance degrades to 0 rather than dividing by zero.
func SimilarityPercent(distance, maxDistance float64) float64 {
	if maxDistance <= 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0
	}
	pct := (1.0 - distance/maxDistance) * 100.0
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Nearest finds the candidate minimising dist(target, labOf(candidate)).
// Returns the winning index and its distance. Ties resolve to the earliest
// candidate. Errors if the candidate list is empty.
func Nearest[T any](target Lab, candidates []T, labOf func(T) Lab, dist func(Lab, Lab) float64) (int, float64, error) {
	if len(candidates) == 0 {
		return 0, 0, fmt.Errorf("candidate list cannot be empty")
	}

	best := 0
	bestDist := dist(target, labOf(candidates[0]))
	for i := 1; i < len(candidates); i++ {
		if d := dist(target, labOf(candidates[i])); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist, nil
}
