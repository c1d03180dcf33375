// Package quantize orchestrates the colour quantization pipeline:
// parameter validation, k-means clustering, error diffusion, thread
// matching and quality scoring.
package quantize

import (
	"fmt"
	"strings"

	"github.com/threadtone/threadtone/internal/colour"
)

// Parameter bounds.
const (
	MinColorLimit = 2
	MaxColorLimit = 20

	DefaultColorLimit        = 16
	DefaultDitheringStrength = 0.8
)

// Parameters configures one quantization run. A parameter set is valid only
// if every field is within its documented range; invalid sets are rejected
// before any computation.
type Parameters struct {
	// ColorLimit is the number of representative colours to produce (2-20).
	ColorLimit int `json:"colorLimit"`

	// DitheringStrength scales error diffusion (0.0-1.0).
	DitheringStrength float64 `json:"ditheringStrength"`

	// EnableDithering gates error diffusion; when false the recorded
	// strength is 0.0.
	EnableDithering bool `json:"enableDithering"`

	// QualityThreshold is the overall score (0-100) under which the run is
	// reported as below target.
	QualityThreshold float64 `json:"qualityThreshold"`

	// Algorithm selects the perceptual distance metric.
	Algorithm colour.DistanceAlgorithm `json:"colorDistanceAlgorithm"`

	// Seed seeds the clusterer's random source. 0 selects a time-based
	// seed; any other value makes the run deterministic.
	Seed int64 `json:"seed,omitempty"`
}

// DefaultParameters returns the documented defaults.
func DefaultParameters() Parameters {
	return Parameters{
		ColorLimit:        DefaultColorLimit,
		DitheringStrength: DefaultDitheringStrength,
		EnableDithering:   true,
		QualityThreshold:  0,
		Algorithm:         colour.AlgorithmCIEDE2000,
	}
}

// Validate checks every field against its documented range and reports all
// violations at once.
func (p Parameters) Validate() error {
	var problems []string

	if p.ColorLimit < MinColorLimit || p.ColorLimit > MaxColorLimit {
		problems = append(problems, fmt.Sprintf("colorLimit must be %d-%d, got %d", MinColorLimit, MaxColorLimit, p.ColorLimit))
	}
	if p.DitheringStrength < 0.0 || p.DitheringStrength > 1.0 {
		problems = append(problems, fmt.Sprintf("ditheringStrength must be 0.0-1.0, got %g", p.DitheringStrength))
	}
	if p.QualityThreshold < 0.0 || p.QualityThreshold > 100.0 {
		problems = append(problems, fmt.Sprintf("qualityThreshold must be 0-100, got %g", p.QualityThreshold))
	}
	if !colour.IsValidAlgorithm(p.Algorithm) {
		problems = append(problems, fmt.Sprintf("unknown colorDistanceAlgorithm %q (valid: %v)", p.Algorithm, colour.ValidAlgorithms()))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
