package colour

import (
	"context"
	"fmt"
	"math"
)

// Floyd-Steinberg diffusion weights: right, bottom-left, bottom,
// bottom-right.
const (
	fsRight       = 7.0 / 16.0
	fsBottomLeft  = 3.0 / 16.0
	fsBottom      = 5.0 / 16.0
	fsBottomRight = 1.0 / 16.0
)

// Ditherer assigns every pixel to its nearest palette entry, optionally
// diffusing the quantization error to not-yet-processed neighbours
// (Floyd-Steinberg) to reduce visible banding.
type Ditherer struct {
	// Strength scales the diffused error; 0 disables diffusion entirely.
	Strength float64

	// Enabled gates diffusion. When false the applied strength is
	// recorded as 0.0 regardless of Strength.
	Enabled bool

	// Algorithm selects the distance metric used for palette assignment.
	Algorithm DistanceAlgorithm
}

// DitherResult is the per-pixel palette assignment plus the diffusion
// strength that was actually applied.
type DitherResult struct {
	// Indices holds one palette index per pixel in raster order.
	Indices []int

	// AppliedStrength is the diffusion strength in effect: 0.0 when
	// dithering was disabled or the configured strength was 0.
	AppliedStrength float64
}

// Apply quantizes the pixel buffer against the palette. Errors accumulate
// additively on not-yet-quantized neighbour values before those neighbours
// are matched, so smooth gradients break up instead of banding. The context
// is checked once per row.
func (d *Ditherer) Apply(ctx context.Context, pixels []RGB, width, height int, palette []Lab) (*DitherResult, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}
	if width <= 0 || height <= 0 || width*height != len(pixels) {
		return nil, fmt.Errorf("pixel buffer size %d does not match %dx%d", len(pixels), width, height)
	}

	strength := d.Strength
	if !d.Enabled {
		strength = 0
	}

	entries := make([]point, len(palette))
	for i, lab := range palette {
		entries[i] = point{lab: lab, rgb: LabToRGB(lab)}
	}
	dist := metricFor(d.Algorithm)

	// Working buffer carries the error-adjusted channel values.
	work := make([]float64, len(pixels)*3)
	for i, p := range pixels {
		work[i*3] = float64(p.R)
		work[i*3+1] = float64(p.G)
		work[i*3+2] = float64(p.B)
	}

	indices := make([]int, len(pixels))
	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dithering interrupted: %w", err)
		}

		for x := 0; x < width; x++ {
			i := y*width + x
			adjusted := RGB{
				R: clampWork(work[i*3]),
				G: clampWork(work[i*3+1]),
				B: clampWork(work[i*3+2]),
			}
			idx := nearestCentroid(point{lab: RGBToLab(adjusted), rgb: adjusted}, entries, dist)
			indices[i] = idx

			if strength == 0 {
				continue
			}

			assigned := entries[idx].rgb
			errR := (work[i*3] - float64(assigned.R)) * strength
			errG := (work[i*3+1] - float64(assigned.G)) * strength
			errB := (work[i*3+2] - float64(assigned.B)) * strength

			diffuse(work, width, height, x+1, y, errR, errG, errB, fsRight)
			diffuse(work, width, height, x-1, y+1, errR, errG, errB, fsBottomLeft)
			diffuse(work, width, height, x, y+1, errR, errG, errB, fsBottom)
			diffuse(work, width, height, x+1, y+1, errR, errG, errB, fsBottomRight)
		}
	}

	return &DitherResult{Indices: indices, AppliedStrength: strength}, nil
}

// diffuse adds a weighted share of the quantization error to the neighbour
// at (x, y), ignoring coordinates outside the image.
func diffuse(work []float64, width, height, x, y int, errR, errG, errB, weight float64) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	i := y*width + x
	work[i*3] += errR * weight
	work[i*3+1] += errG * weight
	work[i*3+2] += errB * weight
}

// clampWork converts an error-adjusted channel back to 8 bits.
func clampWork(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
