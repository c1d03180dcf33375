package quantize

import (
	"image"
	"time"

	"github.com/threadtone/threadtone/internal/colour"
)

// Per-pixel cost model for processing-time estimation, measured on a
// mid-range laptop. CIEDE2000 dominates the difference between algorithms.
const (
	nsPerPixelWeightedRGB = 150
	nsPerPixelLab         = 300
	nsPerPixelCIEDE2000   = 900
)

// EstimateProcessingTime predicts roughly how long Quantize will take for
// the given image and parameters. Intentionally coarse; callers use it to
// decide whether to show a progress UI.
func EstimateProcessingTime(img image.Image, params Parameters) time.Duration {
	if img == nil {
		return 0
	}
	bounds := img.Bounds()
	pixels := int64(bounds.Dx()) * int64(bounds.Dy())

	var nsPerPixel int64
	switch params.Algorithm {
	case colour.AlgorithmCIEDE2000:
		nsPerPixel = nsPerPixelCIEDE2000
	case colour.AlgorithmLabEuclidean:
		nsPerPixel = nsPerPixelLab
	default:
		nsPerPixel = nsPerPixelWeightedRGB
	}

	// Assignment cost grows with the palette size.
	estimate := pixels * nsPerPixel * int64(params.ColorLimit) / DefaultColorLimit
	if !params.EnableDithering {
		estimate = estimate * 3 / 4
	}
	return time.Duration(estimate)
}

// OptimalParameters derives a parameter set scaled to the image: small
// images get fewer representative colours, large images the full palette.
func OptimalParameters(img image.Image) Parameters {
	params := DefaultParameters()
	if img == nil {
		return params
	}

	pixels := img.Bounds().Dx() * img.Bounds().Dy()
	switch {
	case pixels < 64*64:
		params.ColorLimit = 8
	case pixels < 256*256:
		params.ColorLimit = 12
	case pixels < 1024*1024:
		params.ColorLimit = 16
	default:
		params.ColorLimit = MaxColorLimit
	}
	return params
}
