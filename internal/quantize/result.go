package quantize

import (
	"time"

	"github.com/threadtone/threadtone/internal/catalog"
	"github.com/threadtone/threadtone/internal/colour"
)

// DitheringInfo records what error diffusion actually did.
type DitheringInfo struct {
	// Strength is the diffusion strength that was applied: 0.0 when
	// dithering was disabled.
	Strength float64 `json:"strength"`

	// Applied reports whether any error was diffused.
	Applied bool `json:"applied"`
}

// ThreadUsage aggregates how much of one thread the design consumes.
type ThreadUsage struct {
	Thread catalog.ThreadColor `json:"thread"`

	// PixelCount is the number of pixels assigned to this thread.
	PixelCount int `json:"pixelCount"`

	// Coverage is the percentage of the image this thread covers. Coverage
	// values across all threads sum to ~100.
	Coverage float64 `json:"coverage"`

	// EstimatedLength is the estimated thread length in metres, assuming
	// one stitch per pixel.
	EstimatedLength float64 `json:"estimatedLengthM"`

	// EstimatedCost is the estimated cost in currency units, derived from
	// length and a per-skein price.
	EstimatedCost float64 `json:"estimatedCost"`
}

// QualityMetrics scores one run on a 0-100 scale per aspect.
type QualityMetrics struct {
	ColorAccuracy      float64 `json:"colorAccuracy"`
	DitheringQuality   float64 `json:"ditheringQuality"`
	ClusteringQuality  float64 `json:"clusteringQuality"`
	ThreadMatchQuality float64 `json:"threadMatchQuality"`
	Overall            float64 `json:"overall"`
}

// Result is the aggregate output of one quantization run. Immutable once
// returned.
type Result struct {
	// Mapping relates each representative colour to its matched thread.
	Mapping map[colour.RGB]catalog.Match `json:"-"`

	// Palette holds the per-index thread matches in palette order; Indices
	// values index into it.
	Palette []catalog.Match `json:"palette"`

	// Indices holds one palette index per pixel in raster order.
	Indices []int `json:"-"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Dithering DitheringInfo  `json:"dithering"`
	Usage     []ThreadUsage  `json:"usage"`
	Quality   QualityMetrics `json:"quality"`

	// ThreadCount is the number of distinct threads the design uses.
	ThreadCount int `json:"threadCount"`

	// ProcessingTime is the wall-clock duration of the run.
	ProcessingTime time.Duration `json:"processingTimeMs"`
}
