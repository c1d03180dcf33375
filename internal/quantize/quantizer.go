package quantize

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/threadtone/threadtone/internal/catalog"
	"github.com/threadtone/threadtone/internal/colour"
)

// Image size bounds, in pixels.
const (
	MinImagePixels = 256         // 16x16
	MaxImagePixels = 4096 * 4096 // 16.7 megapixels
)

// Pipeline stage descriptions delivered to progress callbacks.
const (
	StageStarting   = "Starting color quantization..."
	StageClustering = "Clustering colors"
	StageDithering  = "Applying dithering"
	StageMatching   = "Matching thread colors"
	StageScoring    = "Computing quality metrics"
	StageComplete   = "Color quantization complete"
)

// ProgressFunc receives progress in [0, 1] plus a stage description.
// Progress values are monotonically non-decreasing and the callback is
// never invoked after Quantize returns.
type ProgressFunc func(progress float64, stage string)

// Quantizer runs the quantization pipeline. Zero-value-safe via New.
type Quantizer struct {
	log hclog.Logger
}

// Option configures a Quantizer.
type Option func(*Quantizer)

// WithLogger sets the logger used for stage timings; defaults to a no-op
// logger.
func WithLogger(log hclog.Logger) Option {
	return func(q *Quantizer) {
		q.log = log
	}
}

// New creates a Quantizer.
func New(opts ...Option) *Quantizer {
	q := &Quantizer{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Quantize reduces an image to a bounded thread palette: validate, cluster,
// dither, match against catalogs, score. Cancellation is honoured at stage
// boundaries and inside the long inner loops; a cancelled run returns an
// error containing "cancelled" and no partial result.
func (q *Quantizer) Quantize(ctx context.Context, img image.Image, set *catalog.Set, params Parameters, onProgress ProgressFunc) (*Result, error) {
	start := time.Now()

	if onProgress == nil {
		onProgress = func(float64, string) {}
	}
	emit := progressEmitter(onProgress)

	// Validation runs before any computation; violations short-circuit.
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("Invalid quantization parameters: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	bounds := img.Bounds()
	area := bounds.Dx() * bounds.Dy()
	if area < MinImagePixels {
		return nil, fmt.Errorf("Image too small: %dx%d (minimum %d pixels)", bounds.Dx(), bounds.Dy(), MinImagePixels)
	}
	if area > MaxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d (maximum %d pixels)", bounds.Dx(), bounds.Dy(), MaxImagePixels)
	}
	if set == nil || set.Empty() {
		return nil, catalog.ErrEmptySet
	}
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	emit(0.0, StageStarting)

	pixels := collectPixels(img)

	// Stage: clustering.
	emit(0.1, StageClustering)
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clusterStart := time.Now()
	clusterer := colour.NewClusterer(params.Algorithm, seed)
	centroids, err := clusterer.Cluster(ctx, pixels, params.ColorLimit)
	if err != nil {
		return nil, cancellationOr(ctx, fmt.Errorf("clustering failed: %w", err))
	}
	q.log.Debug("clustering done", "centroids", len(centroids), "elapsed", time.Since(clusterStart))
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Stage: dithering (also produces the per-pixel assignment when
	// diffusion is disabled).
	emit(0.45, StageDithering)
	ditherStart := time.Now()
	ditherer := &colour.Ditherer{
		Strength:  params.DitheringStrength,
		Enabled:   params.EnableDithering,
		Algorithm: params.Algorithm,
	}
	dithered, err := ditherer.Apply(ctx, pixels, bounds.Dx(), bounds.Dy(), centroids)
	if err != nil {
		return nil, cancellationOr(ctx, fmt.Errorf("dithering failed: %w", err))
	}
	q.log.Debug("dithering done", "strength", dithered.AppliedStrength, "elapsed", time.Since(ditherStart))
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Stage: thread matching.
	emit(0.65, StageMatching)
	centroidRGBs := make([]colour.RGB, len(centroids))
	for i, c := range centroids {
		centroidRGBs[i] = colour.LabToRGB(c)
	}
	mapping, err := set.BatchColorMatch(ctx, centroidRGBs, params.Algorithm)
	if err != nil {
		return nil, cancellationOr(ctx, fmt.Errorf("thread matching failed: %w", err))
	}
	palette := make([]catalog.Match, len(centroidRGBs))
	for i, rgb := range centroidRGBs {
		palette[i] = mapping[rgb]
	}
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	// Stage: scoring.
	emit(0.8, StageScoring)
	usage := computeUsage(dithered.Indices, palette, area)
	quality := computeQuality(pixels, centroids, dithered, palette, params.Algorithm)
	if quality.Overall < params.QualityThreshold {
		q.log.Warn("quality below threshold", "overall", quality.Overall, "threshold", params.QualityThreshold)
	}

	result := &Result{
		Mapping: mapping,
		Palette: palette,
		Indices: dithered.Indices,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Dithering: DitheringInfo{
			Strength: dithered.AppliedStrength,
			Applied:  dithered.AppliedStrength > 0,
		},
		Usage:          usage,
		Quality:        quality,
		ThreadCount:    distinctThreads(palette),
		ProcessingTime: time.Since(start),
	}

	emit(1.0, StageComplete)
	q.log.Debug("quantization done", "threads", result.ThreadCount, "elapsed", result.ProcessingTime)
	return result, nil
}

// progressEmitter wraps a callback so reported progress never decreases.
func progressEmitter(onProgress ProgressFunc) func(float64, string) {
	last := 0.0
	return func(p float64, stage string) {
		if p < last {
			p = last
		}
		if p > 1.0 {
			p = 1.0
		}
		last = p
		onProgress(p, stage)
	}
}

// checkCancelled converts context expiry into the pipeline's cancellation
// error.
func checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("quantization cancelled: %w", err)
	}
	return nil
}

// cancellationOr reports cancellation if the context expired, otherwise the
// stage error.
func cancellationOr(ctx context.Context, stageErr error) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	return stageErr
}

// collectPixels flattens the image into raster-order RGB values.
func collectPixels(img image.Image) []colour.RGB {
	bounds := img.Bounds()
	pixels := make([]colour.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, colour.ToRGB(img.At(x, y)))
		}
	}
	return pixels
}

// distinctThreads counts unique matched threads across the palette; two
// centroids may map to the same thread.
func distinctThreads(palette []catalog.Match) int {
	type key struct{ code, cat string }
	seen := make(map[key]bool, len(palette))
	for _, m := range palette {
		seen[key{m.Thread.Code, m.Thread.Catalog}] = true
	}
	return len(seen)
}
