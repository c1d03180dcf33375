package quantize

import (
	"context"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/threadtone/threadtone/internal/catalog"
	"github.com/threadtone/threadtone/internal/colour"
)

// quadrantImage builds the canonical 64x64 test image: red, green, blue and
// yellow blocks.
func quadrantImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	quadrants := []struct {
		rect image.Rectangle
		fill color.RGBA
	}{
		{image.Rect(0, 0, 32, 32), color.RGBA{255, 0, 0, 255}},
		{image.Rect(32, 0, 64, 32), color.RGBA{0, 255, 0, 255}},
		{image.Rect(0, 32, 32, 64), color.RGBA{0, 0, 255, 255}},
		{image.Rect(32, 32, 64, 64), color.RGBA{255, 255, 0, 255}},
	}
	for _, q := range quadrants {
		for y := q.rect.Min.Y; y < q.rect.Max.Y; y++ {
			for x := q.rect.Min.X; x < q.rect.Max.X; x++ {
				img.Set(x, y, q.fill)
			}
		}
	}
	return img
}

func deterministicParams() Parameters {
	params := DefaultParameters()
	params.Seed = 42
	return params
}

func TestQuantizeQuadrantImage(t *testing.T) {
	result, err := New().Quantize(context.Background(), quadrantImage(), catalog.Builtin(), deterministicParams(), nil)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	if result.ThreadCount < 1 || result.ThreadCount > 16 {
		t.Errorf("ThreadCount = %d, want 1-16", result.ThreadCount)
	}
	if result.ProcessingTime <= 0 {
		t.Errorf("ProcessingTime = %v, want > 0", result.ProcessingTime)
	}
	if result.Width != 64 || result.Height != 64 {
		t.Errorf("dimensions %dx%d, want 64x64", result.Width, result.Height)
	}
	if len(result.Indices) != 64*64 {
		t.Errorf("got %d indices, want %d", len(result.Indices), 64*64)
	}
	if len(result.Palette) == 0 || len(result.Mapping) == 0 {
		t.Error("palette/mapping should not be empty")
	}

	totalCoverage := 0.0
	for _, u := range result.Usage {
		if u.PixelCount <= 0 {
			t.Errorf("thread %s has pixel count %d, want > 0", u.Thread.Code, u.PixelCount)
		}
		if u.EstimatedLength <= 0 || u.EstimatedCost <= 0 {
			t.Errorf("thread %s has non-positive length/cost estimate", u.Thread.Code)
		}
		totalCoverage += u.Coverage
	}
	if math.Abs(totalCoverage-100) > 10 {
		t.Errorf("coverage sums to %g, want ~100", totalCoverage)
	}

	q := result.Quality
	for name, score := range map[string]float64{
		"ColorAccuracy":      q.ColorAccuracy,
		"DitheringQuality":   q.DitheringQuality,
		"ClusteringQuality":  q.ClusteringQuality,
		"ThreadMatchQuality": q.ThreadMatchQuality,
		"Overall":            q.Overall,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s = %g, want 0-100", name, score)
		}
	}

	// Four flat blocks cluster cleanly, so the run should not score zero.
	if q.Overall <= 0 {
		t.Errorf("Overall = %g, want > 0 for a four-primary image", q.Overall)
	}
}

func TestQuantizeProgressReporting(t *testing.T) {
	type event struct {
		progress float64
		stage    string
	}
	var events []event

	_, err := New().Quantize(context.Background(), quadrantImage(), catalog.Builtin(), deterministicParams(),
		func(p float64, stage string) {
			events = append(events, event{p, stage})
		})
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	if len(events) < 2 {
		t.Fatalf("got %d progress events, want at least 2", len(events))
	}
	if events[0].progress != 0.0 || events[0].stage != StageStarting {
		t.Errorf("first event = %+v, want 0.0 %q", events[0], StageStarting)
	}
	last := events[len(events)-1]
	if last.progress != 1.0 || last.stage != StageComplete {
		t.Errorf("last event = %+v, want 1.0 %q", last, StageComplete)
	}
	for i := 1; i < len(events); i++ {
		if events[i].progress < events[i-1].progress {
			t.Errorf("progress decreased: %g after %g", events[i].progress, events[i-1].progress)
		}
	}
}

func TestQuantizeValidationFailures(t *testing.T) {
	quantizer := New()
	ctx := context.Background()

	t.Run("invalid parameters", func(t *testing.T) {
		params := deterministicParams()
		params.ColorLimit = 100
		_, err := quantizer.Quantize(ctx, quadrantImage(), catalog.Builtin(), params, nil)
		if err == nil || !strings.Contains(err.Error(), "Invalid quantization parameters") {
			t.Errorf("error = %v, want mention of invalid quantization parameters", err)
		}
	})

	t.Run("empty catalog set", func(t *testing.T) {
		_, err := quantizer.Quantize(ctx, quadrantImage(), catalog.NewSet(), deterministicParams(), nil)
		if err == nil || !strings.Contains(err.Error(), "Thread catalogs cannot be empty") {
			t.Errorf("error = %v, want mention of empty thread catalogs", err)
		}
	})

	t.Run("entry-less catalogs", func(t *testing.T) {
		hollow := catalog.NewSet(catalog.NewCatalog("Hollow", nil))
		_, err := quantizer.Quantize(ctx, quadrantImage(), hollow, deterministicParams(), nil)
		if err == nil || !strings.Contains(err.Error(), "Thread catalogs cannot be empty") {
			t.Errorf("error = %v, want mention of empty thread catalogs", err)
		}
	})

	t.Run("image too small", func(t *testing.T) {
		tiny := image.NewRGBA(image.Rect(0, 0, 8, 8))
		_, err := quantizer.Quantize(ctx, tiny, catalog.Builtin(), deterministicParams(), nil)
		if err == nil || !strings.Contains(err.Error(), "Image too small") {
			t.Errorf("error = %v, want mention of image too small", err)
		}
	})

	t.Run("nil image", func(t *testing.T) {
		if _, err := quantizer.Quantize(ctx, nil, catalog.Builtin(), deterministicParams(), nil); err == nil {
			t.Error("Quantize with nil image should fail")
		}
	})

	t.Run("no progress after validation failure", func(t *testing.T) {
		params := deterministicParams()
		params.ColorLimit = 100
		called := false
		_, _ = quantizer.Quantize(ctx, quadrantImage(), catalog.Builtin(), params,
			func(float64, string) { called = true })
		if called {
			t.Error("progress callback fired for a run that failed validation")
		}
	})
}

func TestQuantizeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var progress []float64
	_, err := New().Quantize(ctx, quadrantImage(), catalog.Builtin(), deterministicParams(),
		func(p float64, stage string) { progress = append(progress, p) })

	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("error = %v, want mention of cancellation", err)
	}
	for _, p := range progress {
		if p != 0.0 {
			t.Errorf("progress %g reported on a run cancelled before start", p)
		}
	}
}

func TestQuantizeCancelDuringMatching(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel once the pipeline announces the matching stage; the stage's
	// catalog traversals must notice before it completes.
	_, err := New().Quantize(ctx, quadrantImage(), catalog.Builtin(), deterministicParams(),
		func(p float64, stage string) {
			if stage == StageMatching {
				cancel()
			}
		})
	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("error = %v, want mention of cancellation", err)
	}
}

func TestQuantizeDitheringDisabled(t *testing.T) {
	params := deterministicParams()
	params.EnableDithering = false
	params.DitheringStrength = 0.9

	result, err := New().Quantize(context.Background(), quadrantImage(), catalog.Builtin(), params, nil)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}
	if result.Dithering.Strength != 0.0 {
		t.Errorf("recorded strength = %g, want 0.0 when dithering is disabled", result.Dithering.Strength)
	}
	if result.Dithering.Applied {
		t.Error("Applied = true, want false when dithering is disabled")
	}
}

func TestQuantizeDeterministicWithSeed(t *testing.T) {
	run := func() *Result {
		t.Helper()
		result, err := New().Quantize(context.Background(), quadrantImage(), catalog.Builtin(), deterministicParams(), nil)
		if err != nil {
			t.Fatalf("Quantize returned error: %v", err)
		}
		return result
	}

	first, second := run(), run()
	if first.ThreadCount != second.ThreadCount {
		t.Errorf("thread counts differ between identically-seeded runs: %d vs %d", first.ThreadCount, second.ThreadCount)
	}
	if len(first.Indices) != len(second.Indices) {
		t.Fatalf("index lengths differ: %d vs %d", len(first.Indices), len(second.Indices))
	}
	for i := range first.Indices {
		if first.Indices[i] != second.Indices[i] {
			t.Fatalf("pixel %d assigned differently between identically-seeded runs", i)
		}
	}
}

func TestQuantizeEachAlgorithm(t *testing.T) {
	for _, alg := range colour.ValidAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			params := deterministicParams()
			params.Algorithm = alg
			if _, err := New().Quantize(context.Background(), quadrantImage(), catalog.Builtin(), params, nil); err != nil {
				t.Errorf("Quantize with %s returned error: %v", alg, err)
			}
		})
	}
}

func TestComputeUsageMergesDuplicateThreads(t *testing.T) {
	red := catalog.ThreadColor{Code: "321", Catalog: "DMC", Name: "Red", RGB: colour.RGB{R: 199, G: 43, B: 59}}
	blue := catalog.ThreadColor{Code: "797", Catalog: "DMC", Name: "Royal Blue", RGB: colour.RGB{R: 19, G: 71, B: 125}}

	// Palette entries 0 and 2 map to the same physical thread.
	palette := []catalog.Match{
		{Thread: red, Similarity: 95},
		{Thread: blue, Similarity: 90},
		{Thread: red, Similarity: 85},
	}
	indices := []int{0, 0, 1, 2, 2, 2}

	usage := computeUsage(indices, palette, len(indices))
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows, want 2 (duplicate threads merge)", len(usage))
	}
	if usage[0].Thread.Code != "321" || usage[0].PixelCount != 5 {
		t.Errorf("top consumer = %s with %d pixels, want 321 with 5", usage[0].Thread.Code, usage[0].PixelCount)
	}

	total := 0.0
	for _, u := range usage {
		total += u.Coverage
	}
	if math.Abs(total-100) > 0.001 {
		t.Errorf("coverage sums to %g, want 100", total)
	}
}
