package quantize

import (
	"image"
	"testing"

	"github.com/threadtone/threadtone/internal/colour"
)

func TestEstimateProcessingTime(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 64, 64))
	large := image.NewRGBA(image.Rect(0, 0, 512, 512))
	params := DefaultParameters()

	if got := EstimateProcessingTime(nil, params); got != 0 {
		t.Errorf("estimate for nil image = %v, want 0", got)
	}
	if EstimateProcessingTime(small, params) <= 0 {
		t.Error("estimate should be positive for a non-empty image")
	}
	if EstimateProcessingTime(large, params) <= EstimateProcessingTime(small, params) {
		t.Error("larger image should estimate longer than smaller image")
	}

	fast, slow := params, params
	fast.Algorithm = colour.AlgorithmWeightedRGB
	slow.Algorithm = colour.AlgorithmCIEDE2000
	if EstimateProcessingTime(small, slow) <= EstimateProcessingTime(small, fast) {
		t.Error("CIEDE2000 should estimate slower than weighted RGB")
	}

	dithered, plain := params, params
	plain.EnableDithering = false
	if EstimateProcessingTime(small, plain) >= EstimateProcessingTime(small, dithered) {
		t.Error("disabling dithering should lower the estimate")
	}
}

func TestOptimalParameters(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		wantLimit int
	}{
		{"thumbnail", 32, 8},
		{"small", 128, 12},
		{"medium", 512, 16},
		{"large", 2048, MaxColorLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.size, tt.size))
			params := OptimalParameters(img)
			if params.ColorLimit != tt.wantLimit {
				t.Errorf("ColorLimit = %d, want %d", params.ColorLimit, tt.wantLimit)
			}
			if err := params.Validate(); err != nil {
				t.Errorf("derived parameters should validate: %v", err)
			}
		})
	}

	if got := OptimalParameters(nil); got.ColorLimit != DefaultColorLimit {
		t.Errorf("nil image ColorLimit = %d, want default %d", got.ColorLimit, DefaultColorLimit)
	}
}
