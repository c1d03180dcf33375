package colour

import (
	"math"
	"testing"
)

func TestWeightedRGBDistance(t *testing.T) {
	if d := WeightedRGBDistance(RGB{10, 20, 30}, RGB{10, 20, 30}); d != 0 {
		t.Errorf("distance of identical colours = %g, want 0", d)
	}

	// Black to white is the maximum weighted distance.
	if d := WeightedRGBDistance(RGB{0, 0, 0}, RGB{255, 255, 255}); math.Abs(d-maxWeightedRGB) > 0.001 {
		t.Errorf("black-white distance = %g, want %g", d, maxWeightedRGB)
	}

	// Green changes weigh more than blue changes of equal magnitude.
	greenShift := WeightedRGBDistance(RGB{0, 0, 0}, RGB{0, 100, 0})
	blueShift := WeightedRGBDistance(RGB{0, 0, 0}, RGB{0, 0, 100})
	if greenShift <= blueShift {
		t.Errorf("green shift (%g) should exceed blue shift (%g)", greenShift, blueShift)
	}
}

func TestLabDistance(t *testing.T) {
	a := Lab{L: 50, A: 10, B: 10}
	b := Lab{L: 53, A: 14, B: 10}

	if d := LabDistance(a, a); d != 0 {
		t.Errorf("distance of identical colours = %g, want 0", d)
	}
	if got, want := LabDistance(a, b), 5.0; math.Abs(got-want) > 0.0001 {
		t.Errorf("LabDistance = %g, want %g", got, want)
	}
	if LabDistance(a, b) != LabDistance(b, a) {
		t.Error("LabDistance is not symmetric")
	}
}

// TestCIEDE2000SharmaPairs checks published reference pairs from the
// Sharma, Wu & Dalal CIEDE2000 test dataset.
func TestCIEDE2000SharmaPairs(t *testing.T) {
	tests := []struct {
		lab1, lab2 Lab
		want       float64
	}{
		{Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}, 2.0425},
		{Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}, 2.8615},
		{Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}, 3.4412},
		{Lab{50.0000, -1.3802, -84.2814}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
		{Lab{50.0000, -1.1848, -84.8006}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
		{Lab{50.0000, -0.9009, -85.5211}, Lab{50.0000, 0.0000, -82.7485}, 1.0000},
		{Lab{50.0000, 0.0000, 0.0000}, Lab{50.0000, -1.0000, 2.0000}, 2.3669},
		{Lab{50.0000, -1.0000, 2.0000}, Lab{50.0000, 0.0000, 0.0000}, 2.3669},
		{Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0009}, 7.1792},
	}

	for i, tt := range tests {
		if got := CIEDE2000(tt.lab1, tt.lab2); math.Abs(got-tt.want) > 0.0001 {
			t.Errorf("pair %d: CIEDE2000 = %.4f, want %.4f", i+1, got, tt.want)
		}
	}
}

func TestCIEDE2000Properties(t *testing.T) {
	red := RGBToLab(RGB{255, 0, 0})
	darkRed := RGBToLab(RGB{128, 0, 0})
	blue := RGBToLab(RGB{0, 0, 255})

	if d := CIEDE2000(red, red); d != 0 {
		t.Errorf("distance of identical colours = %g, want 0", d)
	}

	// Symmetry within 0.001.
	if d1, d2 := CIEDE2000(red, blue), CIEDE2000(blue, red); math.Abs(d1-d2) > 0.001 {
		t.Errorf("asymmetric: d(red,blue)=%g d(blue,red)=%g", d1, d2)
	}

	// Perceptual ordering: a darker red is closer to red than blue is.
	if CIEDE2000(red, darkRed) >= CIEDE2000(red, blue) {
		t.Errorf("CIEDE2000(red,darkRed)=%g should be less than CIEDE2000(red,blue)=%g",
			CIEDE2000(red, darkRed), CIEDE2000(red, blue))
	}
}

func TestSimilarityPercent(t *testing.T) {
	tests := []struct {
		name        string
		distance    float64
		maxDistance float64
		want        float64
	}{
		{"identical", 0, 100, 100},
		{"half", 50, 100, 50},
		{"at max", 100, 100, 0},
		{"beyond max clamps", 150, 100, 0},
		{"zero max degrades", 10, 0, 0},
		{"NaN degrades", math.NaN(), 100, 0},
		{"infinite degrades", math.Inf(1), 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarityPercent(tt.distance, tt.maxDistance); got != tt.want {
				t.Errorf("SimilarityPercent(%g, %g) = %g, want %g", tt.distance, tt.maxDistance, got, tt.want)
			}
		})
	}

	// Strictly decreasing with distance.
	prev := SimilarityPercent(0, 100)
	for d := 10.0; d <= 90; d += 10 {
		cur := SimilarityPercent(d, 100)
		if cur >= prev {
			t.Fatalf("similarity not strictly decreasing at distance %g", d)
		}
		prev = cur
	}
}

func TestAlgorithmSimilarity(t *testing.T) {
	for _, alg := range ValidAlgorithms() {
		if got := alg.Similarity(RGB{12, 34, 56}, RGB{12, 34, 56}); got != 100 {
			t.Errorf("%s: similarity of identical colours = %g, want 100", alg, got)
		}
		near := alg.Similarity(RGB{200, 30, 30}, RGB{190, 35, 30})
		far := alg.Similarity(RGB{200, 30, 30}, RGB{30, 30, 200})
		if near <= far {
			t.Errorf("%s: near similarity (%g) should exceed far similarity (%g)", alg, near, far)
		}
	}
}

func TestNearest(t *testing.T) {
	candidates := []Lab{
		RGBToLab(RGB{255, 0, 0}),
		RGBToLab(RGB{0, 255, 0}),
		RGBToLab(RGB{0, 0, 255}),
	}
	ident := func(l Lab) Lab { return l }

	idx, dist, err := Nearest(RGBToLab(RGB{250, 10, 10}), candidates, ident, LabDistance)
	if err != nil {
		t.Fatalf("Nearest returned error: %v", err)
	}
	if idx != 0 {
		t.Errorf("nearest index = %d, want 0 (red)", idx)
	}
	if dist <= 0 {
		t.Errorf("distance = %g, want > 0 for non-identical colour", dist)
	}

	if _, _, err := Nearest(Lab{}, nil, ident, LabDistance); err == nil {
		t.Error("Nearest with empty candidates should fail")
	}
}

func TestIsValidAlgorithm(t *testing.T) {
	for _, alg := range ValidAlgorithms() {
		if !IsValidAlgorithm(alg) {
			t.Errorf("IsValidAlgorithm(%q) = false, want true", alg)
		}
	}
	if IsValidAlgorithm("manhattan") {
		t.Error(`IsValidAlgorithm("manhattan") = true, want false`)
	}
}
