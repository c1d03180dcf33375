package image

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG writes a small solid PNG and returns its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode temp image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, 32, 24)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("loaded %dx%d, want 32x24", b.Dx(), b.Dy())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()
	dir := t.TempDir()

	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantSub string
	}{
		{"empty path", "", "cannot be empty"},
		{"missing file", filepath.Join(dir, "nope.png"), "not found"},
		{"directory", dir, "directory"},
		{"not an image", notImage, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Load(%q) error = %v, want substring %q", tt.path, err, tt.wantSub)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t, 16, 16)
	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath(%q) = %v, want nil", path, err)
	}

	bogus := filepath.Join(t.TempDir(), "bogus.png")
	if err := os.WriteFile(bogus, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := ValidateImagePath(bogus); err == nil {
		t.Error("ValidateImagePath should reject a non-image file")
	}
	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath should reject an empty path")
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2000, 1000))

	got := Downsample(src, 1024)
	if b := got.Bounds(); b.Dx() != 1024 || b.Dy() != 512 {
		t.Errorf("downsampled to %dx%d, want 1024x512", b.Dx(), b.Dy())
	}

	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if got := Downsample(small, 1024); got != small {
		t.Error("image within the bound should be returned unchanged")
	}
	if got := Downsample(small, 0); got != small {
		t.Error("non-positive bound should be a no-op")
	}
	if got := Downsample(nil, 1024); got != nil {
		t.Error("nil image should pass through")
	}
}
