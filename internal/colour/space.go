package colour

import (
	"math"
)

// D65 reference white point used for all Lab conversions.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// CIE constants for the Lab nonlinearity.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// labEqualityEpsilon is the tolerance used by Lab.Equal to absorb
// floating-point round-off.
const labEqualityEpsilon = 0.001

// Lab represents a colour in CIE L*a*b* space under the D65 illuminant.
// L is lightness in [0, 100]; A and B are the chroma axes, nominally
// in [-128, 127] for colours reachable from 8-bit sRGB.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Equal reports whether two Lab colours are equal within a small epsilon.
// Lab values come out of chained floating-point transforms, so exact
// comparison is never meaningful.
func (l Lab) Equal(other Lab) bool {
	return math.Abs(l.L-other.L) < labEqualityEpsilon &&
		math.Abs(l.A-other.A) < labEqualityEpsilon &&
		math.Abs(l.B-other.B) < labEqualityEpsilon
}

// Key returns a comparable key derived from the rounded millis of each
// component, suitable for map usage where Equal-style tolerance is wanted.
func (l Lab) Key() [3]int64 {
	return [3]int64{
		int64(math.Round(l.L * 1000)),
		int64(math.Round(l.A * 1000)),
		int64(math.Round(l.B * 1000)),
	}
}

// xyz is the intermediate CIE XYZ representation. It never leaves this file.
type xyz struct {
	x, y, z float64
}

// RGBToLab converts an 8-bit sRGB colour to CIE Lab (D65).
func RGBToLab(rgb RGB) Lab {
	return xyzToLab(rgbToXYZ(rgb))
}

// LabToRGB converts a CIE Lab colour (D65) back to 8-bit sRGB.
// Output channels are clamped to [0, 255].
func LabToRGB(lab Lab) RGB {
	return xyzToRGB(labToXYZ(lab))
}

// rgbToXYZ linearises sRGB and applies the standard sRGB→XYZ matrix.
func rgbToXYZ(rgb RGB) xyz {
	r := gammaDecode(float64(rgb.R) / 255.0)
	g := gammaDecode(float64(rgb.G) / 255.0)
	b := gammaDecode(float64(rgb.B) / 255.0)

	return xyz{
		x: (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100.0,
		y: (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100.0,
		z: (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100.0,
	}
}

// xyzToRGB applies the inverse sRGB matrix and re-encodes gamma.
func xyzToRGB(c xyz) RGB {
	x := c.x / 100.0
	y := c.y / 100.0
	z := c.z / 100.0

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: clampChannel(gammaEncode(r)),
		G: clampChannel(gammaEncode(g)),
		B: clampChannel(gammaEncode(b)),
	}
}

// xyzToLab normalises by the D65 white point and applies the CIE f(t) curve.
func xyzToLab(c xyz) Lab {
	fx := labForward(c.x / whiteX)
	fy := labForward(c.y / whiteY)
	fz := labForward(c.z / whiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// labToXYZ inverts the CIE f(t) curve and denormalises by the white point.
func labToXYZ(lab Lab) xyz {
	fy := (lab.L + 16.0) / 116.0
	fx := fy + lab.A/500.0
	fz := fy - lab.B/200.0

	return xyz{
		x: labInverse(fx) * whiteX,
		y: labInverse(fy) * whiteY,
		z: labInverse(fz) * whiteZ,
	}
}

// gammaDecode converts an sRGB channel in [0,1] to linear light.
func gammaDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// gammaEncode converts a linear channel back to sRGB encoding.
func gammaEncode(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// labForward is the CIE f(t) nonlinearity: cube root above epsilon,
// linear below.
func labForward(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16.0) / 116.0
}

// labInverse inverts labForward.
func labInverse(f float64) float64 {
	if cube := f * f * f; cube > cieEpsilon {
		return cube
	}
	return (116.0*f - 16.0) / cieKappa
}

// clampChannel scales a [0,1] channel to 8 bits, clamping out-of-gamut
// values instead of letting them wrap.
func clampChannel(v float64) uint8 {
	scaled := math.Round(v * 255.0)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
