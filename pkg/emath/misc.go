package emath

import "math"

// The sRGB transfer function and its inverse, on values in [0,1].
// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/

// GammaExpand_F64 maps linear light into the sRGB encoding ("linear RGB to sRGB").
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

// GammaCompress_F64 is the inverse of GammaExpand_F64; it maps an sRGB
// encoded value back into linear light.
func GammaCompress_F64(f float64) float64 {
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f + 0.055) / 1.055, 2.4)
}

func Clamp(f, min, max float64) float64 {
	if f < min { return min }
	if f > max { return max }
	return f
}
