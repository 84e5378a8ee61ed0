// Package synth fakes up exposure series of a scene, as seen through a
// camera with a known response curve. It's how we check that a
// calibration recovers the curve it should.
package synth

import(
	"fmt"
	"math"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
	"github.com/dany-demise/calibrate-debevec/pkg/emath"
)

// A Response is a camera's true response curve. Forward maps a pixel level
// in [0,255] to relative exposure in [0,1]; Inverse goes the other way,
// before any rounding or clipping.
type Response struct {
	Name    string
	Forward func(v float64) float64
	Inverse func(x float64) float64
}

// Gamma is the response (v/255)^gamma
func Gamma(gamma float64) Response {
	return Response{
		Name:    fmt.Sprintf("gamma %.2f", gamma),
		Forward: func(v float64) float64 { return math.Pow(v / 255.0, gamma) },
		Inverse: func(x float64) float64 { return 255.0 * math.Pow(x, 1.0/gamma) },
	}
}

// SRGB is a camera that writes out standard sRGB encoded pixels.
func SRGB() Response {
	return Response{
		Name:    "sRGB",
		Forward: func(v float64) float64 { return emath.GammaCompress_F64(v / 255.0) },
		Inverse: func(x float64) float64 { return 255.0 * emath.GammaExpand_F64(x) },
	}
}

// Curve samples the forward response at every level.
func (r Response)Curve() debevec.ResponseCurve {
	var rc debevec.ResponseCurve
	for v:=0; v<debevec.Levels; v++ {
		rc[v] = r.Forward(float64(v))
	}
	return rc
}

// Pixel is what the camera records for the given exposure (radiance x time).
func (r Response)Pixel(exposure float64) uint8 {
	if exposure <= 0 {
		return 0
	}
	return uint8(emath.Clamp(math.Round(r.Inverse(exposure)), 0, 255))
}

// A Scene gives the radiance of each channel at each pixel.
type Scene struct {
	W, H     int
	Radiance func(x, y, ch int) float64
}

// Stack photographs the scene once per exposure time.
func Stack(resp Response, scene Scene, times []float64) (debevec.Series, error) {
	images := []debevec.Image{}
	for _, t := range times {
		img, err := debevec.NewRGBImage(scene.W, scene.H, nil)
		if err != nil {
			return nil, fmt.Errorf("synth: %v", err)
		}
		for y:=0; y<scene.H; y++ {
			for x:=0; x<scene.W; x++ {
				var rgb [debevec.NumChannels]uint8
				for ch:=0; ch<debevec.NumChannels; ch++ {
					rgb[ch] = resp.Pixel(scene.Radiance(x, y, ch) * t)
				}
				img.Set(x, y, rgb)
			}
		}
		images = append(images, img)
	}

	return debevec.NewSeries(images, times)
}

// Ramp is a scene whose radiance rises smoothly from left to right, with a
// fixed tint per channel, spanning `stops` stops of dynamic range.
func Ramp(w, h int, stops float64) Scene {
	tint := [debevec.NumChannels]float64{1.0, 0.8, 0.6}
	return Scene{
		W: w,
		H: h,
		Radiance: func(x, y, ch int) float64 {
			f := (float64(x) + float64(y)/float64(h)) / float64(w)
			return tint[ch] * math.Pow(2, stops * (f - 1))
		},
	}
}
