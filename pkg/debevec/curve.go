package debevec

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A ResponseCurve maps an 8-bit intensity to relative linear exposure
// (radiance x time) for one channel. Because of gauge fixing,
// curve[GaugeLevel] is 1.0.
type ResponseCurve [Levels]float64

// AssembleCurve exponentiates the log-response held in the first 256
// entries of a solution vector; the per-sample log-radiances that follow
// are ignored.
func AssembleCurve(x mat.Vector) ResponseCurve {
	var rc ResponseCurve
	for v:=0; v<Levels; v++ {
		rc[v] = math.Exp(x.AtVec(v))
	}
	return rc
}

// Log returns g(v) = ln(curve[v])
func (rc ResponseCurve)Log() [Levels]float64 {
	var g [Levels]float64
	for v:=0; v<Levels; v++ {
		g[v] = math.Log(rc[v])
	}
	return g
}

// Normalized rescales the curve so that curve[GaugeLevel] == ref.
func (rc ResponseCurve)Normalized(ref float64) ResponseCurve {
	out := rc
	floats.Scale(ref / rc[GaugeLevel], out[:])
	return out
}

// Max is the largest response value in the curve.
func (rc ResponseCurve)Max() float64 { return floats.Max(rc[:]) }

// Monotonic reports whether the curve never decreases. A well-fed
// calibration should produce a monotonic curve; a non-monotonic one
// usually means sparse data or too little smoothing.
func (rc ResponseCurve)Monotonic() bool {
	for v:=1; v<Levels; v++ {
		if rc[v] < rc[v-1] {
			return false
		}
	}
	return true
}

func (rc ResponseCurve)String() string {
	return fmt.Sprintf("[0]=%.4g [64]=%.4g [128]=%.4g [192]=%.4g [255]=%.4g",
		rc[0], rc[64], rc[128], rc[192], rc[255])
}
