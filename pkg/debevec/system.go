package debevec

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// A LinearSystem is the weighted least-squares problem A.x = B for one
// channel. The unknowns x are laid out as:
//   x[0..255]         g(v), the log-response for each intensity level
//   x[256..256+N-1]   ln(E_i), the log-radiance at each sample point
//
// The rows are, in order: N*M data-fitting rows, one gauge-fixing row, and
// 254 smoothness rows.
type LinearSystem struct {
	A        *mat.Dense
	B        *mat.VecDense

	NSamples int  // N
	NImages  int  // M
}

// SystemRows is how many rows BuildSystem will produce for N samples and M images.
func SystemRows(nSamples, nImages int) int { return nSamples*nImages + 1 + (Levels - 2) }

// SystemCols is how many unknowns there are for N samples.
func SystemCols(nSamples int) int { return Levels + nSamples }

func (ls LinearSystem)Dims() (int, int) { return ls.A.Dims() }

func (ls LinearSystem)String() string {
	r, c := ls.Dims()
	return fmt.Sprintf("LinearSystem[%dx%d, N=%d, M=%d]", r, c, ls.NSamples, ls.NImages)
}

// BuildSystem assembles the system for one channel. `obs` is indexed
// [sample][image], as returned by SampleSet.Observations, and `logTimes`
// holds ln(exposure time) for each image.
func BuildSystem(obs [][]uint8, logTimes []float64, weight WeightFunc, lambda float64) LinearSystem {
	n, m := len(obs), len(logTimes)
	rows, cols := SystemRows(n, m), SystemCols(n)

	ls := LinearSystem{
		A:        mat.NewDense(rows, cols, nil),
		B:        mat.NewVecDense(rows, nil),
		NSamples: n,
		NImages:  m,
	}

	k := 0

	// Data-fitting: w.g(v) - w.ln(E_i) = w.ln(t_j)
	for i:=0; i<n; i++ {
		for j:=0; j<m; j++ {
			v := obs[i][j]
			w := weight(v)
			ls.A.Set(k, int(v), w)
			ls.A.Set(k, Levels+i, -w)
			ls.B.SetVec(k, w * logTimes[j])
			k++
		}
	}

	// Gauge-fixing: g(128) = 0. Without this row the system is
	// unchanged by adding a constant to every g(v) and every ln(E_i).
	ls.A.Set(k, GaugeLevel, 1)
	k++

	// Smoothness: lambda.w.(g(i) - 2g(i+1) + g(i+2)) = 0
	for i:=0; i<Levels-2; i++ {
		sw := lambda * weight(uint8(i+1))
		ls.A.Set(k, i,   sw)
		ls.A.Set(k, i+1, -2*sw)
		ls.A.Set(k, i+2, sw)
		k++
	}

	return ls
}

// LogTimes maps exposure times into log space.
func LogTimes(times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = math.Log(t)
	}
	return out
}

// DenseBytes is the memory needed for the dense A matrix plus B.
func DenseBytes(nSamples, nImages int) uint64 {
	r, c := uint64(SystemRows(nSamples, nImages)), uint64(SystemCols(nSamples))
	return 8 * (r*c + r)
}
