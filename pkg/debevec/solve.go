package debevec

import(
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Singular values smaller than this fraction of the largest are treated as zero.
const RelativeSingularThreshold = 1e-10

// SolveInfo describes how well-posed the system turned out to be.
type SolveInfo struct {
	Rank      int      // Number of singular values kept
	Condition float64  // sigma_max / smallest kept sigma
	Residual  float64  // ||A.x - B||_2
}

func (si SolveInfo)String() string {
	return fmt.Sprintf("rank %d, cond %.3g, residual %.6g", si.Rank, si.Condition, si.Residual)
}

// SolveLeastSquares returns the minimum-norm x that minimizes ||A.x - B||,
// via the SVD pseudoinverse: x = V.S+.U^T.B. Rank deficient (even
// completely degenerate) systems are fine; directions with negligible
// singular values are just left at zero.
func SolveLeastSquares(A mat.Matrix, B mat.Vector) (*mat.VecDense, SolveInfo, error) {
	info := SolveInfo{}

	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, info, fmt.Errorf("SolveLeastSquares: SVD factorization failed")
	}

	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	sigmaMax := floats.Max(sigma)
	threshold := RelativeSingularThreshold * sigmaMax

	// S+.U^T.B, built up in place
	utb := mat.NewVecDense(len(sigma), nil)
	utb.MulVec(u.T(), B)
	sigmaMinKept := sigmaMax
	for i, s := range sigma {
		if s > threshold {
			utb.SetVec(i, utb.AtVec(i) / s)
			info.Rank++
			if s < sigmaMinKept {
				sigmaMinKept = s
			}
		} else {
			utb.SetVec(i, 0)
		}
	}

	_, cols := A.Dims()
	x := mat.NewVecDense(cols, nil)
	x.MulVec(&v, utb)

	if info.Rank > 0 {
		info.Condition = sigmaMax / sigmaMinKept
	}
	info.Residual = residualNorm(A, x, B)

	return x, info, nil
}

func residualNorm(A mat.Matrix, x, B mat.Vector) float64 {
	var r mat.VecDense
	r.MulVec(A, x)
	r.SubVec(&r, B)
	return floats.Norm(r.RawVector().Data, 2)
}
