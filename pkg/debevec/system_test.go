package debevec

import(
	"math"
	"testing"
)

func TestBuildSystemShape(t *testing.T) {
	tcs := []struct{ N, M int }{{1, 2}, {4, 2}, {63, 3}, {70, 5}}
	for _, tc := range tcs {
		obs := make([][]uint8, tc.N)
		for i := range obs {
			obs[i] = make([]uint8, tc.M)
			for j := range obs[i] {
				obs[i][j] = uint8((i*31 + j*57) % 256)
			}
		}
		times := make([]float64, tc.M)
		for j := range times {
			times[j] = math.Pow(2, float64(j))
		}

		ls := BuildSystem(obs, LogTimes(times), HatWeight, 10)
		r, c := ls.Dims()
		if r != tc.N*tc.M + 255 || c != 256 + tc.N {
			t.Errorf("N=%d M=%d: dims %dx%d; want %dx%d", tc.N, tc.M, r, c, tc.N*tc.M+255, 256+tc.N)
		}
		if r != SystemRows(tc.N, tc.M) || c != SystemCols(tc.N) {
			t.Errorf("N=%d M=%d: SystemRows/Cols disagree with BuildSystem", tc.N, tc.M)
		}
		if ls.B.Len() != r {
			t.Errorf("N=%d M=%d: len(B)=%d; want %d", tc.N, tc.M, ls.B.Len(), r)
		}
	}
}

func TestBuildSystemRows(t *testing.T) {
	lambda := 3.0
	obs := [][]uint8{{10, 20}, {30, 40}}
	ls := BuildSystem(obs, LogTimes([]float64{1, 2}), HatWeight, lambda)
	epsilon := 1e-12

	type cell struct {
		Row, Col int
		Want     float64
	}
	cells := []cell{
		// data rows, sample-major then image
		{0, 10, 11}, {0, 256, -11},
		{1, 20, 21}, {1, 256, -21},
		{2, 30, 31}, {2, 257, -31},
		{3, 40, 41}, {3, 257, -41},
		// gauge
		{4, 128, 1},
		// first and last smoothness rows; weight(1) == weight(254) == 2
		{5, 0, 2*lambda}, {5, 1, -4*lambda}, {5, 2, 2*lambda},
		{258, 253, 2*lambda}, {258, 254, -4*lambda}, {258, 255, 2*lambda},
		// a midtone smoothness row, i=126, weight(127) == 128
		{5+126, 126, 128*lambda}, {5+126, 127, -256*lambda}, {5+126, 128, 128*lambda},
	}
	for _, c := range cells {
		if got := ls.A.At(c.Row, c.Col); math.Abs(got - c.Want) > epsilon {
			t.Errorf("A[%d,%d]=%f; want %f", c.Row, c.Col, got, c.Want)
		}
	}

	wantB := map[int]float64{0: 0, 1: 21*math.Log(2), 2: 0, 3: 41*math.Log(2), 4: 0, 5: 0, 258: 0}
	for row, want := range wantB {
		if got := ls.B.AtVec(row); math.Abs(got - want) > epsilon {
			t.Errorf("B[%d]=%f; want %f", row, got, want)
		}
	}

	// Data rows have exactly two non-zero entries; the gauge row one.
	r, c := ls.Dims()
	for row:=0; row<5; row++ {
		nz := 0
		for col:=0; col<c; col++ {
			if ls.A.At(row, col) != 0 {
				nz++
			}
		}
		want := 2
		if row == 4 {
			want = 1
		}
		if nz != want {
			t.Errorf("row %d has %d non-zeros; want %d", row, nz, want)
		}
	}
	if r != 259 {
		t.Errorf("rows=%d; want 259", r)
	}
}

func TestDenseBytes(t *testing.T) {
	if got, want := DenseBytes(70, 5), uint64(8*(605*326 + 605)); got != want {
		t.Errorf("DenseBytes=%d; want %d", got, want)
	}
}
