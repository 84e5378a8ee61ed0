package debevec

import(
	"errors"
	"testing"
)

func TestHatWeight(t *testing.T) {
	tcs := []struct {
		V    uint8
		Want float64
	}{
		{0, 1}, {255, 1}, {1, 2}, {254, 2}, {127, 128}, {128, 128}, {64, 65}, {191, 65},
	}
	for _, tc := range tcs {
		if got := HatWeight(tc.V); got != tc.Want {
			t.Errorf("HatWeight(%d)=%f; want %f", tc.V, got, tc.Want)
		}
	}

	for v:=0; v<Levels; v++ {
		w := HatWeight(uint8(v))
		if w <= 0 {
			t.Errorf("HatWeight(%d)=%f; want >0", v, w)
		}
		if mirror := HatWeight(uint8(255-v)); mirror != w {
			t.Errorf("HatWeight(%d)=%f, HatWeight(%d)=%f; want symmetric", v, w, 255-v, mirror)
		}
		if w > HatWeight(127) {
			t.Errorf("HatWeight(%d)=%f exceeds the peak", v, w)
		}
	}
}

func TestWeightingsArePositive(t *testing.T) {
	funcs := map[string]WeightFunc{
		"hat":       HatWeight,
		"uniform":   UniformWeight,
		"opencv":    OpenCVWeight,
		"asym-0":    AsymmetricHat(0),
		"asym-100":  AsymmetricHat(100),
		"asym-255":  AsymmetricHat(255),
	}
	for name, f := range funcs {
		for v:=0; v<Levels; v++ {
			if w := f(uint8(v)); !(w > 0) {
				t.Errorf("%s(%d)=%f; want >0", name, v, w)
			}
		}
	}
}

func TestOpenCVWeightPeak(t *testing.T) {
	if OpenCVWeight(127) != OpenCVWeight(128) {
		t.Errorf("OpenCVWeight(127)=%f, (128)=%f; want equal", OpenCVWeight(127), OpenCVWeight(128))
	}
	if OpenCVWeight(0) >= OpenCVWeight(1) {
		t.Errorf("OpenCVWeight(0)=%f; want less than OpenCVWeight(1)=%f", OpenCVWeight(0), OpenCVWeight(1))
	}
}

func TestAsymmetricHatPeak(t *testing.T) {
	f := AsymmetricHat(100)
	if got := f(100); got != 129 {
		t.Errorf("AsymmetricHat(100)(100)=%f; want 129", got)
	}
	if f(0) != 1 || f(255) != 1 {
		t.Errorf("AsymmetricHat(100) ends = %f,%f; want 1,1", f(0), f(255))
	}
	if f(50) <= f(10) || f(200) >= f(150) {
		t.Errorf("AsymmetricHat(100) not rising then falling")
	}
}

func TestWeightByName(t *testing.T) {
	for _, name := range []string{"", "hat", "uniform", "opencv"} {
		if _, err := WeightByName(name); err != nil {
			t.Errorf("WeightByName(%q) err=%v", name, err)
		}
	}
	if _, err := WeightByName("gaussian"); !errors.Is(err, ErrConfig) {
		t.Errorf("WeightByName(gaussian) err=%v; want ErrConfig", err)
	}
}
