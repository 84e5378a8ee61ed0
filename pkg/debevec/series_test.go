package debevec

import(
	"errors"
	"math"
	"testing"
)

func TestSeriesValidate(t *testing.T) {
	a, b := uniformImage(t, 4, 4, 10), uniformImage(t, 4, 4, 20)
	odd := uniformImage(t, 5, 4, 30)

	tests := []struct {
		name string
		s    Series
		ok   bool
	}{
		{"good", Series{{a, 0.5}, {b, 1}}, true},
		{"one image", Series{{a, 0.5}}, false},
		{"nil image", Series{{a, 0.5}, {nil, 1}}, false},
		{"mixed sizes", Series{{a, 0.5}, {odd, 1}}, false},
		{"zero time", Series{{a, 0}, {b, 1}}, false},
		{"negative time", Series{{a, 0.5}, {b, -1}}, false},
		{"NaN time", Series{{a, 0.5}, {b, math.NaN()}}, false},
		{"infinite time", Series{{a, 0.5}, {b, math.Inf(1)}}, false},
	}

	for _, test := range tests {
		err := test.s.Validate()
		if test.ok && err != nil {
			t.Errorf("%s: unexpected err %v", test.name, err)
		} else if !test.ok && !errors.Is(err, ErrConfig) {
			t.Errorf("%s: err=%v; want ErrConfig", test.name, err)
		}
	}
}

func TestNewSeriesMismatch(t *testing.T) {
	images := []Image{uniformImage(t, 2, 2, 1), uniformImage(t, 2, 2, 2)}
	if _, err := NewSeries(images, []float64{1}); !errors.Is(err, ErrConfig) {
		t.Errorf("err=%v; want ErrConfig", err)
	}
	s, err := NewSeries(images, []float64{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Times(); got[0] != 2 || got[1] != 1 {
		t.Errorf("Times()=%v; want [2 1]", got)
	}
	sorted := s.Sorted()
	if sorted[0].Time != 1 || sorted[1].Time != 2 || s[0].Time != 2 {
		t.Errorf("Sorted() should reorder a copy, got %v (orig %v)", sorted.Times(), s.Times())
	}
}
