package debevec

import(
	"image"
	"reflect"
	"testing"
)

func TestGridSamplesInBounds(t *testing.T) {
	tcs := []struct{ Samples, Cols, Rows int }{
		{70, 640, 480},
		{70, 2, 2},
		{70, 1, 1},
		{1, 1, 1000},
		{5, 1000, 1},
		{1000, 37, 19},
		{70, 3, 500},
		{70, 1000, 1},
		{10, 400, 4},
		{70, 100000, 1},
	}
	for _, tc := range tcs {
		ss := GridSamples(tc.Samples, tc.Cols, tc.Rows)
		if len(ss) == 0 {
			t.Errorf("GridSamples(%d, %d, %d) returned no points", tc.Samples, tc.Cols, tc.Rows)
		}
		if len(ss) > tc.Samples {
			t.Errorf("GridSamples(%d, %d, %d) returned %d points; want at most %d",
				tc.Samples, tc.Cols, tc.Rows, len(ss), tc.Samples)
		}
		for _, pt := range ss {
			if pt.X < 0 || pt.X >= tc.Cols || pt.Y < 0 || pt.Y >= tc.Rows {
				t.Errorf("GridSamples(%d, %d, %d) gave out of bounds %v", tc.Samples, tc.Cols, tc.Rows, pt)
			}
		}
	}
}

func TestGridSamplesLayout(t *testing.T) {
	// 70 samples over 640x480: xPoints=9, yPoints=7, stepX=71, stepY=68
	ss := GridSamples(70, 640, 480)
	if len(ss) != 63 {
		t.Errorf("len=%d; want 63", len(ss))
	}
	if ss[0] != (image.Point{35, 34}) {
		t.Errorf("first point %v; want (35,34)", ss[0])
	}
	if last := ss[len(ss)-1]; last != (image.Point{35 + 8*71, 34 + 6*68}) {
		t.Errorf("last point %v; want (603,442)", last)
	}

	// Tiny images get every pixel once, rather than a pile of duplicates
	ss = GridSamples(70, 2, 2)
	want := SampleSet{{0,0}, {0,1}, {1,0}, {1,1}}
	if !reflect.DeepEqual(ss, want) {
		t.Errorf("2x2 grid = %v; want %v", ss, want)
	}
}

func TestGridSamplesWideStrip(t *testing.T) {
	// A strip much wider than it is tall still gets an even spread of
	// exactly the points asked for: xPoints=70, stepX=14
	ss := GridSamples(70, 1000, 1)
	if len(ss) != 70 {
		t.Fatalf("len=%d; want 70", len(ss))
	}
	if ss[0] != (image.Point{7, 0}) || ss[69] != (image.Point{7 + 69*14, 0}) {
		t.Errorf("strip runs %v .. %v; want (7,0) .. (973,0)", ss[0], ss[69])
	}

	if ss = GridSamples(10, 400, 4); len(ss) != 10 {
		t.Errorf("10 samples over 400x4: got %d points", len(ss))
	}
}

func TestGridSamplesDeterministic(t *testing.T) {
	a := GridSamples(100, 300, 200)
	b := GridSamples(100, 300, 200)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("grid sampling differs between calls")
	}
}

func TestGridSamplesNothingAsked(t *testing.T) {
	if ss := GridSamples(0, 100, 100); len(ss) != 0 {
		t.Errorf("GridSamples(0,...) gave %d points", len(ss))
	}
}

func TestRandomSamples(t *testing.T) {
	ss := RandomSamples(500, 17, 9, 42)
	if len(ss) != 500 {
		t.Fatalf("len=%d; want 500", len(ss))
	}
	for _, pt := range ss {
		if pt.X < 0 || pt.X >= 17 || pt.Y < 0 || pt.Y >= 9 {
			t.Errorf("out of bounds %v", pt)
		}
	}

	if again := RandomSamples(500, 17, 9, 42); !reflect.DeepEqual(ss, again) {
		t.Errorf("same seed gave different samples")
	}
}

func TestConfigSample(t *testing.T) {
	cfg := NewConfig()
	if got, want := cfg.Sample(640, 480), GridSamples(70, 640, 480); !reflect.DeepEqual(got, want) {
		t.Errorf("default config should grid sample")
	}

	cfg.RandomSampling = true
	cfg.Seed = 7
	if got := cfg.Sample(640, 480); len(got) != 70 {
		t.Errorf("random sampling gave %d points; want 70", len(got))
	}
}

func TestObservations(t *testing.T) {
	a, _ := NewRGBImage(2, 1, []uint8{1,2,3,  4,5,6})
	b, _ := NewRGBImage(2, 1, []uint8{7,8,9,  10,11,12})
	s := Series{{a, 1}, {b, 2}}
	ss := SampleSet{{1,0}, {0,0}}

	obs := ss.Observations(s, 1)
	want := [][]uint8{{5, 11}, {2, 8}}
	if !reflect.DeepEqual(obs, want) {
		t.Errorf("obs=%v; want %v", obs, want)
	}
}
