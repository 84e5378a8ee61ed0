package debevec

import(
	"fmt"
	"math"
	"sort"
)

// An Exposure is one photo in the series, with its shutter time in seconds.
type Exposure struct {
	Image
	Time float64
}

func (e Exposure)String() string {
	return fmt.Sprintf("%dx%d @ %gs", e.Width(), e.Height(), e.Time)
}

// A Series is a set of exposures of the same static scene.
type Series []Exposure

// NewSeries pairs up images with their exposure times.
func NewSeries(images []Image, times []float64) (Series, error) {
	if len(images) != len(times) {
		return nil, fmt.Errorf("%d images but %d exposure times: %w", len(images), len(times), ErrConfig)
	}
	s := make(Series, len(images))
	for i := range images {
		s[i] = Exposure{Image: images[i], Time: times[i]}
	}
	return s, s.Validate()
}

// Validate checks the series can be calibrated: at least two images, all
// the same size, all with a positive exposure time.
func (s Series)Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("need at least 2 images, got %d: %w", len(s), ErrConfig)
	}

	for i, e := range s {
		if e.Image == nil {
			return fmt.Errorf("image %d is nil: %w", i, ErrConfig)
		}
	}

	w, h := s[0].Width(), s[0].Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("image 0 has no pixels (%dx%d): %w", w, h, ErrConfig)
	}

	for i, e := range s {
		if e.Width() != w || e.Height() != h {
			return fmt.Errorf("image %d is %dx%d, but image 0 is %dx%d: %w",
				i, e.Width(), e.Height(), w, h, ErrConfig)
		}
		if !(e.Time > 0) || math.IsInf(e.Time, 1) {
			return fmt.Errorf("image %d has non-positive exposure time %g: %w", i, e.Time, ErrConfig)
		}
	}

	return nil
}

func (s Series)Times() []float64 {
	t := make([]float64, len(s))
	for i, e := range s {
		t[i] = e.Time
	}
	return t
}

// Sorted returns a copy ordered by ascending exposure time.
func (s Series)Sorted() Series {
	out := append(Series{}, s...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func (s Series)String() string {
	str := "Series[\n"
	for _, e := range s {
		str += fmt.Sprintf("  %s\n", e)
	}
	return str + "]\n"
}
