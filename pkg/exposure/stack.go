package exposure

import(
	"fmt"
	"image"
	"sort"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
)

// A Stack is the set of photos to calibrate from, plus the calibration
// config (which may have been loaded alongside them).
type Stack struct {
	Layers []Layer // Ordered, ascending exposure time
	debevec.Config
}

func NewStack() Stack {
	return Stack{
		Layers: []Layer{},
		Config: debevec.NewConfig(),
	}
}

func (s Stack)String() string {
	str := "Stack [\n"
	for _, l := range s.Layers {
		str += fmt.Sprintf("  %s\n", l)
	}
	return str + "]\n"
}

// AddLayer keeps the layers sorted by exposure time. Layers with no known
// time sort first, in the order they were added.
func (s *Stack)AddLayer(l Layer) {
	s.Layers = append(s.Layers, l)
	sort.SliceStable(s.Layers, func(i, j int) bool { return s.Layers[i].Seconds() < s.Layers[j].Seconds() })
}

// AddImage adds an already decoded image, with a known exposure time.
func (s *Stack)AddImage(name string, img image.Image, seconds float64) {
	l := Layer{LoadFilename: name, Image: img}
	l.SetSeconds(seconds)
	s.AddLayer(l)
}

// SetTimes overrides the exposure times of the layers, in their current
// order (which is load order, if no EXIF times were found).
func (s *Stack)SetTimes(times []float64) error {
	if len(times) != len(s.Layers) {
		return fmt.Errorf("%d exposure times given for %d images: %w", len(times), len(s.Layers), debevec.ErrConfig)
	}
	for i := range s.Layers {
		s.Layers[i].SetSeconds(times[i])
	}
	sort.SliceStable(s.Layers, func(i, j int) bool { return s.Layers[i].Seconds() < s.Layers[j].Seconds() })
	return nil
}

// Series converts the stack for the calibrator, checking it is usable.
func (s Stack)Series() (debevec.Series, error) {
	evs := []ExposureValue{}
	series := debevec.Series{}
	for _, l := range s.Layers {
		if err := l.ExposureValue.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", l.Filename(), err, debevec.ErrConfig)
		}
		evs = append(evs, l.ExposureValue)
		series = append(series, l.Exposure())
	}

	if err := Consistent(evs); err != nil {
		return nil, fmt.Errorf("%v: %w", err, debevec.ErrConfig)
	}

	return series, series.Validate()
}

// Calibrate runs the calibration over the stack, with the stack's config.
func (s Stack)Calibrate() (debevec.Result, error) {
	series, err := s.Series()
	if err != nil {
		return debevec.Result{}, err
	}
	return debevec.Calibrate(s.Config, series)
}
