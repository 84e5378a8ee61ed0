package debevec

import(
	"fmt"
	"sort"
)

// A WeightFunc says how much an observed intensity should be trusted. Values
// near the clipping extremes (0 and 255) are less reliable than the midtones.
// A WeightFunc must be strictly positive over [0,255], else observations
// silently drop out of the system.
type WeightFunc func(v uint8) float64

// HatWeight is the default: a symmetric triangle centered at 127.5, with
// weight(0) == weight(255) == 1 and weight(127) == weight(128) == 128.
func HatWeight(v uint8) float64 {
	lo, hi := int(v), 255 - int(v)
	if hi < lo {
		lo = hi
	}
	return float64(lo + 1)
}

// UniformWeight trusts every intensity equally.
func UniformWeight(v uint8) float64 { return 1.0 }

// OpenCVWeight is the triangle OpenCV uses, where 127 and 128 share the peak
// and the extremes fall to zero. Zero weights are floored to a small value,
// so the extremes still contribute a little.
func OpenCVWeight(v uint8) float64 {
	w := float64(v)
	if v > 127 {
		w = float64(255 - int(v))
	}
	if w < openCVFloor {
		w = openCVFloor
	}
	return w
}

const openCVFloor = 1e-3

// AsymmetricHat rises linearly from 1 at v=0 to a maximum at `peak`, then
// falls linearly back to 1 at v=255. Useful for sensors whose highlights
// are less trustworthy than their shadows (or vice versa).
func AsymmetricHat(peak uint8) WeightFunc {
	p := float64(peak)
	return func(v uint8) float64 {
		x := float64(v)
		switch {
		case p == 0:
			return 1 + (255 - x)
		case p == 255:
			return 1 + x
		case x <= p:
			return 1 + x * (128.0 / p)
		default:
			return 1 + (255 - x) * (128.0 / (255 - p))
		}
	}
}

var weightings = map[string]WeightFunc{
	"hat":     HatWeight,
	"uniform": UniformWeight,
	"opencv":  OpenCVWeight,
}

func ListWeightings() string {
	names := []string{}
	for k := range weightings {
		names = append(names, k)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v", names)
}

// WeightByName maps a config string onto a WeightFunc. The empty string is the default hat.
func WeightByName(name string) (WeightFunc, error) {
	if name == "" {
		return HatWeight, nil
	}
	if w, exists := weightings[name]; exists {
		return w, nil
	}
	return nil, fmt.Errorf("no weighting named '%s', wanted one of %s: %w", name, ListWeightings(), ErrConfig)
}
