package exposure

import (
	"fmt"
	"math"
)

type rat64 [2]int64

// An ExposureValue details how the photograph was exposed. Only the
// shutter speed matters to the calibration; aperture and ISO are kept
// so we can spot a series where they changed between shots, which breaks
// the assumption that exposure is proportional to shutter time.
type ExposureValue struct {
	ISO            int64   // 100, 800, etc. Zero if unknown.
	ApertureX10    int64   // f/5.6 is the integer 56. Zero if unknown.
	ShutterSpeed   rat64   // 1/500, 1/1000, etc.
}

// Seconds is the shutter time as a float, or zero if we don't know it.
func (ev ExposureValue)Seconds() float64 {
	if ev.ShutterSpeed[1] == 0 {
		return 0
	}
	return float64(ev.ShutterSpeed[0]) / float64(ev.ShutterSpeed[1])
}

// EV100 is the exposure value normalized to ISO 100 - https://en.wikipedia.org/wiki/Exposure_value
// Unknown aperture or ISO are taken as f/1 and ISO 100.
func (ev ExposureValue)EV100() float64 {
	n := 1.0
	if ev.ApertureX10 > 0 {
		n = float64(ev.ApertureX10) / 10.0
	}
	iso := 100.0
	if ev.ISO > 0 {
		iso = float64(ev.ISO)
	}
	return math.Log2(n*n / ev.Seconds()) - math.Log2(iso / 100.0)
}

func (ev ExposureValue)String() string {
	s := ""
	if ev.ApertureX10 > 0 {
		s += fmt.Sprintf("f/%.1f, ", float32(ev.ApertureX10)/10.0)
	}
	if ev.ShutterSpeed[1] != 1 {
		s += fmt.Sprintf("%d/%d", ev.ShutterSpeed[0], ev.ShutterSpeed[1])
	} else {
		s += fmt.Sprintf("%d", ev.ShutterSpeed[0])
	}
	if ev.ISO > 0 {
		s += fmt.Sprintf(", ISO%d", ev.ISO)
	}
	return s
}

func (ev ExposureValue)Validate() error {
	if ev.ShutterSpeed[0] <= 0 || ev.ShutterSpeed[1] <= 0 {
		return fmt.Errorf("shutter speed %d/%d looks bogus", ev.ShutterSpeed[0], ev.ShutterSpeed[1])
	}
	return nil
}

// SetSeconds fills in the shutter speed from a float; handy when the times
// come from somewhere other than EXIF. Times under a second are stored as
// 1/N, where possible.
func (ev *ExposureValue)SetSeconds(t float64) {
	if t > 0 && t < 1 && math.Abs(1/t - math.Round(1/t)) < 1e-9 {
		ev.ShutterSpeed = rat64{1, int64(math.Round(1/t))}
		return
	}
	// Otherwise keep microsecond precision
	ev.ShutterSpeed = rat64{int64(math.Round(t * 1e6)), 1000000}
}

// Consistent checks that aperture and ISO (where known) were the same
// across the stack.
func Consistent(evs []ExposureValue) error {
	for i:=1; i<len(evs); i++ {
		if evs[i].ApertureX10 != 0 && evs[0].ApertureX10 != 0 && evs[i].ApertureX10 != evs[0].ApertureX10 {
			return fmt.Errorf("aperture changed between shots (%s vs %s)", evs[0], evs[i])
		}
		if evs[i].ISO != 0 && evs[0].ISO != 0 && evs[i].ISO != evs[0].ISO {
			return fmt.Errorf("ISO changed between shots (%s vs %s)", evs[0], evs[i])
		}
	}
	return nil
}
