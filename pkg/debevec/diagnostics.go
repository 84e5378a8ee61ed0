package debevec

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
)

// ChannelDiagnostics summarizes the data one channel was solved from, and
// how the solve went. It's there to help spot under-exposed or clipped
// series, which produce poorly constrained curves.
type ChannelDiagnostics struct {
	SolveInfo

	Observations    int      // N*M
	SupportedLevels int      // Distinct intensities seen at the sample points
	ClippedFraction float64  // Fraction of observations at 0 or 255
	P5, P50, P95    uint8    // Quantiles of the observed intensities
	Monotonic       bool
}

func (cd ChannelDiagnostics)String() string {
	return fmt.Sprintf("%d obs, %d levels, %.1f%% clipped, p5/p50/p95=%d/%d/%d, monotonic=%v, %s",
		cd.Observations, cd.SupportedLevels, 100.0*cd.ClippedFraction,
		cd.P5, cd.P50, cd.P95, cd.Monotonic, cd.SolveInfo)
}

// Support returns, for each level, how many observations landed on it.
func Support(obs [][]uint8) [Levels]int {
	var n [Levels]int
	for _, row := range obs {
		for _, v := range row {
			n[v]++
		}
	}
	return n
}

func Diagnose(obs [][]uint8, info SolveInfo, rc ResponseCurve) ChannelDiagnostics {
	cd := ChannelDiagnostics{SolveInfo: info, Monotonic: rc.Monotonic()}

	// hdrhistogram can't track zero, so levels are recorded shifted up by one
	h := hdrhistogram.New(1, Levels, 3)
	clipped := 0
	for _, row := range obs {
		for _, v := range row {
			h.RecordValue(int64(v) + 1)
			if v == 0 || v == Levels-1 {
				clipped++
			}
			cd.Observations++
		}
	}

	for _, count := range Support(obs) {
		if count > 0 {
			cd.SupportedLevels++
		}
	}

	if cd.Observations > 0 {
		cd.ClippedFraction = float64(clipped) / float64(cd.Observations)
		cd.P5  = quantileLevel(h, 5)
		cd.P50 = quantileLevel(h, 50)
		cd.P95 = quantileLevel(h, 95)
	}

	return cd
}

func quantileLevel(h *hdrhistogram.Histogram, q float64) uint8 {
	v := h.ValueAtQuantile(q) - 1
	if v < 0 {
		v = 0
	} else if v > Levels-1 {
		v = Levels-1
	}
	return uint8(v)
}
