package debevec

import(
	"fmt"
	"log"
	"sync"

	"github.com/pbnjay/memory"
)

// Result holds one response curve per channel, in R, G, B order, plus the
// sample points the curves were fitted to.
type Result struct {
	Curves      [NumChannels]ResponseCurve
	Samples     SampleSet
	Diagnostics [NumChannels]ChannelDiagnostics
}

// Calibrate recovers the camera response curves from a series of
// exposures, using Debevec & Malik's method. Configuration problems are
// reported (wrapping ErrConfig) before any matrices get built.
//
// The three channels are solved concurrently; they only share read-only
// inputs.
func Calibrate(cfg Config, s Series) (Result, error) {
	res := Result{}

	if err := cfg.Validate(); err != nil {
		return res, err
	}
	if err := s.Validate(); err != nil {
		return res, err
	}

	res.Samples = cfg.Sample(s[0].Width(), s[0].Height())
	if len(res.Samples) == 0 {
		return res, fmt.Errorf("no sample points fit in a %dx%d image: %w", s[0].Width(), s[0].Height(), ErrConfig)
	}

	checkMemory(cfg, len(res.Samples), len(s))

	if cfg.Verbosity > 0 {
		r, c := SystemRows(len(res.Samples), len(s)), SystemCols(len(res.Samples))
		log.Printf("Calibrating %d images with %s; %dx%d system per channel, lambda=%g\n",
			len(s), res.Samples, r, c, cfg.Lambda)
	}

	weight := cfg.GetWeighting()
	logTimes := LogTimes(s.Times())

	var wg sync.WaitGroup
	errs := make([]error, NumChannels)
	for ch:=0; ch<NumChannels; ch++ {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			obs := res.Samples.Observations(s, ch)
			ls := BuildSystem(obs, logTimes, weight, cfg.Lambda)
			x, info, err := SolveLeastSquares(ls.A, ls.B)
			if err != nil {
				errs[ch] = fmt.Errorf("channel %d: %v", ch, err)
				return
			}
			res.Curves[ch] = AssembleCurve(x)
			res.Diagnostics[ch] = Diagnose(obs, info, res.Curves[ch])
		}(ch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return res, err
		}
	}

	if cfg.Verbosity > 0 {
		for ch:=0; ch<NumChannels; ch++ {
			log.Printf("channel %d: %s\n", ch, res.Diagnostics[ch])
			log.Printf("channel %d: curve %s\n", ch, res.Curves[ch])
		}
	}

	return res, nil
}

// checkMemory warns if the dense system would eat a large chunk of RAM.
func checkMemory(cfg Config, nSamples, nImages int) {
	total := memory.TotalMemory()
	if total == 0 || cfg.MaxMemoryFraction <= 0 {
		return
	}
	need := DenseBytes(nSamples, nImages)
	if float64(need) > cfg.MaxMemoryFraction * float64(total) {
		log.Printf("warning: dense system needs %d MB per channel (x%d channels), machine has %d MB\n",
			need>>20, NumChannels, total>>20)
	}
}

// A Calibrator holds calibration settings, so they can be tweaked
// between runs.
type Calibrator struct {
	Config
}

func NewCalibrator() *Calibrator {
	return &Calibrator{Config: NewConfig()}
}

func (c *Calibrator)SetSamples(n int)        { c.Samples = n }
func (c *Calibrator)SetLambda(lambda float64) { c.Lambda = lambda }
func (c *Calibrator)SetRandom(random bool)    { c.RandomSampling = random }

// Params is the current set of calibration parameters.
func (c *Calibrator)Params() Config { return c.Config }

func (c *Calibrator)Calibrate(s Series) (Result, error) {
	return Calibrate(c.Config, s)
}

// CalibrateImages is a convenience that pairs images and times first, so a
// count mismatch is caught before anything else happens.
func (c *Calibrator)CalibrateImages(images []Image, times []float64) (Result, error) {
	s, err := NewSeries(images, times)
	if err != nil {
		return Result{}, err
	}
	return Calibrate(c.Config, s)
}
