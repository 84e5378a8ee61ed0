package main

import(
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
	"github.com/dany-demise/calibrate-debevec/pkg/exposure"
	"github.com/dany-demise/calibrate-debevec/pkg/linearize"
	"github.com/dany-demise/calibrate-debevec/pkg/plot"
)

var(
	fVerbosity int
	fSamples int
	fLambda float64
	fRandom bool
	fSeed uint
	fWeighting string
	fTimes string
	fOutput string
	fPlot string
	fLinearize string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.IntVar(&fSamples, "samples", 70, "how many pixel positions to sample")
	flag.Float64Var(&fLambda, "lambda", 10.0, "weight of the smoothness term")
	flag.BoolVar(&fRandom, "random", false, "sample random pixel positions, rather than a grid")
	flag.UintVar(&fSeed, "seed", 0, "seed for random sampling (0 == unseeded)")
	flag.StringVar(&fWeighting, "weighting", "hat", "how to weight pixel intensities: "+debevec.ListWeightings())
	flag.StringVar(&fTimes, "times", "", "comma separated exposure times in seconds, overriding EXIF (e.g. 1/30,1/125,0.5)")

	flag.StringVar(&fOutput, "o", "curves.yaml", "name of output curves file")
	flag.StringVar(&fPlot, "plot", "", "if set, name of a PNG file to plot the curves into")
	flag.StringVar(&fLinearize, "linearize", "", "if set, name of a .hdr file for the longest exposure, linearized")
}

func main() {
	flag.Parse()
	log.Printf("calibrate-debevec starting\n")

	s := exposure.NewStack()
	s.Config.Verbosity = fVerbosity
	if err := s.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	// Command line args override the config file, if they were set
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":         s.Config.Verbosity = fVerbosity
		case "samples":   s.Config.Samples = fSamples
		case "lambda":    s.Config.Lambda = fLambda
		case "random":    s.Config.RandomSampling = fRandom
		case "seed":      s.Config.Seed = uint32(fSeed)
		case "weighting": s.Config.Weighting = fWeighting
		}
	})

	if fTimes != "" {
		times, err := parseTimes(fTimes)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.SetTimes(times); err != nil {
			log.Fatal(err)
		}
	}

	if s.Config.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", s.Config.AsYaml())
	}
	log.Printf("Images loaded: %s", s)

	res, err := s.Calibrate()
	if err != nil {
		log.Fatalf("calibration failed: %v\n", err)
	}

	if err := res.WriteYaml(fOutput); err != nil {
		log.Fatal(err)
	}
	log.Printf("Response curves written to '%s' (%d samples)\n", fOutput, len(res.Samples))

	if fPlot != "" {
		title := fmt.Sprintf("log response, %d images, %d samples, lambda=%g", len(s.Layers), len(res.Samples), s.Config.Lambda)
		if err := plot.Curves(res, title, fPlot); err != nil {
			log.Fatal(err)
		}
		log.Printf("Curve plot written to '%s'\n", fPlot)
	}

	if fLinearize != "" {
		longest := s.Layers[len(s.Layers)-1]
		lin, err := linearize.Linearize(longest.Exposure().Image, longest.Seconds(), res.Curves)
		if err != nil {
			log.Fatal(err)
		}
		if err := lin.WriteToHDR(fLinearize); err != nil {
			log.Fatal(err)
		}
		log.Printf("Linearized %s written to '%s'\n", longest.Filename(), fLinearize)
	}
}

// parseTimes accepts decimals ("0.5") and fractions ("1/125").
func parseTimes(str string) ([]float64, error) {
	times := []float64{}
	for _, field := range strings.Split(str, ",") {
		field = strings.TrimSpace(field)
		num, denom, isFrac := strings.Cut(field, "/")

		t, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, fmt.Errorf("bad exposure time '%s': %v", field, err)
		}
		if isFrac {
			d, err := strconv.ParseFloat(denom, 64)
			if err != nil || d == 0 {
				return nil, fmt.Errorf("bad exposure time '%s'", field)
			}
			t /= d
		}
		times = append(times, t)
	}
	return times, nil
}
