package debevec

import(
	"errors"
	"fmt"
	"log"
	"math"

	"gopkg.in/yaml.v2"
)

/* Example config file ...

samples: 100
lambda: 10.0
randomsampling: false
weighting: hat
verbosity: 1

*/

// ErrConfig is wrapped by every error that is due to bad inputs or
// settings, rather than something going wrong mid-computation.
var ErrConfig = errors.New("configuration error")

type Config struct {
	Verbosity          int

	Samples            int      // Target number of sample points; grid mode may use a few less
	Lambda             float64  // Weight of the smoothness rows
	RandomSampling     bool     // false == deterministic grid
	Seed               uint32   // For random sampling; 0 means unseeded
	Weighting          string   // see ListWeightings()

	MaxMemoryFraction  float64  // Warn if the dense system would use more than this much of RAM
}

func NewConfig() Config {
	return Config{
		Samples:           70,
		Lambda:            10.0,
		RandomSampling:    false,
		Weighting:         "hat",
		MaxMemoryFraction: 0.5,
	}
}

// NewConfigFromYaml starts from the defaults, and overlays whatever the yaml sets.
func NewConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("config yaml: %v: %w", err, ErrConfig)
	}
	return c, nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d: %w", c.Samples, ErrConfig)
	}
	if !(c.Lambda >= 0) || math.IsInf(c.Lambda, 1) {
		return fmt.Errorf("lambda must be finite and non-negative, got %f: %w", c.Lambda, ErrConfig)
	}
	if _, err := WeightByName(c.Weighting); err != nil {
		return err
	}
	return nil
}

// GetWeighting returns the configured WeightFunc, falling back to the hat.
func (c Config)GetWeighting() WeightFunc {
	w, err := WeightByName(c.Weighting)
	if err != nil {
		return HatWeight
	}
	return w
}
