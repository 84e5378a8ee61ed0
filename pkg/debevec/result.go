package debevec

import(
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

var ChannelNames = [NumChannels]string{"red", "green", "blue"}

// curveFile is the on-disk form of a Result; one list of 256 values per channel.
type curveFile struct {
	Samples int
	Curves  map[string][]float64
}

func (r Result)AsYaml() ([]byte, error) {
	cf := curveFile{Samples: len(r.Samples), Curves: map[string][]float64{}}
	for ch:=0; ch<NumChannels; ch++ {
		cf.Curves[ChannelNames[ch]] = append([]float64{}, r.Curves[ch][:]...)
	}
	return yaml.Marshal(cf)
}

// WriteYaml saves the curves, e.g. for a later HDR merge step to read.
func (r Result)WriteYaml(filename string) error {
	b, err := r.AsYaml()
	if err != nil {
		return fmt.Errorf("marshal curves: %v", err)
	}
	if err := ioutil.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("write '%s': %v", filename, err)
	}
	return nil
}

// ReadCurvesYaml loads curves written by WriteYaml.
func ReadCurvesYaml(filename string) ([NumChannels]ResponseCurve, error) {
	var curves [NumChannels]ResponseCurve

	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return curves, fmt.Errorf("read '%s': %v", filename, err)
	}

	cf := curveFile{}
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return curves, fmt.Errorf("parse '%s': %v", filename, err)
	}

	for ch:=0; ch<NumChannels; ch++ {
		vals, exists := cf.Curves[ChannelNames[ch]]
		if !exists || len(vals) != Levels {
			return curves, fmt.Errorf("'%s': channel %s wants %d values, got %d",
				filename, ChannelNames[ch], Levels, len(vals))
		}
		copy(curves[ch][:], vals)
	}

	return curves, nil
}
