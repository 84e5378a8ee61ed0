package exposure

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
)

// A Layer holds an image loaded from an input file, plus how it was exposed.
type Layer struct {
	LoadFilename       string
	ExposureValue

	image.Image
}

func (l Layer)String() string {
	b := l.Bounds()
	return fmt.Sprintf("%s: %s, %dx%d", l.Filename(), l.ExposureValue.String(), b.Dx(), b.Dy())
}

func (l Layer)Filename() string {
	return filepath.Base(l.LoadFilename)
}

// Exposure adapts the layer for the calibrator.
func (l Layer)Exposure() debevec.Exposure {
	return debevec.Exposure{Image: debevec.FromImage(l.Image), Time: l.Seconds()}
}
