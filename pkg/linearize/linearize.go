// Package linearize applies recovered response curves to a single
// exposure, turning recorded pixel values into relative scene radiance.
package linearize

import(
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
)

// Image is one exposure mapped into linear radiance: each channel value v
// becomes curve[v] / exposureTime. Implements image.Image and hdr.Image.
type Image struct {
	W, H    int
	Time    float64
	Pixels  []hdrcolor.RGB
}

// Implement image.Image
func (im *Image)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (im *Image)Bounds() image.Rectangle       { return image.Rect(0, 0, im.W, im.H) }
func (im *Image)At(x, y int) color.Color       { return im.HDRAt(x,y) }

// Implement hdr.Image
func (im *Image)HDRAt(x, y int) hdrcolor.Color { return im.Pix(x,y) }
func (im *Image)Size() int                     { return im.W * im.H }

func (im *Image)Pix(x, y int) hdrcolor.RGB     { return im.Pixels[y*im.W + x] }

func (im *Image)String() string {
	return fmt.Sprintf("linearize.Image[%dx%d @ %gs]", im.W, im.H, im.Time)
}

// Linearize maps every pixel of `src` through the per-channel curves.
func Linearize(src debevec.Image, time float64, curves [debevec.NumChannels]debevec.ResponseCurve) (*Image, error) {
	if !(time > 0) {
		return nil, fmt.Errorf("linearize: exposure time %g must be positive: %w", time, debevec.ErrConfig)
	}

	im := &Image{
		W:      src.Width(),
		H:      src.Height(),
		Time:   time,
		Pixels: make([]hdrcolor.RGB, src.Width() * src.Height()),
	}

	for y:=0; y<im.H; y++ {
		for x:=0; x<im.W; x++ {
			rgb := src.RGB(x, y)
			im.Pixels[y*im.W + x] = hdrcolor.RGB{
				R: curves[0][rgb[0]] / time,
				G: curves[1][rgb[1]] / time,
				B: curves[2][rgb[2]] / time,
			}
		}
	}

	return im, nil
}

// WriteToHDR outputs a Radiance RGBE (.hdr) file, loadable by most HDR tools.
func (im *Image)WriteToHDR(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("linearize.WriteToHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		err := rgbe.Encode(writer, im)
		if err != nil {
			log.Printf("linearize.WriteToHDR, encoding RGBE file: %v\n", err)
		}
		return err
	}
}
