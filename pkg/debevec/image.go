package debevec

import(
	"fmt"
	"image"
	"image/color"
)

const(
	Levels      = 256 // Number of distinct 8-bit intensities; length of a ResponseCurve
	NumChannels = 3   // R, G, B
	GaugeLevel  = 128 // The level whose log-response is pinned to zero
)

// An Image is the read-only pixel contract the calibration needs. It
// is satisfied by RGBImage, and by anything wrapped with FromImage.
type Image interface {
	Width() int
	Height() int
	RGB(x, y int) [NumChannels]uint8
}

// RGBImage is a simple in-memory Image, packed as RGBRGBRGB... row by row.
type RGBImage struct {
	W, H int
	Pix  []uint8
}

func NewRGBImage(w, h int, pix []uint8) (*RGBImage, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("NewRGBImage: bad dimensions %dx%d", w, h)
	}
	if pix == nil {
		pix = make([]uint8, w*h*NumChannels)
	} else if len(pix) != w*h*NumChannels {
		return nil, fmt.Errorf("NewRGBImage: %dx%d needs %d bytes, got %d", w, h, w*h*NumChannels, len(pix))
	}
	return &RGBImage{W:w, H:h, Pix:pix}, nil
}

func (im *RGBImage)Width() int  { return im.W }
func (im *RGBImage)Height() int { return im.H }

func (im *RGBImage)RGB(x, y int) [NumChannels]uint8 {
	i := (y*im.W + x) * NumChannels
	return [NumChannels]uint8{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

func (im *RGBImage)Set(x, y int, rgb [NumChannels]uint8) {
	i := (y*im.W + x) * NumChannels
	copy(im.Pix[i:i+NumChannels], rgb[:])
}

// Fill sets every pixel to the same color
func (im *RGBImage)Fill(rgb [NumChannels]uint8) {
	for i:=0; i<len(im.Pix); i+=NumChannels {
		copy(im.Pix[i:i+NumChannels], rgb[:])
	}
}

// goImage adapts an image.Image. Coordinates are relative to
// Bounds().Min, colors are un-premultiplied, and 16-bit channels are
// reduced to their top 8 bits.
type goImage struct {
	img    image.Image
	bounds image.Rectangle
}

func FromImage(img image.Image) Image {
	return goImage{img: img, bounds: img.Bounds()}
}

func (gi goImage)Width() int  { return gi.bounds.Dx() }
func (gi goImage)Height() int { return gi.bounds.Dy() }

func (gi goImage)RGB(x, y int) [NumChannels]uint8 {
	c := color.NRGBAModel.Convert(gi.img.At(x + gi.bounds.Min.X, y + gi.bounds.Min.Y)).(color.NRGBA)
	return [NumChannels]uint8{c.R, c.G, c.B}
}
