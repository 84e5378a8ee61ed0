// Package plot draws recovered response curves, for eyeballing.
package plot

import(
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dany-demise/calibrate-debevec/pkg/debevec"
)

const(
	Width  = 768
	Height = 512
	margin = 40.0
)

// ChannelColor is the line color for each channel; red, green, blue hues
// at a matching lightness, so no channel dominates the plot.
func ChannelColor(ch int) colorful.Color {
	hues := [debevec.NumChannels]float64{30, 135, 260}
	return colorful.Hcl(hues[ch], 0.8, 0.55).Clamped()
}

// Render draws log-response g(v) against pixel level v for each channel.
func Render(curves [debevec.NumChannels]debevec.ResponseCurve, title string) image.Image {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	logs := [debevec.NumChannels][debevec.Levels]float64{}
	lo, hi := math.Inf(1), math.Inf(-1)
	for ch:=0; ch<debevec.NumChannels; ch++ {
		logs[ch] = curves[ch].Log()
		for _, g := range logs[ch] {
			lo = math.Min(lo, g)
			hi = math.Max(hi, g)
		}
	}
	if !(hi > lo) {
		hi = lo + 1
	}

	plotW, plotH := float64(Width) - 2*margin, float64(Height) - 2*margin
	px := func(v int) float64 { return margin + plotW * float64(v) / float64(debevec.Levels-1) }
	py := func(g float64) float64 { return margin + plotH * (hi - g) / (hi - lo) }

	// Axes, and a marker at the gauge level
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, plotW, plotH)
	dc.Stroke()
	dc.DrawLine(px(debevec.GaugeLevel), margin, px(debevec.GaugeLevel), margin+plotH)
	dc.Stroke()

	dc.SetLineWidth(2)
	for ch:=0; ch<debevec.NumChannels; ch++ {
		c := ChannelColor(ch)
		dc.SetRGB(c.R, c.G, c.B)
		dc.MoveTo(px(0), py(logs[ch][0]))
		for v:=1; v<debevec.Levels; v++ {
			dc.LineTo(px(v), py(logs[ch][v]))
		}
		dc.Stroke()
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawString(title, margin, margin/2)
	dc.DrawString("0", margin, float64(Height) - margin/3)
	dc.DrawStringAnchored("255", margin+plotW, float64(Height) - margin/3, 1, 0)

	return dc.Image()
}

// Curves renders the result's curves into a PNG file.
func Curves(res debevec.Result, title, filename string) error {
	img := Render(res.Curves, title)
	return gg.SavePNG(filename, img)
}
