package debevec

import(
	"fmt"
	"image"
	"math"

	"github.com/valyala/fastrand"
)

// A SampleSet is the list of pixel positions read from every image in a
// series. The same positions (in the same order) are used for every image
// and every channel, so sample i refers to the same bit of scene throughout.
type SampleSet []image.Point

func (ss SampleSet)String() string {
	return fmt.Sprintf("SampleSet[%d points]", len(ss))
}

// GridSamples places roughly `samples` points on a regular grid of cell
// centers across a cols x rows image. Rounding means the result can hold a
// few less points than asked for, but never more; points that land outside
// the image are dropped. It is deterministic.
func GridSamples(samples, cols, rows int) SampleSet {
	ss := SampleSet{}
	if samples <= 0 || cols <= 0 || rows <= 0 {
		return ss
	}

	// xPoints <= samples keeps xPoints*yPoints <= samples on long thin images
	xPoints := min(max(1, int(math.Sqrt(float64(samples) * float64(cols) / float64(rows)))), samples, cols)
	yPoints := min(max(1, samples / xPoints), rows)
	stepX   := max(1, cols / xPoints)
	stepY   := max(1, rows / yPoints)

	for i:=0; i<xPoints; i++ {
		x := stepX/2 + i*stepX
		for j:=0; j<yPoints; j++ {
			y := stepY/2 + j*stepY
			if x < 0 || x >= cols || y < 0 || y >= rows {
				continue
			}
			ss = append(ss, image.Point{x, y})
		}
	}

	return ss
}

// RandomSamples draws `samples` points uniformly over the image, duplicates
// allowed. A zero seed leaves the generator unseeded, so every call differs.
func RandomSamples(samples, cols, rows int, seed uint32) SampleSet {
	ss := SampleSet{}
	if samples <= 0 || cols <= 0 || rows <= 0 {
		return ss
	}

	rng := fastrand.RNG{}
	if seed != 0 {
		rng.Seed(seed)
	}

	for i:=0; i<samples; i++ {
		x := int(rng.Uint32n(uint32(cols)))
		y := int(rng.Uint32n(uint32(rows)))
		ss = append(ss, image.Point{x, y})
	}

	return ss
}

// Sample picks the sampler the config asks for.
func (c Config)Sample(cols, rows int) SampleSet {
	if c.RandomSampling {
		return RandomSamples(c.Samples, cols, rows, c.Seed)
	}
	return GridSamples(c.Samples, cols, rows)
}

// Observations reads channel `ch` of every image at every sample point.
// The result is indexed [sample][image].
func (ss SampleSet)Observations(s Series, ch int) [][]uint8 {
	obs := make([][]uint8, len(ss))
	for i, pt := range ss {
		obs[i] = make([]uint8, len(s))
		for j, e := range s {
			obs[i][j] = e.RGB(pt.X, pt.Y)[ch]
		}
	}
	return obs
}
