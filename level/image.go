package level

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/grid"
)

// LoadImage decodes a PNG terrain image
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open terrain image %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode terrain image %s: %w", path, err)
	}
	return img, nil
}

// Ingest writes one dirt particle per visible pixel, image top at grid top
// Pixels outside the grid are ignored; returns particles written
func Ingest(img image.Image, g grid.Store) int {
	b := img.Bounds()
	n := 0
	for py := b.Min.Y; py < b.Max.Y; py++ {
		gy := g.Height() - 1 - (py - b.Min.Y)
		for px := b.Min.X; px < b.Max.X; px++ {
			gx := px - b.Min.X
			if !g.InBounds(gx, gy) {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			g.Set(gx, gy, grid.Particle{
				Kind:  grid.KindDirt,
				Color: core.RGBA{R: c.R, G: c.G, B: c.B, A: 255},
			})
			n++
		}
	}
	return n
}
