// Package sample decodes wallpaper images and reduces them to weighted
// representative colors.
package sample

import (
	"cmp"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"slices"

	"github.com/fwojciec/iro"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultMaxDimension is the longest side images are scaled down to.
const DefaultMaxDimension = 100

// Brightness bounds outside which pixels are ignored, unless ignoring them
// would leave nothing.
const (
	minBrightness = 20
	maxBrightness = 240
)

var _ iro.Sampler = (*Sampler)(nil)

// Sampler decodes images and counts quantized colors. The zero value uses
// DefaultMaxDimension.
type Sampler struct {
	// MaxDimension bounds the longest side of the sampled image. Zero means
	// DefaultMaxDimension; negative disables scaling.
	MaxDimension int
}

// Sample decodes the image at path and returns its colors, heaviest first.
func (s Sampler) Sample(path string) ([]iro.RawColor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, iro.ErrImageDecode)
	}
	defer f.Close()
	colors, err := s.SampleReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return colors, nil
}

// SampleReader decodes an image from r and samples it.
func (s Sampler) SampleReader(r io.Reader) ([]iro.RawColor, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, iro.ErrImageDecode)
	}
	return s.SampleImage(img)
}

// SampleImage samples an already decoded image. The result is deterministic
// for a given image.
func (s Sampler) SampleImage(img image.Image) ([]iro.RawColor, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("empty image: %w", iro.ErrImageDecode)
	}
	nrgba := downsample(img, s.maxDimension())

	filtered := newCounter()
	all := newCounter()
	pix := nrgba.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] < 128 {
			continue
		}
		c := iro.Color{R: pix[i], G: pix[i+1], B: pix[i+2]}
		all.add(c)
		brightness := (int(c.R) + int(c.G) + int(c.B)) / 3
		if brightness >= minBrightness && brightness <= maxBrightness {
			filtered.add(c)
		}
	}
	counts := filtered
	if len(counts.buckets) == 0 {
		counts = all
	}
	if len(counts.buckets) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels: %w", iro.ErrImageDecode)
	}
	return counts.colors(), nil
}

func (s Sampler) maxDimension() int {
	if s.MaxDimension == 0 {
		return DefaultMaxDimension
	}
	return s.MaxDimension
}

// downsample converts img to non-premultiplied RGBA, scaling it so its longest side is at most
// maxDim. Bilinear scaling is deterministic for a given input.
func downsample(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = max(1, h*maxDim/w)
			w = maxDim
		} else {
			w = max(1, w*maxDim/h)
			h = maxDim
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// bucket accumulates the pixels that share the top four bits of each channel.
type bucket struct {
	r, g, b int
	n       int
}

type counter struct {
	buckets map[uint16]*bucket
}

func newCounter() *counter {
	return &counter{buckets: make(map[uint16]*bucket)}
}

func (c *counter) add(col iro.Color) {
	key := uint16(col.R>>4)<<8 | uint16(col.G>>4)<<4 | uint16(col.B>>4)
	bk, ok := c.buckets[key]
	if !ok {
		bk = &bucket{}
		c.buckets[key] = bk
	}
	bk.r += int(col.R)
	bk.g += int(col.G)
	bk.b += int(col.B)
	bk.n++
}

// colors returns each bucket's mean color weighted by its pixel count,
// heaviest first with ties broken by packed RGB value.
func (c *counter) colors() []iro.RawColor {
	out := make([]iro.RawColor, 0, len(c.buckets))
	for _, bk := range c.buckets {
		out = append(out, iro.RawColor{
			Color: iro.Color{
				R: uint8((bk.r + bk.n/2) / bk.n),
				G: uint8((bk.g + bk.n/2) / bk.n),
				B: uint8((bk.b + bk.n/2) / bk.n),
			},
			Weight: bk.n,
		})
	}
	slices.SortFunc(out, func(a, b iro.RawColor) int {
		if d := cmp.Compare(b.Weight, a.Weight); d != 0 {
			return d
		}
		return cmp.Compare(packed(a.Color), packed(b.Color))
	})
	return out
}

func packed(c iro.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
