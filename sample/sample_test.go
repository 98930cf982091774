package sample_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/iro"
	"github.com/fwojciec/iro/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestSampler_SampleImage(t *testing.T) {
	t.Parallel()

	t.Run("orders by weight and drops extremes", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.RGBA{255, 0, 0, 255})
		img.Set(1, 0, color.RGBA{0, 0, 255, 255})
		img.Set(0, 1, color.RGBA{255, 0, 0, 255})
		img.Set(1, 1, color.RGBA{255, 255, 255, 255})

		got, err := sample.Sampler{}.SampleImage(img)
		require.NoError(t, err)
		assert.Equal(t, []iro.RawColor{
			{Color: iro.Color{R: 255}, Weight: 2},
			{Color: iro.Color{B: 255}, Weight: 1},
		}, got)
	})

	t.Run("falls back to all pixels when every pixel is extreme", func(t *testing.T) {
		t.Parallel()
		got, err := sample.Sampler{}.SampleImage(solid(3, 3, color.Black))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, iro.Black, got[0].Color)
		assert.Equal(t, 9, got[0].Weight)
	})

	t.Run("bucket color is the mean of its pixels", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 2, 1))
		img.Set(0, 0, color.RGBA{100, 100, 100, 255})
		img.Set(1, 0, color.RGBA{102, 104, 106, 255})
		got, err := sample.Sampler{}.SampleImage(img)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, iro.Color{R: 101, G: 102, B: 103}, got[0].Color)
	})

	t.Run("ignores transparent pixels", func(t *testing.T) {
		t.Parallel()
		_, err := sample.Sampler{}.SampleImage(solid(2, 2, color.RGBA{}))
		assert.ErrorIs(t, err, iro.ErrImageDecode)
	})

	t.Run("translucent pixels keep their color", func(t *testing.T) {
		t.Parallel()
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		for y := range 2 {
			for x := range 2 {
				img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 200})
			}
		}
		got, err := sample.Sampler{}.SampleImage(img)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 200, int(got[0].Color.R), 1)
		assert.InDelta(t, 100, int(got[0].Color.G), 1)
		assert.InDelta(t, 50, int(got[0].Color.B), 1)
	})

	t.Run("rejects empty image", func(t *testing.T) {
		t.Parallel()
		_, err := sample.Sampler{}.SampleImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
		assert.ErrorIs(t, err, iro.ErrImageDecode)
	})

	t.Run("downsampling is deterministic", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 400, 300))
		for y := range 300 {
			for x := range 400 {
				img.Set(x, y, color.RGBA{uint8(x), uint8(y), uint8(x ^ y), 255})
			}
		}
		s := sample.Sampler{MaxDimension: 50}
		a, err := s.SampleImage(img)
		require.NoError(t, err)
		b, err := s.SampleImage(img)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		total := 0
		for _, c := range a {
			total += c.Weight
		}
		assert.LessOrEqual(t, total, 50*37)
	})
}

func TestSampler_Sample(t *testing.T) {
	t.Parallel()

	t.Run("decodes png from disk", func(t *testing.T) {
		t.Parallel()
		path := writePNG(t, solid(10, 10, color.RGBA{40, 120, 200, 255}))
		got, err := sample.Sampler{}.Sample(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, iro.Color{R: 40, G: 120, B: 200}, got[0].Color)
	})

	t.Run("corrupt file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
		_, err := sample.Sampler{}.Sample(path)
		assert.ErrorIs(t, err, iro.ErrImageDecode)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := sample.Sampler{}.Sample(filepath.Join(t.TempDir(), "nope.jpg"))
		assert.ErrorIs(t, err, iro.ErrImageDecode)
	})
}
