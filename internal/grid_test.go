package internal

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, name string, img image.Image, encode func(*os.File, image.Image) error) string {
	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, encode(file, img))
	return path
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestPixelBuffer_IsSolid(t *testing.T) {
	buffer := &PixelBuffer{W: 2, H: 2, Channels: 2, Data: []byte{
		0, 255, 127, 0,
		128, 0, 255, 255,
	}}
	assert.True(t, buffer.IsSolid(0, 0))
	assert.True(t, buffer.IsSolid(1, 0))
	assert.False(t, buffer.IsSolid(0, 1))
	assert.False(t, buffer.IsSolid(1, 1))
	assert.False(t, buffer.IsSolid(-1, 0))
	assert.False(t, buffer.IsSolid(2, 0))
	assert.False(t, buffer.IsSolid(0, 2))
}

func TestNewPixelBuffer(t *testing.T) {
	t.Run("gray", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 3, 2))
		img.SetGray(1, 1, color.Gray{Y: 200})
		buffer := NewPixelBuffer(img)
		assert.Equal(t, 1, buffer.Channels)
		assert.Equal(t, []byte{0, 0, 0, 0, 200, 0}, buffer.Data)
		assert.True(t, buffer.IsSolid(0, 0))
		assert.False(t, buffer.IsSolid(1, 1))
	})

	t.Run("color uses red", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
		img.SetNRGBA(10, 20, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
		img.SetNRGBA(11, 20, color.NRGBA{R: 0, G: 255, B: 255, A: 255})
		buffer := NewPixelBuffer(img)
		assert.Equal(t, 4, buffer.Channels)
		assert.Equal(t, 2, buffer.Width())
		assert.Equal(t, 1, buffer.Height())
		assert.False(t, buffer.IsSolid(0, 0))
		assert.True(t, buffer.IsSolid(1, 0))
	})
}

func TestLoadImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			img.SetGray(x, y, color.Gray{Y: 10})
		}
	}

	for name, encode := range map[string]func(*os.File, image.Image) error{
		"square.png": encodePNG,
		"square.bmp": encodeBMP,
	} {
		path := writeImage(t, name, img, encode)
		buffer, err := LoadImage(path)
		require.NoError(t, err, name)
		assert.Equal(t, 8, buffer.Width(), name)
		assert.Equal(t, 8, buffer.Height(), name)
		assert.Equal(t, Trace(SquareGrid(8, 8, 1, 1, 6)), Trace(buffer), name)
	}
}

func TestLoadImage_Failure(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))
	_, err = LoadImage(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "garbage.png")
}

func TestLoadImage_ZeroSize(t *testing.T) {
	// PNG can't encode an empty image, so build the buffer directly
	buffer := NewPixelBuffer(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, 0, buffer.Width())
	assert.Empty(t, Trace(buffer))
}

func TestBoolGrid(t *testing.T) {
	grid := ParseBoolGrid(
		"#..",
		".##",
	)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.True(t, grid.IsSolid(0, 0))
	assert.False(t, grid.IsSolid(1, 0))
	assert.True(t, grid.IsSolid(2, 1))
	assert.False(t, grid.IsSolid(3, 1))
	assert.False(t, grid.IsSolid(0, -1))

	grid.Fill(-1, -1, 2, 2)
	assert.True(t, grid.IsSolid(0, 0))
	assert.Equal(t, 0, NewBoolGrid(0, 0).Width())
}

func TestLoadFixture(t *testing.T) {
	ring := LoadFixture("ring")
	assert.Equal(t, 16, ring.Width())
	assert.Equal(t, 16, ring.Height())
	assert.True(t, ring.IsSolid(2, 2))
	assert.True(t, ring.IsSolid(13, 13))
	assert.False(t, ring.IsSolid(7, 7), "hole")
	assert.False(t, ring.IsSolid(1, 1))
}
