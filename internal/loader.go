package internal

import (
	"image"
	"io"
	"os"

	// Decoders for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
)

// Load and decode an image file into a pixel buffer. A file that can't be
// opened or decoded is an error; a valid image with no pixels is not.
func LoadImage(path string) (*PixelBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't load image")
	}
	defer file.Close()

	buffer, err := DecodeImage(file)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load image %q", path)
	}
	return buffer, nil
}

// Decode an image in any registered format from a reader.
func DecodeImage(r io.Reader) (*PixelBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode failed")
	}
	if img == nil {
		return nil, errors.Errorf("%s decoder returned no image", format)
	}
	return NewPixelBuffer(img), nil
}
