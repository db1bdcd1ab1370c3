package internal

import (
	"image"
	"image/color"
)

// Pixels whose first channel is below this value are solid.
const SolidThreshold = 128

// Raw interleaved pixel data, as produced by the loader. The first channel of
// each pixel (red, or luminance for gray images) decides whether it is solid.
type PixelBuffer struct {
	W, H     int
	Channels int
	Data     []byte
}

var _ Grid = (*PixelBuffer)(nil)

func (b *PixelBuffer) Width() int  { return b.W }
func (b *PixelBuffer) Height() int { return b.H }

func (b *PixelBuffer) IsSolid(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.Data[(y*b.W+x)*b.Channels] < SolidThreshold
}

// Check that the buffer can actually back the dimensions it claims.
func (b *PixelBuffer) validate() {
	if b.W < 0 || b.H < 0 {
		fatalf("invalid pixel buffer size %dx%d", b.W, b.H)
	}
	if b.W*b.H > 0 && b.Channels < 1 {
		fatalf("invalid channel count: %d", b.Channels)
	}
	if need := b.W * b.H * b.Channels; len(b.Data) < need {
		fatalf("pixel buffer too short: have %d bytes, need %d", len(b.Data), need)
	}
}

// Flatten a decoded image into a pixel buffer. Gray images keep a single
// luminance channel; everything else becomes non-premultiplied RGBA so the red
// channel comes first.
func NewPixelBuffer(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		buffer := &PixelBuffer{W: w, H: h, Channels: 1, Data: make([]byte, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				buffer.Data[y*w+x] = gray.Y
			}
		}
		return buffer
	}

	buffer := &PixelBuffer{W: w, H: h, Channels: 4, Data: make([]byte, w*h*4)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 4
			buffer.Data[i] = c.R
			buffer.Data[i+1] = c.G
			buffer.Data[i+2] = c.B
			buffer.Data[i+3] = c.A
		}
	}
	return buffer
}

// A grid backed by a plain boolean matrix, indexed [y][x]. Mostly useful for
// building shapes by hand.
type BoolGrid [][]bool

var _ Grid = BoolGrid(nil)

func NewBoolGrid(width, height int) BoolGrid {
	grid := make(BoolGrid, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}
	return grid
}

func (g BoolGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g BoolGrid) Height() int { return len(g) }

func (g BoolGrid) IsSolid(x, y int) bool {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return false
	}
	return g[y][x]
}

// Mark the rectangle [x, x+w) x [y, y+h) solid, clipped to the grid.
func (g BoolGrid) Fill(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if row >= 0 && row < len(g) && col >= 0 && col < len(g[row]) {
				g[row][col] = true
			}
		}
	}
}

// Parse a grid from rows of text, where '#' is solid and anything else is
// empty.
func ParseBoolGrid(rows ...string) BoolGrid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := NewBoolGrid(width, len(rows))
	for y, row := range rows {
		for x, c := range row {
			grid[y][x] = c == '#'
		}
	}
	return grid
}
