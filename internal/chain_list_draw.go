package internal

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/vectorize/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the image so chains on the border aren't clipped
const drawPadding = 20

// Stroke colors, cycled per chain
var chainColors = [][3]float64{
	{0, 1, 1},
	{1, 0.6, 0},
	{0.4, 1, 0.2},
	{1, 0.3, 0.7},
	{1, 1, 0},
	{0.5, 0.5, 1},
}

// Render the chains to a PNG file. If grid is not nil its solid pixels are
// drawn underneath, and its size sets the canvas size; otherwise the canvas
// covers the chains' bounding box.
func (cl ChainList) DrawPNG(path string, grid Grid, scale float64) error {
	c := cl.draw(grid, scale)
	return errors.Wrapf(c.SavePNG(path), "can't save drawing to %q", path)
}

// Show a PNG in the terminal. This only works in iTerm and terminals that
// support its inline image protocol.
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "can't preview %q", path)
}

// Helper to draw the chains and print them in the terminal for debugging.
func (cl ChainList) dbgDraw(grid Grid, scale float64) {
	const path = "/tmp/chain_list.png"
	if err := cl.DrawPNG(path, grid, scale); err != nil {
		return
	}
	Preview(path, os.Stdout)
}

func (cl ChainList) draw(grid Grid, scale float64) *gg.Context {
	var imageWidth, imageHeight float64
	if grid != nil {
		imageWidth, imageHeight = float64(grid.Width()), float64(grid.Height())
	} else {
		_, max := cl.Bounds()
		imageWidth, imageHeight = math.Ceil(float64(max.X)), math.Ceil(float64(max.Y))
	}

	width := int(scale*imageWidth) + drawPadding*2
	height := int(scale*imageHeight) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	if grid != nil {
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				if grid.IsSolid(x, y) {
					c.DrawRectangle(float64(x), float64(y), 1, 1)
				}
			}
		}
		c.SetRGB(0.25, 0.25, 0.25)
		c.Fill()
	}

	c.SetLineWidth(2)
	for i, chain := range cl {
		if len(chain) == 0 {
			continue
		}
		color := chainColors[i%len(chainColors)]
		c.SetRGB(color[0], color[1], color[2])

		c.MoveTo(float64(chain[0].X), float64(chain[0].Y))
		for _, p := range chain[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		if chain.IsClosed() {
			c.ClosePath()
		}
		c.Stroke()

		// Mark the vertices, so it's visible what simplification kept
		for _, p := range chain {
			c.DrawCircle(float64(p.X), float64(p.Y), 2/scale)
		}
		c.Fill()

		// Label the chain at its first point. Text has to be drawn in native
		// coordinates, or the glyphs get scaled along with everything else.
		labelX, labelY := c.TransformPoint(float64(chain[0].X), float64(chain[0].Y))
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.ChainName(i), labelX, labelY, 0.5, 1.5)
		c.Pop()
	}
	return c
}
