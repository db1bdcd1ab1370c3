package internal

import "strings"

// A character grid for eyeballing chains in a terminal. Every point of every
// chain is plotted as a letter, 'A' for the first chain, 'B' for the second,
// wrapping after 'Z'. Cells hold the index of the last chain plotted there, or
// -1 for background.
type Canvas struct {
	Width, Height int
	Cells         [][]int
	// Number of chains plotted, including any that fell off the canvas
	Chains int
}

const (
	canvasBackground = '.'
	emptyCanvasText  = "no chains to display"
)

// Plot chains from an image of the given size onto a canvas consoleWidth
// characters wide. Terminal cells are roughly twice as tall as they are wide,
// so the height is halved to keep the aspect ratio.
func NewCanvas(chains ChainList, imageWidth, imageHeight, consoleWidth int) *Canvas {
	height := 0
	if imageWidth > 0 && consoleWidth > 0 {
		height = int(float32(imageHeight) / float32(imageWidth) * float32(consoleWidth) * 0.5)
	}
	if height < 0 {
		height = 0
	}
	width := consoleWidth
	if width < 0 {
		width = 0
	}

	canvas := &Canvas{Width: width, Height: height, Cells: make([][]int, height), Chains: len(chains)}
	for y := range canvas.Cells {
		row := make([]int, width)
		for x := range row {
			row[x] = -1
		}
		canvas.Cells[y] = row
	}

	if imageWidth <= 0 || imageHeight <= 0 {
		return canvas
	}
	for i, chain := range chains {
		for _, p := range chain {
			x := int(p.X / float32(imageWidth) * float32(width))
			y := int(p.Y / float32(imageHeight) * float32(height))
			if x >= 0 && x < width && y >= 0 && y < height {
				canvas.Cells[y][x] = i
			}
		}
	}
	return canvas
}

// The letter used for the chain with the given index
func Glyph(chainIndex int) byte {
	return byte('A' + chainIndex%26)
}

// Render the canvas as lines of text. Paint is called for every cell that
// holds a chain and returns the text to put there; nil paints the plain glyph.
func (c *Canvas) Lines(paint func(chainIndex int, glyph byte) string) []string {
	if c.Empty() {
		return []string{emptyCanvasText}
	}
	lines := make([]string, 0, c.Height)
	for _, row := range c.Cells {
		var builder strings.Builder
		for _, cell := range row {
			if cell < 0 {
				builder.WriteByte(canvasBackground)
			} else if paint == nil {
				builder.WriteByte(Glyph(cell))
			} else {
				builder.WriteString(paint(cell, Glyph(cell)))
			}
		}
		lines = append(lines, builder.String())
	}
	return lines
}

// Whether there were no chains to plot
func (c *Canvas) Empty() bool {
	return c.Chains == 0
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(nil), "\n")
}
