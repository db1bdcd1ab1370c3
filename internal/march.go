package internal

// Marching squares over a binary grid. Each cell looks at the 2x2 block of
// pixels whose top left corner is the cell origin, and the boundary between
// solid and empty pixels is drawn between the midpoints of the cell's sides.
//
// Cells start at -1 on both axes so that shapes touching the top or left edge
// of the image still get a closed boundary. Shapes touching the bottom or
// right edge are closed by the last row and column, whose lower and right
// corners fall outside the grid.

// Cell sides, used to name segment endpoints in the case table.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

type edgePair struct {
	from, to Side
}

// Boundary crossings for each corner configuration. The index has bit 0 for
// the top left corner, bit 1 for top right, bit 2 for bottom right and bit 3
// for bottom left. Segments run with solid on their right when y points down.
//
// The saddles (5 and 10) are always split into two separate crossings. No
// attempt is made to decide whether the diagonal pixels are connected.
var marchingSquaresCases = [16][]edgePair{
	{},                             // 0: ....
	{{Top, Left}},                  // 1: #...
	{{Right, Top}},                 // 2: .#..
	{{Right, Left}},                // 3: ##..
	{{Bottom, Right}},              // 4: ..#.
	{{Top, Left}, {Bottom, Right}}, // 5: #.#.
	{{Bottom, Top}},                // 6: .##.
	{{Bottom, Left}},               // 7: ###.
	{{Left, Bottom}},               // 8: ...#
	{{Top, Bottom}},                // 9: #..#
	{{Right, Top}, {Left, Bottom}}, // 10: .#.#
	{{Right, Bottom}},              // 11: ##.#
	{{Left, Right}},                // 12: ..##
	{{Top, Right}},                 // 13: #.##
	{{Left, Top}},                  // 14: .###
	{},                             // 15: ####
}

// Configuration index for the cell with origin (x, y).
func cellCase(grid Grid, x, y int) int {
	index := 0
	if solidAt(grid, x, y) {
		index |= 1
	}
	if solidAt(grid, x+1, y) {
		index |= 2
	}
	if solidAt(grid, x+1, y+1) {
		index |= 4
	}
	if solidAt(grid, x, y+1) {
		index |= 8
	}
	return index
}

// Out of bounds pixels are always empty, whatever the grid says.
func solidAt(grid Grid, x, y int) bool {
	if x < 0 || y < 0 || x >= grid.Width() || y >= grid.Height() {
		return false
	}
	return grid.IsSolid(x, y)
}

// Midpoint of the given side of the cell with origin (x, y).
func sideMidpoint(x, y int, side Side) Point {
	fx, fy := float32(x), float32(y)
	switch side {
	case Top:
		return Point{fx + 0.5, fy}
	case Right:
		return Point{fx + 1, fy + 0.5}
	case Bottom:
		return Point{fx + 0.5, fy + 1}
	case Left:
		return Point{fx, fy + 0.5}
	}
	fatalf("invalid cell side: %d", side)
	return Point{}
}

// Trace every boundary segment in the grid. Segments come out in row-major
// cell order, and in table order within a cell.
func Trace(grid Grid) []Segment {
	if buffer, ok := grid.(*PixelBuffer); ok {
		if buffer == nil {
			fatalf("nil pixel buffer")
		}
		buffer.validate()
	}
	width, height := grid.Width(), grid.Height()
	if width < 0 || height < 0 {
		fatalf("invalid grid size %dx%d", width, height)
	}

	var segments []Segment
	for y := -1; y < height; y++ {
		for x := -1; x < width; x++ {
			for _, pair := range marchingSquaresCases[cellCase(grid, x, y)] {
				segments = append(segments, Segment{
					Start: sideMidpoint(x, y, pair.from),
					End:   sideMidpoint(x, y, pair.to),
				})
			}
		}
	}
	return segments
}
