package internal

// Points live in image pixel space. Traced points always sit on a half pixel
// grid, but arithmetic during simplification can drift, so comparisons go
// through Equal rather than ==.
type Point struct {
	X float32
	Y float32
}

// Orientation matters: chains are only ever extended from a segment's Start to
// its End.
type Segment struct {
	Start Point
	End   Point
}

// A chain is an ordered run of points along a boundary. Closed boundaries end
// on the point they started with.
type Chain []Point

type ChainList []Chain

// The corner sampling used by the tracer. Anything outside [0, Width) x [0,
// Height) is treated as empty by the tracer, so implementations don't need to
// bounds check.
type Grid interface {
	Width() int
	Height() int
	IsSolid(x, y int) bool
}

// Work stack of index ranges for the simplifier
type indexRange struct {
	start, end int
}

type RangeStack []indexRange
