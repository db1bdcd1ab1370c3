package internal

import "math"

const PointEpsilon = 1e-4

// Two points are equal if they agree on both axes to within PointEpsilon. The
// chain builder depends on this when stitching segments from adjacent cells.
func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func Equal(a, b float32) bool {
	return abs32(a-b) < PointEpsilon
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(f float32) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(other Point) float32 {
	return p.X*other.X + p.Y*other.Y
}

func Distance(a, b Point) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Distance from p to the closest point of the segment. The projection is
// clamped, so points beyond either end measure to that endpoint rather than to
// the infinite line.
func PointToSegmentDistance(segment Segment, p Point) float32 {
	if segment.Start.Equal(segment.End) {
		return Distance(p, segment.Start)
	}
	segmentVector := segment.End.Sub(segment.Start)
	pointVector := p.Sub(segment.Start)
	t := segmentVector.Dot(pointVector) / segmentVector.Dot(segmentVector)
	t = clamp32(t, 0, 1)
	projection := segment.Start.Add(segmentVector.Scale(t))
	return Distance(p, projection)
}

func (c Chain) First() Point {
	return c[0]
}

func (c Chain) Last() Point {
	return c[len(c)-1]
}

// Whether the chain ends where it started
func (c Chain) IsClosed() bool {
	return len(c) > 2 && c.First().Equal(c.Last())
}

// Bounding box of every point in the list. Returns zero points for an empty
// list.
func (cl ChainList) Bounds() (min, max Point) {
	first := true
	for _, chain := range cl {
		for _, p := range chain {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.X = min32(min.X, p.X)
			min.Y = min32(min.Y, p.Y)
			max.X = max32(max.X, p.X)
			max.Y = max32(max.Y, p.Y)
		}
	}
	return min, max
}

func (cl ChainList) PointCount() int {
	count := 0
	for _, chain := range cl {
		count += len(chain)
	}
	return count
}

func (s *RangeStack) Push(start, end int) {
	*s = append(*s, indexRange{start, end})
}

func (s *RangeStack) Pop() (start, end int) {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r.start, r.end
}

func (s *RangeStack) Empty() bool {
	return len(*s) == 0
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp32(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
