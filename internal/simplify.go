package internal

// Ramer-Douglas-Peucker simplification.
//
// Each index range is replaced by the straight segment between its endpoints
// unless some interior point strays further than the tolerance from it, in
// which case the range is split at the farthest point and both halves are
// handled the same way. Ranges are processed depth first, left half before
// right half, using an explicit stack so that long, nearly straight chains
// can't blow up the call stack.

// Simplify a chain, returning the kept points in their original order. The
// first and last points are always kept. Chains with fewer than three points
// are returned as is.
func Simplify(chain Chain, tolerance float32) Chain {
	if len(chain) < 3 {
		return chain
	}
	indexes := SimplifyIndexes(chain, tolerance)
	result := make(Chain, len(indexes))
	for i, index := range indexes {
		result[i] = chain[index]
	}
	return result
}

// Like Simplify, but returns the indexes of the kept points.
func SimplifyIndexes(chain Chain, tolerance float32) []int {
	if len(chain) < 3 {
		indexes := make([]int, len(chain))
		for i := range indexes {
			indexes[i] = i
		}
		return indexes
	}

	kept := []int{0}
	stack := make(RangeStack, 0)
	stack.Push(0, len(chain)-1)
	for !stack.Empty() {
		start, end := stack.Pop()
		farthest, distance := farthestPoint(chain, start, end)
		if distance > tolerance && farthest > start {
			// Right half is pushed first so the left half is handled first
			stack.Push(farthest, end)
			stack.Push(start, farthest)
		} else {
			kept = append(kept, end)
		}
	}
	return kept
}

// Find the interior point of the range farthest from the segment joining its
// endpoints. Ties go to the earliest point. If the range has no interior, the
// distance is zero.
func farthestPoint(chain Chain, start, end int) (index int, distance float32) {
	segment := Segment{chain[start], chain[end]}
	index = start
	for i := start + 1; i < end; i++ {
		d := PointToSegmentDistance(segment, chain[i])
		if d > distance {
			distance = d
			index = i
		}
	}
	return index, distance
}

// Simplify every chain in the list in place.
func (cl ChainList) Simplify(tolerance float32) {
	for i, chain := range cl {
		cl[i] = Simplify(chain, tolerance)
	}
}
