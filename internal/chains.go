package internal

import "math"

// Chains with this many points or fewer are dropped as noise.
const MaxNoisePoints = 20

// Stitch traced segments into chains. Each chain is seeded from the last
// remaining segment and grown forward only: the next link is always the
// earliest remaining segment starting where the chain currently ends. Nothing
// is ever prepended, so a loop starts at whichever segment seeded it.
//
// When a single segment is left over it is dropped, as are any chains of
// MaxNoisePoints points or fewer.
func BuildChains(segments []Segment) ChainList {
	chains := ChainList{}
	pool := newSegmentPool(segments)
	for pool.Len() > 1 {
		seed := pool.PopLast()
		chain := Chain{seed.Start, seed.End}
		for {
			next, ok := pool.TakeFrom(chain.Last())
			if !ok {
				break
			}
			chain = append(chain, next.End)
		}
		if len(chain) > MaxNoisePoints {
			chains = append(chains, chain)
		}
	}
	return chains
}

// Buckets are wider than PointEpsilon, so two equal points always land in the
// same bucket or in adjacent ones.
const poolBucketSize = 1e-3

type pointKey struct {
	x, y int64
}

func keyFor(p Point) pointKey {
	return pointKey{
		int64(math.Floor(float64(p.X) / poolBucketSize)),
		int64(math.Floor(float64(p.Y) / poolBucketSize)),
	}
}

// Segments indexed by start point. Removal only marks a segment dead, so every
// segment keeps its original position, and "earliest remaining" is simply the
// lowest live index.
type segmentPool struct {
	segments []Segment
	alive    []bool
	count    int
	// Every index above this is dead
	last    int
	buckets map[pointKey][]int
}

func newSegmentPool(segments []Segment) *segmentPool {
	pool := &segmentPool{
		segments: segments,
		alive:    make([]bool, len(segments)),
		count:    len(segments),
		last:     len(segments) - 1,
		buckets:  make(map[pointKey][]int),
	}
	for i, segment := range segments {
		pool.alive[i] = true
		key := keyFor(segment.Start)
		pool.buckets[key] = append(pool.buckets[key], i)
	}
	return pool
}

func (pool *segmentPool) Len() int {
	return pool.count
}

// Remove and return the live segment with the highest index. The pool must not
// be empty.
func (pool *segmentPool) PopLast() Segment {
	for !pool.alive[pool.last] {
		pool.last--
	}
	pool.remove(pool.last)
	return pool.segments[pool.last]
}

// Remove and return the earliest live segment whose start equals p.
func (pool *segmentPool) TakeFrom(p Point) (Segment, bool) {
	key := keyFor(p)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			neighbor := pointKey{key.x + dx, key.y + dy}
			indexes := pool.buckets[neighbor]
			// Bucket indexes are in ascending order, so the first live match is the
			// earliest one in this bucket.
			for _, i := range indexes {
				if best != -1 && i >= best {
					break
				}
				if pool.alive[i] && pool.segments[i].Start.Equal(p) {
					best = i
					break
				}
			}
			pool.compact(neighbor)
		}
	}
	if best == -1 {
		return Segment{}, false
	}
	pool.remove(best)
	return pool.segments[best], true
}

func (pool *segmentPool) remove(i int) {
	pool.alive[i] = false
	pool.count--
}

// Drop dead indexes from the front of a bucket so repeated lookups don't keep
// skipping them.
func (pool *segmentPool) compact(key pointKey) {
	indexes, ok := pool.buckets[key]
	if !ok {
		return
	}
	for len(indexes) > 0 && !pool.alive[indexes[0]] {
		indexes = indexes[1:]
	}
	if len(indexes) == 0 {
		delete(pool.buckets, key)
		return
	}
	pool.buckets[key] = indexes
}
