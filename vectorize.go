// Trace the boundaries of a black and white raster image as polylines.
//
// Pixels are classified as solid or empty, the boundary between them is traced
// with marching squares, the resulting segments are stitched into chains, and
// each chain is simplified with Ramer-Douglas-Peucker to within a tolerance
// given in pixels.
package vectorize

import (
	"io"
	"math"

	"github.com/osuushi/vectorize/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Segment = internal.Segment
type Chain = internal.Chain
type ChainList = internal.ChainList
type Grid = internal.Grid
type PixelBuffer = internal.PixelBuffer

// Load the image at path and trace it. If the image can't be loaded, the
// result is empty and the error says why.
func Vectorize(path string, tolerance float32) (ChainList, error) {
	buffer, err := internal.LoadImage(path)
	if err != nil {
		return ChainList{}, err
	}
	return VectorizeGrid(buffer, tolerance)
}

// Decode an image from r and trace it.
func VectorizeReader(r io.Reader, tolerance float32) (ChainList, error) {
	buffer, err := internal.DecodeImage(r)
	if err != nil {
		return ChainList{}, errors.Wrap(err, "can't load image")
	}
	return VectorizeGrid(buffer, tolerance)
}

// Trace the solid regions of a grid. Chains come back in the order they were
// discovered, not sorted spatially. An image with no boundaries gives an
// empty list and no error.
//
// The tolerance is the largest distance, in pixels, that any dropped point may
// lie from the simplified chain.
func VectorizeGrid(grid Grid, tolerance float32) (result ChainList, err error) {
	defer func() {
		recoveredErr := internal.HandleVectorizePanicRecover(recover())
		if recoveredErr != nil {
			result = ChainList{}
			err = recoveredErr
		}
	}()
	if grid == nil {
		return ChainList{}, errors.New("no grid to vectorize")
	}
	if tolerance < 0 || math.IsNaN(float64(tolerance)) {
		return ChainList{}, errors.Errorf("invalid tolerance: %v", tolerance)
	}

	segments := internal.Trace(grid)
	chains := internal.BuildChains(segments)
	chains.Simplify(tolerance)
	return chains, nil
}
