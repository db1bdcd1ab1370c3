package internal

import "github.com/pkg/errors"

// The pipeline stages return plain values, and the only failures inside them
// are broken invariants (a malformed grid or pixel buffer). Rather than
// threading errors through every stage, they panic with a VectorizeError and
// the public API recovers it into an ordinary error. Any other panic,
// including runtime errors, is passed through untouched.

type VectorizeError struct {
	err error
}

func (e VectorizeError) Error() string {
	return e.err.Error()
}

func (e VectorizeError) Cause() error {
	return e.err
}

func (e VectorizeError) Unwrap() error {
	return e.err
}

// Panic with a VectorizeError.
func fatalf(format string, args ...interface{}) {
	panic(VectorizeError{errors.Errorf(format, args...)})
}

func HandleVectorizePanicRecover(r interface{}) error {
	if r != nil {
		if vectorizeError, ok := r.(VectorizeError); ok {
			return vectorizeError
		}
		panic(r)
	}
	return nil
}
