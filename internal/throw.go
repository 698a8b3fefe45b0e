package internal

import "github.com/pkg/errors"

// Degenerate input, like projecting onto a zero-length axis, is a programming
// error, not a geometric answer. Instead of threading errors
// through every vector operation, we panic, and the public API recovers to
// convert to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
