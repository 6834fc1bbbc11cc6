package internal

import "github.com/pkg/errors"

// Threading errors through every mesh mutation would add a lot of noise to the
// split and flip code, and the only errors possible there are broken
// invariants (bugs). Instead, we panic with a TriangulateError, and the public
// API recovers to convert it to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error { return e.error }

// Panic with a TriangulateError.
func Fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Recover helper for the public API. A TriangulateError becomes an ordinary
// error; anything else (including runtime errors) is a real panic and is
// re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
