package scores

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingIdentifiers is returned by Load under ReconcileReject when the
// score file lacks entries for people in the current roster.
var ErrMissingIdentifiers = errors.New("score file is missing identifiers")

// LoadError indicates an existing score file could not be read or parsed.
// It is always fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load scores from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MissingError lists the identifiers absent from a loaded score file.
type MissingError struct {
	IDs []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingIdentifiers, strings.Join(e.IDs, ", "))
}

func (e *MissingError) Unwrap() error { return ErrMissingIdentifiers }
