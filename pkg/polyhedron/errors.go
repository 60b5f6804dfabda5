package polyhedron

import "fmt"

// GeometryError reports a violated geometric invariant: a trimmed edge
// collapsing below tolerance, a face crossing the cutting plane an
// impossible number of times, or shared edge storage. It signals
// corrupted or non-convex input rather than an expected runtime
// condition; a Polyhedron that returned one must be discarded.
type GeometryError struct {
	Op     string // operation that detected the violation
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("polyhedron: %s: %s", e.Op, e.Reason)
}

func geometryErrorf(op, format string, args ...interface{}) *GeometryError {
	return &GeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
