package fieldtree

import "errors"

// ErrMaterialize marks failures while constructing a field wrapper over a
// backing store node, typically a factory rejecting a malformed node.
// Absent attributes, absent parents, and unmatched path segments are normal
// outcomes and never produce this error.
var ErrMaterialize = errors.New("fieldtree: materialize field")
