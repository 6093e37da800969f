package artifact

import "errors"

// ErrNotFound is returned when a reference_key has no version visible to
// the requesting tenant/session.
var ErrNotFound = errors.New("artifact: not found")

// ErrInvalidRef is returned when parse_refs or resolve is given a
// malformed reference.
var ErrInvalidRef = errors.New("artifact: invalid reference")
