package catalog

import (
	"errors"
	"fmt"
)

// ErrCorrupt marks a catalog file that exists but cannot be parsed. It is
// surfaced rather than silently resetting the catalog; the user decides
// whether to repair or remove the file.
var ErrCorrupt = errors.New("catalog file is corrupt")

// FormatError reports an input entry that is missing a required field or has
// the wrong shape, identified by its position in the input.
type FormatError struct {
	Index int
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("entry %d: missing or invalid field %q", e.Index, e.Field)
}
