package carve

import (
	"errors"
	"fmt"
)

// Sentinel error categories surfaced to callers. Per-candidate extraction
// failures are not fatal and never appear here; they are reflected in
// CarvedFile.Extracted instead.
var (
	// ErrIoOpen: the input cannot be opened or its length cannot be
	// determined. Fatal for the run; no results are produced.
	ErrIoOpen = errors.New("carve: unable to open input")
	// ErrIoRead: a streaming read returned an unrecoverable error. Fatal
	// for the run; results collected before the failing window remain valid
	// and are not discarded. Random-access read errors do not surface here:
	// a failed footer-search read falls back to the search-window bound, and
	// a failed extraction read marks the candidate as not extracted.
	ErrIoRead = errors.New("carve: unrecoverable read error")
	// ErrIoWrite: an output file could not be created or written. Recorded
	// per-candidate on CarvedFile.Extracted; never returned from Carve.
	ErrIoWrite = errors.New("carve: unable to write output")
	// ErrInvalidConfig: the Config failed validation before scanning began.
	ErrInvalidConfig = errors.New("carve: invalid configuration")
	// ErrCancelled is returned when a caller-supplied context is cancelled
	// between windows. Distinct from nil (success) and from the fatal
	// errors above.
	ErrCancelled = errors.New("carve: cancelled")
)

func wrapErr(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, cause)
}
