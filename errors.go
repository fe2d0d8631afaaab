package tabwalk

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingInterface = errors.New("missing required interface")
)

// RenderError wraps the first failure raised by a sink callback or cell
// valuer during a render pass. Everything emitted before the failure is
// incomplete; the caller must discard or otherwise handle it.
type RenderError struct {
	TableID string
	Err     error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render table %q: %v", e.TableID, e.Err)
}

// Unwrap returns the original cause.
func (e *RenderError) Unwrap() error { return e.Err }
