package framebuffer

import (
	"errors"
	"fmt"
)

var (
	// ErrSurface indicates the native surface could not be created.
	ErrSurface = errors.New("framebuffer: surface unavailable")

	// ErrUnknownBackend indicates no backend is registered under a name.
	ErrUnknownBackend = errors.New("framebuffer: unknown backend")

	// ErrPresent indicates a frame could not be copied to the visible surface.
	ErrPresent = errors.New("framebuffer: present failed")
)

// SurfaceError wraps a backend failure with the operation that raised it.
// It always matches ErrSurface under errors.Is.
type SurfaceError struct {
	Backend string
	Op      string
	Wrapped error
}

// NewSurfaceError builds a SurfaceError for backend/op around err.
func NewSurfaceError(backend, op string, err error) *SurfaceError {
	return &SurfaceError{Backend: backend, Op: op, Wrapped: err}
}

func (e *SurfaceError) Error() string {
	msg := fmt.Sprintf("framebuffer: %s backend: %s", e.Backend, e.Op)
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *SurfaceError) Unwrap() error {
	return e.Wrapped
}

// Is reports ErrSurface as a match so callers need not know the backend.
func (e *SurfaceError) Is(target error) bool {
	return target == ErrSurface
}
