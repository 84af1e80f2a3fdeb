package choreo

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotHeadless indicates a manual clock operation on a wall clock platform.
	ErrNotHeadless = errors.New("platform is not headless")

	// ErrAlreadyRunning indicates Run was called on a platform that is already ticking.
	ErrAlreadyRunning = errors.New("platform is already running")
)

// PlatformError represents a failure in the runtime behind the animation
// primitives (config that cannot be loaded, a window that cannot be opened).
// These errors are typically fatal.
type PlatformError struct {
	Op  string // Operation that failed (e.g., "load_config", "create_window")
	Err error  // Underlying error
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("choreo: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("choreo: %s", e.Op)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError creates a new platform error.
func NewPlatformError(op string, err error) *PlatformError {
	return &PlatformError{Op: op, Err: err}
}

// IsPlatformError checks if an error is a platform error.
func IsPlatformError(err error) bool {
	var platformErr *PlatformError
	return errors.As(err, &platformErr)
}
