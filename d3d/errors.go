package d3d

import (
	"errors"
	"fmt"
)

// ErrSessionUnavailable is returned when the output duplication session
// cannot be claimed, typically because another process (or another
// duplicator in this process) already holds it.
var ErrSessionUnavailable = errors.New("output duplication session unavailable")

// ConfigurationError reports an adapter or output index that does not exist
// on this machine. It is only produced at construction time.
type ConfigurationError struct {
	Adapter int
	Output  int
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no such output (adapter %d, output %d): %v", e.Adapter, e.Output, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// DuplicationError wraps a native failure with a human-readable cause.
type DuplicationError struct {
	Cause string
	Err   error
}

func (e *DuplicationError) Error() string { return e.Cause + ": " + e.Err.Error() }

func (e *DuplicationError) Unwrap() error { return e.Err }

func newDuplicationError(cause string, hr int32) *DuplicationError {
	return &DuplicationError{Cause: cause, Err: _DXGI_ERROR(uint32(hr))}
}

// classifyAcquire maps an AcquireNextFrame HRESULT onto the three possible
// outcomes: a new frame, an expired wait bound (not an error), or a fatal
// failure.
func classifyAcquire(hr int32) (newFrame bool, err error) {
	if !failed(hr) {
		return true, nil
	}
	if _DXGI_ERROR(uint32(hr)) == DXGI_ERROR_WAIT_TIMEOUT {
		return false, nil
	}
	return false, newDuplicationError("failed to acquire next frame", hr)
}

// classifyDuplicateOutput distinguishes "the session is taken" from other
// DuplicateOutput failures.
func classifyDuplicateOutput(hr int32) error {
	switch _DXGI_ERROR(uint32(hr)) {
	case DXGI_ERROR_NOT_CURRENTLY_AVAILABLE, E_ACCESSDENIED, DXGI_ERROR_SESSION_DISCONNECTED:
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, _DXGI_ERROR(uint32(hr)))
	}
	return newDuplicationError("failed to duplicate output", hr)
}
