package d3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hr32 reinterprets an HRESULT's bits as the int32 the native calls return.
// Converting the constants directly would overflow at compile time.
func hr32(e _DXGI_ERROR) int32 { return int32(uint32(e)) }

func TestClassifyAcquire(t *testing.T) {
	newFrame, err := classifyAcquire(0)
	assert.True(t, newFrame)
	assert.NoError(t, err)

	newFrame, err = classifyAcquire(hr32(DXGI_ERROR_WAIT_TIMEOUT))
	assert.False(t, newFrame, "an expired wait bound is not a frame")
	assert.NoError(t, err, "an expired wait bound is not an error")

	newFrame, err = classifyAcquire(hr32(DXGI_ERROR_ACCESS_LOST))
	assert.False(t, newFrame)
	require.Error(t, err)

	var dupErr *DuplicationError
	require.ErrorAs(t, err, &dupErr)
	assert.ErrorIs(t, err, DXGI_ERROR_ACCESS_LOST)
	assert.Contains(t, err.Error(), "acquire")
}

func TestClassifyDuplicateOutput(t *testing.T) {
	assert.ErrorIs(t, classifyDuplicateOutput(hr32(DXGI_ERROR_NOT_CURRENTLY_AVAILABLE)), ErrSessionUnavailable)
	assert.ErrorIs(t, classifyDuplicateOutput(hr32(E_ACCESSDENIED)), ErrSessionUnavailable)
	assert.ErrorIs(t, classifyDuplicateOutput(hr32(DXGI_ERROR_SESSION_DISCONNECTED)), ErrSessionUnavailable)

	err := classifyDuplicateOutput(hr32(DXGI_ERROR_INVALID_CALL))
	assert.NotErrorIs(t, err, ErrSessionUnavailable)
	var dupErr *DuplicationError
	assert.ErrorAs(t, err, &dupErr)
}

func TestConfigurationErrorUnwraps(t *testing.T) {
	err := &ConfigurationError{Adapter: 0, Output: 3, Err: DXGI_ERROR_NOT_FOUND}
	assert.ErrorIs(t, err, DXGI_ERROR_NOT_FOUND)
	assert.Contains(t, err.Error(), "output 3")
}

func TestDXGIErrorStringer(t *testing.T) {
	assert.Equal(t, "DXGI_ERROR_WAIT_TIMEOUT", DXGI_ERROR_WAIT_TIMEOUT.Error())
	assert.Equal(t, "0xdeadbeef", _DXGI_ERROR(0xDEADBEEF).Error())
}
