package d3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsTimeout(t *testing.T) {
	assert.Equal(t, uint(DefaultTimeoutMs), Options{}.timeout(), "a zero-valued Options gets the default wait bound")
	assert.Equal(t, uint(DefaultTimeoutMs), DefaultOptions().timeout())
	assert.Equal(t, uint(150), Options{TimeoutMs: 150}.timeout())
}
