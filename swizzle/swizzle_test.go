package swizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBGRA(t *testing.T) {
	p := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	BGRA(p)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8, 11, 10, 9, 12}, p)

	// swapping twice restores the original
	BGRA(p)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, p)
}

func TestBGRAEmpty(t *testing.T) {
	assert.NotPanics(t, func() { BGRA(nil) })
}

func TestBGRAPanicsOnPartialPixel(t *testing.T) {
	assert.Panics(t, func() { BGRA(make([]byte, 6)) })
}
