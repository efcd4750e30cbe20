package d3d

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyPitchedDropsRowPadding(t *testing.T) {
	const width, height = 64, 4
	const rowBytes = width * 4
	const pitch = 260 // driver rounded the 256 byte rows up

	src := make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		for i := 0; i < rowBytes; i++ {
			src[y*pitch+i] = byte(y + 1)
		}
		for i := rowBytes; i < pitch; i++ {
			src[y*pitch+i] = 0xEE // padding, must never be copied
		}
	}

	dst := make([]byte, rowBytes*height)
	copyPitched(dst, rowBytes, src, pitch, width, height)

	for y := 0; y < height; y++ {
		expected := bytes.Repeat([]byte{byte(y + 1)}, rowBytes)
		assert.Equal(t, expected, dst[y*rowBytes:(y+1)*rowBytes], "row %d", y)
	}
}

func TestCopyPitchedPackedLayouts(t *testing.T) {
	const width, height = 3, 2
	const rowBytes = width * 4

	src := make([]byte, rowBytes*height)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, rowBytes*height)
	copyPitched(dst, rowBytes, src, rowBytes, width, height)

	require.Equal(t, src, dst)
}

func TestCopyPitchedWiderDestinationStride(t *testing.T) {
	const width, height = 2, 2
	const rowBytes = width * 4
	const dstStride = rowBytes + 8

	src := bytes.Repeat([]byte{0x7F}, rowBytes*height)
	dst := make([]byte, dstStride*height)
	copyPitched(dst, dstStride, src, rowBytes, width, height)

	for y := 0; y < height; y++ {
		assert.Equal(t, src[:rowBytes], dst[y*dstStride:y*dstStride+rowBytes])
		assert.Equal(t, make([]byte, dstStride-rowBytes), dst[y*dstStride+rowBytes:(y+1)*dstStride], "stride padding stays untouched")
	}
}
