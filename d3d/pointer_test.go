package d3d

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelAt(img *image.RGBA, x, y int) []byte {
	off := y*img.Stride + x*4
	return img.Pix[off : off+4]
}

func TestDecodeMonochromeShape(t *testing.T) {
	// 2x2 drawable pixels, the reported height covers AND plus XOR mask
	info := &_DXGI_OUTDUPL_POINTER_SHAPE_INFO{
		Type:   pointerShapeMonochrome,
		Width:  2,
		Height: 4,
		Pitch:  1,
	}
	raw := []byte{
		0x00, // AND row 0: 0 0
		0xC0, // AND row 1: 1 1
		0x40, // XOR row 0: 0 1
		0x40, // XOR row 1: 0 1
	}
	bmp, err := decodePointerShape(info, raw)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), bmp.Bounds(), "drawable height is half the reported height")

	assert.Equal(t, []byte{0, 0, 0, 0}, pixelAt(bmp, 0, 0), "AND clear, XOR clear")
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, pixelAt(bmp, 1, 0), "AND clear, XOR set")
	assert.Equal(t, []byte{0, 0, 0, 0}, pixelAt(bmp, 0, 1), "AND set, XOR clear")
	assert.Equal(t, []byte{0, 0, 0, 0}, pixelAt(bmp, 1, 1), "AND set, XOR set")
}

func TestDecodeMonochromeShapeShortBuffer(t *testing.T) {
	info := &_DXGI_OUTDUPL_POINTER_SHAPE_INFO{
		Type:   pointerShapeMonochrome,
		Width:  8,
		Height: 4,
		Pitch:  1,
	}
	_, err := decodePointerShape(info, []byte{0x00, 0x00, 0x00})
	assert.Error(t, err)
}

func TestDecodeColorShapeCopiesRows(t *testing.T) {
	// 2x2 pixels with 4 bytes of row padding that must not leak through
	info := &_DXGI_OUTDUPL_POINTER_SHAPE_INFO{
		Type:   pointerShapeColor,
		Width:  2,
		Height: 2,
		Pitch:  12,
	}
	raw := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 0xEE, 0xEE, 0xEE, 0xEE,
		9, 10, 11, 12, 13, 14, 15, 16, 0xEE, 0xEE, 0xEE, 0xEE,
	}
	bmp, err := decodePointerShape(info, raw)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), bmp.Bounds())

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bmp.Pix[0:8])
	assert.Equal(t, []byte{9, 10, 11, 12, 13, 14, 15, 16}, bmp.Pix[bmp.Stride:bmp.Stride+8])
}

func TestDecodeMaskedColorShapePassesThrough(t *testing.T) {
	// masked-color keeps its per-pixel mask channel untouched
	info := &_DXGI_OUTDUPL_POINTER_SHAPE_INFO{
		Type:   pointerShapeMaskedColor,
		Width:  1,
		Height: 1,
		Pitch:  4,
	}
	bmp, err := decodePointerShape(info, []byte{10, 20, 30, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 0x01}, bmp.Pix)
}

func TestDecodeShapeRejectsUnknownType(t *testing.T) {
	info := &_DXGI_OUTDUPL_POINTER_SHAPE_INFO{Type: 0x8, Width: 1, Height: 1, Pitch: 4}
	_, err := decodePointerShape(info, []byte{0, 0, 0, 0})
	assert.Error(t, err)
}

func frameInfoAt(visible bool, ts int64, x, y int32) *_DXGI_OUTDUPL_FRAME_INFO {
	var v uint32
	if visible {
		v = 1
	}
	return &_DXGI_OUTDUPL_FRAME_INFO{
		LastMouseUpdateTime: ts,
		PointerPosition: _DXGI_OUTDUPL_POINTER_POSITION{
			Position: POINT{X: x, Y: y},
			Visible:  v,
		},
	}
}

func TestPointerPositionArbitration(t *testing.T) {
	t.Run("visible frame claims the cursor", func(t *testing.T) {
		s := NewPointerState()
		s.applyPosition(frameInfoAt(true, 10, 5, 6), 1)
		assert.True(t, s.Visible())
		assert.Equal(t, image.Pt(5, 6), s.Location())
		assert.Equal(t, 1, s.owner)
	})

	t.Run("invisible frame from the owner still updates", func(t *testing.T) {
		s := NewPointerState()
		s.applyPosition(frameInfoAt(true, 10, 5, 6), 1)
		s.applyPosition(frameInfoAt(false, 20, 7, 8), 1)
		assert.False(t, s.Visible())
		assert.Equal(t, image.Pt(7, 8), s.Location())
	})

	t.Run("invisible frame from another output is ignored", func(t *testing.T) {
		s := NewPointerState()
		s.applyPosition(frameInfoAt(true, 10, 5, 6), 1)
		s.applyPosition(frameInfoAt(false, 20, 7, 8), 0)
		assert.True(t, s.Visible())
		assert.Equal(t, image.Pt(5, 6), s.Location())
		assert.Equal(t, 1, s.owner)
	})

	t.Run("stale visible report loses to a newer foreign update", func(t *testing.T) {
		s := NewPointerState()
		s.applyPosition(frameInfoAt(true, 100, 5, 6), 1)
		s.applyPosition(frameInfoAt(true, 50, 7, 8), 0)
		assert.Equal(t, image.Pt(5, 6), s.Location())
		assert.Equal(t, 1, s.owner)
	})

	t.Run("fresher visible report takes over", func(t *testing.T) {
		s := NewPointerState()
		s.applyPosition(frameInfoAt(true, 100, 5, 6), 1)
		s.applyPosition(frameInfoAt(true, 150, 7, 8), 0)
		assert.Equal(t, image.Pt(7, 8), s.Location())
		assert.Equal(t, 0, s.owner)
	})
}

func TestShapeBufferGrowsButNeverShrinks(t *testing.T) {
	s := NewPointerState()

	buf := s.ensureShapeCapacity(16)
	require.Len(t, buf, 16)
	buf[0] = 0xAB

	smaller := s.ensureShapeCapacity(8)
	require.Len(t, smaller, 8)
	assert.GreaterOrEqual(t, cap(smaller), 16, "shrinking must not reallocate")
	assert.Equal(t, byte(0xAB), smaller[0], "backing array is kept")

	larger := s.ensureShapeCapacity(32)
	require.Len(t, larger, 32)
	assert.GreaterOrEqual(t, cap(larger), 32)
}
