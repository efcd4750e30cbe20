package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidRGBA(r image.Rectangle, c [4]byte) *image.RGBA {
	img := image.NewRGBA(r)
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], c[:])
	}
	return img
}

func TestOverlayCursorOpaque(t *testing.T) {
	img := solidRGBA(image.Rect(0, 0, 4, 4), [4]byte{10, 10, 10, 255})
	cursor := solidRGBA(image.Rect(0, 0, 2, 2), [4]byte{200, 100, 50, 255})

	overlayCursor(img, cursor, image.Pt(1, 1))

	assert.Equal(t, []byte{200, 100, 50, 255}, img.Pix[(1*img.Stride)+1*4:(1*img.Stride)+2*4])
	assert.Equal(t, []byte{10, 10, 10, 255}, img.Pix[0:4], "pixels outside the cursor stay")
}

func TestOverlayCursorSkipsTransparent(t *testing.T) {
	img := solidRGBA(image.Rect(0, 0, 2, 2), [4]byte{10, 10, 10, 255})
	cursor := solidRGBA(image.Rect(0, 0, 2, 2), [4]byte{200, 200, 200, 0})

	overlayCursor(img, cursor, image.Pt(0, 0))

	assert.Equal(t, []byte{10, 10, 10, 255}, img.Pix[0:4])
}

func TestOverlayCursorBlendsPremultiplied(t *testing.T) {
	// half-transparent premultiplied white: color channels already carry
	// the alpha factor
	cursor := solidRGBA(image.Rect(0, 0, 1, 1), [4]byte{128, 128, 128, 128})

	over := solidRGBA(image.Rect(0, 0, 1, 1), [4]byte{0, 0, 0, 255})
	overlayCursor(over, cursor, image.Pt(0, 0))
	// 128 + 0*127/255 = 128
	assert.Equal(t, []byte{128, 128, 128, 255}, over.Pix[0:4])

	over = solidRGBA(image.Rect(0, 0, 1, 1), [4]byte{255, 255, 255, 255})
	overlayCursor(over, cursor, image.Pt(0, 0))
	// 128 + 255*127/255 = 255, white stays white under a white fringe
	assert.Equal(t, []byte{255, 255, 255, 255}, over.Pix[0:4])
}

func TestOverlayCursorOntoLeavesSourceUntouched(t *testing.T) {
	src := solidRGBA(image.Rect(0, 0, 4, 4), [4]byte{10, 10, 10, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	cursor := solidRGBA(image.Rect(0, 0, 1, 1), [4]byte{200, 100, 50, 255})

	overlayCursorOnto(dst, src, cursor, image.Pt(1, 1))

	for i := 0; i < len(src.Pix); i += 4 {
		assert.Equal(t, []byte{10, 10, 10, 255}, src.Pix[i:i+4], "source pixel %d", i/4)
	}
	assert.Equal(t, []byte{200, 100, 50, 255}, dst.Pix[1*dst.Stride+1*4:1*dst.Stride+2*4])
}

func TestOverlayCursorOntoDoesNotAccumulateGhosts(t *testing.T) {
	// a moving cursor over an unchanged desktop must not leave a trail at
	// its previous position
	src := solidRGBA(image.Rect(0, 0, 4, 4), [4]byte{10, 10, 10, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	cursor := solidRGBA(image.Rect(0, 0, 1, 1), [4]byte{200, 100, 50, 255})

	overlayCursorOnto(dst, src, cursor, image.Pt(0, 0))
	overlayCursorOnto(dst, src, cursor, image.Pt(2, 2))

	assert.Equal(t, []byte{10, 10, 10, 255}, dst.Pix[0:4], "previous cursor position is restored")
	assert.Equal(t, []byte{200, 100, 50, 255}, dst.Pix[2*dst.Stride+2*4:2*dst.Stride+3*4])
}

func TestOverlayCursorClipsAtEdges(t *testing.T) {
	img := solidRGBA(image.Rect(0, 0, 2, 2), [4]byte{10, 10, 10, 255})
	cursor := solidRGBA(image.Rect(0, 0, 4, 4), [4]byte{200, 100, 50, 255})

	// hot-spot adjustment can push the cursor partially off screen
	assert.NotPanics(t, func() {
		overlayCursor(img, cursor, image.Pt(-2, -2))
		overlayCursor(img, cursor, image.Pt(1, 1))
	})
	assert.Equal(t, []byte{200, 100, 50, 255}, img.Pix[0:4])
}
