package d3d

import (
	"fmt"
	"image"
	"sync"
)

// PointerState carries the mouse cursor across frames. Cursor shape and
// position arrive out of band: a frame only carries them when they changed,
// so the last known values must persist between calls.
//
// One instance may be shared by several per-output duplicators. Position
// updates are then arbitrated so that the output the cursor is visible on,
// or failing that the output that saw the most recent mouse update, wins.
type PointerState struct {
	mu sync.Mutex

	visible    bool
	position   POINT
	lastUpdate int64 // mouse update timestamp of the frame that last moved it
	owner      int   // output index that last updated the position

	// raw shape bytes, grown but never shrunk
	shapeBuf  []byte
	shapeInfo _DXGI_OUTDUPL_POINTER_SHAPE_INFO
}

func NewPointerState() *PointerState {
	return &PointerState{}
}

// Location returns the last known cursor position in desktop coordinates.
func (s *PointerState) Location() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return image.Pt(int(s.position.X), int(s.position.Y))
}

// Visible reports whether the cursor was visible on its owning output the
// last time it was updated.
func (s *PointerState) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// applyPosition folds one frame's pointer position into the shared state.
// A frame updates the position when the cursor is visible on its output or
// when its output already owns the cursor, except that a visible report is
// discarded when another output holds a more recent update. Callers hold mu.
func (s *PointerState) applyPosition(fi *_DXGI_OUTDUPL_FRAME_INFO, output int) {
	visible := fi.PointerPosition.Visible != 0

	update := visible || s.owner == output
	if visible && s.visible && s.owner != output && s.lastUpdate > fi.LastMouseUpdateTime {
		update = false
	}
	if !update {
		return
	}
	s.position = fi.PointerPosition.Position
	s.visible = visible
	s.owner = output
	s.lastUpdate = fi.LastMouseUpdateTime
}

// ensureShapeCapacity returns the persistent raw shape buffer resized to n
// bytes, growing the allocation only when needed. Callers hold mu.
func (s *PointerState) ensureShapeCapacity(n uint32) []byte {
	if cap(s.shapeBuf) < int(n) {
		s.shapeBuf = make([]byte, n)
	}
	s.shapeBuf = s.shapeBuf[:n]
	return s.shapeBuf
}

// decodePointerShape expands one native cursor shape into a 32-bit bitmap.
//
// Monochrome shapes store a 1bpp AND mask stacked on top of a 1bpp XOR mask,
// both Pitch bytes per row and MSB first, so the drawable height is half the
// reported height. A clear AND bit selects between opaque white (XOR set)
// and transparent; a set AND bit is rendered transparent.
//
// Color and masked-color shapes are packed 32-bit rows and are copied
// through unchanged, padding excluded.
func decodePointerShape(info *_DXGI_OUTDUPL_POINTER_SHAPE_INFO, raw []byte) (*image.RGBA, error) {
	width, height := int(info.Width), int(info.Height)
	pitch := int(info.Pitch)
	if info.Type == pointerShapeMonochrome {
		height /= 2
	}
	if width <= 0 || height <= 0 || pitch <= 0 {
		return nil, fmt.Errorf("invalid pointer shape: %dx%d pitch %d", width, height, pitch)
	}
	bmp := image.NewRGBA(image.Rect(0, 0, width, height))

	switch info.Type {
	case pointerShapeMonochrome:
		if need := 2 * height * pitch; len(raw) < need {
			return nil, fmt.Errorf("monochrome shape buffer is %d bytes, need %d", len(raw), need)
		}
		for y := 0; y < height; y++ {
			andRow := raw[y*pitch : (y+1)*pitch]
			xorRow := raw[(y+height)*pitch : (y+height+1)*pitch]
			dst := bmp.Pix[y*bmp.Stride:]
			for x := 0; x < width; x++ {
				bit := byte(0x80) >> (x % 8)
				var v byte
				if andRow[x/8]&bit == 0 && xorRow[x/8]&bit != 0 {
					v = 0xFF
				}
				dst[x*4+0] = v
				dst[x*4+1] = v
				dst[x*4+2] = v
				dst[x*4+3] = v
			}
		}
	case pointerShapeColor, pointerShapeMaskedColor:
		rowBytes := width * 4
		if pitch < rowBytes {
			return nil, fmt.Errorf("pointer shape pitch %d shorter than %d byte rows", pitch, rowBytes)
		}
		if need := (height-1)*pitch + rowBytes; len(raw) < need {
			return nil, fmt.Errorf("color shape buffer is %d bytes, need %d", len(raw), need)
		}
		for y := 0; y < height; y++ {
			copy(bmp.Pix[y*bmp.Stride:y*bmp.Stride+rowBytes], raw[y*pitch:y*pitch+rowBytes])
		}
	default:
		return nil, fmt.Errorf("unknown pointer shape type %d", info.Type)
	}
	return bmp, nil
}
