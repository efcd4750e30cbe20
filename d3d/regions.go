package d3d

import (
	"encoding/binary"
	"fmt"
	"image"
)

const (
	moveRectRecordSize  = 24 // sizeof(DXGI_OUTDUPL_MOVE_RECT)
	dirtyRectRecordSize = 16 // sizeof(RECT)
)

// parseMoveRects decodes the raw GetFrameMoveRects buffer into MovedRegions,
// preserving the order the session reported. The buffer must hold whole
// 24-byte records.
func parseMoveRects(raw []byte) ([]MovedRegion, error) {
	if len(raw)%moveRectRecordSize != 0 {
		return nil, fmt.Errorf("move rect buffer is %d bytes, not a multiple of %d", len(raw), moveRectRecordSize)
	}
	regions := make([]MovedRegion, 0, len(raw)/moveRectRecordSize)
	for off := 0; off < len(raw); off += moveRectRecordSize {
		regions = append(regions, MovedRegion{
			Source: image.Pt(
				int(readInt32(raw, off)),
				int(readInt32(raw, off+4)),
			),
			Destination: image.Rect(
				int(readInt32(raw, off+8)),
				int(readInt32(raw, off+12)),
				int(readInt32(raw, off+16)),
				int(readInt32(raw, off+20)),
			),
		})
	}
	return regions, nil
}

// parseDirtyRects decodes the raw GetFrameDirtyRects buffer, one 16-byte RECT
// per updated region.
func parseDirtyRects(raw []byte) ([]image.Rectangle, error) {
	if len(raw)%dirtyRectRecordSize != 0 {
		return nil, fmt.Errorf("dirty rect buffer is %d bytes, not a multiple of %d", len(raw), dirtyRectRecordSize)
	}
	rects := make([]image.Rectangle, 0, len(raw)/dirtyRectRecordSize)
	for off := 0; off < len(raw); off += dirtyRectRecordSize {
		rects = append(rects, image.Rect(
			int(readInt32(raw, off)),
			int(readInt32(raw, off+4)),
			int(readInt32(raw, off+8)),
			int(readInt32(raw, off+12)),
		))
	}
	return rects, nil
}

func readInt32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off:]))
}
