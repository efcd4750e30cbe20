package d3d

import (
	"bytes"
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveRects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []_DXGI_OUTDUPL_MOVE_RECT{
		{SourcePoint: POINT{X: 10, Y: 20}, DestinationRect: RECT{Left: 30, Top: 40, Right: 130, Bottom: 140}},
		{SourcePoint: POINT{X: -5, Y: 0}, DestinationRect: RECT{Left: 0, Top: 0, Right: 64, Bottom: 64}},
	}))

	got, err := parseMoveRects(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, image.Pt(10, 20), got[0].Source)
	assert.Equal(t, image.Rect(30, 40, 130, 140), got[0].Destination)
	assert.Equal(t, image.Pt(-5, 0), got[1].Source)
	assert.Equal(t, image.Rect(0, 0, 64, 64), got[1].Destination)
}

func TestParseMoveRectsEmpty(t *testing.T) {
	got, err := parseMoveRects(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseMoveRectsRejectsPartialRecord(t *testing.T) {
	_, err := parseMoveRects(make([]byte, moveRectRecordSize-1))
	assert.Error(t, err)
	_, err = parseMoveRects(make([]byte, moveRectRecordSize+1))
	assert.Error(t, err)
}

func TestParseDirtyRects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []RECT{
		{Left: 0, Top: 0, Right: 100, Bottom: 50},
		{Left: 200, Top: 300, Right: 250, Bottom: 350},
	}))

	got, err := parseDirtyRects(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, image.Rect(0, 0, 100, 50), got[0])
	assert.Equal(t, image.Rect(200, 300, 250, 350), got[1])
}

func TestParseDirtyRectsEmpty(t *testing.T) {
	got, err := parseDirtyRects([]byte{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseDirtyRectsRejectsPartialRecord(t *testing.T) {
	_, err := parseDirtyRects(make([]byte, dirtyRectRecordSize+3))
	assert.Error(t, err)
}
