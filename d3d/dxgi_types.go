package d3d

import "strconv"

type POINT struct {
	X int32
	Y int32
}

type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type _DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type _DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	Rational         _DXGI_RATIONAL
	Format           uint32 // DXGI_FORMAT
	ScanlineOrdering uint32 // DXGI_MODE_SCANLINE_ORDER
	Scaling          uint32 // DXGI_MODE_SCALING
}

type _DXGI_OUTDUPL_DESC struct {
	ModeDesc                   _DXGI_MODE_DESC
	Rotation                   uint32 // DXGI_MODE_ROTATION
	DesktopImageInSystemMemory uint32 // BOOL
}

type _DXGI_OUTPUT_DESC struct {
	DeviceName         [32]uint16
	DesktopCoordinates RECT
	AttachedToDesktop  uint32 // BOOL
	Rotation           uint32 // DXGI_MODE_ROTATION
	Monitor            uintptr
}

type _DXGI_ADAPTER_DESC1 struct {
	Description           [128]uint16
	VendorId              uint32
	DeviceId              uint32
	SubSysId              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           int64
	Flags                 uint32
}

type _DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type _DXGI_OUTDUPL_POINTER_POSITION struct {
	Position POINT
	Visible  uint32
}

type _DXGI_OUTDUPL_FRAME_INFO struct {
	LastPresentTime           int64
	LastMouseUpdateTime       int64
	AccumulatedFrames         uint32
	RectsCoalesced            uint32
	ProtectedContentMaskedOut uint32
	PointerPosition           _DXGI_OUTDUPL_POINTER_POSITION
	TotalMetadataBufferSize   uint32
	PointerShapeBufferSize    uint32
}

// _DXGI_OUTDUPL_MOVE_RECT is the wire layout of one record returned by
// GetFrameMoveRects: the pre-move origin plus the rectangle it now occupies.
type _DXGI_OUTDUPL_MOVE_RECT struct {
	SourcePoint     POINT
	DestinationRect RECT
}

type _DXGI_OUTDUPL_POINTER_SHAPE_INFO struct {
	Type    uint32
	Width   uint32
	Height  uint32
	Pitch   uint32
	HotSpot POINT
}

// DXGI_OUTDUPL_POINTER_SHAPE_TYPE
const (
	pointerShapeMonochrome  = 0x1
	pointerShapeColor       = 0x2
	pointerShapeMaskedColor = 0x4
)

type DXGI_MAPPED_RECT struct {
	Pitch int32
	PBits uintptr
}

const (
	DXGI_MAP_READ = 1

	DXGI_FORMAT_B8G8R8A8_UNORM = 87
)

const (
	E_ACCESSDENIED                     _DXGI_ERROR = 0x80070005
	ERROR_INVALID_ARG                  _DXGI_ERROR = 0x80070057
	DXGI_ERROR_INVALID_CALL            _DXGI_ERROR = 0x887A0001
	DXGI_ERROR_NOT_FOUND               _DXGI_ERROR = 0x887A0002
	DXGI_ERROR_MORE_DATA               _DXGI_ERROR = 0x887A0003
	DXGI_ERROR_UNSUPPORTED             _DXGI_ERROR = 0x887A0004
	DXGI_ERROR_DEVICE_REMOVED          _DXGI_ERROR = 0x887A0005
	DXGI_ERROR_DEVICE_HUNG             _DXGI_ERROR = 0x887A0006
	DXGI_ERROR_DEVICE_RESET            _DXGI_ERROR = 0x887A0007
	DXGI_ERROR_WAS_STILL_DRAWING       _DXGI_ERROR = 0x887A000A
	DXGI_ERROR_NOT_CURRENTLY_AVAILABLE _DXGI_ERROR = 0x887A0022
	DXGI_ERROR_ACCESS_LOST             _DXGI_ERROR = 0x887A0026
	DXGI_ERROR_WAIT_TIMEOUT            _DXGI_ERROR = 0x887A0027
	DXGI_ERROR_SESSION_DISCONNECTED    _DXGI_ERROR = 0x887A0028
)

type _DXGI_ERROR uint32

func (e _DXGI_ERROR) Error() string {
	switch e {
	case E_ACCESSDENIED:
		return "E_ACCESSDENIED"
	case ERROR_INVALID_ARG:
		return "ERROR_INVALID_ARG"
	case DXGI_ERROR_INVALID_CALL:
		return "DXGI_ERROR_INVALID_CALL"
	case DXGI_ERROR_NOT_FOUND:
		return "DXGI_ERROR_NOT_FOUND"
	case DXGI_ERROR_MORE_DATA:
		return "DXGI_ERROR_MORE_DATA"
	case DXGI_ERROR_UNSUPPORTED:
		return "DXGI_ERROR_UNSUPPORTED"
	case DXGI_ERROR_DEVICE_REMOVED:
		return "DXGI_ERROR_DEVICE_REMOVED"
	case DXGI_ERROR_DEVICE_HUNG:
		return "DXGI_ERROR_DEVICE_HUNG"
	case DXGI_ERROR_DEVICE_RESET:
		return "DXGI_ERROR_DEVICE_RESET"
	case DXGI_ERROR_WAS_STILL_DRAWING:
		return "DXGI_ERROR_WAS_STILL_DRAWING"
	case DXGI_ERROR_NOT_CURRENTLY_AVAILABLE:
		return "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE"
	case DXGI_ERROR_ACCESS_LOST:
		return "DXGI_ERROR_ACCESS_LOST"
	case DXGI_ERROR_WAIT_TIMEOUT:
		return "DXGI_ERROR_WAIT_TIMEOUT"
	case DXGI_ERROR_SESSION_DISCONNECTED:
		return "DXGI_ERROR_SESSION_DISCONNECTED"
	}

	return "0x" + strconv.FormatUint(uint64(e), 16)
}

func failed(hr int32) bool {
	return hr < 0
}
