//go:build windows

package d3d

import (
	"image"
	"log/slog"
	"unsafe"

	"github.com/Shehryar/desktop-duplication-net/swizzle"
)

// OutputDuplicator captures one display via DXGI output duplication and
// hands out CPU-side frames with change metadata and cursor state.
// Not safe for concurrent use.
type OutputDuplicator struct {
	device            *ID3D11Device
	deviceCtx         *ID3D11DeviceContext
	outputDuplication *IDXGIOutputDuplication

	output         int
	bounds         image.Rectangle
	timeoutMs      uint
	needsSwizzle   bool
	inSystemMemory bool

	stagedTex  *ID3D11Texture2D
	surface    *IDXGISurface
	mappedRect DXGI_MAPPED_RECT

	acquiredFrame bool

	img     *image.RGBA
	metaBuf []byte
	pointer *PointerState
}

// NewOutputDuplicator claims the duplication session for the output selected
// by opts, on the given device. The device and context stay owned by the
// caller; everything else is released via Release.
func NewOutputDuplicator(device *ID3D11Device, deviceCtx *ID3D11DeviceContext, opts Options) (*OutputDuplicator, error) {
	factory, err := createDXGIFactory1()
	if err != nil {
		return nil, err
	}
	defer factory.Release()

	var adapter *IDXGIAdapter1
	if hr := factory.EnumAdapters1(uint32(opts.Adapter), &adapter); failed(hr) {
		return nil, &ConfigurationError{Adapter: opts.Adapter, Output: opts.Output, Err: _DXGI_ERROR(uint32(hr))}
	}
	defer adapter.Release()

	var output *IDXGIOutput
	if hr := adapter.EnumOutputs(uint32(opts.Output), &output); failed(hr) {
		return nil, &ConfigurationError{Adapter: opts.Adapter, Output: opts.Output, Err: _DXGI_ERROR(uint32(hr))}
	}
	defer output.Release()

	var outputDesc _DXGI_OUTPUT_DESC
	if hr := output.GetDesc(&outputDesc); failed(hr) {
		return nil, newDuplicationError("failed to get output description", hr)
	}

	var output1 *IDXGIOutput1
	if hr := output.QueryInterface(iid_IDXGIOutput1, &output1); failed(hr) {
		return nil, newDuplicationError("failed to query IDXGIOutput1", hr)
	}
	defer output1.Release()

	var duplication *IDXGIOutputDuplication
	if hr := output1.DuplicateOutput(device, &duplication); failed(hr) {
		return nil, classifyDuplicateOutput(hr)
	}

	var duplDesc _DXGI_OUTDUPL_DESC
	if hr := duplication.GetDesc(&duplDesc); failed(hr) {
		duplication.Release()
		return nil, newDuplicationError("failed to get duplication description", hr)
	}

	bounds := image.Rect(
		int(outputDesc.DesktopCoordinates.Left),
		int(outputDesc.DesktopCoordinates.Top),
		int(outputDesc.DesktopCoordinates.Right),
		int(outputDesc.DesktopCoordinates.Bottom),
	)

	pointer := opts.Pointer
	if pointer == nil {
		pointer = NewPointerState()
	}
	return &OutputDuplicator{
		device:            device,
		deviceCtx:         deviceCtx,
		outputDuplication: duplication,
		output:            opts.Output,
		bounds:            bounds,
		timeoutMs:         opts.timeout(),
		needsSwizzle:      opts.EmitRGBA,
		inSystemMemory:    duplDesc.DesktopImageInSystemMemory != 0,
		img:               image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())),
		pointer:           pointer,
	}, nil
}

// Bounds returns the duplicated output's desktop coordinates.
func (dup *OutputDuplicator) Bounds() image.Rectangle {
	return dup.bounds
}

// Pointer returns the cursor state this duplicator feeds.
func (dup *OutputDuplicator) Pointer() *PointerState {
	return dup.pointer
}

// GetLatestFrame waits up to the configured timeout for the next desktop
// frame. It returns (nil, nil) when the wait bound expires without a new
// frame, which is routine under a static desktop, not a failure.
//
// Acquisition and the staging copy are load-bearing: their failure fails the
// call. The per-frame enrichment steps (region metadata, cursor update, CPU
// composite) are best effort: a failing step is logged and its data omitted,
// never allowed to abort frame delivery. The frame slot is always released
// before returning, so the session keeps accumulating changes.
func (dup *OutputDuplicator) GetLatestFrame() (*Frame, error) {
	fi, ok, err := dup.acquire()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	defer dup.releaseFrame()

	frame := &Frame{Image: dup.img}

	moved, updated, err := dup.extractMetadata(&fi)
	if err != nil {
		slog.Warn("failed to extract frame metadata", "output", dup.output, "error", err)
	} else {
		frame.MovedRegions = moved
		frame.UpdatedRegions = updated
	}

	bitmap, hotspot, err := dup.updatePointer(&fi)
	if err != nil {
		slog.Warn("failed to update pointer shape", "output", dup.output, "error", err)
	} else if bitmap != nil {
		if dup.needsSwizzle {
			swizzle.BGRA(bitmap.Pix)
		}
		frame.CursorBitmap = bitmap
		frame.CursorHotSpot = hotspot
	}
	frame.CursorLocation = dup.pointer.Location()
	frame.CursorVisible = dup.pointer.Visible()

	// an unchanged desktop needs no composite, the previous pixels stand
	if len(frame.MovedRegions) > 0 || len(frame.UpdatedRegions) > 0 {
		if err := dup.composite(); err != nil {
			slog.Warn("failed to composite frame", "output", dup.output, "error", err)
		}
	}
	return frame, nil
}

// acquire claims the next frame and copies the desktop texture onto the
// staging texture. ok is false when the wait bound expired.
func (dup *OutputDuplicator) acquire() (fi _DXGI_OUTDUPL_FRAME_INFO, ok bool, err error) {
	// retry a release that failed on the previous call
	dup.releaseFrame()

	var desktop *IDXGIResource
	hr := dup.outputDuplication.AcquireNextFrame(uint32(dup.timeoutMs), &fi, &desktop)
	newFrame, err := classifyAcquire(hr)
	if !newFrame || err != nil {
		return fi, false, err
	}
	dup.acquiredFrame = true

	var desktop2d *ID3D11Texture2D
	hr = desktop.QueryInterface(iid_ID3D11Texture2D, &desktop2d)
	desktop.Release()
	if failed(hr) {
		dup.releaseFrame()
		return fi, false, newDuplicationError("failed to access the desktop texture", hr)
	}
	defer desktop2d.Release()

	if dup.stagedTex == nil {
		if err := dup.initializeStage(); err != nil {
			dup.releaseFrame()
			return fi, false, err
		}
	}
	dup.deviceCtx.CopyResource2D(dup.stagedTex, desktop2d)
	return fi, true, nil
}

// initializeStage lazily creates the CPU-readable staging texture sized to
// the output, plus the surface view used to map it.
func (dup *OutputDuplicator) initializeStage() error {
	desc := _D3D11_TEXTURE2D_DESC{
		Width:          uint32(dup.bounds.Dx()),
		Height:         uint32(dup.bounds.Dy()),
		MipLevels:      1,
		ArraySize:      1,
		Format:         DXGI_FORMAT_B8G8R8A8_UNORM,
		SampleDesc:     _DXGI_SAMPLE_DESC{Count: 1},
		Usage:          D3D11_USAGE_STAGING,
		CPUAccessFlags: D3D11_CPU_ACCESS_READ,
	}
	if hr := dup.device.CreateTexture2D(&desc, &dup.stagedTex); failed(hr) {
		return newDuplicationError("failed to create staging texture", hr)
	}
	if hr := dup.stagedTex.QueryInterface(iid_IDXGISurface, &dup.surface); failed(hr) {
		dup.stagedTex.Release()
		dup.stagedTex = nil
		return newDuplicationError("failed to query staging surface", hr)
	}
	return nil
}

// extractMetadata pulls the frame's move and dirty rects through one shared
// buffer sized to TotalMetadataBufferSize, which both queries fit in.
func (dup *OutputDuplicator) extractMetadata(fi *_DXGI_OUTDUPL_FRAME_INFO) ([]MovedRegion, []image.Rectangle, error) {
	if fi.TotalMetadataBufferSize == 0 {
		return nil, nil, nil
	}
	if cap(dup.metaBuf) < int(fi.TotalMetadataBufferSize) {
		dup.metaBuf = make([]byte, fi.TotalMetadataBufferSize)
	}
	buf := dup.metaBuf[:fi.TotalMetadataBufferSize]

	var used uint32
	if hr := dup.outputDuplication.GetFrameMoveRects(buf, &used); failed(hr) {
		return nil, nil, newDuplicationError("failed to get frame move rects", hr)
	}
	moved, err := parseMoveRects(buf[:used])
	if err != nil {
		return nil, nil, err
	}
	if hr := dup.outputDuplication.GetFrameDirtyRects(buf, &used); failed(hr) {
		return nil, nil, newDuplicationError("failed to get frame dirty rects", hr)
	}
	updated, err := parseDirtyRects(buf[:used])
	if err != nil {
		return nil, nil, err
	}
	return moved, updated, nil
}

// updatePointer folds the frame's cursor position into the shared state and,
// when the frame carries one, fetches and decodes the new shape.
func (dup *OutputDuplicator) updatePointer(fi *_DXGI_OUTDUPL_FRAME_INFO) (*image.RGBA, image.Point, error) {
	s := dup.pointer
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyPosition(fi, dup.output)
	if fi.PointerShapeBufferSize == 0 {
		return nil, image.Point{}, nil
	}

	buf := s.ensureShapeCapacity(fi.PointerShapeBufferSize)
	var used uint32
	var info _DXGI_OUTDUPL_POINTER_SHAPE_INFO
	if hr := dup.outputDuplication.GetFramePointerShape(buf, &used, &info); failed(hr) {
		return nil, image.Point{}, newDuplicationError("failed to get frame pointer shape", hr)
	}
	bitmap, err := decodePointerShape(&info, buf[:used])
	if err != nil {
		return nil, image.Point{}, err
	}
	s.shapeInfo = info
	return bitmap, image.Pt(int(info.HotSpot.X), int(info.HotSpot.Y)), nil
}

// composite maps the frame's pixels and copies them row by row into the
// output image, dropping the driver's row padding.
func (dup *OutputDuplicator) composite() error {
	unmap, err := dup.mapFrame()
	if err != nil {
		return err
	}
	defer unmap()

	width, height := dup.bounds.Dx(), dup.bounds.Dy()
	pitch := int(dup.mappedRect.Pitch)
	src := unsafe.Slice((*byte)(unsafe.Pointer(dup.mappedRect.PBits)), pitch*height)
	copyPitched(dup.img.Pix, dup.img.Stride, src, pitch, width, height)
	if dup.needsSwizzle {
		swizzle.BGRA(dup.img.Pix)
	}
	return nil
}

// mapFrame exposes the frame's pixels for CPU reads. Desktops that already
// live in system memory are mapped directly, skipping the staging hop;
// everything else reads the staged copy.
func (dup *OutputDuplicator) mapFrame() (unmap func() int32, err error) {
	if dup.inSystemMemory {
		if hr := dup.outputDuplication.MapDesktopSurface(&dup.mappedRect); !failed(hr) {
			return dup.outputDuplication.UnMapDesktopSurface, nil
		}
	}
	if hr := dup.surface.Map(&dup.mappedRect, DXGI_MAP_READ); failed(hr) {
		return nil, newDuplicationError("failed to map staging surface", hr)
	}
	return dup.surface.Unmap, nil
}

// releaseFrame returns the frame slot to the session so it can accumulate
// further changes. A failed release is logged and retried on the next
// acquire rather than surfaced to the caller.
func (dup *OutputDuplicator) releaseFrame() {
	if !dup.acquiredFrame {
		return
	}
	if hr := dup.outputDuplication.ReleaseFrame(); failed(hr) {
		slog.Warn("failed to release frame", "output", dup.output, "error", _DXGI_ERROR(uint32(hr)))
		return
	}
	dup.acquiredFrame = false
}

// Release tears down the duplication session and the staging resources.
// The duplicator must not be used afterwards.
func (dup *OutputDuplicator) Release() {
	dup.releaseFrame()
	if dup.surface != nil {
		dup.surface.Release()
		dup.surface = nil
	}
	if dup.stagedTex != nil {
		dup.stagedTex.Release()
		dup.stagedTex = nil
	}
	if dup.outputDuplication != nil {
		dup.outputDuplication.Release()
		dup.outputDuplication = nil
	}
}
