package main

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"runtime"

	"github.com/Shehryar/desktop-duplication-net/d3d"
	forkscreenshot "github.com/Shehryar/desktop-duplication-net/screenshot"
	"github.com/Shehryar/desktop-duplication-net/win"
	"github.com/nfnt/resize"

	"github.com/kbinani/screenshot"
	"github.com/mattn/go-mjpeg"
)

// streamDisplayDXGI captures display n via output duplication and feeds the
// MJPEG stream. It falls back to GDI capture when the duplication session
// cannot be claimed.
func streamDisplayDXGI(ctx context.Context, n int, framerate int, out *mjpeg.Stream) {
	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()

	// Make thread PerMonitorV2 Dpi aware if supported on OS
	if win.IsValidDpiAwarenessContext(win.DpiAwarenessContextPerMonitorAwareV2) {
		if _, err := win.SetThreadDpiAwarenessContext(win.DpiAwarenessContextPerMonitorAwareV2); err != nil {
			slog.Warn("could not set thread DPI awareness to PerMonitorAwareV2", "error", err)
		}
	}

	device, deviceCtx, err := d3d.NewD3D11Device()
	if err != nil {
		slog.Error("could not create D3D11 device", "screen", n, "error", err)
		return
	}
	defer device.Release()
	defer deviceCtx.Release()

	opts := d3d.DefaultOptions()
	opts.Output = n
	opts.EmitRGBA = true
	ddup, err := d3d.NewOutputDuplicator(device, deviceCtx, opts)
	if err != nil {
		if errors.Is(err, d3d.ErrSessionUnavailable) {
			slog.Warn("output duplication unavailable, falling back to GDI capture", "screen", n, "error", err)
			streamDisplayGDI(ctx, n, framerate, out)
			return
		}
		slog.Error("could not duplicate output", "screen", n, "error", err)
		return
	}
	defer ddup.Release()

	buf := &bufferFlusher{}
	jpegOpts := jpegQuality(75)
	limiter := NewFrameLimiter(framerate)

	// the cursor keeps its last shape on frames that don't carry one
	var cursor *image.RGBA
	var hotspot image.Point

	// the cursor is painted into this buffer, never into the duplicator's
	// reused frame image
	bounds := ddup.Bounds()
	imgBuf := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for {
		select {
		case <-ctx.Done():
			return
		default:
			limiter.Wait()
		}
		frame, err := ddup.GetLatestFrame()
		if err != nil {
			slog.Error("failed to capture frame", "screen", n, "error", err)
			return
		}
		if frame == nil {
			// wait bound expired, desktop unchanged
			continue
		}
		if frame.CursorBitmap != nil {
			cursor, hotspot = frame.CursorBitmap, frame.CursorHotSpot
		}
		var img *image.RGBA
		if frame.CursorVisible && cursor != nil {
			overlayCursorOnto(imgBuf, frame.Image, cursor, frame.CursorLocation.Sub(hotspot))
			img = imgBuf
		} else {
			img = frame.Image
		}

		buf.Reset()
		if img.Bounds().Dx() > 1920 {
			encodeJpeg(buf, resize.Thumbnail(1920, 1080, img, resize.Bilinear), jpegOpts)
		} else {
			encodeJpeg(buf, img, jpegOpts)
		}
		out.Update(buf.Bytes())
	}
}

// streamDisplayGDI captures display n with BitBlt/GetDIBits. Slower, but
// works when output duplication is denied, e.g. on secure desktops.
func streamDisplayGDI(ctx context.Context, n int, framerate int, out *mjpeg.Stream) {
	buf := &bufferFlusher{}
	jpegOpts := jpegQuality(75)
	limiter := NewFrameLimiter(framerate)

	finalBounds := screenshot.GetDisplayBounds(n)
	imgBuf := image.NewRGBA(finalBounds)
	lastBounds := finalBounds

	for {
		select {
		case <-ctx.Done():
			return
		default:
			limiter.Wait()
		}
		bounds := screenshot.GetDisplayBounds(n)
		newBounds := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
		if newBounds != lastBounds {
			lastBounds = newBounds
			imgBuf = image.NewRGBA(lastBounds)
		}
		if err := forkscreenshot.CaptureImg(imgBuf, bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy()); err != nil {
			slog.Warn("GDI capture failed", "screen", n, "error", err)
			continue
		}

		buf.Reset()
		encodeJpeg(buf, imgBuf, jpegOpts)
		out.Update(buf.Bytes())
	}
}
