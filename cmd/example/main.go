// Command example captures every display for a few seconds, reporting frame
// change metadata and cursor updates, then writes one PNG per display.
// It demonstrates sharing a single cursor state across several outputs.
package main

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/Shehryar/desktop-duplication-net/d3d"

	"github.com/kbinani/screenshot"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 10*time.Second)
	defer cancelTimeout()

	// one shared cursor state: the output the mouse is on wins
	pointer := d3d.NewPointerState()

	n := screenshot.NumActiveDisplays()
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(output int) {
			defer wg.Done()
			watchOutput(ctx, output, pointer)
		}(i)
	}
	wg.Wait()
}

func watchOutput(ctx context.Context, output int, pointer *d3d.PointerState) {
	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()

	device, deviceCtx, err := d3d.NewD3D11Device()
	if err != nil {
		slog.Error("could not create D3D11 device", "output", output, "error", err)
		return
	}
	defer device.Release()
	defer deviceCtx.Release()

	opts := d3d.DefaultOptions()
	opts.Output = output
	opts.EmitRGBA = true
	opts.Pointer = pointer
	ddup, err := d3d.NewOutputDuplicator(device, deviceCtx, opts)
	if err != nil {
		slog.Error("could not duplicate output", "output", output, "error", err)
		return
	}
	defer ddup.Release()

	var lastFrame *d3d.Frame
	frames, moved, updated := 0, 0, 0
	for ctx.Err() == nil {
		frame, err := ddup.GetLatestFrame()
		if err != nil {
			slog.Error("failed to capture frame", "output", output, "error", err)
			return
		}
		if frame == nil {
			// wait bound expired, desktop unchanged
			continue
		}
		frames++
		moved += len(frame.MovedRegions)
		updated += len(frame.UpdatedRegions)
		if frame.CursorBitmap != nil {
			b := frame.CursorBitmap.Bounds()
			slog.Info("cursor shape changed", "output", output,
				"size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
				"hotspot", frame.CursorHotSpot)
		}
		lastFrame = frame
	}

	slog.Info("capture summary", "output", output,
		"frames", frames,
		"movedRegions", moved,
		"updatedRegions", updated,
		"cursorVisible", pointer.Visible(),
		"cursorAt", pointer.Location())

	if lastFrame != nil {
		if err := writePNG(fmt.Sprintf("screen_%d.png", output), lastFrame); err != nil {
			slog.Error("could not write snapshot", "output", output, "error", err)
		}
	}
}

func writePNG(path string, frame *d3d.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame.Image)
}
