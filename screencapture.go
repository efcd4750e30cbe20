package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/Shehryar/desktop-duplication-net/d3d"
)

// captureScreenTranscode records display n to screen_<n>.mp4 by piping raw
// RGBA frames into ffmpeg.
func captureScreenTranscode(ctx context.Context, n int, framerate int) {
	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()

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
		slog.Error("could not duplicate output", "screen", n, "error", err)
		return
	}
	defer ddup.Release()

	bounds := ddup.Bounds()
	transcoder, err := newVideotranscoder(fmt.Sprintf("screen_%d.mp4", n), bounds.Dx(), bounds.Dy(), float32(framerate))
	if err != nil {
		slog.Error("could not start transcoder", "screen", n, "error", err)
		return
	}
	defer transcoder.Close()

	limiter := NewFrameLimiter(framerate)
	// the transcoder wants a constant frame rate, so an unchanged desktop
	// re-sends the previous pixels
	var img *image.RGBA

	t1 := time.Now()
	numFrames := 0
	for {
		if time.Since(t1) >= time.Second {
			slog.Info("transcoding", "screen", n, "fps", numFrames)
			t1 = time.Now()
			numFrames = 0
		}
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
		if frame != nil {
			img = frame.Image
		}
		if img == nil {
			continue
		}
		if _, err := transcoder.Write(img.Pix); err != nil {
			slog.Error("failed to write frame", "screen", n, "error", err)
			return
		}
		numFrames++
	}
}

type videotranscoder struct {
	cmd *exec.Cmd

	in io.WriteCloser
}

func newVideotranscoder(filePath string, width, height int, framerate float32) (*videotranscoder, error) {
	cmd := exec.Command("ffmpeg",
		"-y",
		"-vsync", "0",
		"-f", "rawvideo",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-pixel_format", "rgba",
		"-framerate", fmt.Sprintf("%f", framerate),
		"-i", "-",
		"-c:v", "libx264", "-preset", "ultrafast",
		"-crf", "26",
		"-tune", "zerolatency",
		filePath,
	)

	wc, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &videotranscoder{
		cmd: cmd,
		in:  wc,
	}, nil
}

func (v *videotranscoder) Write(buf []byte) (int, error) {
	return v.in.Write(buf)
}

func (v *videotranscoder) Close() error {
	return v.in.Close()
}
