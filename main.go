package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/kbinani/screenshot"
	"github.com/mattn/go-mjpeg"
)

func main() {
	var (
		addr   = flag.String("addr", "127.0.0.1:8023", "listen address for the MJPEG server")
		fps    = flag.Int("fps", 30, "desired capture frame rate")
		record = flag.Bool("record", false, "transcode each display to screen_<n>.mp4 instead of serving")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	n := screenshot.NumActiveDisplays()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *record {
		for i := 0; i < n; i++ {
			go captureScreenTranscode(ctx, i, *fps)
		}
		<-ctx.Done()
		<-time.After(time.Second)
		return
	}

	http.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		screen := r.URL.Query().Get("screen")
		if screen == "" {
			screen = "0"
		}
		screenNo, err := strconv.Atoi(screen)
		if err != nil {
			w.WriteHeader(500)
			return
		}
		if screenNo >= n || screenNo < 0 {
			screenNo = 0
		}

		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<head>
		<meta charset="UTF-8">
		<meta http-equiv="X-UA-Compatible" content="IE=edge">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title> Screen ` + strconv.Itoa(screenNo) + `</title>
	</head>
		<body style="margin:0">
	<img src="/mjpeg` + strconv.Itoa(screenNo) + `" style="max-width: 100vw; max-height: 100vh;object-fit: contain;display: block;margin: 0 auto;" />
</body>`))
	})

	for i := 0; i < n; i++ {
		slog.Info("registering stream", "screen", i)
		stream := mjpeg.NewStream()
		defer stream.Close()
		go streamDisplayDXGI(ctx, i, *fps, stream)
		http.HandleFunc(fmt.Sprintf("/mjpeg%d", i), stream.ServeHTTP)
	}
	go func() {
		if err := http.ListenAndServe(*addr, nil); err != nil {
			slog.Error("http server failed", "error", err)
		}
	}()
	<-ctx.Done()
	<-time.After(time.Second)
}

// Workaround for jpeg.Encode(), which requires a Flush()
// method to not call `bufio.NewWriter`
type bufferFlusher struct {
	bytes.Buffer
}

func (*bufferFlusher) Flush() error { return nil }
