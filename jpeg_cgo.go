//go:build cgo

package main

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

type jpegOptions = jpeg.EncoderOptions

func jpegQuality(q int) *jpegOptions {
	return &jpegOptions{Quality: q}
}

func encodeJpeg(w io.Writer, img image.Image, opts *jpegOptions) error {
	return jpeg.Encode(w, img, opts)
}
