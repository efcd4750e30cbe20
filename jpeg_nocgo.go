//go:build !cgo

package main

import (
	"image"
	"image/jpeg"
	"io"
)

type jpegOptions = jpeg.Options

func jpegQuality(q int) *jpegOptions {
	return &jpegOptions{Quality: q}
}

func encodeJpeg(w io.Writer, img image.Image, opts *jpegOptions) error {
	return jpeg.Encode(w, img, opts)
}
