package d3d

// copyPitched transfers a width*height block of 32-bit pixels between two
// differently laid out buffers. Mapped GPU surfaces pad each row to the
// driver's pitch, so only width*4 bytes per row are copied and the padding is
// never read. When source and destination share one packed layout the whole
// block is copied at once.
func copyPitched(dst []byte, dstStride int, src []byte, srcPitch, width, height int) {
	rowBytes := width * 4
	if srcPitch == rowBytes && dstStride == rowBytes {
		copy(dst[:rowBytes*height], src[:rowBytes*height])
		return
	}
	for y := 0; y < height; y++ {
		copy(dst[y*dstStride:y*dstStride+rowBytes], src[y*srcPitch:y*srcPitch+rowBytes])
	}
}
