// Package swizzle converts between BGRA and RGBA pixel layouts.
package swizzle

// BGRA swaps the blue and red channels of every 4-byte pixel in p, in place.
// The same swap converts BGRA to RGBA and back. len(p) must be a multiple
// of 4.
func BGRA(p []byte) {
	if len(p)%4 != 0 {
		panic("swizzle: input is not a whole number of pixels")
	}
	// two pixels per iteration
	i := 0
	for ; i+8 <= len(p); i += 8 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
		p[i+4], p[i+6] = p[i+6], p[i+4]
	}
	for ; i < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}
