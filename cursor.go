package main

import "image"

// overlayCursorOnto copies src into dst and blends the cursor on top at pos,
// leaving src untouched. dst and src must share dimensions. Keeping src
// pristine matters because the duplicator hands out its reused frame buffer:
// painting the cursor into that buffer would leave it baked in on later
// frames that skip the composite.
func overlayCursorOnto(dst, src *image.RGBA, cursor *image.RGBA, pos image.Point) {
	copy(dst.Pix, src.Pix)
	overlayCursor(dst, cursor, pos)
}

// overlayCursor alpha-blends the decoded cursor bitmap onto img at pos,
// which must already be hot-spot adjusted. Parts of the cursor hanging off
// the image are clipped. Cursor pixels are premultiplied, as DXGI delivers
// them.
func overlayCursor(img *image.RGBA, cursor *image.RGBA, pos image.Point) {
	b := img.Bounds()
	cb := cursor.Bounds()
	for dy := 0; dy < cb.Dy(); dy++ {
		py := pos.Y + dy
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for dx := 0; dx < cb.Dx(); dx++ {
			px := pos.X + dx
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			so := dy*cursor.Stride + dx*4
			a := uint32(cursor.Pix[so+3])
			if a == 0 {
				continue
			}
			do := (py-b.Min.Y)*img.Stride + (px-b.Min.X)*4
			if a == 255 {
				copy(img.Pix[do:do+4], cursor.Pix[so:so+4])
				continue
			}
			inv := 255 - a
			for c := 0; c < 3; c++ {
				v := uint32(cursor.Pix[so+c]) + uint32(img.Pix[do+c])*inv/255
				if v > 255 {
					v = 255
				}
				img.Pix[do+c] = uint8(v)
			}
			img.Pix[do+3] = 0xFF
		}
	}
}
