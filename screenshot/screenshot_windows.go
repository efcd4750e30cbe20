// Package screenshot captures the desktop with GDI. It is the fallback path
// for displays where output duplication is not available.
package screenshot

import (
	"errors"
	"image"
	"syscall"
	"unsafe"

	"github.com/Shehryar/desktop-duplication-net/swizzle"
	intwin "github.com/Shehryar/desktop-duplication-net/win"

	"github.com/lxn/win"
)

// CaptureImg fills img with an RGBA screenshot of the given desktop region.
// img must be at least width x height.
func CaptureImg(img *image.RGBA, x, y, width, height int) error {
	hWnd := syscall.Handle(intwin.GetDesktopWindow())
	hdc := win.GetDC(win.HWND(hWnd))
	if hdc == 0 {
		return errors.New("GetDC failed")
	}
	defer win.ReleaseDC(win.HWND(hWnd), hdc)

	memoryDevice := win.CreateCompatibleDC(hdc)
	if memoryDevice == 0 {
		return errors.New("CreateCompatibleDC failed")
	}
	defer win.DeleteDC(memoryDevice)

	bitmap := win.CreateCompatibleBitmap(hdc, int32(width), int32(height))
	if bitmap == 0 {
		return errors.New("CreateCompatibleBitmap failed")
	}
	defer win.DeleteObject(win.HGDIOBJ(bitmap))

	old := win.SelectObject(memoryDevice, win.HGDIOBJ(bitmap))
	if old == 0 {
		return errors.New("SelectObject failed")
	}
	defer win.SelectObject(memoryDevice, old)

	if !win.BitBlt(memoryDevice, 0, 0, int32(width), int32(height), hdc, int32(x), int32(y), win.SRCCOPY) {
		return errors.New("BitBlt failed")
	}
	var bm win.BITMAP
	win.GetObject(win.HGDIOBJ(bitmap), unsafe.Sizeof(win.BITMAP{}), unsafe.Pointer(&bm))

	var header intwin.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = bm.BmWidth
	header.BiHeight = -bm.BmHeight
	header.BiCompression = win.BI_RGB

	// GetDIBits balks at using Go memory on some systems.
	bitmapDataSize := int32(((int64(bm.BmWidth)*int64(header.BiBitCount) + 31) / 32) * 4 * int64(bm.BmHeight))

	hHeap, _ := intwin.GetProcessHeap()
	hMem, _ := intwin.HeapAlloc(hHeap, 0, uintptr(bitmapDataSize))
	defer intwin.HeapFree(hHeap, 0, hMem)

	if v, _ := intwin.GetDIBits(syscall.Handle(hdc), syscall.Handle(bitmap), 0, uint32(height), (*uint8)(unsafe.Pointer(hMem)), (*intwin.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS); v == 0 {
		return errors.New("GetDIBits failed")
	}

	bgra := unsafe.Slice((*byte)(unsafe.Pointer(hMem)), bitmapDataSize)
	swizzle.BGRA(bgra)
	copy(img.Pix[:bitmapDataSize], bgra)
	return nil
}
