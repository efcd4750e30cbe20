//go:build windows

package d3d

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modDXGI                = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory1 = modDXGI.NewProc("CreateDXGIFactory1")
)

func createDXGIFactory1() (*IDXGIFactory1, error) {
	var factory *IDXGIFactory1
	hr, _, _ := procCreateDXGIFactory1.Call(
		uintptr(unsafe.Pointer(&iid_IDXGIFactory1)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if failed(int32(hr)) {
		return nil, fmt.Errorf("failed to create DXGI factory: %w", _DXGI_ERROR(uint32(hr)))
	}
	return factory, nil
}

type IDXGIFactory1 struct {
	vtbl *iDXGIFactory1Vtbl
}

func (obj *IDXGIFactory1) EnumAdapters1(index uint32, pp **IDXGIAdapter1) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.EnumAdapters1,
		uintptr(unsafe.Pointer(obj)),
		uintptr(index),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}

func (obj *IDXGIFactory1) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGIAdapter1 struct {
	vtbl *iDXGIAdapter1Vtbl
}

func (obj *IDXGIAdapter1) EnumOutputs(index uint32, pp **IDXGIOutput) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.EnumOutputs,
		uintptr(unsafe.Pointer(obj)),
		uintptr(index),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}

func (obj *IDXGIAdapter1) GetDesc1(desc *_DXGI_ADAPTER_DESC1) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetDesc1,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
	return int32(ret)
}

func (obj *IDXGIAdapter1) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGIOutput struct {
	vtbl *iDXGIOutputVtbl
}

func (obj *IDXGIOutput) GetDesc(desc *_DXGI_OUTPUT_DESC) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
	return int32(ret)
}

func (obj *IDXGIOutput) QueryInterface(iid _GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}

func (obj *IDXGIOutput) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGIOutput1 struct {
	vtbl *iDXGIOutput1Vtbl
}

func (obj *IDXGIOutput1) DuplicateOutput(device *ID3D11Device, pp **IDXGIOutputDuplication) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.DuplicateOutput,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(device)),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}

func (obj *IDXGIOutput1) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGIResource struct {
	vtbl *iDXGIResourceVtbl
}

func (obj *IDXGIResource) QueryInterface(iid _GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}

func (obj *IDXGIResource) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGISurface struct {
	vtbl *iDXGISurfaceVtbl
}

func (obj *IDXGISurface) Map(lockedRect *DXGI_MAPPED_RECT, mapFlags uint32) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Map,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(lockedRect)),
		uintptr(mapFlags),
	)
	return int32(ret)
}

func (obj *IDXGISurface) Unmap() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Unmap,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

func (obj *IDXGISurface) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type IDXGIOutputDuplication struct {
	vtbl *iDXGIOutputDuplicationVtbl
}

func (obj *IDXGIOutputDuplication) GetDesc(desc *_DXGI_OUTDUPL_DESC) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) AcquireNextFrame(timeoutMs uint32, frameInfo *_DXGI_OUTDUPL_FRAME_INFO, pp **IDXGIResource) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.AcquireNextFrame,
		uintptr(unsafe.Pointer(obj)),
		uintptr(timeoutMs),
		uintptr(unsafe.Pointer(frameInfo)),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) GetFrameDirtyRects(buf []byte, required *uint32) int32 {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetFrameDirtyRects,
		uintptr(unsafe.Pointer(obj)),
		uintptr(len(buf)),
		uintptr(p),
		uintptr(unsafe.Pointer(required)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) GetFrameMoveRects(buf []byte, required *uint32) int32 {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetFrameMoveRects,
		uintptr(unsafe.Pointer(obj)),
		uintptr(len(buf)),
		uintptr(p),
		uintptr(unsafe.Pointer(required)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) GetFramePointerShape(buf []byte, required *uint32, shapeInfo *_DXGI_OUTDUPL_POINTER_SHAPE_INFO) int32 {
	var p unsafe.Pointer
	if len(buf) > 0 {
		p = unsafe.Pointer(&buf[0])
	}
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetFramePointerShape,
		uintptr(unsafe.Pointer(obj)),
		uintptr(len(buf)),
		uintptr(p),
		uintptr(unsafe.Pointer(required)),
		uintptr(unsafe.Pointer(shapeInfo)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) MapDesktopSurface(lockedRect *DXGI_MAPPED_RECT) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.MapDesktopSurface,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(lockedRect)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) UnMapDesktopSurface() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.UnMapDesktopSurface,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) ReleaseFrame() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.ReleaseFrame,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}
