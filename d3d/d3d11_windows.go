//go:build windows

package d3d

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modD3D11              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = modD3D11.NewProc("D3D11CreateDevice")
)

// NewD3D11Device creates a hardware D3D11 device and its immediate context
// on the default adapter. Both must be released by the caller.
func NewD3D11Device() (*ID3D11Device, *ID3D11DeviceContext, error) {
	featureLevels := []uint32{
		D3D_FEATURE_LEVEL_11_0,
		D3D_FEATURE_LEVEL_10_1,
		D3D_FEATURE_LEVEL_9_1,
	}

	var (
		device        *ID3D11Device
		deviceCtx     *ID3D11DeviceContext
		selectedLevel uint32
	)
	hr, _, _ := procD3D11CreateDevice.Call(
		0, // default adapter
		uintptr(D3D_DRIVER_TYPE_HARDWARE),
		0,
		uintptr(D3D11_CREATE_DEVICE_BGRA_SUPPORT),
		uintptr(unsafe.Pointer(&featureLevels[0])),
		uintptr(len(featureLevels)),
		uintptr(D3D11_SDK_VERSION),
		uintptr(unsafe.Pointer(&device)),
		uintptr(unsafe.Pointer(&selectedLevel)),
		uintptr(unsafe.Pointer(&deviceCtx)),
	)
	if failed(int32(hr)) {
		return nil, nil, fmt.Errorf("failed to create D3D11 device: %w", _DXGI_ERROR(uint32(hr)))
	}
	return device, deviceCtx, nil
}

type ID3D11Device struct {
	vtbl *iD3D11DeviceVtbl
}

func (obj *ID3D11Device) CreateTexture2D(desc *_D3D11_TEXTURE2D_DESC, pp **ID3D11Texture2D) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
		0, // no initial data
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}

func (obj *ID3D11Device) QueryInterface(iid _GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}

func (obj *ID3D11Device) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type ID3D11DeviceContext struct {
	vtbl *iD3D11DeviceContextVtbl
}

// CopyResource2D copies the whole contents of src into dst. Both textures
// must have matching dimensions and formats.
func (obj *ID3D11DeviceContext) CopyResource2D(dst, src *ID3D11Texture2D) {
	syscall.SyscallN(
		obj.vtbl.CopyResource,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)),
	)
}

func (obj *ID3D11DeviceContext) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

type ID3D11Texture2D struct {
	vtbl *iD3D11Texture2DVtbl
}

func (obj *ID3D11Texture2D) GetDesc(desc *_D3D11_TEXTURE2D_DESC) {
	syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
}

func (obj *ID3D11Texture2D) QueryInterface(iid _GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}

func (obj *ID3D11Texture2D) Release() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Release,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}
