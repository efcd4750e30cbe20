//go:build windows

package d3d

import (
	"reflect"
	"syscall"
	"unsafe"
)

type _GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var (
	// 770aae78-f26f-4dba-a829-253c83d1b387
	iid_IDXGIFactory1 = _GUID{0x770aae78, 0xf26f, 0x4dba, [8]byte{0xa8, 0x29, 0x25, 0x3c, 0x83, 0xd1, 0xb3, 0x87}}
	// 00cddea8-939b-4b83-a340-a685226666cc
	iid_IDXGIOutput1 = _GUID{0x00cddea8, 0x939b, 0x4b83, [8]byte{0xa3, 0x40, 0xa6, 0x85, 0x22, 0x66, 0x66, 0xcc}}
	// cafcb56c-6ac3-4889-bf47-9e23bbd260ec
	iid_IDXGISurface = _GUID{0xcafcb56c, 0x6ac3, 0x4889, [8]byte{0xbf, 0x47, 0x9e, 0x23, 0xbb, 0xd2, 0x60, 0xec}}
	// 6f15aaf2-d208-4e89-9ab4-489535d34f9c
	iid_ID3D11Texture2D = _GUID{0x6f15aaf2, 0xd208, 0x4e89, [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
)

// reflectQueryInterface calls IUnknown::QueryInterface on self, storing the
// result through obj, which must be a pointer to a COM wrapper pointer.
func reflectQueryInterface(self interface{}, method uintptr, interfaceID *_GUID, obj interface{}) int32 {
	selfValue := reflect.ValueOf(self).Elem()
	objValue := reflect.ValueOf(obj).Elem()

	hr, _, _ := syscall.SyscallN(
		method,
		selfValue.UnsafeAddr(),
		uintptr(unsafe.Pointer(interfaceID)),
		objValue.Addr().Pointer(),
	)
	return int32(hr)
}
