package d3d

const (
	D3D_DRIVER_TYPE_HARDWARE = 1

	D3D_FEATURE_LEVEL_9_1  = 0x9100
	D3D_FEATURE_LEVEL_10_1 = 0xa100
	D3D_FEATURE_LEVEL_11_0 = 0xb000

	D3D11_SDK_VERSION = 7

	D3D11_CREATE_DEVICE_BGRA_SUPPORT = 0x20

	D3D11_USAGE_DEFAULT = 0
	D3D11_USAGE_STAGING = 3

	D3D11_CPU_ACCESS_READ = 0x20000
)

type _D3D11_TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32 // DXGI_FORMAT
	SampleDesc     _DXGI_SAMPLE_DESC
	Usage          uint32 // D3D11_USAGE
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type _D3D11_BOX struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}
