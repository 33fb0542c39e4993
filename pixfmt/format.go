// Package pixfmt describes the pixel formats understood by the layout
// engine.
//
// Each format is characterized by its storage block: the texel
// footprint (block width/height) and byte size of one storage unit.
// Uncompressed formats use 1x1 blocks; block-compressed formats such as
// BC1 or FXT1 cover several texels per block. The layout engine never
// touches texel contents, only this geometry.
package pixfmt

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatUndefined is the zero value and is not a usable format.
	FormatUndefined Format = iota

	// FormatR8Unorm is 8-bit single-channel color.
	FormatR8Unorm

	// FormatRG8Unorm is 16-bit two-channel color.
	FormatRG8Unorm

	// FormatRGBA8Unorm is 32-bit RGBA color.
	FormatRGBA8Unorm

	// FormatBGRA8Unorm is 32-bit BGRA color.
	FormatBGRA8Unorm

	// FormatRGBX8Unorm is 32-bit RGB color with a padding byte. It also
	// serves as the native storage for emulated compressed formats.
	FormatRGBX8Unorm

	// FormatRGBA16Float is 64-bit floating-point RGBA color.
	FormatRGBA16Float

	// FormatRGB32Float is 96-bit floating-point RGB color. Several
	// hardware rules single out this element width.
	FormatRGB32Float

	// FormatRGBA32Float is 128-bit floating-point RGBA color.
	FormatRGBA32Float

	// FormatZ16Unorm is 16-bit depth.
	FormatZ16Unorm

	// FormatZ24X8Unorm is 24-bit depth with a padding byte.
	FormatZ24X8Unorm

	// FormatZ24UnormS8Uint is combined 24-bit depth and 8-bit stencil.
	FormatZ24UnormS8Uint

	// FormatZ32Float is 32-bit floating-point depth.
	FormatZ32Float

	// FormatZ32FloatS8X24Uint is combined 32-bit depth and 8-bit
	// stencil stored in a 64-bit element.
	FormatZ32FloatS8X24Uint

	// FormatS8Uint is the dedicated 8-bit stencil format.
	FormatS8Uint

	// FormatETC1RGB8 is ETC1-compressed RGB. The hardware has no native
	// support; it is stored as FormatRGBX8Unorm.
	FormatETC1RGB8

	// FormatBC1 is BC1/DXT1 compression (4x4 texels, 8 bytes).
	FormatBC1

	// FormatBC2 is BC2/DXT3 compression (4x4 texels, 16 bytes).
	FormatBC2

	// FormatBC3 is BC3/DXT5 compression (4x4 texels, 16 bytes).
	FormatBC3

	// FormatBC4 is single-channel block compression (4x4 texels, 8 bytes).
	FormatBC4

	// FormatBC5 is two-channel block compression (4x4 texels, 16 bytes).
	FormatBC5

	// FormatFXT1 is FXT1 compression (8x4 texels, 16 bytes).
	FormatFXT1

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Info contains the storage metadata of a pixel format.
type Info struct {
	// BlockWidth is the texel width of one storage block.
	BlockWidth int

	// BlockHeight is the texel height of one storage block.
	BlockHeight int

	// BlockSize is the byte size of one storage block.
	BlockSize int

	// Compressed indicates a block-compressed format.
	Compressed bool

	// HasDepth indicates a depth component.
	HasDepth bool

	// HasStencil indicates a stencil component.
	HasStencil bool
}

// infoTable contains metadata for each format.
var infoTable = [formatCount]Info{
	FormatR8Unorm:           {BlockWidth: 1, BlockHeight: 1, BlockSize: 1},
	FormatRG8Unorm:          {BlockWidth: 1, BlockHeight: 1, BlockSize: 2},
	FormatRGBA8Unorm:        {BlockWidth: 1, BlockHeight: 1, BlockSize: 4},
	FormatBGRA8Unorm:        {BlockWidth: 1, BlockHeight: 1, BlockSize: 4},
	FormatRGBX8Unorm:        {BlockWidth: 1, BlockHeight: 1, BlockSize: 4},
	FormatRGBA16Float:       {BlockWidth: 1, BlockHeight: 1, BlockSize: 8},
	FormatRGB32Float:        {BlockWidth: 1, BlockHeight: 1, BlockSize: 12},
	FormatRGBA32Float:       {BlockWidth: 1, BlockHeight: 1, BlockSize: 16},
	FormatZ16Unorm:          {BlockWidth: 1, BlockHeight: 1, BlockSize: 2, HasDepth: true},
	FormatZ24X8Unorm:        {BlockWidth: 1, BlockHeight: 1, BlockSize: 4, HasDepth: true},
	FormatZ24UnormS8Uint:    {BlockWidth: 1, BlockHeight: 1, BlockSize: 4, HasDepth: true, HasStencil: true},
	FormatZ32Float:          {BlockWidth: 1, BlockHeight: 1, BlockSize: 4, HasDepth: true},
	FormatZ32FloatS8X24Uint: {BlockWidth: 1, BlockHeight: 1, BlockSize: 8, HasDepth: true, HasStencil: true},
	FormatS8Uint:            {BlockWidth: 1, BlockHeight: 1, BlockSize: 1, HasStencil: true},
	FormatETC1RGB8:          {BlockWidth: 4, BlockHeight: 4, BlockSize: 8, Compressed: true},
	FormatBC1:               {BlockWidth: 4, BlockHeight: 4, BlockSize: 8, Compressed: true},
	FormatBC2:               {BlockWidth: 4, BlockHeight: 4, BlockSize: 16, Compressed: true},
	FormatBC3:               {BlockWidth: 4, BlockHeight: 4, BlockSize: 16, Compressed: true},
	FormatBC4:               {BlockWidth: 4, BlockHeight: 4, BlockSize: 8, Compressed: true},
	FormatBC5:               {BlockWidth: 4, BlockHeight: 4, BlockSize: 16, Compressed: true},
	FormatFXT1:              {BlockWidth: 8, BlockHeight: 4, BlockSize: 16, Compressed: true},
}

// Info returns the storage metadata for this format.
func (f Format) Info() Info {
	if f >= formatCount {
		return Info{}
	}
	return infoTable[f]
}

// BlockWidth returns the texel width of one storage block.
func (f Format) BlockWidth() int {
	return f.Info().BlockWidth
}

// BlockHeight returns the texel height of one storage block.
func (f Format) BlockHeight() int {
	return f.Info().BlockHeight
}

// BlockSize returns the byte size of one storage block.
func (f Format) BlockSize() int {
	return f.Info().BlockSize
}

// IsCompressed returns true for block-compressed formats.
func (f Format) IsCompressed() bool {
	return f.Info().Compressed
}

// HasDepth returns true if the format has a depth component.
func (f Format) HasDepth() bool {
	return f.Info().HasDepth
}

// HasStencil returns true if the format has a stencil component.
func (f Format) HasStencil() bool {
	return f.Info().HasStencil
}

// IsValid returns true if the format is a known, usable format.
func (f Format) IsValid() bool {
	return f > FormatUndefined && f < formatCount
}

// StorageFormat returns the format the hardware actually stores.
//
// Formats without native hardware support are stored using an
// equivalent native format; all others store as themselves.
func (f Format) StorageFormat() Format {
	if f == FormatETC1RGB8 {
		return FormatRGBX8Unorm
	}
	return f
}

// DepthOnly returns the depth-only storage equivalent of a combined
// depth/stencil format, used when stencil is split into its own
// surface. Formats without a stencil component return themselves.
func (f Format) DepthOnly() Format {
	switch f {
	case FormatZ24UnormS8Uint:
		return FormatZ24X8Unorm
	case FormatZ32FloatS8X24Uint:
		return FormatZ32Float
	default:
		return f
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatRG8Unorm:
		return "RG8Unorm"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatRGBX8Unorm:
		return "RGBX8Unorm"
	case FormatRGBA16Float:
		return "RGBA16Float"
	case FormatRGB32Float:
		return "RGB32Float"
	case FormatRGBA32Float:
		return "RGBA32Float"
	case FormatZ16Unorm:
		return "Z16Unorm"
	case FormatZ24X8Unorm:
		return "Z24X8Unorm"
	case FormatZ24UnormS8Uint:
		return "Z24UnormS8Uint"
	case FormatZ32Float:
		return "Z32Float"
	case FormatZ32FloatS8X24Uint:
		return "Z32FloatS8X24Uint"
	case FormatS8Uint:
		return "S8Uint"
	case FormatETC1RGB8:
		return "ETC1RGB8"
	case FormatBC1:
		return "BC1"
	case FormatBC2:
		return "BC2"
	case FormatBC3:
		return "BC3"
	case FormatBC4:
		return "BC4"
	case FormatBC5:
		return "BC5"
	case FormatFXT1:
		return "FXT1"
	default:
		return "Undefined"
	}
}
