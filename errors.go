package texlayout

import "errors"

// Soft layout failures. These report a resource description the
// hardware cannot satisfy as requested; callers are expected to retry
// with a fallback description. Contract violations (impossible binding
// combinations, unsupported sample counts) panic instead.
var (
	// ErrTooLarge is returned when the backing buffer would exceed the
	// hardware's maximum resource size.
	ErrTooLarge = errors.New("texlayout: surface exceeds the maximum resource size")

	// ErrPersistentMapConversion is returned when a persistently mapped
	// resource would need on-the-fly tiling or format conversion,
	// because its storage format differs from the requested format or
	// uses separate-stencil storage.
	ErrPersistentMapConversion = errors.New("texlayout: persistent mapping would require tiling or format conversion")
)
