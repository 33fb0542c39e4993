// Package texlayout computes the in-memory layout of GPU texture
// resources for Intel-style hardware generations 6, 7 and 7.5.
//
// # Overview
//
// Given a resource description and a device generation, ComputeLayout
// determines the tiling mode, placement alignment units, per-mip-level
// extents and slice offsets, the padded surface size, the backing
// buffer's byte stride and row count, and the size of the optional
// hierarchical depth (aux) buffer. The rules are generation- and
// format-specific and the resulting offsets are byte-exact: they feed
// an allocator and the hardware surface state directly.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/texlayout"
//		"github.com/gogpu/texlayout/pixfmt"
//	)
//
//	res := &texlayout.ResourceDesc{
//		Target: texlayout.Target2D,
//		Format: pixfmt.FormatRGBA8Unorm,
//		Width:  256, Height: 256,
//		Bind: texlayout.BindSampler,
//	}
//	layout, err := texlayout.ComputeLayout(
//		texlayout.DevInfo{Gen: texlayout.Gen7}, res,
//		texlayout.DebugFlags{}, nil)
//
// The layout reports what the caller needs to allocate (ByteSize,
// BOStride, Tiling) and how to address sub-resources (AlignI/AlignJ,
// QPitch, per-slice offsets).
//
// # Scope
//
// The package performs no allocation and no GPU calls; it only
// computes geometry. Building surface-state records, uploading texels
// and managing buffer lifetime belong to the caller.
//
// A computation is synchronous and owns all of its state, so layouts
// for independent resources may be computed concurrently. The only
// shared input, DevInfo, is never written.
package texlayout
