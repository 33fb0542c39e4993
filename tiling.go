// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import "github.com/gogpu/texlayout/pixfmt"

// Tiling is a hardware memory-scrambling pattern.
type Tiling uint8

const (
	// TilingNone is linear storage.
	TilingNone Tiling = iota

	// TilingX is X-major tiling (512-byte by 8-row tiles).
	TilingX

	// TilingY is Y-major tiling (128-byte by 32-row tiles).
	TilingY

	tilingCount
)

// String returns the tiling mode name.
func (t Tiling) String() string {
	switch t {
	case TilingNone:
		return "none"
	case TilingX:
		return "x-major"
	case TilingY:
		return "y-major"
	default:
		return "unknown"
	}
}

// TilingMask is a bitmask of tiling modes.
type TilingMask uint8

const (
	maskNone = TilingMask(1) << TilingNone
	maskX    = TilingMask(1) << TilingX
	maskY    = TilingMask(1) << TilingY
	maskAll  = maskNone | maskX | maskY
)

// Has reports whether the mask contains t.
func (m TilingMask) Has(t Tiling) bool {
	return m&(TilingMask(1)<<t) != 0
}

// selectTiling computes the bitmask of hardware-legal tiling modes for
// the resource and picks the preferred one. The mask is built by
// removing modes per binding flag; a caller that requests conflicting
// bindings violates the contract and trips the empty-mask panic.
//
// The returned mask is the legality mask before the small-surface
// heuristics; the chosen mode honors the heuristics as well.
func selectTiling(prof genProfile, res *ResourceDesc, format pixfmt.Format) (Tiling, TilingMask) {
	valid := maskAll
	blockSize := format.BlockSize()

	// Scanout engines cannot read Y-major and need X-major for flips.
	if res.Bind&BindScanout != 0 {
		valid &= maskX
	}

	// Cursor surfaces must be linear, as must explicitly linear ones.
	if res.Bind&(BindCursor|BindLinear) != 0 {
		valid &= maskNone
	}

	// Multisample-control surfaces must be stored Y-major.
	if res.Bind&BindAux != 0 {
		valid &= maskY
	}

	if res.Bind&BindDepthStencil != 0 {
		if format == pixfmt.FormatS8Uint {
			// Stencil is W-tiled, which has no fencing support; the
			// engine treats it as linear and swizzles in software.
			valid &= maskNone
		} else {
			// Depth buffers must be Y-major.
			valid &= maskY
		}
	}

	if res.Bind&BindRenderTarget != 0 {
		// 128-bit-per-element color targets cannot be Y-major.
		if blockSize == 16 {
			valid &^= maskY
		}

		// Y-tiled render targets need 4-row vertical alignment, which
		// 96-bit elements do not support.
		if prof.rtTileYValign4 && blockSize == 12 {
			valid &^= maskY
		}
	}

	if valid == 0 {
		panic("texlayout: conflicting binding flags leave no legal tiling mode")
	}

	preferred := valid

	if res.Bind&(BindRenderTarget|BindSampler) != 0 {
		// Tiling overhead is not worth it on tiny surfaces.
		if res.Width < 64 && preferred&^maskX != 0 {
			preferred &^= maskX
		}
		if (res.Width < 32 || res.Height < 16) &&
			(res.Width < 16 || res.Height < 32) &&
			preferred&^maskY != 0 {
			preferred &^= maskY
		}
	} else {
		// Not knowing where the resource will be bound, prefer the
		// mode every engine can read.
		if preferred&maskNone != 0 {
			preferred &= maskNone
		}
	}

	switch {
	case preferred&maskY != 0:
		return TilingY, valid
	case preferred&maskX != 0:
		return TilingX, valid
	default:
		return TilingNone, valid
	}
}
