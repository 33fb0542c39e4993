// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import "github.com/gogpu/texlayout/pixfmt"

// alignPair is the horizontal/vertical alignment unit of mip level
// placement, in texels.
type alignPair struct {
	i, j int
}

// alignments computes the placement alignment units.
//
// Compressed formats align to their block footprint. Depth and stencil
// formats use fixed generation-specific pairs. Everything else uses a
// 4-wide horizontal unit and picks the vertical unit from the
// multisample state and, on hardware that requires it, from Y-tiled
// render-target use.
func alignments(prof genProfile, res *ResourceDesc, fi formatInfo, cls classification, tiling Tiling) alignPair {
	var a alignPair

	switch {
	case fi.compressed:
		a = alignPair{i: fi.blockW, j: fi.blockH}

	case cls.hasDepth || cls.hasStencil:
		switch fi.format {
		case pixfmt.FormatS8Uint:
			a = alignPair{i: prof.stencilAlignI, j: prof.stencilAlignJ}
		case pixfmt.FormatZ16Unorm:
			if prof.z16WideAlign {
				a = alignPair{i: 8, j: 4}
			} else {
				a = alignPair{i: 4, j: 4}
			}
		default:
			a = alignPair{i: 4, j: 4}
		}

	default:
		valign4 := res.samples() > 1 ||
			(prof.rtTileYValign4 && tiling == TilingY && res.Bind&BindRenderTarget != 0)

		if valign4 && fi.blockSize == 12 {
			// 96-bit elements cannot use 4-row vertical alignment; the
			// tiling selector keeps such render targets off Y-major.
			panic("texlayout: 96-bit format with 4-row vertical alignment")
		}

		a = alignPair{i: 4, j: 2}
		if valign4 {
			a.j = 4
		}
	}

	// Alignments being block multiples is what makes slices start on
	// block boundaries and the buffer size a block-size multiple.
	if a.i%fi.blockW != 0 || a.j%fi.blockH != 0 {
		panic("texlayout: alignment unit not a block multiple")
	}
	if !isPow2(a.i) || !isPow2(a.j) || !isPow2(fi.blockW) || !isPow2(fi.blockH) {
		panic("texlayout: alignment unit or block extent not a power of two")
	}

	return a
}
