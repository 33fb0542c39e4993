// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import (
	"github.com/gogpu/texlayout/pixfmt"

	"github.com/gogpu/texlayout/internal/logging"
)

// maxResourceSize is the hardware's absolute byte-size limit for a
// single surface, for all products and all surface types.
const maxResourceSize = 1 << 31

// mappableWindow is the portion of the aperture the host can map
// directly. Tiled surfaces larger than it cannot be mapped.
const mappableWindow = 256 * 1024 * 1024

// tileGranularity is the stride/row alignment of the backing buffer
// per tiling mode. Linear stencil aligns to the W-tile block layout
// the hardware expects even though the engine stores it untiled.
var tileGranularity = [tilingCount]struct{ w, h int }{
	TilingNone: {w: 64, h: 2},
	TilingX:    {w: 512, h: 8},
	TilingY:    {w: 128, h: 32},
}

var linearStencilGranularity = struct{ w, h int }{w: 64, h: 64}

// bufferSize is the finalized backing-buffer geometry.
type bufferSize struct {
	stride int // bytes per row
	rows   int // memory rows

	// tiling is the final mode; it departs from the selected mode only
	// through the documented downgrade to linear for mappability.
	tiling Tiling
}

// finalizeBuffer converts the padded texel surface into byte stride
// and row count, aligns both to the tiling granularity, and enforces
// the mappability and maximum-size limits.
//
// A tiled surface too large for the mappable window is downgraded to
// linear when the legality mask allows it and resized from scratch;
// when linear is not legal the surface stays tiled and a warning is
// logged. Exceeding the maximum resource size is a soft failure.
func finalizeBuffer(prof genProfile, res *ResourceDesc, fi formatInfo, tiling Tiling, valid TilingMask, width, height, qpitch int) (bufferSize, error) {
	if width%fi.blockW != 0 || height%fi.blockH != 0 || qpitch%fi.blockH != 0 {
		panic("texlayout: surface extent not a block multiple")
	}

	rawStride := (width / fi.blockW) * fi.blockSize
	rawRows := height / fi.blockH

	for {
		w := rawStride
		h := rawRows

		// Linear sampler surfaces need 64 bytes of padding below the
		// last row, in addition to the surface padding.
		if prof.linearSamplerPadBytes > 0 &&
			res.Bind&BindSampler != 0 && tiling == TilingNone {
			h += (prof.linearSamplerPadBytes + rawStride - 1) / rawStride
		}

		grain := tileGranularity[tiling]
		if tiling == TilingNone && fi.format == pixfmt.FormatS8Uint {
			grain = linearStencilGranularity
		}

		w = alignUp(w, grain.w)
		h = alignUp(h, grain.h)

		if tiling != TilingNone {
			// Conservative 4x factor: the vertical alignment choice can
			// double the footprint, and the window is shared.
			if mappableWindow/w/4 < h {
				if valid.Has(TilingNone) {
					tiling = TilingNone
					continue
				}
				logging.Warn("cannot force surface to be linear",
					"resource", res.DebugName(), "stride", w, "rows", h)
			}
		}

		if h > maxResourceSize/w {
			return bufferSize{}, ErrTooLarge
		}

		return bufferSize{stride: w, rows: h, tiling: tiling}, nil
	}
}

// auxSize is the geometry of the hierarchical depth buffer.
type auxSize struct {
	stride int
	rows   int
}

// sizeAux computes the aux buffer stride and row count. The aux
// surface packs two texel rows per memory row, aligns slice heights to
// 8 rows, and is always Y-tiled, so its stride and rows round to the
// Y-tile granularity.
func sizeAux(prof genProfile, res *ResourceDesc, sp spacing, levels []LevelExtent) auxSize {
	const auxAlignJ = 8

	width := alignUp(levels[0].W, 16)

	var rows int
	if res.Target == Target3D {
		for lv := 0; lv <= res.LastLevel; lv++ {
			rows += alignUp(levels[lv].H, auxAlignJ) * levels[lv].D
		}
		rows /= 2
	} else {
		qpitch := alignUp(levels[0].H, auxAlignJ)
		if sp.full {
			qpitch += alignUp(levelAt(levels, 1).H, auxAlignJ) +
				prof.qpitchTailRows*auxAlignJ
		}

		rows = qpitch * res.arraySize() / 2
		if prof.auxRowAlign > 1 {
			rows = alignUp(rows, prof.auxRowAlign)
		}
	}

	return auxSize{
		stride: alignUp(width, 128),
		rows:   alignUp(rows, 32),
	}
}
