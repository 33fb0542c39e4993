// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import (
	"github.com/gogpu/texlayout/pixfmt"

	"github.com/gogpu/texlayout/internal/logging"
)

// Layout is the computed memory layout of a resource. It is filled
// once by ComputeLayout and read-only afterwards.
type Layout struct {
	// Format is the resolved storage format; it can differ from the
	// requested format for emulated or split depth/stencil storage.
	Format pixfmt.Format

	// SeparateStencil indicates the stencil component is stored in a
	// distinct, externally tracked resource.
	SeparateStencil bool

	// Tiling is the final tiling mode. ValidTilings is the mask of
	// hardware-legal modes; Tiling is a member of it except after the
	// downgrade-to-linear mappability fallback.
	Tiling       Tiling
	ValidTilings TilingMask

	// Interleaved and FullArraySpacing describe slice storage.
	Interleaved      bool
	FullArraySpacing bool

	// AlignI and AlignJ are the horizontal and vertical placement
	// alignment units in texels.
	AlignI, AlignJ int

	// QPitch is the vertical texel-row distance between consecutive
	// array slices. Zero for single-slice resources.
	QPitch int

	// Levels holds the padded extent of each requested mip level.
	Levels []LevelExtent

	// Width and Height are the padded extent of the flat surface image
	// in texels.
	Width, Height int

	// BOStride and BOHeight are the backing buffer's bytes per row and
	// row count.
	BOStride, BOHeight int

	// Aux reports whether a hierarchical depth buffer is attached;
	// AuxStride and AuxHeight are its geometry.
	Aux                  bool
	AuxStride, AuxHeight int
}

// ByteSize returns the backing buffer size in bytes.
func (l *Layout) ByteSize() int64 {
	return int64(l.BOStride) * int64(l.BOHeight)
}

// AuxByteSize returns the aux buffer size in bytes, zero when no aux
// buffer is attached.
func (l *Layout) AuxByteSize() int64 {
	return int64(l.AuxStride) * int64(l.AuxHeight)
}

// ComputeLayout computes the memory layout of a resource on a device.
//
// The computation runs a fixed sequence of phases, each consuming
// state fixed by the previous ones: depth/stencil classification,
// format resolution, tiling selection, spacing, mip level sizing,
// alignment, inter-slice pitch, placement, buffer sizing, aux sizing.
//
// slices, when non-nil, supplies one caller-owned offset array per mip
// level; each receives the (x, y) texel offset of every array layer or
// depth slice of that level. The engine writes the arrays in place and
// keeps no reference to them. Entries beyond the requested level count
// are ignored, as are nil per-level arrays.
//
// Soft failures return ErrTooLarge or ErrPersistentMapConversion;
// contract violations (conflicting bindings, unsupported sample
// counts, invalid formats) panic. Identical inputs always produce
// identical results.
func ComputeLayout(dev DevInfo, res *ResourceDesc, dbg DebugFlags, slices [][]SliceOffset) (*Layout, error) {
	prof := profileFor(dev.Gen)

	cls := classify(prof, res, dbg)
	fi := resolveFormat(res, cls)
	tiling, valid := selectTiling(prof, res, fi.format)
	sp := classifySpacing(prof, res, cls, fi)
	levels := sizeLevels(res, fi, sp)
	align := alignments(prof, res, fi, cls, tiling)
	qpitch := qpitchFor(prof, res, sp, levels, align)

	// Persistent mapping needs the stored bytes to be exactly what the
	// host expects: no separate stencil, no software-swizzled stencil
	// storage, no format substitution.
	if res.PersistentMap &&
		(cls.separateStencil ||
			fi.format == pixfmt.FormatS8Uint ||
			fi.format != res.Format) {
		return nil, ErrPersistentMapConversion
	}

	in := planInput{
		res:        res,
		sp:         sp,
		compressed: fi.compressed,
		levels:     levels,
		align:      align,
		qpitch:     qpitch,
		aux:        cls.aux,
		slices:     slices,
	}

	var width, height int
	if res.Target == Target3D {
		width, height = plan3D(in)
	} else {
		width, height = plan2D(in)
	}

	buf, err := finalizeBuffer(prof, res, fi, tiling, valid, width, height, qpitch)
	if err != nil {
		return nil, err
	}
	if buf.tiling != tiling {
		logging.Debug("tiling downgraded for mappability",
			"resource", res.DebugName(), "from", tiling, "to", buf.tiling)
	}

	layout := &Layout{
		Format:           fi.format,
		SeparateStencil:  cls.separateStencil,
		Tiling:           buf.tiling,
		ValidTilings:     valid,
		Interleaved:      sp.interleaved,
		FullArraySpacing: sp.full,
		AlignI:           align.i,
		AlignJ:           align.j,
		QPitch:           qpitch,
		Levels:           levels[:res.LastLevel+1],
		Width:            width,
		Height:           height,
		BOStride:         buf.stride,
		BOHeight:         buf.rows,
		Aux:              cls.aux,
	}

	if cls.aux {
		aux := sizeAux(prof, res, sp, levels)
		layout.AuxStride = aux.stride
		layout.AuxHeight = aux.rows
	}

	return layout, nil
}
