// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

// SliceOffset is the texel position of one array layer (or depth
// slice) of a mip level within the flat surface image.
type SliceOffset struct {
	X, Y int
}

// planInput gathers everything the placement pass consumes. The
// planners write no fields back; they return the unpadded surface
// extent and fill the caller-owned slice-offset arrays in place.
type planInput struct {
	res        *ResourceDesc
	sp         spacing
	compressed bool
	levels     []LevelExtent
	align      alignPair
	qpitch     int
	aux        bool

	// slices[lv], when non-nil, receives one offset per array layer or
	// depth slice of level lv. The arrays are caller-owned; the planner
	// neither allocates nor frees them and requires at least as many
	// entries as slices in the level.
	slices [][]SliceOffset
}

// sliceDst returns the caller-supplied offset array for a level, or
// nil when none was supplied.
func (in *planInput) sliceDst(lv int) []SliceOffset {
	if in.slices == nil || lv >= len(in.slices) {
		return nil
	}
	return in.slices[lv]
}

// plan2D places the mip levels of a 1D, 2D or cube surface.
//
// Levels follow the below-style convention: level 0 sits at the
// origin, level 1 directly below it, and levels 2+ to the right of
// level 1, stacked downward. Array layers repeat the whole arrangement
// every qpitch rows.
func plan2D(in planInput) (width, height int) {
	levelX, levelY := 0, 0

	for lv := 0; lv <= in.res.LastLevel; lv++ {
		levelW := in.levels[lv].W
		levelH := in.levels[lv].H

		if dst := in.sliceDst(lv); dst != nil {
			for slice := 0; slice < in.res.arraySize(); slice++ {
				dst[slice] = SliceOffset{
					X: levelX,
					Y: levelY + in.qpitch*slice,
				}
			}
		}

		// Extend the surface to cover this level.
		if width < levelX+levelW {
			width = levelX + levelW
		}
		if height < levelY+levelH {
			height = levelY + levelH
		}

		if lv == 1 {
			levelX += alignUp(levelW, in.align.i)
		} else {
			levelY += alignUp(levelH, in.align.j)
		}
	}

	numSlices := in.res.arraySize()
	// Non-interleaved storage dedicates one slice per sample.
	if in.res.samples() > 1 && !in.sp.interleaved {
		numSlices *= in.res.samples()
	}

	// The walk above covered a single slice stack.
	height += in.qpitch * (numSlices - 1)

	return padSurface(in, width, height)
}

// plan3D places the depth slices of a volume texture.
//
// Level L packs min(2^L, depth) slices side by side per slice row;
// rows stack downward across all levels.
func plan3D(in planInput) (width, height int) {
	levelY := 0

	for lv := 0; lv <= in.res.LastLevel; lv++ {
		levelW := in.levels[lv].W
		levelH := in.levels[lv].H
		levelD := in.levels[lv].D

		slicePitch := alignUp(levelW, in.align.i)
		sliceQPitch := alignUp(levelH, in.align.j)
		slicesPerRow := 1 << lv

		dst := in.sliceDst(lv)
		for slice := 0; slice < levelD; slice += slicesPerRow {
			if dst != nil {
				for i := 0; i < slicesPerRow && slice+i < levelD; i++ {
					dst[slice+i] = SliceOffset{X: slicePitch * i, Y: levelY}
				}
			}
			levelY += sliceQPitch
		}

		// The rightmost slice of a full row bounds the width.
		rightmost := slicesPerRow
		if levelD < rightmost {
			rightmost = levelD
		}
		rightmost--

		if width < slicePitch*rightmost+levelW {
			width = slicePitch*rightmost + levelW
		}
		if lv == in.res.LastLevel {
			height = (levelY - sliceQPitch) + levelH
		}
	}

	return padSurface(in, width, height)
}

// padSurface applies the final padding pass shared by both planners.
//
// Sampler sources pad out to whole alignment units so every texel the
// sampler may prefetch is backed; cube faces get two extra rows for
// cache-line rotation, and compressed formats pad to an even block
// row. Render targets pad to an even row count. Aux-buffered surfaces
// pad to the 8x4 block the depth clear/resolve hardware addresses.
func padSurface(in planInput, width, height int) (int, int) {
	alignW, alignH, padH := 1, 1, 0

	if in.res.Bind&BindSampler != 0 {
		alignW = max(alignW, in.align.i)
		alignH = max(alignH, in.align.j)

		if in.res.Target == TargetCube {
			padH += 2
		}
		if in.compressed {
			alignH = max(alignH, in.align.j*2)
		}
	}

	if in.res.Bind&BindRenderTarget != 0 {
		alignH = max(alignH, 2)
	}

	if in.aux {
		alignW = max(alignW, 8)
		alignH = max(alignH, 4)
	}

	return alignUp(width, alignW), alignUp(height+padH, alignH)
}
