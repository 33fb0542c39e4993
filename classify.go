// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import "github.com/gogpu/texlayout/pixfmt"

// classification captures depth/stencil presence and the aux
// (hierarchical depth) and separate-stencil decisions. It must be
// computed before format resolution: the resolved storage format
// depends on whether stencil is split out.
type classification struct {
	hasDepth   bool
	hasStencil bool

	// aux enables the hierarchical depth buffer.
	aux bool

	// separateStencil stores stencil in a distinct resource. When set,
	// hasStencil is cleared here; the external stencil resource tracks
	// it from then on.
	separateStencil bool
}

// classify determines depth/stencil presence and aux eligibility from
// the requested format, usage and device rules.
func classify(prof genProfile, res *ResourceDesc, dbg DebugFlags) classification {
	var c classification
	c.hasDepth = res.Format.HasDepth()
	c.hasStencil = res.Format.HasStencil()

	if !c.hasDepth {
		return c
	}

	c.aux = true

	// A staging surface is never depth-tested; aux buys nothing.
	if res.Usage == UsageStaging {
		c.aux = false
	}

	// Older hardware cannot combine aux addressing with layer
	// offsetting, so only plain single-level surfaces qualify.
	if prof.auxLevel0Only &&
		(res.LastLevel > 0 || res.arraySize() > 1 || res.depth() > 1) {
		c.aux = false
	}

	if dbg.NoAux {
		c.aux = false
	}

	if c.hasStencil {
		// Separate stencil must match the aux enable where the
		// hardware ties them together; newer generations always
		// separate.
		if prof.separateStencilAlways {
			c.separateStencil = true
		} else {
			c.separateStencil = c.aux
		}

		if c.separateStencil {
			c.hasStencil = false
		}
	}

	return c
}

// formatInfo is the resolved storage format and its block metrics.
type formatInfo struct {
	format     pixfmt.Format
	blockW     int
	blockH     int
	blockSize  int
	compressed bool
}

// resolveFormat maps the requested format to the storage format.
// Emulated compressed formats store as their native equivalent, and a
// combined depth/stencil format stores depth only once stencil has
// been split out by the classifier.
func resolveFormat(res *ResourceDesc, cls classification) formatInfo {
	format := res.Format.StorageFormat()
	if cls.separateStencil {
		format = format.DepthOnly()
	}

	info := format.Info()
	if info.BlockSize == 0 {
		panic("texlayout: unsupported format " + res.Format.String())
	}

	return formatInfo{
		format:     format,
		blockW:     info.BlockWidth,
		blockH:     info.BlockHeight,
		blockSize:  info.BlockSize,
		compressed: info.Compressed,
	}
}
