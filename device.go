// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import "fmt"

// GenID identifies a hardware generation. Values are in tenths so that
// fractional steppings such as 7.5 stay integral and ordered.
type GenID int

const (
	// Gen6 is the oldest supported generation.
	Gen6 GenID = 60

	// Gen7 introduced non-interleaved multisample storage and
	// unconditional separate stencil.
	Gen7 GenID = 70

	// Gen75 is the half-step refresh of Gen7.
	Gen75 GenID = 75
)

// String returns the generation in decimal form, e.g. "gen7.5".
func (g GenID) String() string {
	if g%10 == 0 {
		return fmt.Sprintf("gen%d", int(g)/10)
	}
	return fmt.Sprintf("gen%d.%d", int(g)/10, int(g)%10)
}

// DevInfo describes the device a layout is computed for. It is queried,
// never mutated, so one value may serve any number of concurrent
// layout computations.
type DevInfo struct {
	Gen GenID
}

// DebugFlags carries debug overrides into a layout computation. The
// zero value means no overrides. Overrides are always passed
// explicitly; the engine reads no ambient process state.
type DebugFlags struct {
	// NoAux disables hierarchical depth buffering unconditionally.
	NoAux bool
}

// genProfile collects the generation-specific layout rules in one
// place, so each generation's rule set can be read and tested as a
// unit instead of being scattered across comparisons.
type genProfile struct {
	// qpitchTailRows is the multiplier K in the full-spacing inter-slice
	// pitch formula h0 + h1 + K*alignJ.
	qpitchTailRows int

	// separateStencilAlways forces stencil of a combined depth/stencil
	// format into its own surface regardless of aux buffering.
	separateStencilAlways bool

	// nonInterleavedColor stores color multisamples one slice per
	// sample instead of interleaving them in the texel grid.
	nonInterleavedColor bool

	// z16WideAlign gives 16-bit depth an 8-wide horizontal alignment.
	z16WideAlign bool

	// stencilAlignI/J are the alignment units of the dedicated stencil
	// format.
	stencilAlignI, stencilAlignJ int

	// rtTileYValign4 requires 4-row vertical alignment for Y-tiled
	// render targets.
	rtTileYValign4 bool

	// auxLevel0Only restricts aux buffering to non-mipmapped,
	// non-arrayed, non-3D resources. Layer offsetting is incompatible
	// with aux addressing on such hardware.
	auxLevel0Only bool

	// msaaQPitchErratum adds 4 rows to the full-spacing pitch for
	// multisampled surfaces whose base height is in the 1 mod 4
	// residue class.
	msaaQPitchErratum bool

	// linearSamplerPadBytes is the extra bottom padding of a linear
	// sampler surface, in bytes. Zero means no padding.
	linearSamplerPadBytes int

	// auxRowAlign is the row-count alignment of the aux buffer before
	// tile rounding. One means no alignment.
	auxRowAlign int
}

// profileFor returns the rule set for a generation.
func profileFor(gen GenID) genProfile {
	p := genProfile{
		qpitchTailRows:    11,
		stencilAlignI:     4,
		stencilAlignJ:     2,
		auxLevel0Only:     true,
		msaaQPitchErratum: true,
		auxRowAlign:       1,
	}
	if gen >= Gen7 {
		p.qpitchTailRows = 12
		p.separateStencilAlways = true
		p.nonInterleavedColor = true
		p.z16WideAlign = true
		p.stencilAlignI = 8
		p.stencilAlignJ = 8
		p.rtTileYValign4 = true
		p.auxLevel0Only = false
		p.msaaQPitchErratum = false
		p.auxRowAlign = 8
	}
	if gen >= Gen75 {
		p.linearSamplerPadBytes = 64
	}
	return p
}
