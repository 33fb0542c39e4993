package texlayout

import "github.com/gogpu/texlayout/pixfmt"

// spacing captures how array layers and samples share the surface.
type spacing struct {
	// interleaved packs the samples of one pixel into adjacent texel
	// grid slots. Non-interleaved storage gives each sample its own
	// full-size slice.
	interleaved bool

	// full reserves inter-slice distance as if every mip level were
	// present; compact spacing reserves only the base level.
	full bool
}

// classifySpacing decides sample interleaving and array spacing.
// It depends on the classifier (depth/stencil presence after the
// separate-stencil split) and on the resolved format.
func classifySpacing(prof genProfile, res *ResourceDesc, cls classification, fi formatInfo) spacing {
	if !prof.nonInterleavedColor {
		// Only interleaved storage exists on this generation, and only
		// the dedicated stencil format may use compact spacing (it has
		// no mip levels to reserve room for).
		return spacing{
			interleaved: true,
			full:        fi.format != pixfmt.FormatS8Uint,
		}
	}

	if cls.hasDepth || cls.hasStencil {
		// Depth/stencil surfaces are sample-interleaved and carry an
		// implied full array spacing even with a single level.
		return spacing{interleaved: true, full: true}
	}

	// Color surfaces store samples non-interleaved, and non-interleaved
	// multisample storage requires compact spacing. Multisampled color
	// resources are never mipmapped, so full spacing is reserved for
	// mip chains only.
	if res.samples() > 1 && res.LastLevel > 0 {
		panic("texlayout: multisampled color resource must not be mipmapped")
	}
	return spacing{interleaved: false, full: res.LastLevel > 0}
}
