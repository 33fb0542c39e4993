package texlayout

// qpitchFor computes the vertical texel-row distance between
// consecutive array slices of one mip level. It is zero for
// single-slice resources, which never stack.
//
// Compact spacing packs slices at the aligned base-level height. Full
// spacing reserves the whole mip chain per slice:
//
//	QPitch = h0 + h1 + K*alignJ
//
// with K generation-specific, h0/h1 the aligned heights of the first
// two levels. QPitch counts texel rows, not memory rows, so no
// compression divisor applies here.
func qpitchFor(prof genProfile, res *ResourceDesc, sp spacing, levels []LevelExtent, a alignPair) int {
	if res.arraySize() <= 1 {
		return 0
	}

	h0 := alignUp(levels[0].H, a.j)
	if !sp.full {
		return h0
	}

	h1 := alignUp(levelAt(levels, 1).H, a.j)
	qpitch := h0 + h1 + prof.qpitchTailRows*a.j

	// Hardware erratum: the sampler expects 4 extra rows under
	// multisampling for every other odd base height starting from 1.
	if prof.msaaQPitchErratum && res.samples() > 1 && res.Height%4 == 1 {
		qpitch += 4
	}

	return qpitch
}
