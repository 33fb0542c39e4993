// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

// LevelExtent is the padded texel extent of one mip level.
type LevelExtent struct {
	W, H, D int
}

// msaaGeometry is the texel-grid expansion applied to a level's extent
// when samples are interleaved: same-pixel samples occupy adjacent grid
// positions, so width and height are first rounded to the sample
// cluster and then multiplied.
//
//	samples   W               H
//	2         ceil(W/2)*4     H
//	4         ceil(W/2)*4     ceil(H/2)*4
//	8         ceil(W/2)*8     ceil(H/2)*4
//	16        ceil(W/2)*8     ceil(H/2)*8
type msaaGeometry struct {
	wMul, hMul int
}

var msaaGeometryTable = map[int]msaaGeometry{
	2:  {wMul: 2, hMul: 1},
	4:  {wMul: 2, hMul: 2},
	8:  {wMul: 4, hMul: 2},
	16: {wMul: 4, hMul: 4},
}

// sizeLevels computes the padded extent of every mip level.
//
// Each level follows the power-of-two minification rule, rounded up to
// the format's block footprint, then expanded for interleaved
// multisampling. The computed chain covers one level past the
// requested last level when an arrayed full-spacing surface has a
// single level only, because the inter-slice pitch formula needs two
// level heights.
func sizeLevels(res *ResourceDesc, fi formatInfo, sp spacing) []LevelExtent {
	lastLevel := res.LastLevel
	if lastLevel == 0 && res.arraySize() > 1 && sp.full {
		lastLevel++
	}

	levels := make([]LevelExtent, lastLevel+1)
	for lv := range levels {
		w := minify(res.Width, lv)
		h := minify(res.Height, lv)
		d := minify(res.depth(), lv)

		w = alignUp(w, fi.blockW)
		h = alignUp(h, fi.blockH)

		if sp.interleaved && res.samples() > 1 {
			geo, ok := msaaGeometryTable[res.samples()]
			if !ok {
				panic("texlayout: unsupported sample count")
			}
			w = alignUp(w, 2) * geo.wMul
			if geo.hMul > 1 {
				h = alignUp(h, 2) * geo.hMul
			}
		}

		levels[lv] = LevelExtent{W: w, H: h, D: d}
	}

	return levels
}

// levelAt returns the extent of level lv, or a zero extent past the
// computed chain. Aux sizing reads one level past a single-level chain
// and expects zeros there.
func levelAt(levels []LevelExtent, lv int) LevelExtent {
	if lv < 0 || lv >= len(levels) {
		return LevelExtent{}
	}
	return levels[lv]
}
