package texlayout

import (
	"testing"

	"github.com/gogpu/texlayout/pixfmt"
)

func fmtInfo(f pixfmt.Format) formatInfo {
	info := f.Info()
	return formatInfo{
		format:     f,
		blockW:     info.BlockWidth,
		blockH:     info.BlockHeight,
		blockSize:  info.BlockSize,
		compressed: info.Compressed,
	}
}

func TestSizeLevelsMipChain(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 16, Height: 16, LastLevel: 4,
	}
	levels := sizeLevels(res, fmtInfo(res.Format), spacing{})

	want := []LevelExtent{
		{W: 16, H: 16, D: 1},
		{W: 8, H: 8, D: 1},
		{W: 4, H: 4, D: 1},
		{W: 2, H: 2, D: 1},
		{W: 1, H: 1, D: 1},
	}
	if len(levels) != len(want) {
		t.Fatalf("len(levels) = %d, want %d", len(levels), len(want))
	}
	for lv, ext := range want {
		if levels[lv] != ext {
			t.Errorf("level %d = %+v, want %+v", lv, levels[lv], ext)
		}
	}
}

func TestSizeLevelsBlockRounding(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatBC1,
		Width: 64, Height: 33, LastLevel: 3,
	}
	levels := sizeLevels(res, fmtInfo(res.Format), spacing{})

	want := []LevelExtent{
		{W: 64, H: 36, D: 1},
		{W: 32, H: 16, D: 1},
		{W: 16, H: 8, D: 1},
		{W: 8, H: 4, D: 1},
	}
	for lv, ext := range want {
		if levels[lv] != ext {
			t.Errorf("level %d = %+v, want %+v", lv, levels[lv], ext)
		}
	}
}

func TestSizeLevelsInterleavedMSAA(t *testing.T) {
	tests := []struct {
		samples int
		wantW   int
		wantH   int
	}{
		{samples: 2, wantW: 128, wantH: 64},
		{samples: 4, wantW: 128, wantH: 128},
		{samples: 8, wantW: 256, wantH: 128},
		{samples: 16, wantW: 256, wantH: 256},
	}

	for _, tt := range tests {
		res := &ResourceDesc{
			Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
			Width: 64, Height: 64, Samples: tt.samples,
		}
		levels := sizeLevels(res, fmtInfo(res.Format), spacing{interleaved: true})

		if levels[0].W != tt.wantW || levels[0].H != tt.wantH {
			t.Errorf("samples=%d: level 0 = %dx%d, want %dx%d",
				tt.samples, levels[0].W, levels[0].H, tt.wantW, tt.wantH)
		}
	}
}

func TestSizeLevelsNonInterleavedMSAAUnchanged(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 64, Height: 64, Samples: 8,
	}
	levels := sizeLevels(res, fmtInfo(res.Format), spacing{interleaved: false})

	if levels[0].W != 64 || levels[0].H != 64 {
		t.Errorf("level 0 = %dx%d, want 64x64", levels[0].W, levels[0].H)
	}
}

func TestSizeLevelsUnsupportedSampleCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported sample count")
		}
	}()

	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 64, Height: 64, Samples: 6,
	}
	sizeLevels(res, fmtInfo(res.Format), spacing{interleaved: true})
}

func TestSizeLevelsExtraLevelForQPitch(t *testing.T) {
	// A single-level arrayed surface under full spacing needs a second
	// level height for the inter-slice pitch formula.
	res := &ResourceDesc{
		Target: Target2DArray, Format: pixfmt.FormatZ24UnormS8Uint,
		Width: 64, Height: 64, ArraySize: 4,
	}
	levels := sizeLevels(res, fmtInfo(res.Format), spacing{interleaved: true, full: true})

	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}
	if levels[1] != (LevelExtent{W: 32, H: 32, D: 1}) {
		t.Errorf("level 1 = %+v, want {32 32 1}", levels[1])
	}

	// Compact spacing needs no extra level.
	levels = sizeLevels(res, fmtInfo(res.Format), spacing{interleaved: true})
	if len(levels) != 1 {
		t.Errorf("len(levels) = %d, want 1", len(levels))
	}
}
