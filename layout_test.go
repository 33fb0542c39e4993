package texlayout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/texlayout/pixfmt"
)

func mustLayout(t *testing.T, gen GenID, res *ResourceDesc) *Layout {
	t.Helper()
	l, err := ComputeLayout(DevInfo{Gen: gen}, res, DebugFlags{}, nil)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	return l
}

// checkInvariants verifies the structural properties every layout must
// satisfy.
func checkInvariants(t *testing.T, res *ResourceDesc, l *Layout) {
	t.Helper()

	info := l.Format.Info()

	if !isPow2(l.AlignI) || !isPow2(l.AlignJ) {
		t.Errorf("alignment %dx%d not a power of two", l.AlignI, l.AlignJ)
	}
	if l.Width%l.AlignI != 0 && res.Bind&BindSampler != 0 {
		t.Errorf("width %d not a multiple of align_i %d", l.Width, l.AlignI)
	}
	if l.BOStride%info.BlockSize != 0 {
		t.Errorf("stride %d not a multiple of block size %d", l.BOStride, info.BlockSize)
	}
	if l.Height%info.BlockHeight != 0 {
		t.Errorf("height %d not a multiple of block height %d", l.Height, info.BlockHeight)
	}
	if l.QPitch%l.AlignJ != 0 {
		t.Errorf("qpitch %d not a multiple of align_j %d", l.QPitch, l.AlignJ)
	}
	if res.ArraySize <= 1 && res.Target != Target3D && l.QPitch != 0 {
		t.Errorf("qpitch = %d for a single-slice resource, want 0", l.QPitch)
	}
	if l.ByteSize() > 1<<31 {
		t.Errorf("byte size %d exceeds the maximum resource size", l.ByteSize())
	}
	if l.ValidTilings == 0 {
		t.Error("legal tiling mask is empty")
	}
}

func TestLayout2DSamplerScenario(t *testing.T) {
	// 256x256 single-level RGBA8 sampler source on gen7.
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 256, Height: 256, Bind: BindSampler,
	}
	l := mustLayout(t, Gen7, res)
	checkInvariants(t, res, l)

	if l.Tiling != TilingY {
		t.Errorf("Tiling = %v, want y-major", l.Tiling)
	}
	if l.AlignI != 4 || l.AlignJ != 2 {
		t.Errorf("alignment = %dx%d, want 4x2", l.AlignI, l.AlignJ)
	}
	if l.Width != 256 || l.Height != 256 {
		t.Errorf("surface = %dx%d, want 256x256", l.Width, l.Height)
	}
	if l.BOStride != 1024 {
		t.Errorf("BOStride = %d, want 1024", l.BOStride)
	}
	if l.BOHeight != 256 {
		t.Errorf("BOHeight = %d, want 256", l.BOHeight)
	}
	if l.Aux {
		t.Error("color surface must not carry an aux buffer")
	}
}

func TestLayoutDepth16Scenario(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatZ16Unorm,
		Width: 512, Height: 512, Bind: BindDepthStencil,
	}
	l := mustLayout(t, Gen7, res)
	checkInvariants(t, res, l)

	if l.AlignI != 8 || l.AlignJ != 4 {
		t.Errorf("alignment = %dx%d, want 8x4", l.AlignI, l.AlignJ)
	}
	if l.Tiling != TilingY {
		t.Errorf("Tiling = %v, want y-major", l.Tiling)
	}
	if l.ValidTilings.Has(TilingNone) || l.ValidTilings.Has(TilingX) {
		t.Errorf("ValidTilings = %b, want y-major only", l.ValidTilings)
	}
	if !l.Aux {
		t.Error("depth surface should enable aux buffering")
	}
	if l.AuxStride != 512 || l.AuxHeight != 320 {
		t.Errorf("aux = %dx%d, want 512x320", l.AuxStride, l.AuxHeight)
	}

	// Staging usage turns aux off.
	res.Usage = UsageStaging
	l = mustLayout(t, Gen7, res)
	if l.Aux {
		t.Error("staging depth surface must not enable aux")
	}
}

func TestLayoutStencilGen6Scenario(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatS8Uint,
		Width: 64, Height: 64, ArraySize: 4, Bind: BindDepthStencil,
	}
	l := mustLayout(t, Gen6, res)
	checkInvariants(t, res, l)

	if l.Tiling != TilingNone {
		t.Errorf("Tiling = %v, want none", l.Tiling)
	}
	if l.ValidTilings != maskNone {
		t.Errorf("ValidTilings = %b, want none only", l.ValidTilings)
	}
	if l.FullArraySpacing {
		t.Error("stencil-only surface must use compact spacing")
	}
	if l.QPitch != 64 {
		t.Errorf("QPitch = %d, want 64 (aligned base height)", l.QPitch)
	}

	// W-tile block granularity applies to the linear stencil buffer.
	if l.BOStride%64 != 0 || l.BOHeight%64 != 0 {
		t.Errorf("stencil buffer %dx%d not aligned to 64x64", l.BOStride, l.BOHeight)
	}
}

func TestLayoutInterleavedMSAAScenario(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 64, Height: 64, Samples: 8, Bind: BindRenderTarget,
	}
	l := mustLayout(t, Gen6, res)
	checkInvariants(t, res, l)

	if !l.Interleaved {
		t.Error("gen6 multisampling must interleave")
	}
	if l.Levels[0].W != 256 || l.Levels[0].H != 128 {
		t.Errorf("level 0 = %dx%d, want 256x128 (x4 width, x2 height)",
			l.Levels[0].W, l.Levels[0].H)
	}
}

func TestLayoutMappabilityDowngradeScenario(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 8192, Height: 8192, Bind: BindRenderTarget | BindSampler,
	}
	l := mustLayout(t, Gen7, res)
	checkInvariants(t, res, l)

	if l.Tiling != TilingNone {
		t.Errorf("Tiling = %v, want none (downgraded for mappability)", l.Tiling)
	}
	// The legality mask still reflects the selector's result.
	if !l.ValidTilings.Has(TilingY) {
		t.Errorf("ValidTilings = %b, should still contain y-major", l.ValidTilings)
	}
	if l.BOStride != 8192*4 || l.BOHeight != 8192 {
		t.Errorf("buffer = %dx%d, want 32768x8192", l.BOStride, l.BOHeight)
	}
}

func TestLayoutTooLarge(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 32768, Height: 32768, Bind: BindRenderTarget | BindSampler,
	}
	_, err := ComputeLayout(DevInfo{Gen: Gen7}, res, DebugFlags{}, nil)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("ComputeLayout() error = %v, want ErrTooLarge", err)
	}
}

func TestLayoutPersistentMap(t *testing.T) {
	tests := []struct {
		name    string
		gen     GenID
		res     ResourceDesc
		wantErr bool
	}{
		{
			name: "plain color maps fine",
			gen:  Gen7,
			res: ResourceDesc{
				Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
				Width: 64, Height: 64, Bind: BindSampler | BindLinear,
				PersistentMap: true,
			},
		},
		{
			name: "separate stencil cannot map",
			gen:  Gen7,
			res: ResourceDesc{
				Target: Target2D, Format: pixfmt.FormatZ24UnormS8Uint,
				Width: 64, Height: 64, Bind: BindDepthStencil,
				PersistentMap: true,
			},
			wantErr: true,
		},
		{
			name: "stencil-only storage cannot map",
			gen:  Gen6,
			res: ResourceDesc{
				Target: Target2D, Format: pixfmt.FormatS8Uint,
				Width: 64, Height: 64, Bind: BindDepthStencil,
				PersistentMap: true,
			},
			wantErr: true,
		},
		{
			name: "emulated format cannot map",
			gen:  Gen7,
			res: ResourceDesc{
				Target: Target2D, Format: pixfmt.FormatETC1RGB8,
				Width: 64, Height: 64, Bind: BindSampler,
				PersistentMap: true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeLayout(DevInfo{Gen: tt.gen}, &tt.res, DebugFlags{}, nil)
			if tt.wantErr && !errors.Is(err, ErrPersistentMapConversion) {
				t.Errorf("error = %v, want ErrPersistentMapConversion", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error = %v", err)
			}
		})
	}
}

func TestLayoutLinearSamplerPadding(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 256, Height: 256, Bind: BindSampler | BindLinear,
	}

	// Gen 7.5 pads a linear sampler surface by 64 bytes at the bottom.
	l := mustLayout(t, Gen75, res)
	if l.BOHeight != 258 {
		t.Errorf("gen7.5 BOHeight = %d, want 258 (one pad row, even-aligned)", l.BOHeight)
	}

	l = mustLayout(t, Gen7, res)
	if l.BOHeight != 256 {
		t.Errorf("gen7 BOHeight = %d, want 256", l.BOHeight)
	}
}

func TestLayoutCubePadding(t *testing.T) {
	res := &ResourceDesc{
		Target: TargetCube, Format: pixfmt.FormatRGBA8Unorm,
		Width: 64, Height: 64, Bind: BindSampler,
	}
	l := mustLayout(t, Gen7, res)

	// Two extra rows below the surface, then even-row alignment.
	if l.Height != 66 {
		t.Errorf("Height = %d, want 66", l.Height)
	}
}

func TestLayout2DSliceOffsets(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2DArray, Format: pixfmt.FormatRGBA8Unorm,
		Width: 64, Height: 64, LastLevel: 2, ArraySize: 3, Bind: BindSampler,
	}
	slices := [][]SliceOffset{
		make([]SliceOffset, 3),
		make([]SliceOffset, 3),
		make([]SliceOffset, 3),
	}
	l, err := ComputeLayout(DevInfo{Gen: Gen7}, res, DebugFlags{}, slices)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	checkInvariants(t, res, l)

	// h0=64, h1=32, align_j=2: qpitch = 64 + 32 + 24 = 120.
	if l.QPitch != 120 {
		t.Fatalf("QPitch = %d, want 120", l.QPitch)
	}

	wantLevelPos := []SliceOffset{
		{X: 0, Y: 0},   // level 0 at the origin
		{X: 0, Y: 64},  // level 1 below it
		{X: 32, Y: 64}, // level 2 beside level 1
	}
	for lv, pos := range wantLevelPos {
		for layer := 0; layer < 3; layer++ {
			want := SliceOffset{X: pos.X, Y: pos.Y + l.QPitch*layer}
			if slices[lv][layer] != want {
				t.Errorf("slices[%d][%d] = %+v, want %+v", lv, layer, slices[lv][layer], want)
			}
		}
	}

	// One slice stack is 96 rows tall; two more stacks follow.
	if l.Height != 336 {
		t.Errorf("Height = %d, want 336", l.Height)
	}
}

func TestLayout3DSliceRows(t *testing.T) {
	res := &ResourceDesc{
		Target: Target3D, Format: pixfmt.FormatRGBA8Unorm,
		Width: 16, Height: 16, Depth: 8, LastLevel: 2, Bind: BindSampler,
	}
	slices := [][]SliceOffset{
		make([]SliceOffset, 8),
		make([]SliceOffset, 4),
		make([]SliceOffset, 2),
	}
	l, err := ComputeLayout(DevInfo{Gen: Gen7}, res, DebugFlags{}, slices)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	// Level 0: one slice per row, 16 rows apart.
	for i := 0; i < 8; i++ {
		want := SliceOffset{X: 0, Y: 16 * i}
		if slices[0][i] != want {
			t.Errorf("slices[0][%d] = %+v, want %+v", i, slices[0][i], want)
		}
	}

	// Level 1 starts below level 0's rows, two slices per row.
	want1 := []SliceOffset{{X: 0, Y: 128}, {X: 8, Y: 128}, {X: 0, Y: 136}, {X: 8, Y: 136}}
	for i, want := range want1 {
		if slices[1][i] != want {
			t.Errorf("slices[1][%d] = %+v, want %+v", i, slices[1][i], want)
		}
	}

	// Level 2 packs both remaining slices into one row.
	want2 := []SliceOffset{{X: 0, Y: 144}, {X: 4, Y: 144}}
	for i, want := range want2 {
		if slices[2][i] != want {
			t.Errorf("slices[2][%d] = %+v, want %+v", i, slices[2][i], want)
		}
	}

	if l.Width != 16 || l.Height != 148 {
		t.Errorf("surface = %dx%d, want 16x148", l.Width, l.Height)
	}
}

func TestLayout3DAux(t *testing.T) {
	res := &ResourceDesc{
		Target: Target3D, Format: pixfmt.FormatZ32Float,
		Width: 64, Height: 64, Depth: 4, Bind: BindDepthStencil,
	}
	l := mustLayout(t, Gen7, res)

	if !l.Aux {
		t.Fatal("3D depth surface should enable aux on gen7")
	}
	// Four slices of 64 aligned rows, two texel rows per memory row.
	if l.AuxStride != 128 || l.AuxHeight != 128 {
		t.Errorf("aux = %dx%d, want 128x128", l.AuxStride, l.AuxHeight)
	}

	// Gen6 cannot combine aux with multiple slices.
	l = mustLayout(t, Gen6, res)
	if l.Aux {
		t.Error("gen6 must disable aux for 3D resources")
	}
}

func TestLayoutIdempotent(t *testing.T) {
	res := &ResourceDesc{
		Target: Target2DArray, Format: pixfmt.FormatZ24UnormS8Uint,
		Width: 128, Height: 128, LastLevel: 3, ArraySize: 6,
		Bind: BindDepthStencil | BindSampler,
	}

	a := mustLayout(t, Gen75, res)
	b := mustLayout(t, Gen75, res)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different layouts:\n%+v\n%+v", a, b)
	}
}

func TestLayoutInvariantsAcrossMatrix(t *testing.T) {
	gens := []GenID{Gen6, Gen7, Gen75}
	formats := []pixfmt.Format{
		pixfmt.FormatRGBA8Unorm, pixfmt.FormatRGBA16Float,
		pixfmt.FormatBC3, pixfmt.FormatFXT1,
		pixfmt.FormatZ16Unorm, pixfmt.FormatZ24UnormS8Uint,
	}

	for _, gen := range gens {
		for _, format := range formats {
			bind := BindSampler
			if format.HasDepth() {
				bind = BindDepthStencil
			}
			res := &ResourceDesc{
				Target: Target2DArray, Format: format,
				Width: 120, Height: 85, LastLevel: 2, ArraySize: 3,
				Bind: bind,
			}
			l := mustLayout(t, gen, res)
			checkInvariants(t, res, l)
		}
	}
}
