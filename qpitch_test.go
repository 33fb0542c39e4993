package texlayout

import "testing"

func TestQPitch(t *testing.T) {
	tests := []struct {
		name   string
		gen    GenID
		res    ResourceDesc
		sp     spacing
		levels []LevelExtent
		alignJ int
		want   int
	}{
		{
			name:   "single slice never stacks",
			gen:    Gen7,
			res:    ResourceDesc{Height: 64, ArraySize: 1},
			sp:     spacing{full: true},
			levels: []LevelExtent{{W: 64, H: 64, D: 1}, {W: 32, H: 32, D: 1}},
			alignJ: 2,
			want:   0,
		},
		{
			name:   "compact packs at aligned base height",
			gen:    Gen7,
			res:    ResourceDesc{Height: 63, ArraySize: 4},
			sp:     spacing{},
			levels: []LevelExtent{{W: 64, H: 63, D: 1}},
			alignJ: 2,
			want:   64,
		},
		{
			name:   "full spacing gen7 tail is 12j",
			gen:    Gen7,
			res:    ResourceDesc{Height: 64, ArraySize: 2},
			sp:     spacing{full: true},
			levels: []LevelExtent{{W: 64, H: 64, D: 1}, {W: 32, H: 32, D: 1}},
			alignJ: 2,
			want:   64 + 32 + 12*2,
		},
		{
			name:   "full spacing gen6 tail is 11j",
			gen:    Gen6,
			res:    ResourceDesc{Height: 64, ArraySize: 2},
			sp:     spacing{full: true},
			levels: []LevelExtent{{W: 64, H: 64, D: 1}, {W: 32, H: 32, D: 1}},
			alignJ: 2,
			want:   64 + 32 + 11*2,
		},
		{
			name:   "gen6 msaa erratum adds 4 rows for odd heights",
			gen:    Gen6,
			res:    ResourceDesc{Height: 65, ArraySize: 2, Samples: 4},
			sp:     spacing{interleaved: true, full: true},
			levels: []LevelExtent{{W: 132, H: 132, D: 1}, {W: 68, H: 68, D: 1}},
			alignJ: 4,
			want:   132 + 68 + 11*4 + 4,
		},
		{
			name:   "gen6 msaa erratum skips other odd heights",
			gen:    Gen6,
			res:    ResourceDesc{Height: 67, ArraySize: 2, Samples: 4},
			sp:     spacing{interleaved: true, full: true},
			levels: []LevelExtent{{W: 136, H: 136, D: 1}, {W: 68, H: 68, D: 1}},
			alignJ: 4,
			want:   136 + 68 + 11*4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qpitchFor(profileFor(tt.gen), &tt.res, tt.sp, tt.levels, alignPair{i: 4, j: tt.alignJ})
			if got != tt.want {
				t.Errorf("qpitchFor() = %d, want %d", got, tt.want)
			}
			if tt.want > 0 && got%tt.alignJ != 0 {
				t.Errorf("qpitch %d not a multiple of align_j %d", got, tt.alignJ)
			}
		})
	}
}
