package gradient

import (
	"testing"

	"github.com/shinji-kodama/cmapgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = model.RGB{R: 0, G: 0, B: 0}
	white = model.RGB{R: 255, G: 255, B: 255}
	red   = model.RGB{R: 255, G: 0, B: 0}
	blue  = model.RGB{R: 0, G: 0, B: 255}
)

// TestLinear_FullRange verifies the black-to-white ramp over 256 slots hits
// both endpoints and steps by exactly one per slot.
func TestLinear_FullRange(t *testing.T) {
	got := Linear(black, white, 256)
	require.Len(t, got, 256)

	assert.Equal(t, black, got[0])
	assert.Equal(t, white, got[255])
	for i, c := range got {
		assert.Equal(t, model.RGB{R: uint8(i), G: uint8(i), B: uint8(i)}, c)
	}
}

// TestLinear_SingleSlot verifies that count == 1 yields exactly the start colour.
func TestLinear_SingleSlot(t *testing.T) {
	assert.Equal(t, []model.RGB{red}, Linear(red, blue, 1))
}

func TestLinear_Empty(t *testing.T) {
	assert.Empty(t, Linear(red, blue, 0))
	assert.Empty(t, Linear(red, blue, -3))
}

func TestLinear_TwoSlots(t *testing.T) {
	assert.Equal(t, []model.RGB{red, blue}, Linear(red, blue, 2))
}

// TestLinear_Truncates verifies that intermediate samples are truncated
// rather than rounded: 0→10 over 4 samples is 0, 3.33, 6.67, 10.
func TestLinear_Truncates(t *testing.T) {
	tests := []struct {
		name       string
		start, end model.RGB
		want       []uint8
	}{
		{
			name:  "increasing",
			start: model.RGB{R: 0},
			end:   model.RGB{R: 10},
			want:  []uint8{0, 3, 6, 10},
		},
		{
			name:  "decreasing",
			start: model.RGB{R: 10},
			end:   model.RGB{R: 0},
			want:  []uint8{10, 6, 3, 0},
		},
		{
			name:  "constant channel",
			start: model.RGB{R: 77},
			end:   model.RGB{R: 77},
			want:  []uint8{77, 77, 77, 77},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linear(tt.start, tt.end, len(tt.want))
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w, got[i].R, "sample %d", i)
			}
		})
	}
}

// TestLinear_Endpoints verifies that every length reproduces both endpoints exactly.
func TestLinear_Endpoints(t *testing.T) {
	start := model.RGB{R: 255, G: 127, B: 80}
	end := model.RGB{R: 25, G: 25, B: 112}
	for count := 2; count <= 256; count++ {
		got := Linear(start, end, count)
		require.Len(t, got, count)
		assert.Equal(t, start, got[0])
		assert.Equal(t, end, got[count-1])
	}
}

// TestBuild verifies intervals are concatenated in order with their sizes.
func TestBuild(t *testing.T) {
	intervals := []model.Interval{
		{Names: []string{"red", "blue"}, Start: red, End: blue},
		{Names: []string{"blue", "white"}, Start: blue, End: white},
	}

	cm, err := Build(intervals, []int{77, 179})
	require.NoError(t, err)
	require.Len(t, cm, 256)
	assert.True(t, cm.IsComplete())

	assert.Equal(t, red, cm[0])
	assert.Equal(t, blue, cm[76])
	assert.Equal(t, blue, cm[77])
	assert.Equal(t, white, cm[255])
}

func TestBuild_LengthMismatch(t *testing.T) {
	_, err := Build([]model.Interval{{Start: red, End: blue}}, []int{128, 128})
	assert.Error(t, err)
}
