package slot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shinji-kodama/cmapgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sum adds up an allocation.
func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// assertWithinOne checks the ±1 bound of every slot against naive rounding.
func assertWithinOne(t *testing.T, targets []float64, got []int) {
	t.Helper()
	require.Len(t, got, len(targets))
	for i, v := range targets {
		naive := int(math.RoundToEven(v))
		assert.LessOrEqual(t, math.Abs(float64(got[i]-naive)), 1.0,
			"slot %d moved more than one away from its rounded target %v", i, v)
	}
}

// TestAllocate_SingleInterval verifies that one interval takes all 256 slots
// regardless of the proportion variant.
func TestAllocate_SingleInterval(t *testing.T) {
	got, err := Allocate(model.Equal(1))
	require.NoError(t, err)
	assert.Equal(t, []int{256}, got)

	got, err = Allocate(model.Weighted([]int{100}))
	require.NoError(t, err)
	assert.Equal(t, []int{256}, got)
}

// TestAllocate_NoIntervals verifies that empty proportions are rejected.
func TestAllocate_NoIntervals(t *testing.T) {
	_, err := Allocate(model.Equal(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNoIntervals)
}

// TestAllocate_Weighted30_70 verifies the two-interval example:
// 256*0.3 = 76.8 → 77 and 256*0.7 = 179.2 → 179.
func TestAllocate_Weighted30_70(t *testing.T) {
	got, err := Allocate(model.Weighted([]int{30, 70}))
	require.NoError(t, err)
	assert.Equal(t, []int{77, 179}, got)
}

// TestAllocate_EqualThree verifies that 256/3 = 85.33 per interval rounds to
// 85 each, and the single missing slot goes to the first interval because
// all remainders tie.
func TestAllocate_EqualThree(t *testing.T) {
	got, err := Allocate(model.Equal(3))
	require.NoError(t, err)
	assert.Equal(t, []int{86, 85, 85}, got)
}

func TestAllocate_EqualDivisible(t *testing.T) {
	got, err := Allocate(model.Equal(4))
	require.NoError(t, err)
	assert.Equal(t, []int{64, 64, 64, 64}, got)
}

// TestAdjustToSum covers the rounding and tie-break direction of the
// largest-remainder correction.
func TestAdjustToSum(t *testing.T) {
	tests := []struct {
		name    string
		targets []float64
		total   int
		want    []int
	}{
		{
			name:    "already integral",
			targets: []float64{50, 50},
			total:   100,
			want:    []int{50, 50},
		},
		{
			name:    "trivial single value",
			targets: []float64{100},
			total:   100,
			want:    []int{100},
		},
		{
			name:    "deficit goes to largest remainder",
			targets: []float64{85.3, 85.3, 85.4},
			total:   256,
			want:    []int{85, 85, 86},
		},
		{
			name:    "surplus taken from smallest remainder",
			targets: []float64{85.6, 85.7, 84.7},
			total:   256,
			// rounded 86+86+85 = 257; remainders -0.4, -0.3, -0.3.
			want: []int{85, 86, 85},
		},
		{
			name:    "half rounds to even",
			targets: []float64{76.5, 179.5},
			total:   256,
			// rounded 76+180 = 256 already.
			want: []int{76, 180},
		},
		{
			name:    "ties adjust earliest index first",
			targets: []float64{51.2, 51.2, 51.2, 51.2, 51.2},
			total:   256,
			want:    []int{52, 51, 51, 51, 51},
		},
		{
			name:    "surplus ties adjust earliest index first",
			targets: []float64{42.6, 42.6, 42.6, 42.6, 42.6, 43},
			total:   256,
			// rounded 43*6 = 258; the five -0.4 remainders tie.
			want: []int{42, 42, 43, 43, 43, 43},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustToSum(tt.targets, tt.total)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, sum(got))
			assertWithinOne(t, tt.targets, got)
		})
	}
}

// TestAllocate_SumInvariant checks the two allocation invariants over every
// equal split and a deterministic sample of random percentage sets:
// the allocation sums to exactly 256 and no slot moves more than one away
// from its rounded target.
func TestAllocate_SumInvariant(t *testing.T) {
	for n := 1; n <= model.TotalSlots; n++ {
		p := model.Equal(n)
		got, err := Allocate(p)
		require.NoError(t, err)
		require.Equal(t, model.TotalSlots, sum(got), "equal split over %d intervals", n)
		assertWithinOne(t, p.Targets(), got)
	}

	rng := rand.New(rand.NewSource(256))
	for iter := 0; iter < 500; iter++ {
		n := 2 + rng.Intn(12)
		pcts := randomPercentages(rng, n)
		p := model.Weighted(pcts)

		got, err := Allocate(p)
		require.NoError(t, err)
		require.Equal(t, model.TotalSlots, sum(got), "percentages %v", pcts)
		assertWithinOne(t, p.Targets(), got)
	}
}

// randomPercentages returns n positive integers summing to 100.
func randomPercentages(rng *rand.Rand, n int) []int {
	pcts := make([]int, n)
	for i := range pcts {
		pcts[i] = 1
	}
	for left := 100 - n; left > 0; left-- {
		pcts[rng.Intn(n)]++
	}
	return pcts
}
