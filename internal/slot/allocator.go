package slot

import (
	"fmt"
	"math"
	"sort"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// Allocate computes how many colormap slots each interval receives.
//
// Algorithm:
//  1. A single interval takes every slot; no rounding is involved.
//  2. Otherwise the proportions are resolved into real-valued targets
//     (TotalSlots/n each for an equal split, TotalSlots*p/100 for weights).
//  3. The targets are apportioned with AdjustToSum so the result sums to
//     exactly model.TotalSlots.
//
// Returns model.ErrNoIntervals for empty proportions.
func Allocate(p model.Proportions) ([]int, error) {
	switch p.Len() {
	case 0:
		return nil, fmt.Errorf("slot allocation: %w", model.ErrNoIntervals)
	case 1:
		return []int{model.TotalSlots}, nil
	}

	return AdjustToSum(p.Targets(), model.TotalSlots), nil
}

// AdjustToSum rounds real-valued targets to integers that sum to total.
//
// Rounding is half-to-even (math.RoundToEven), so 76.5 becomes 76 and
// 77.5 becomes 78. The rounding error is then corrected one slot at a time:
//   - difference > 0: indices are ranked by descending remainder
//     (target - rounded), favouring values that were rounded down the most.
//   - difference < 0: indices are ranked by ascending remainder,
//     favouring values that were rounded up the most.
//
// Ranking is stable, so equal remainders keep their input order and the
// earliest interval is adjusted first.
//
// Each result differs from its rounded target by at most one as long as
// |difference| <= len(targets), which holds whenever the targets sum to total.
func AdjustToSum(targets []float64, total int) []int {
	rounded := make([]int, len(targets))
	sum := 0
	for i, v := range targets {
		rounded[i] = int(math.RoundToEven(v))
		sum += rounded[i]
	}

	difference := total - sum
	if difference == 0 || len(targets) == 0 {
		return rounded
	}

	order := make([]int, len(targets))
	for i := range order {
		order[i] = i
	}
	remainder := func(i int) float64 {
		return targets[i] - math.RoundToEven(targets[i])
	}
	sort.SliceStable(order, func(a, b int) bool {
		if difference > 0 {
			return remainder(order[a]) > remainder(order[b])
		}
		return remainder(order[a]) < remainder(order[b])
	})

	step := 1
	if difference < 0 {
		step = -1
		difference = -difference
	}

	// Walk the ranking as many times as needed. With well-formed targets a
	// single pass suffices; wrapping keeps the sum exact for inputs that
	// stray further from total.
	for k := 0; k < difference; k++ {
		rounded[order[k%len(order)]] += step
	}

	return rounded
}
