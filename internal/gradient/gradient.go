// Package gradient interpolates RGB colours across colormap intervals.
package gradient

import (
	"fmt"

	"github.com/shinji-kodama/cmapgen/internal/model"
)

// linearInterp returns channel value i of count evenly spaced samples from
// start to end. The sample is truncated, not rounded, so intermediate
// entries lean slightly towards start.
func linearInterp(start, end uint8, i, count int) uint8 {
	if i == count-1 {
		return end
	}
	step := float64(int(end)-int(start)) / float64(count-1)
	return uint8(int(float64(i)*step + float64(start)))
}

// Linear returns count colours evenly spaced from start to end.
//
// The first entry is always start. For count > 1 the last entry is always
// end; channel c of entry i is trunc(start[c] + i*(end[c]-start[c])/(count-1)).
// count == 1 yields just start, and count <= 0 yields nil.
func Linear(start, end model.RGB, count int) []model.RGB {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []model.RGB{start}
	}

	from, to := start.Channels(), end.Channels()
	out := make([]model.RGB, count)
	for i := range out {
		var ch [3]uint8
		for c := range ch {
			ch[c] = linearInterp(from[c], to[c], i, count)
		}
		out[i] = model.RGBFromChannels(ch)
	}
	return out
}

// Build concatenates the gradient of every interval, in order, sized by the
// matching entry of sizes.
func Build(intervals []model.Interval, sizes []int) (model.Colormap, error) {
	if len(intervals) != len(sizes) {
		return nil, fmt.Errorf("gradient: %d intervals but %d slot sizes", len(intervals), len(sizes))
	}

	total := 0
	for _, n := range sizes {
		total += n
	}

	cm := make(model.Colormap, 0, total)
	for i, iv := range intervals {
		cm = append(cm, Linear(iv.Start, iv.End, sizes[i])...)
	}
	return cm, nil
}
